package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
)

type MessageService interface {
	Conversations(ctx context.Context, userID int64) ([]models.Conversation, error)
	Conversation(ctx context.Context, userID, partnerID int64) ([]models.Message, error)
	Send(ctx context.Context, m models.SendMessageRequest) (*models.Message, error)
	MarkRead(ctx context.Context, userID, partnerID int64) error
	Delete(ctx context.Context, messageID int64) error
}

type messageService struct {
	r Requester
}

func NewMessageService(r Requester) MessageService {
	return &messageService{r: r}
}

func (s *messageService) Conversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	var out []models.Conversation
	if err := s.r.Do(ctx, http.MethodGet, "/api/messages/conversations/"+id(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *messageService) Conversation(ctx context.Context, userID, partnerID int64) ([]models.Message, error) {
	var out []models.Message
	if err := s.r.Do(ctx, http.MethodGet, "/api/messages/conversation/"+id(userID)+"/"+id(partnerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *messageService) Send(ctx context.Context, m models.SendMessageRequest) (*models.Message, error) {
	var msg models.Message
	if err := s.r.Do(ctx, http.MethodPost, "/api/messages", m, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *messageService) MarkRead(ctx context.Context, userID, partnerID int64) error {
	return s.r.Do(ctx, http.MethodPut, "/api/messages/conversation/"+id(userID)+"/"+id(partnerID)+"/read", nil, nil)
}

func (s *messageService) Delete(ctx context.Context, messageID int64) error {
	return s.r.Do(ctx, http.MethodDelete, "/api/messages/"+id(messageID), nil, nil)
}
