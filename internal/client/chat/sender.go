// Package chat sends chat messages with a guard against double submits.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
)

// DefaultGuardWindow is how long the guard stays closed after a send
// finishes.
const DefaultGuardWindow = time.Second

var (
	ErrEmptyMessage = errors.New("message is empty")
	// ErrSendInProgress means the call was dropped by the guard.
	ErrSendInProgress = errors.New("a message is already being sent")
)

// Poster is the part of services.MessageService the sender needs.
type Poster interface {
	Send(ctx context.Context, m models.SendMessageRequest) (*models.Message, error)
}

// Sender lets one send through at a time and keeps rejecting sends until
// window has passed since the last one finished, whatever its outcome.
type Sender struct {
	poster Poster
	window time.Duration

	mu      sync.Mutex
	sending bool
	timer   *time.Timer
}

func NewSender(p Poster, window time.Duration) *Sender {
	if window <= 0 {
		window = DefaultGuardWindow
	}
	return &Sender{poster: p, window: window}
}

// Send posts text from sender to receiver. itemID may be zero.
func (s *Sender) Send(ctx context.Context, senderID, receiverID int64, text string, itemID int64) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.sending {
		s.mu.Unlock()
		return nil, ErrSendInProgress
	}
	s.sending = true
	s.mu.Unlock()

	defer s.release()

	return s.poster.Send(ctx, models.SendMessageRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		ItemID:     itemID,
	})
}

// Busy reports whether the guard is closed.
func (s *Sender) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// Close stops a pending reset and opens the guard.
func (s *Sender) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.sending = false
}

func (s *Sender) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.window, func() {
		s.mu.Lock()
		s.sending = false
		s.timer = nil
		s.mu.Unlock()
	})
}
