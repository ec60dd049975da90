package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
)

type UserService interface {
	Get(ctx context.Context, userID int64) (*models.UserSummary, error)
	ByEmail(ctx context.Context, email string) (*models.UserSummary, error)
	List(ctx context.Context) ([]models.UserSummary, error)
	Update(ctx context.Context, userID int64, u models.ProfileUpdate) (*models.UserSummary, error)
	Delete(ctx context.Context, userID int64) error
}

type userService struct {
	r Requester
}

func NewUserService(r Requester) UserService {
	return &userService{r: r}
}

func (s *userService) Get(ctx context.Context, userID int64) (*models.UserSummary, error) {
	return s.one(ctx, http.MethodGet, "/api/users/"+id(userID), nil)
}

func (s *userService) ByEmail(ctx context.Context, email string) (*models.UserSummary, error) {
	return s.one(ctx, http.MethodGet, "/api/users/email/"+seg(email), nil)
}

func (s *userService) List(ctx context.Context) ([]models.UserSummary, error) {
	raw, err := getList(ctx, s.r, "/api/users")
	if err != nil {
		return nil, err
	}
	return normalize.Users(raw), nil
}

type userUpdate struct {
	UserID int64 `json:"userId"`
	models.ProfileUpdate
}

// Update sends only the fields set in u, plus the user id.
func (s *userService) Update(ctx context.Context, userID int64, u models.ProfileUpdate) (*models.UserSummary, error) {
	return s.one(ctx, http.MethodPut, "/api/users/"+id(userID), userUpdate{UserID: userID, ProfileUpdate: u})
}

func (s *userService) Delete(ctx context.Context, userID int64) error {
	return s.r.Do(ctx, http.MethodDelete, "/api/users/"+id(userID), nil, nil)
}

func (s *userService) one(ctx context.Context, method, path string, body any) (*models.UserSummary, error) {
	raw, err := getObject(ctx, s.r, method, path, body)
	if err != nil {
		return nil, err
	}
	u := normalize.User(raw)
	return &u, nil
}
