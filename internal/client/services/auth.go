package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
)

// AuthService talks to the registration and login endpoints.
type AuthService interface {
	Register(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	CheckUsername(ctx context.Context, username string) (*models.Availability, error)
	CheckEmail(ctx context.Context, email string) (*models.Availability, error)
}

type authService struct {
	r Requester
}

func NewAuthService(r Requester) AuthService {
	return &authService{r: r}
}

func (a *authService) Register(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.r.Do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := a.r.Do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *authService) CheckUsername(ctx context.Context, username string) (*models.Availability, error) {
	return a.check(ctx, "/api/auth/check-username/"+seg(username))
}

func (a *authService) CheckEmail(ctx context.Context, email string) (*models.Availability, error) {
	return a.check(ctx, "/api/auth/check-email/"+seg(email))
}

func (a *authService) check(ctx context.Context, path string) (*models.Availability, error) {
	var av models.Availability
	if err := a.r.Do(ctx, http.MethodGet, path, nil, &av); err != nil {
		return nil, err
	}
	return &av, nil
}
