package services

import (
	"context"
	"errors"

	"mini-foerderportal/internal/core/domain"
)

// Auth errors
var (
	ErrMissingCredentials = errors.New("username and password required")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles login and session lookup
type AuthService struct {
	store UserStore
}

// NewAuthService creates a new auth service
func NewAuthService(store UserStore) *AuthService {
	return &AuthService{store: store}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User  domain.AuthenticatedUser `json:"user"`
	Token string                   `json:"token"`
	Role  domain.Role              `json:"role"`
}

func newAuthResponse(user domain.AuthenticatedUser) *AuthResponse {
	return &AuthResponse{User: user, Token: user.Token, Role: user.Role}
}

// Login authenticates a user by exact username and password
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.store.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	return newAuthResponse(user), nil
}

// Me resolves the session user of a bearer token
func (s *AuthService) Me(ctx context.Context, token string) (*AuthResponse, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range snapshot.Users {
		if user.Token == token {
			return newAuthResponse(user), nil
		}
	}
	return nil, ErrInvalidToken
}
