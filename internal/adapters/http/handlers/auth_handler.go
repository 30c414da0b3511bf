package handlers

import (
	"errors"

	"mini-foerderportal/internal/adapters/http/middleware"
	"mini-foerderportal/internal/core/domain"
	"mini-foerderportal/internal/core/services"
	"mini-foerderportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const (
	msgMissingCredentials = "Bitte Benutzername und Passwort übermitteln."
	msgInvalidCredentials = "Ungültige Zugangsdaten."
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles user login
// @Summary Login
// @Description Authenticate with username and password and receive the session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} services.AuthResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	fields, _ := decodeObject(c.Body())
	input := services.LoginInput{
		Username: stringValue(fields["username"]),
		Password: stringValue(fields["password"]),
	}

	result, err := h.authService.Login(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			return response.BadRequest(c, msgMissingCredentials, nil)
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, msgInvalidCredentials)
		}
		return err
	}

	return response.OK(c, result)
}

// Me returns the session of the bearer token
// @Summary Current session
// @Description Resolve the bearer token to its user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.AuthResponse
// @Failure 401 {object} response.ErrorBody
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return response.Unauthorized(c, middleware.MsgUnauthorized)
	}

	result, err := h.authService.Me(c.UserContext(), token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return response.Unauthorized(c, middleware.MsgSessionExpired)
		}
		return err
	}

	return response.OK(c, result)
}
