package middleware

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"mini-foerderportal/internal/core/domain"
	"mini-foerderportal/internal/core/services"
	"mini-foerderportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthMiddleware
const (
	LocalUser = "user"
	LocalRole = "role"
)

const (
	MsgUnauthorized   = "Nicht angemeldet."
	MsgSessionExpired = "Sitzung nicht mehr gültig."
	MsgForbidden      = "Keine Berechtigung für diese Aktion."
)

var bearerPrefix = regexp.MustCompile(`(?i)^Bearer\s+`)

// SessionResolver resolves a bearer token to its session
type SessionResolver interface {
	Me(ctx context.Context, token string) (*services.AuthResponse, error)
}

// BearerToken returns the token of an "Authorization: Bearer <token>"
// header. ok is false when the header is missing or uses another scheme.
func BearerToken(c *fiber.Ctx) (token string, ok bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return bearerPrefix.ReplaceAllString(header, ""), true
}

// AuthMiddleware requires a bearer token of a known user
func AuthMiddleware(sessions SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := BearerToken(c)
		if !ok {
			return response.Unauthorized(c, MsgUnauthorized)
		}

		session, err := sessions.Me(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, services.ErrInvalidToken) {
				return response.Unauthorized(c, MsgSessionExpired)
			}
			return err
		}

		c.Locals(LocalUser, session.User)
		c.Locals(LocalRole, session.Role)
		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(domain.Role)
		if !ok {
			return response.Unauthorized(c, MsgUnauthorized)
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, MsgForbidden)
	}
}

// OfficerOnly middleware allows only the officer role
func OfficerOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleOfficer)
}
