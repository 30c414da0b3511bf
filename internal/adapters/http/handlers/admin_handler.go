package handlers

import (
	"mini-foerderportal/internal/core/services"
	"mini-foerderportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles officer maintenance endpoints
type AdminHandler struct {
	resetService *services.ResetService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(resetService *services.ResetService) *AdminHandler {
	return &AdminHandler{resetService: resetService}
}

// Reset reseeds the store from its fixtures
// @Summary Reset store
// @Description Restores the fixture dataset. Officers only.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /admin/reset [post]
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	if err := h.resetService.ResetNow(c.UserContext()); err != nil {
		return err
	}
	return response.OK(c, fiber.Map{"ok": true})
}
