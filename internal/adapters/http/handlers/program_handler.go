package handlers

import (
	"encoding/json"
	"errors"

	"mini-foerderportal/internal/core/domain"
	"mini-foerderportal/internal/core/services"
	"mini-foerderportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const msgProgramNotFound = "Programm wurde nicht gefunden."

// ProgramHandler handles funding program endpoints
type ProgramHandler struct {
	programService *services.ProgramService
}

// NewProgramHandler creates a new program handler
func NewProgramHandler(programService *services.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// UpdateProgramRequest represents a partial program update
type UpdateProgramRequest struct {
	Name        *string   `json:"name"`
	Summary     *string   `json:"summary"`
	Description *string   `json:"description"`
	AmountMin   *float64  `json:"amountMin"`
	AmountMax   *float64  `json:"amountMax"`
	Tags        *[]string `json:"tags"`
}

// List returns all programs
// @Summary List programs
// @Description All funding programs sorted by name
// @Tags Programs
// @Produce json
// @Success 200 {array} domain.Program
// @Router /programs [get]
func (h *ProgramHandler) List(c *fiber.Ctx) error {
	programs, err := h.programService.List(c.UserContext())
	if err != nil {
		return err
	}
	return response.OK(c, programs)
}

// Update applies a partial update
// @Summary Update program
// @Tags Programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param body body UpdateProgramRequest true "Changes"
// @Success 200 {object} domain.Program
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /programs/{id} [patch]
func (h *ProgramHandler) Update(c *fiber.Ctx) error {
	fields, ok := decodeObject(c.Body())
	if !ok || len(fields) == 0 {
		return response.BadRequest(c, msgNoChanges, nil)
	}

	var req UpdateProgramRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return response.BadRequest(c, msgInvalidChanges, nil)
	}

	program, err := h.programService.Update(c.UserContext(), c.Params("id"), services.UpdateProgramInput{
		Name:        req.Name,
		Summary:     req.Summary,
		Description: req.Description,
		AmountMin:   req.AmountMin,
		AmountMax:   req.AmountMax,
		Tags:        req.Tags,
	})
	if err != nil {
		var invalid domain.FieldErrors
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, msgProgramNotFound)
		case errors.As(err, &invalid):
			return response.BadRequest(c, msgInvalidChanges, invalid)
		}
		return err
	}
	return response.OK(c, program)
}
