package handlers

import (
	"encoding/json"
	"errors"
	"time"

	"mini-foerderportal/internal/core/domain"
	"mini-foerderportal/internal/core/services"
	"mini-foerderportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const (
	msgApplicationNotFound = "Antrag wurde nicht gefunden."
	msgApplicationInvalid  = "Bitte alle notwendigen Felder (Name, E-Mail, Programm, Betrag, Zweck) ausfüllen."
	msgNoChanges           = "Keine Änderungen übermittelt."
	msgInvalidChanges      = "Die übermittelten Änderungen sind ungültig."
)

// ApplicationHandler handles funding application endpoints
type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// CreateApplicationRequest represents the submission body
type CreateApplicationRequest struct {
	ApplicantName  string  `json:"applicantName"`
	ApplicantEmail string  `json:"applicantEmail"`
	ProgramID      string  `json:"programId"`
	Amount         float64 `json:"amount"`
	Purpose        string  `json:"purpose"`
}

// UpdateApplicationRequest represents a partial application update
type UpdateApplicationRequest struct {
	Status   *string           `json:"status"`
	Amount   *float64          `json:"amount"`
	Purpose  *string           `json:"purpose"`
	Comments *[]CommentRequest `json:"comments"`
}

// CommentRequest is one entry of the comment list of an update
type CommentRequest struct {
	ID         string     `json:"id"`
	AuthorRole string     `json:"authorRole"`
	Message    string     `json:"message"`
	CreatedAt  *time.Time `json:"createdAt"`
}

// List returns all applications
// @Summary List applications
// @Description All applications, oldest first
// @Tags Applications
// @Produce json
// @Success 200 {array} domain.Application
// @Router /applications [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	applications, err := h.applicationService.List(c.UserContext())
	if err != nil {
		return err
	}
	return response.OK(c, applications)
}

// Get returns one application
// @Summary Get application
// @Tags Applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} domain.Application
// @Failure 404 {object} response.ErrorBody
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	application, err := h.applicationService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, msgApplicationNotFound)
		}
		return err
	}
	return response.OK(c, application)
}

// Create submits a new application
// @Summary Submit application
// @Description Creates an application with status submitted
// @Tags Applications
// @Accept json
// @Produce json
// @Param body body CreateApplicationRequest true "Application data"
// @Success 201 {object} domain.Application
// @Failure 400 {object} response.ErrorBody
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	fields, _ := decodeObject(c.Body())
	input := services.CreateApplicationInput{
		ApplicantName:  stringValue(fields["applicantName"]),
		ApplicantEmail: stringValue(fields["applicantEmail"]),
		ProgramID:      stringValue(fields["programId"]),
		Amount:         numberValue(fields["amount"]),
		Purpose:        stringValue(fields["purpose"]),
	}

	application, err := h.applicationService.Create(c.UserContext(), input)
	if err != nil {
		var invalid domain.FieldErrors
		if errors.As(err, &invalid) {
			return response.BadRequest(c, msgApplicationInvalid, invalid)
		}
		return err
	}
	return response.Created(c, application)
}

// Update applies a partial update
// @Summary Update application
// @Description Merges status, amount, purpose and comments into the application
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param body body UpdateApplicationRequest true "Changes"
// @Success 200 {object} domain.Application
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /applications/{id} [patch]
func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	fields, ok := decodeObject(c.Body())
	if !ok || len(fields) == 0 {
		return response.BadRequest(c, msgNoChanges, nil)
	}

	var req UpdateApplicationRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return response.BadRequest(c, msgInvalidChanges, nil)
	}

	application, err := h.applicationService.Update(c.UserContext(), c.Params("id"), req.input())
	if err != nil {
		var invalid domain.FieldErrors
		var validation *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, msgApplicationNotFound)
		case errors.As(err, &invalid):
			return response.BadRequest(c, msgInvalidChanges, invalid)
		case errors.As(err, &validation):
			return response.BadRequest(c, validation.Message, map[string]string{validation.Field: validation.Message})
		}
		return err
	}
	return response.OK(c, application)
}

func (r UpdateApplicationRequest) input() services.UpdateApplicationInput {
	input := services.UpdateApplicationInput{
		Status:  r.Status,
		Amount:  r.Amount,
		Purpose: r.Purpose,
	}
	if r.Comments != nil {
		comments := make([]services.CommentInput, 0, len(*r.Comments))
		for _, c := range *r.Comments {
			comment := services.CommentInput{
				ID:         c.ID,
				AuthorRole: c.AuthorRole,
				Message:    c.Message,
			}
			if c.CreatedAt != nil {
				comment.CreatedAt = *c.CreatedAt
			}
			comments = append(comments, comment)
		}
		input.Comments = &comments
	}
	return input
}

// Upload accepts a document upload. Files are not stored.
// @Summary Upload document
// @Tags Applications
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /upload [post]
func (h *ApplicationHandler) Upload(c *fiber.Ctx) error {
	return response.OK(c, fiber.Map{"ok": true})
}
