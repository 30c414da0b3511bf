package handlers

import (
	"errors"

	"mini-foerderportal/internal/core/eligibility"
	"mini-foerderportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const msgEligibilityInvalid = "Bitte die markierten Angaben prüfen."

// EligibilityHandler exposes the eligibility pre-screening
type EligibilityHandler struct{}

// NewEligibilityHandler creates a new eligibility handler
func NewEligibilityHandler() *EligibilityHandler {
	return &EligibilityHandler{}
}

// Check validates and evaluates free-text form input
// @Summary Eligibility check
// @Description Checks purpose, amount and postal code against the funding rules
// @Tags Eligibility
// @Accept json
// @Produce json
// @Param body body eligibility.RawInput true "Form input"
// @Success 200 {object} eligibility.Result
// @Failure 400 {object} response.ErrorBody
// @Router /eligibility [post]
func (h *EligibilityHandler) Check(c *fiber.Ctx) error {
	fields, _ := decodeObject(c.Body())
	raw := eligibility.RawInput{
		Purpose:    stringValue(fields["purpose"]),
		Amount:     textValue(fields["amount"]),
		PostalCode: textValue(fields["postalCode"]),
	}

	input, err := eligibility.Validate(raw)
	if err != nil {
		var invalid eligibility.FieldErrors
		if errors.As(err, &invalid) {
			messages := make(map[string]string, len(invalid))
			for criterion, msg := range invalid {
				messages[string(criterion)] = msg
			}
			return response.BadRequest(c, msgEligibilityInvalid, messages)
		}
		return err
	}

	return response.OK(c, eligibility.Evaluate(input))
}
