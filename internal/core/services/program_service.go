package services

import (
	"context"
	"strings"

	"mini-foerderportal/internal/core/domain"
)

// ProgramService handles funding programs
type ProgramService struct {
	store ProgramStore
}

// NewProgramService creates a new program service
func NewProgramService(store ProgramStore) *ProgramService {
	return &ProgramService{store: store}
}

// UpdateProgramInput is a partial program update
type UpdateProgramInput struct {
	Name        *string
	Summary     *string
	Description *string
	AmountMin   *float64
	AmountMax   *float64
	Tags        *[]string
}

func (in UpdateProgramInput) patch() (domain.ProgramPatch, error) {
	errs := domain.FieldErrors{}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		errs["name"] = "Bitte einen Programmnamen angeben."
	}
	if in.AmountMin != nil && *in.AmountMin < 0 {
		errs["amountMin"] = "Der Mindestbetrag darf nicht negativ sein."
	}
	if in.AmountMax != nil && *in.AmountMax < 0 {
		errs["amountMax"] = "Der Höchstbetrag darf nicht negativ sein."
	}
	if in.AmountMin != nil && in.AmountMax != nil && *in.AmountMin > *in.AmountMax {
		errs["amountMax"] = "Der Höchstbetrag muss mindestens dem Mindestbetrag entsprechen."
	}
	if len(errs) > 0 {
		return domain.ProgramPatch{}, errs
	}

	patch := domain.ProgramPatch{
		Name:        in.Name,
		Summary:     in.Summary,
		Description: in.Description,
		AmountMin:   in.AmountMin,
		AmountMax:   in.AmountMax,
	}
	if in.Tags != nil {
		patch.Tags = append([]string{}, *in.Tags...)
	}
	return patch, nil
}

// List returns all programs sorted by name
func (s *ProgramService) List(ctx context.Context) ([]domain.Program, error) {
	return s.store.ListPrograms(ctx)
}

// Update applies a partial update
func (s *ProgramService) Update(ctx context.Context, id string, input UpdateProgramInput) (domain.Program, error) {
	patch, err := input.patch()
	if err != nil {
		return domain.Program{}, err
	}
	return s.store.UpdateProgram(ctx, id, patch)
}
