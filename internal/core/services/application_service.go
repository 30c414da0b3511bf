package services

import (
	"context"
	"strings"
	"time"

	"mini-foerderportal/internal/core/domain"
)

// Field messages of application input
const (
	msgApplicantName  = "Bitte einen Namen angeben."
	msgApplicantEmail = "Bitte eine E-Mail-Adresse angeben."
	msgProgramID      = "Bitte ein Programm auswählen."
	msgAmount         = "Bitte einen Betrag größer als 0 angeben."
	msgPurpose        = "Bitte den Verwendungszweck angeben."
	msgStatus         = "Unbekannter Status."
	msgAuthorRole     = "Unbekannte Rolle des Kommentars."
	msgCommentMessage = "Bitte einen Kommentartext angeben."
)

// ApplicationService handles funding applications
type ApplicationService struct {
	store ApplicationStore
}

// NewApplicationService creates a new application service
func NewApplicationService(store ApplicationStore) *ApplicationService {
	return &ApplicationService{store: store}
}

// CreateApplicationInput is a submission. Amount is nil when the request
// did not carry a number.
type CreateApplicationInput struct {
	ApplicantName  string
	ApplicantEmail string
	ProgramID      string
	Amount         *float64
	Purpose        string
}

// Validate reports every missing or malformed field
func (in CreateApplicationInput) Validate() error {
	errs := domain.FieldErrors{}
	if in.ApplicantName == "" {
		errs["applicantName"] = msgApplicantName
	}
	if in.ApplicantEmail == "" {
		errs["applicantEmail"] = msgApplicantEmail
	}
	if in.ProgramID == "" {
		errs["programId"] = msgProgramID
	}
	if in.Amount == nil || *in.Amount <= 0 {
		errs["amount"] = msgAmount
	}
	if in.Purpose == "" {
		errs["purpose"] = msgPurpose
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CommentInput is one comment of a patch. A zero CreatedAt keeps the
// stored timestamp, or uses the current time for new comments.
type CommentInput struct {
	ID         string
	AuthorRole string
	Message    string
	CreatedAt  time.Time
}

// UpdateApplicationInput is a partial update. Nil fields are left
// untouched; a non-nil Comments replaces the comment list.
type UpdateApplicationInput struct {
	Status   *string
	Amount   *float64
	Purpose  *string
	Comments *[]CommentInput
}

// patch parses the raw input into a domain patch
func (in UpdateApplicationInput) patch() (domain.ApplicationPatch, error) {
	var patch domain.ApplicationPatch
	errs := domain.FieldErrors{}

	if in.Status != nil {
		status, err := domain.ParseApplicationStatus(*in.Status)
		if err != nil {
			errs["status"] = msgStatus
		} else {
			patch.Status = &status
		}
	}
	if in.Amount != nil {
		if *in.Amount <= 0 {
			errs["amount"] = msgAmount
		} else {
			amount := *in.Amount
			patch.Amount = &amount
		}
	}
	if in.Purpose != nil {
		if strings.TrimSpace(*in.Purpose) == "" {
			errs["purpose"] = msgPurpose
		} else {
			purpose := *in.Purpose
			patch.Purpose = &purpose
		}
	}
	if in.Comments != nil {
		patch.Comments = make([]domain.Comment, 0, len(*in.Comments))
		for _, c := range *in.Comments {
			role, err := domain.ParseRole(c.AuthorRole)
			if err != nil {
				errs["comments"] = msgAuthorRole
				continue
			}
			if strings.TrimSpace(c.Message) == "" {
				errs["comments"] = msgCommentMessage
				continue
			}
			patch.Comments = append(patch.Comments, domain.Comment{
				ID:         c.ID,
				AuthorRole: role,
				Message:    c.Message,
				CreatedAt:  c.CreatedAt,
			})
		}
	}

	if len(errs) > 0 {
		return domain.ApplicationPatch{}, errs
	}
	return patch, nil
}

// List returns all applications, oldest first
func (s *ApplicationService) List(ctx context.Context) ([]domain.Application, error) {
	return s.store.ListApplications(ctx)
}

// Get returns one application or domain.ErrNotFound
func (s *ApplicationService) Get(ctx context.Context, id string) (domain.Application, error) {
	return s.store.FindApplication(ctx, id)
}

// Create validates and stores a new submitted application
func (s *ApplicationService) Create(ctx context.Context, input CreateApplicationInput) (domain.Application, error) {
	if err := input.Validate(); err != nil {
		return domain.Application{}, err
	}

	return s.store.CreateApplication(ctx, domain.NewApplication{
		ApplicantName:  input.ApplicantName,
		ApplicantEmail: input.ApplicantEmail,
		ProgramID:      input.ProgramID,
		Amount:         *input.Amount,
		Purpose:        input.Purpose,
	})
}

// Update applies a partial update
func (s *ApplicationService) Update(ctx context.Context, id string, input UpdateApplicationInput) (domain.Application, error) {
	patch, err := input.patch()
	if err != nil {
		return domain.Application{}, err
	}
	return s.store.UpdateApplication(ctx, id, patch)
}
