package services

import (
	"context"

	"mini-foerderportal/internal/core/domain"
)

// Note: *store.Store satisfies every interface in this file

// UserStore resolves users by credentials or token
type UserStore interface {
	Authenticate(ctx context.Context, username, password string) (domain.AuthenticatedUser, error)
	Snapshot(ctx context.Context) (domain.Snapshot, error)
}

// ProgramStore reads and patches funding programs
type ProgramStore interface {
	ListPrograms(ctx context.Context) ([]domain.Program, error)
	UpdateProgram(ctx context.Context, id string, patch domain.ProgramPatch) (domain.Program, error)
}

// ApplicationStore reads, creates and patches applications
type ApplicationStore interface {
	ListApplications(ctx context.Context) ([]domain.Application, error)
	FindApplication(ctx context.Context, id string) (domain.Application, error)
	CreateApplication(ctx context.Context, input domain.NewApplication) (domain.Application, error)
	UpdateApplication(ctx context.Context, id string, patch domain.ApplicationPatch) (domain.Application, error)
}

// ResettableStore can be reseeded from its fixtures
type ResettableStore interface {
	Reset(ctx context.Context) error
}
