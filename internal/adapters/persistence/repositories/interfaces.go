package repositories

import (
	"context"

	"mini-foerderportal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	DeleteAll(ctx context.Context) error
}

// ProgramRepository defines program repository interface
type ProgramRepository interface {
	Create(ctx context.Context, program *models.Program) error
	GetByID(ctx context.Context, id string) (*models.Program, error)
	List(ctx context.Context) ([]*models.Program, error)
	Update(ctx context.Context, program *models.Program) error
	DeleteAll(ctx context.Context) error
}

// ApplicationRepository defines application repository interface.
// Reads preload comments in position order.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	List(ctx context.Context) ([]*models.Application, error)
	Update(ctx context.Context, application *models.Application) error
	DeleteAll(ctx context.Context) error
}

// CommentRepository defines comment repository interface
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	DeleteByIDs(ctx context.Context, ids []string) error
	DeleteAll(ctx context.Context) error
}

// Set bundles the repositories bound to one connection or transaction
type Set struct {
	Users        UserRepository
	Programs     ProgramRepository
	Applications ApplicationRepository
	Comments     CommentRepository
}

// NewSet creates all repositories on top of db
func NewSet(db *gorm.DB) *Set {
	return &Set{
		Users:        NewUserRepository(db),
		Programs:     NewProgramRepository(db),
		Applications: NewApplicationRepository(db),
		Comments:     NewCommentRepository(db),
	}
}

// deleteAll removes every row of model. GORM refuses unconditioned deletes,
// hence the explicit always-true condition.
func deleteAll(ctx context.Context, db *gorm.DB, model interface{}) error {
	return db.WithContext(ctx).Where("1 = 1").Delete(model).Error
}
