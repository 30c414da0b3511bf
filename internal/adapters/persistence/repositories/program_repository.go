package repositories

import (
	"context"

	"mini-foerderportal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// programRepository implements ProgramRepository interface
type programRepository struct {
	db *gorm.DB
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

// Create creates a new program
func (r *programRepository) Create(ctx context.Context, program *models.Program) error {
	return r.db.WithContext(ctx).Create(program).Error
}

// GetByID gets a program by ID
func (r *programRepository) GetByID(ctx context.Context, id string) (*models.Program, error) {
	var program models.Program
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&program).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// List lists all programs in id order
func (r *programRepository) List(ctx context.Context) ([]*models.Program, error) {
	var programs []*models.Program
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

// Update saves all columns of a program
func (r *programRepository) Update(ctx context.Context, program *models.Program) error {
	return r.db.WithContext(ctx).Save(program).Error
}

// DeleteAll removes every program
func (r *programRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, &models.Program{})
}
