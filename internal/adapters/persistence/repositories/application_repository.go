package repositories

import (
	"context"

	"mini-foerderportal/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func orderedComments(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create creates a new application. Comments are written separately.
func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(application).Error
}

// GetByID gets an application by ID with its comments
func (r *applicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Comments", orderedComments).
		Where("id = ?", id).
		First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// List lists all applications with comments, oldest first
func (r *applicationRepository) List(ctx context.Context) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Comments", orderedComments).
		Order("created_at ASC").
		Order("id ASC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// Update saves the application columns, leaving comments untouched
func (r *applicationRepository) Update(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(application).Error
}

// DeleteAll removes every application
func (r *applicationRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, &models.Application{})
}

// commentRepository implements CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// GetByID gets a comment by ID regardless of its owner
func (r *commentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update saves all columns of a comment
func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// DeleteByIDs removes the given comments
func (r *commentRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Comment{}).Error
}

// DeleteAll removes every comment
func (r *commentRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, &models.Comment{})
}
