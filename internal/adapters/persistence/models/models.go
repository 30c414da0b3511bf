package models

import (
	"errors"
	"time"

	"mini-foerderportal/internal/core/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User represents users table
type User struct {
	ID          string `gorm:"primaryKey;size:64"`
	Username    string `gorm:"uniqueIndex;size:50;not null"`
	Password    string `gorm:"size:255;not null"`
	Role        string `gorm:"size:20;not null"`
	DisplayName string `gorm:"size:100"`
	Token       string `gorm:"uniqueIndex;size:255;not null"`
}

func (User) TableName() string {
	return "users"
}

// Program represents programs table
type Program struct {
	ID          string                      `gorm:"primaryKey;size:64"`
	Name        string                      `gorm:"size:200;not null"`
	Summary     string                      `gorm:"type:text"`
	Description string                      `gorm:"type:text"`
	AmountMin   float64                     `gorm:"not null"`
	AmountMax   float64                     `gorm:"not null"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime:false;precision:6"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:json"`
}

func (Program) TableName() string {
	return "programs"
}

// Comment represents comments table. Rows belong to exactly one application.
type Comment struct {
	ID            string    `gorm:"primaryKey;size:64"`
	ApplicationID string    `gorm:"index;size:64;not null"`
	Position      int       `gorm:"not null"`
	AuthorRole    string    `gorm:"size:20;not null"`
	Message       string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false;precision:6"`
}

func (Comment) TableName() string {
	return "comments"
}

// Application represents applications table
type Application struct {
	ID             string    `gorm:"primaryKey;size:64"`
	ApplicantName  string    `gorm:"size:200;not null"`
	ApplicantEmail string    `gorm:"size:200;not null"`
	ProgramID      string    `gorm:"index;size:64;not null"`
	Status         string    `gorm:"size:20;not null;index"`
	Amount         float64   `gorm:"not null"`
	Purpose        string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false;precision:6;index"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false;precision:6"`
	Comments       []Comment `gorm:"foreignKey:ApplicationID"`
}

func (Application) TableName() string {
	return "applications"
}

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Program{},
		&Application{},
		&Comment{},
	)
}

// ============================================================
// Mapping: stored rows -> domain values
// ============================================================

// ToDomain converts a user row, failing on an unknown role
func (u *User) ToDomain() (domain.User, error) {
	role, err := domain.ParseRole(u.Role)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:          u.ID,
		Username:    u.Username,
		Password:    u.Password,
		Role:        role,
		DisplayName: u.DisplayName,
		Token:       u.Token,
	}, nil
}

// ToDomain converts a program row
func (p *Program) ToDomain() domain.Program {
	tags := make([]string, 0, len(p.Tags))
	tags = append(tags, p.Tags...)
	return domain.Program{
		ID:          p.ID,
		Name:        p.Name,
		Summary:     p.Summary,
		Description: p.Description,
		AmountMin:   p.AmountMin,
		AmountMax:   p.AmountMax,
		UpdatedAt:   p.UpdatedAt.UTC(),
		Tags:        tags,
	}
}

// ToDomain converts a comment row, failing on an unknown author role
func (c *Comment) ToDomain() (domain.Comment, error) {
	role, err := domain.ParseRole(c.AuthorRole)
	if err != nil {
		var integrity *domain.IntegrityError
		if errors.As(err, &integrity) {
			integrity.Entity = "comment"
			integrity.Field = "authorRole"
		}
		return domain.Comment{}, err
	}
	return domain.Comment{
		ID:         c.ID,
		AuthorRole: role,
		Message:    c.Message,
		CreatedAt:  c.CreatedAt.UTC(),
	}, nil
}

// ToDomain converts an application row with its preloaded comments.
// Comments are expected in position order.
func (a *Application) ToDomain() (domain.Application, error) {
	status, err := domain.ParseApplicationStatus(a.Status)
	if err != nil {
		return domain.Application{}, err
	}

	comments := make([]domain.Comment, 0, len(a.Comments))
	for i := range a.Comments {
		c, err := a.Comments[i].ToDomain()
		if err != nil {
			return domain.Application{}, err
		}
		comments = append(comments, c)
	}

	return domain.Application{
		ID:             a.ID,
		ApplicantName:  a.ApplicantName,
		ApplicantEmail: a.ApplicantEmail,
		ProgramID:      a.ProgramID,
		Status:         status,
		Amount:         a.Amount,
		Purpose:        a.Purpose,
		CreatedAt:      a.CreatedAt.UTC(),
		UpdatedAt:      a.UpdatedAt.UTC(),
		Comments:       comments,
	}, nil
}

// ============================================================
// Mapping: domain values -> rows
// ============================================================

// NewUser builds a user row
func NewUser(u domain.User) *User {
	return &User{
		ID:          u.ID,
		Username:    u.Username,
		Password:    u.Password,
		Role:        string(u.Role),
		DisplayName: u.DisplayName,
		Token:       u.Token,
	}
}

// NewProgram builds a program row
func NewProgram(p domain.Program) *Program {
	tags := make([]string, 0, len(p.Tags))
	tags = append(tags, p.Tags...)
	return &Program{
		ID:          p.ID,
		Name:        p.Name,
		Summary:     p.Summary,
		Description: p.Description,
		AmountMin:   p.AmountMin,
		AmountMax:   p.AmountMax,
		UpdatedAt:   p.UpdatedAt.UTC(),
		Tags:        datatypes.JSONSlice[string](tags),
	}
}

// NewComment builds a comment row owned by applicationID at the given position
func NewComment(applicationID string, position int, c domain.Comment) *Comment {
	return &Comment{
		ID:            c.ID,
		ApplicationID: applicationID,
		Position:      position,
		AuthorRole:    string(c.AuthorRole),
		Message:       c.Message,
		CreatedAt:     c.CreatedAt.UTC(),
	}
}

// NewApplication builds an application row without its comments
func NewApplication(a domain.Application) *Application {
	return &Application{
		ID:             a.ID,
		ApplicantName:  a.ApplicantName,
		ApplicantEmail: a.ApplicantEmail,
		ProgramID:      a.ProgramID,
		Status:         string(a.Status),
		Amount:         a.Amount,
		Purpose:        a.Purpose,
		CreatedAt:      a.CreatedAt.UTC(),
		UpdatedAt:      a.UpdatedAt.UTC(),
	}
}
