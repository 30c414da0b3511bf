// Package store is the portal's resettable data store. A Store owns its
// database handle; every operation is serialized so one request completes
// before the next one observes its effects.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"mini-foerderportal/internal/adapters/persistence/models"
	"mini-foerderportal/internal/adapters/persistence/repositories"
	"mini-foerderportal/internal/core/domain"
	"mini-foerderportal/internal/fixtures"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Store provides CRUD operations over users, programs, applications and comments
type Store struct {
	mu      sync.Mutex
	db      *gorm.DB
	now     func() time.Time
	newID   func() string
	dataset fixtures.Dataset
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces time.Now as the source of mutation timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the random UUID generator used for new records
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithDataset replaces the built-in fixtures used by Seed
func WithDataset(d fixtures.Dataset) Option {
	return func(s *Store) {
		s.dataset = d
	}
}

// New migrates the schema on db and returns an empty store. Call Seed to
// load fixtures.
func New(db *gorm.DB, opts ...Option) (*Store, error) {
	s := &Store{
		db:      db,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
		dataset: fixtures.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate store schema: %w", err)
	}
	return s, nil
}

// Close releases the underlying connection
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying database answers
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) stamp() time.Time {
	return s.now().UTC()
}

// transaction runs fn with repositories bound to a single transaction
func (s *Store) transaction(ctx context.Context, fn func(repos *repositories.Set) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repositories.NewSet(tx))
	})
}

func (s *Store) repos() *repositories.Set {
	return repositories.NewSet(s.db)
}

// ============================================================
// Lifecycle
// ============================================================

// Seed clears every collection and inserts the fixture dataset
func (s *Store) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transaction(ctx, func(repos *repositories.Set) error {
		if err := repos.Comments.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear comments: %w", err)
		}
		if err := repos.Applications.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear applications: %w", err)
		}
		if err := repos.Programs.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear programs: %w", err)
		}
		if err := repos.Users.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear users: %w", err)
		}

		for _, u := range s.dataset.Users {
			if err := repos.Users.Create(ctx, models.NewUser(u)); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.ID, err)
			}
		}
		for _, p := range s.dataset.Programs {
			if err := repos.Programs.Create(ctx, models.NewProgram(p)); err != nil {
				return fmt.Errorf("failed to seed program %s: %w", p.ID, err)
			}
		}
		for _, a := range s.dataset.Applications {
			if err := repos.Applications.Create(ctx, models.NewApplication(a)); err != nil {
				return fmt.Errorf("failed to seed application %s: %w", a.ID, err)
			}
			for i, c := range a.Comments {
				if err := repos.Comments.Create(ctx, models.NewComment(a.ID, i, c)); err != nil {
					return fmt.Errorf("failed to seed comment %s: %w", c.ID, err)
				}
			}
		}
		return nil
	})
}

// Reset is an alias of Seed
func (s *Store) Reset(ctx context.Context) error {
	return s.Seed(ctx)
}

// ============================================================
// Users
// ============================================================

// Authenticate returns the public projection of the user matching both
// username and password exactly, or domain.ErrNotFound.
func (s *Store) Authenticate(ctx context.Context, username, password string) (domain.AuthenticatedUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.repos().Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthenticatedUser{}, domain.ErrNotFound
		}
		return domain.AuthenticatedUser{}, err
	}
	if row.Password != password {
		return domain.AuthenticatedUser{}, domain.ErrNotFound
	}

	user, err := row.ToDomain()
	if err != nil {
		return domain.AuthenticatedUser{}, err
	}
	return user.Public(), nil
}

// ============================================================
// Programs
// ============================================================

// ListPrograms returns all programs ordered by name using German collation
func (s *Store) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	programs, err := s.programs(ctx)
	if err != nil {
		return nil, err
	}

	col := collate.New(language.German)
	sort.SliceStable(programs, func(i, j int) bool {
		return col.CompareString(programs[i].Name, programs[j].Name) < 0
	})
	return programs, nil
}

func (s *Store) programs(ctx context.Context) ([]domain.Program, error) {
	rows, err := s.repos().Programs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}

	programs := make([]domain.Program, 0, len(rows))
	for _, row := range rows {
		programs = append(programs, row.ToDomain())
	}
	return programs, nil
}

// UpdateProgram merges patch into the program and refreshes updatedAt
func (s *Store) UpdateProgram(ctx context.Context, id string, patch domain.ProgramPatch) (domain.Program, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated domain.Program
	err := s.transaction(ctx, func(repos *repositories.Set) error {
		row, err := repos.Programs.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		program := row.ToDomain()
		applyProgramPatch(&program, patch)
		program.UpdatedAt = s.stamp()

		if err := repos.Programs.Update(ctx, models.NewProgram(program)); err != nil {
			return fmt.Errorf("failed to update program %s: %w", id, err)
		}
		updated = program
		return nil
	})
	if err != nil {
		return domain.Program{}, err
	}
	return updated, nil
}

func applyProgramPatch(p *domain.Program, patch domain.ProgramPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Summary != nil {
		p.Summary = *patch.Summary
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.AmountMin != nil {
		p.AmountMin = *patch.AmountMin
	}
	if patch.AmountMax != nil {
		p.AmountMax = *patch.AmountMax
	}
	if patch.Tags != nil {
		p.Tags = append([]string{}, patch.Tags...)
	}
}

// ============================================================
// Applications
// ============================================================

// ListApplications returns all applications, oldest first
func (s *Store) ListApplications(ctx context.Context) ([]domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applications(ctx)
}

func (s *Store) applications(ctx context.Context) ([]domain.Application, error) {
	rows, err := s.repos().Applications.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	applications := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		a, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}

	sort.SliceStable(applications, func(i, j int) bool {
		return applications[i].CreatedAt.Before(applications[j].CreatedAt)
	})
	return applications, nil
}

// FindApplication returns one application or domain.ErrNotFound
func (s *Store) FindApplication(ctx context.Context, id string) (domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.repos().Applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Application{}, domain.ErrNotFound
		}
		return domain.Application{}, err
	}
	return row.ToDomain()
}

// CreateApplication stores a new submitted application with a fresh id
func (s *Store) CreateApplication(ctx context.Context, input domain.NewApplication) (domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.stamp()
	application := domain.Application{
		ID:             s.newID(),
		ApplicantName:  input.ApplicantName,
		ApplicantEmail: input.ApplicantEmail,
		ProgramID:      input.ProgramID,
		Status:         domain.StatusSubmitted,
		Amount:         input.Amount,
		Purpose:        input.Purpose,
		CreatedAt:      now,
		UpdatedAt:      now,
		Comments:       []domain.Comment{},
	}

	if err := s.repos().Applications.Create(ctx, models.NewApplication(application)); err != nil {
		return domain.Application{}, fmt.Errorf("failed to create application: %w", err)
	}
	return application, nil
}

// UpdateApplication merges patch into the application and refreshes
// updatedAt. Comments in the patch are upserted by id and replace the
// current list; comments left out are deleted.
func (s *Store) UpdateApplication(ctx context.Context, id string, patch domain.ApplicationPatch) (domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated domain.Application
	err := s.transaction(ctx, func(repos *repositories.Set) error {
		row, err := repos.Applications.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		application, err := row.ToDomain()
		if err != nil {
			return err
		}

		now := s.stamp()
		if patch.Status != nil {
			application.Status = *patch.Status
		}
		if patch.Amount != nil {
			application.Amount = *patch.Amount
		}
		if patch.Purpose != nil {
			application.Purpose = *patch.Purpose
		}
		if patch.Comments != nil {
			merged := domain.MergeComments(application.Comments, patch.Comments, s.commentID, now)
			if err := s.writeComments(ctx, repos, id, merged); err != nil {
				return err
			}
			application.Comments = merged.Comments
		}
		application.UpdatedAt = now

		if err := repos.Applications.Update(ctx, models.NewApplication(application)); err != nil {
			return fmt.Errorf("failed to update application %s: %w", id, err)
		}
		updated = application
		return nil
	})
	if err != nil {
		return domain.Application{}, err
	}
	return updated, nil
}

func (s *Store) commentID() string {
	return "comment-" + s.newID()
}

// writeComments persists a merge result for application id
func (s *Store) writeComments(ctx context.Context, repos *repositories.Set, id string, merged domain.CommentMerge) error {
	inserted := make(map[string]bool, len(merged.Inserted))
	for _, cid := range merged.Inserted {
		inserted[cid] = true
		// a foreign comment id would make the comment shared between applications
		if _, err := repos.Comments.GetByID(ctx, cid); err == nil {
			return &domain.ValidationError{Field: "comments", Message: fmt.Sprintf("Kommentar %q gehört zu einem anderen Antrag.", cid)}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	if err := repos.Comments.DeleteByIDs(ctx, merged.Removed); err != nil {
		return fmt.Errorf("failed to remove comments: %w", err)
	}

	for i, c := range merged.Comments {
		row := models.NewComment(id, i, c)
		if inserted[c.ID] {
			err := repos.Comments.Create(ctx, row)
			if err != nil {
				return fmt.Errorf("failed to insert comment %s: %w", c.ID, err)
			}
			continue
		}
		if err := repos.Comments.Update(ctx, row); err != nil {
			return fmt.Errorf("failed to update comment %s: %w", c.ID, err)
		}
	}
	return nil
}

// ============================================================
// Snapshot / export
// ============================================================

// Snapshot dumps users (public projection), programs and applications
func (s *Store) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.users(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	programs, err := s.programs(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	applications, err := s.applications(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}

	public := make([]domain.AuthenticatedUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}

	return domain.Snapshot{
		Users:        public,
		Programs:     programs,
		Applications: applications,
	}, nil
}

// Export dumps the full dataset, passwords included, in fixture format
func (s *Store) Export(ctx context.Context) (fixtures.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.users(ctx)
	if err != nil {
		return fixtures.Dataset{}, err
	}
	programs, err := s.programs(ctx)
	if err != nil {
		return fixtures.Dataset{}, err
	}
	applications, err := s.applications(ctx)
	if err != nil {
		return fixtures.Dataset{}, err
	}

	return fixtures.Dataset{
		Users:        users,
		Programs:     programs,
		Applications: applications,
	}, nil
}

func (s *Store) users(ctx context.Context) ([]domain.User, error) {
	rows, err := s.repos().Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		u, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
