package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mini-foerderportal/internal/adapters/persistence/store"
	"mini-foerderportal/internal/config"
	"mini-foerderportal/internal/core/domain"
	"mini-foerderportal/internal/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// tickingClock advances one second per call so every mutation gets a
// strictly later timestamp
type tickingClock struct {
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestStore(t *testing.T, opts ...store.Option) (*store.Store, *gorm.DB) {
	t.Helper()

	db, err := config.OpenInMemory()
	require.NoError(t, err)

	clock := &tickingClock{now: time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)}
	opts = append([]store.Option{store.WithClock(clock.Now)}, opts...)

	st, err := store.New(db, opts...)
	require.NoError(t, err)
	require.NoError(t, st.Seed(context.Background()))

	t.Cleanup(func() { _ = st.Close() })
	return st, db
}

func TestSeed_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	first, err := st.Snapshot(ctx)
	require.NoError(t, err)

	require.NoError(t, st.Seed(ctx))
	second, err := st.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(first.Users), len(second.Users))
	assert.Equal(t, len(first.Programs), len(second.Programs))
	require.Len(t, second.Applications, 1)
	assert.Equal(t, "application-demo-001", second.Applications[0].ID)
	assert.Len(t, second.Applications[0].Comments, 1)
}

func TestReset_DiscardsChanges(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	_, err := st.CreateApplication(ctx, domain.NewApplication{
		ApplicantName: "A", ApplicantEmail: "a@example.de", ProgramID: "program-energieeffizienz",
		Amount: 1000, Purpose: "Sanierung",
	})
	require.NoError(t, err)

	require.NoError(t, st.Reset(ctx))

	applications, err := st.ListApplications(ctx)
	require.NoError(t, err)
	assert.Len(t, applications, 1)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	user, err := st.Authenticate(ctx, "alice", "test123")
	require.NoError(t, err)
	assert.Equal(t, "token-applicant", user.Token)
	assert.Equal(t, domain.RoleApplicant, user.Role)

	_, err = st.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = st.Authenticate(ctx, "Alice", "test123")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPrograms_GermanCollation(t *testing.T) {
	st, _ := newTestStore(t)

	programs, err := st.ListPrograms(context.Background())
	require.NoError(t, err)
	require.Len(t, programs, 3)

	names := []string{programs[0].Name, programs[1].Name, programs[2].Name}
	assert.Equal(t, []string{"Energieeffizienz Wohnen", "Gründung & Innovation", "Soziale Infrastruktur"}, names)
	assert.Equal(t, []string{"wohnen", "energie", "sanierung"}, programs[0].Tags)
}

func TestUpdateProgram(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	name := "Älteste Förderung"
	updated, err := st.UpdateProgram(ctx, "program-soziale-infrastruktur", domain.ProgramPatch{
		Name: &name,
		Tags: []string{"neu"},
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, []string{"neu"}, updated.Tags)
	assert.True(t, updated.UpdatedAt.After(fixtures.AddMinutesToBaseline(30)))

	programs, err := st.ListPrograms(ctx)
	require.NoError(t, err)
	assert.Equal(t, name, programs[0].Name)
	assert.Equal(t, "Fördert den Ausbau sozialer Einrichtungen in Kommunen.", programs[0].Summary)

	_, err = st.UpdateProgram(ctx, "missing", domain.ProgramPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateApplication(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, store.WithIDGenerator(func() string { return "fixed-id" }))

	created, err := st.CreateApplication(ctx, domain.NewApplication{
		ApplicantName:  "Test",
		ApplicantEmail: "test@example.de",
		ProgramID:      "program-energieeffizienz",
		Amount:         1000,
		Purpose:        "Sanierung",
	})
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", created.ID)
	assert.Equal(t, domain.StatusSubmitted, created.Status)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))
	assert.NotNil(t, created.Comments)
	assert.Empty(t, created.Comments)

	applications, err := st.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, applications, 2)
	assert.Equal(t, "application-demo-001", applications[0].ID)
	assert.Equal(t, "fixed-id", applications[1].ID)

	found, err := st.FindApplication(ctx, "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, found.Amount)
	assert.Empty(t, found.Comments)
}

func TestFindApplication_NotFound(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.FindApplication(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateApplication_StatusRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	before, err := st.FindApplication(ctx, "application-demo-001")
	require.NoError(t, err)

	status := domain.StatusApproved
	updated, err := st.UpdateApplication(ctx, "application-demo-001", domain.ApplicationPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, updated.Status)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(before.CreatedAt))
	assert.Len(t, updated.Comments, 1)

	reloaded, err := st.FindApplication(ctx, "application-demo-001")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, reloaded.Status)
}

func TestUpdateApplication_AppendComment(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, store.WithIDGenerator(func() string { return "42" }))

	current, err := st.FindApplication(ctx, "application-demo-001")
	require.NoError(t, err)

	comments := append(current.Comments, domain.Comment{
		AuthorRole: domain.RoleApplicant,
		Message:    "Nachweis folgt.",
	})
	updated, err := st.UpdateApplication(ctx, "application-demo-001", domain.ApplicationPatch{Comments: comments})
	require.NoError(t, err)

	require.Len(t, updated.Comments, 2)
	assert.Equal(t, "comment-001", updated.Comments[0].ID)
	assert.True(t, updated.Comments[0].CreatedAt.Equal(fixtures.AddMinutesToBaseline(120)))
	assert.Equal(t, "comment-42", updated.Comments[1].ID)
	assert.False(t, updated.Comments[1].CreatedAt.IsZero())

	reloaded, err := st.FindApplication(ctx, "application-demo-001")
	require.NoError(t, err)
	require.Len(t, reloaded.Comments, 2)
	assert.Equal(t, "Nachweis folgt.", reloaded.Comments[1].Message)
}

func TestUpdateApplication_RemovedCommentsAreDeleted(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	_, err := st.UpdateApplication(ctx, "application-demo-001", domain.ApplicationPatch{Comments: []domain.Comment{}})
	require.NoError(t, err)

	reloaded, err := st.FindApplication(ctx, "application-demo-001")
	require.NoError(t, err)
	assert.Empty(t, reloaded.Comments)

	// the id is free again and can be reused
	_, err = st.UpdateApplication(ctx, "application-demo-001", domain.ApplicationPatch{Comments: []domain.Comment{
		{ID: "comment-001", AuthorRole: domain.RoleOfficer, Message: "neu"},
	}})
	require.NoError(t, err)
}

func TestUpdateApplication_RejectsForeignCommentID(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	other, err := st.CreateApplication(ctx, domain.NewApplication{
		ApplicantName: "B", ApplicantEmail: "b@example.de", ProgramID: "program-energieeffizienz",
		Amount: 1000, Purpose: "Sanierung",
	})
	require.NoError(t, err)

	_, err = st.UpdateApplication(ctx, other.ID, domain.ApplicationPatch{Comments: []domain.Comment{
		{ID: "comment-001", AuthorRole: domain.RoleApplicant, Message: "stolen"},
	}})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// nothing was written
	reloaded, err := st.FindApplication(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Comments)
	assert.True(t, reloaded.UpdatedAt.Equal(other.UpdatedAt))
}

func TestUpdateApplication_NotFound(t *testing.T) {
	status := domain.StatusRejected
	st, _ := newTestStore(t)

	_, err := st.UpdateApplication(context.Background(), "missing", domain.ApplicationPatch{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorruptedStatusIsIntegrityError(t *testing.T) {
	ctx := context.Background()
	st, db := newTestStore(t)

	require.NoError(t, db.Exec("UPDATE applications SET status = ? WHERE id = ?", "archived", "application-demo-001").Error)

	_, err := st.ListApplications(ctx)
	var integrity *domain.IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "status", integrity.Field)
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCorruptedRoleIsIntegrityError(t *testing.T) {
	ctx := context.Background()
	st, db := newTestStore(t)

	require.NoError(t, db.Exec("UPDATE users SET role = ? WHERE id = ?", "admin", "user-alice").Error)

	_, err := st.Snapshot(ctx)
	var integrity *domain.IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "admin", integrity.Value)
}

func TestExport_IncludesPasswords(t *testing.T) {
	st, _ := newTestStore(t)

	dataset, err := st.Export(context.Background())
	require.NoError(t, err)
	require.NoError(t, dataset.Validate())

	for _, u := range dataset.Users {
		assert.Equal(t, "test123", u.Password)
	}
	require.Len(t, dataset.Applications, 1)
	assert.True(t, dataset.Applications[0].CreatedAt.Equal(fixtures.AddMinutesToBaseline(45)))
}

func TestWithDataset(t *testing.T) {
	d := fixtures.Default()
	d.Applications = nil
	st, _ := newTestStore(t, store.WithDataset(d))

	applications, err := st.ListApplications(context.Background())
	require.NoError(t, err)
	assert.Empty(t, applications)
}
