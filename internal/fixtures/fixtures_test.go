package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"mini-foerderportal/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	d := Default()

	require.NoError(t, d.Validate())
	assert.Len(t, d.Users, 2)
	assert.Len(t, d.Programs, 3)
	require.Len(t, d.Applications, 1)

	app := d.Applications[0]
	assert.Equal(t, domain.StatusReview, app.Status)
	assert.Equal(t, AddMinutesToBaseline(45), app.CreatedAt)
	assert.Equal(t, AddMinutesToBaseline(120), app.UpdatedAt)
	require.Len(t, app.Comments, 1)
	assert.Equal(t, "comment-001", app.Comments[0].ID)
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Programs[0].Tags[0] = "changed"
	a.Applications[0].Comments[0].Message = "changed"

	b := Default()
	assert.Equal(t, "wohnen", b.Programs[0].Tags[0])
	assert.NotEqual(t, "changed", b.Applications[0].Comments[0].Message)
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mocks", "db.json")

	require.NoError(t, Write(path, Default()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"applications"`)
	assert.Equal(t, byte('\n'), raw[len(raw)-1])

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}

func TestLoad_RejectsUnknownEnums(t *testing.T) {
	d := Default()
	d.Users[0].Role = "admin"
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, Write(path, d))

	_, err := Load(path)
	var integrity *domain.IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "admin", integrity.Value)
}

func TestValidate_DuplicateIDs(t *testing.T) {
	d := Default()
	d.Programs = append(d.Programs, d.Programs[0])

	assert.Error(t, d.Validate())
}
