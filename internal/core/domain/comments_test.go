package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mergeNow = time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "generated-" + string(rune('0'+n))
	}
}

func TestMergeComments_AppendKeepsExisting(t *testing.T) {
	created := mergeNow.Add(-time.Hour)
	current := []Comment{{ID: "c1", AuthorRole: RoleOfficer, Message: "first", CreatedAt: created}}
	incoming := []Comment{
		{ID: "c1", AuthorRole: RoleOfficer, Message: "first"},
		{AuthorRole: RoleApplicant, Message: "reply"},
	}

	merged := MergeComments(current, incoming, sequentialIDs(), mergeNow)

	require.Len(t, merged.Comments, 2)
	assert.Equal(t, "c1", merged.Comments[0].ID)
	assert.Equal(t, created, merged.Comments[0].CreatedAt)
	assert.Equal(t, "generated-1", merged.Comments[1].ID)
	assert.Equal(t, mergeNow, merged.Comments[1].CreatedAt)
	assert.Equal(t, []string{"c1"}, merged.Updated)
	assert.Equal(t, []string{"generated-1"}, merged.Inserted)
	assert.Empty(t, merged.Removed)
}

func TestMergeComments_IncomingOrderWins(t *testing.T) {
	current := []Comment{
		{ID: "a", Message: "a"},
		{ID: "b", Message: "b"},
	}
	incoming := []Comment{
		{ID: "b", Message: "b2"},
		{ID: "a", Message: "a"},
	}

	merged := MergeComments(current, incoming, sequentialIDs(), mergeNow)

	require.Len(t, merged.Comments, 2)
	assert.Equal(t, "b", merged.Comments[0].ID)
	assert.Equal(t, "b2", merged.Comments[0].Message)
	assert.Equal(t, "a", merged.Comments[1].ID)
}

func TestMergeComments_ReportsRemoved(t *testing.T) {
	current := []Comment{{ID: "a"}, {ID: "b"}}
	incoming := []Comment{{ID: "b", Message: "kept"}}

	merged := MergeComments(current, incoming, sequentialIDs(), mergeNow)

	assert.Equal(t, []string{"a"}, merged.Removed)
	require.Len(t, merged.Comments, 1)
	assert.Equal(t, "b", merged.Comments[0].ID)
}

func TestMergeComments_DuplicateIDsKeepFirstPositionLastContent(t *testing.T) {
	incoming := []Comment{
		{ID: "x", Message: "one"},
		{ID: "y", Message: "two"},
		{ID: "x", Message: "three"},
	}

	merged := MergeComments(nil, incoming, sequentialIDs(), mergeNow)

	require.Len(t, merged.Comments, 2)
	assert.Equal(t, "x", merged.Comments[0].ID)
	assert.Equal(t, "three", merged.Comments[0].Message)
	assert.Equal(t, "y", merged.Comments[1].ID)
	assert.Equal(t, []string{"x", "y"}, merged.Inserted)
}

func TestMergeComments_EmptyIncomingClears(t *testing.T) {
	merged := MergeComments([]Comment{{ID: "a"}}, []Comment{}, sequentialIDs(), mergeNow)

	assert.NotNil(t, merged.Comments)
	assert.Empty(t, merged.Comments)
	assert.Equal(t, []string{"a"}, merged.Removed)
}

func TestParseEnums(t *testing.T) {
	role, err := ParseRole("officer")
	require.NoError(t, err)
	assert.Equal(t, RoleOfficer, role)

	_, err = ParseRole("admin")
	var integrity *IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "role", integrity.Field)

	status, err := ParseApplicationStatus("approved")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, status)
	assert.Equal(t, "VORLÄUFIG GENEHMIGT", status.Label())

	_, err = ParseApplicationStatus("archived")
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "archived", integrity.Value)
}

func TestValidationErrorsMatchInvalidInput(t *testing.T) {
	assert.True(t, errors.Is(&ValidationError{Field: "amount", Message: "x"}, ErrInvalidInput))
	assert.True(t, errors.Is(FieldErrors{"amount": "x"}, ErrInvalidInput))
	assert.False(t, errors.Is(&IntegrityError{}, ErrInvalidInput))
	assert.Equal(t, "invalid input: a: 1; b: 2", FieldErrors{"b": "2", "a": "1"}.Error())
}
