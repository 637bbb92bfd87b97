package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/qanda/backend/internal/models"
)

func TestNormalizeTag(t *testing.T) {
	name, err := NormalizeTag("  java  ")
	require.NoError(t, err)
	assert.Equal(t, "java", name)

	// Case is preserved, not folded.
	name, err = NormalizeTag("PostgreSQL")
	require.NoError(t, err)
	assert.Equal(t, "PostgreSQL", name)
}

func TestNormalizeTag_Blank(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeTag(raw)

		var validation *models.ValidationError
		require.ErrorAs(t, err, &validation, "input %q", raw)
		assert.Equal(t, "tag", validation.Field)
	}
}

func TestNormalizeTagSet(t *testing.T) {
	names, err := normalizeTagSet([]string{" java ", "sql", "java", "  sql"})
	require.NoError(t, err)
	assert.Equal(t, []string{"java", "sql"}, names)
}

func TestNormalizeTagSet_Empty(t *testing.T) {
	names, err := normalizeTagSet(nil)
	require.NoError(t, err)
	assert.Nil(t, names)
}

func TestNormalizeTagSet_RejectsBlankMember(t *testing.T) {
	_, err := normalizeTagSet([]string{"java", "  "})

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
}
