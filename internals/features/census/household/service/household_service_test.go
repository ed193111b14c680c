// file: internals/features/census/household/service/household_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIC(t *testing.T) {
	assert.Nil(t, NormalizeIC(nil))

	empty := "   "
	assert.Nil(t, NormalizeIC(&empty))

	raw := " 800101-01-1234 "
	got := NormalizeIC(&raw)
	require.NotNil(t, got)
	assert.Equal(t, "800101-01-1234", *got)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.True(t, isUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uq_household_versions_number" (SQLSTATE 23505)`)))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed")))
}

func TestHouseholdSortColumnsWhitelisted(t *testing.T) {
	// semua nilai whitelist mesti kolom berprefix alias, bukan input user
	for key, col := range householdSortColumns {
		assert.NotEmpty(t, key)
		assert.Contains(t, col, ".")
	}
	_, ok := householdSortColumns["created_at"]
	assert.True(t, ok)
}
