// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)

	// input tak sah dinormalisasi
	weird := BuildPaginationFromPage(10, 0, 0)
	assert.Equal(t, 1, weird.Page)
	assert.Equal(t, 20, weird.PerPage)
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "h.household_created_at",
		"name":       "hv.household_version_applicant_name",
	}

	got, err := SafeOrderClause(allowed, "name", "asc", "created_at")
	require.NoError(t, err)
	assert.Equal(t, "hv.household_version_applicant_name ASC", got)

	// kolom di luar whitelist jatuh ke default, arah default DESC
	got, err = SafeOrderClause(allowed, "user_password; DROP TABLE users", "", "created_at")
	require.NoError(t, err)
	assert.Equal(t, "h.household_created_at DESC", got)

	_, err = SafeOrderClause(map[string]string{}, "x", "asc", "y")
	assert.Error(t, err)
}
