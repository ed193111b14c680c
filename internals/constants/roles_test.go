// file: internals/constants/roles_test.go
package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTenantRole(t *testing.T) {
	for _, r := range AllTenantRoles {
		assert.True(t, IsValidTenantRole(r))
	}
	assert.False(t, IsValidTenantRole("SUPER_ADMIN"))
	assert.False(t, IsValidTenantRole("admin")) // case-sensitive
	assert.False(t, IsValidTenantRole(""))
}

func TestIsValidMasterRole(t *testing.T) {
	for _, r := range AllMasterRoles {
		assert.True(t, IsValidMasterRole(r))
	}
	assert.False(t, IsValidMasterRole("ADMIN"))
}

func TestIsReservedSlug(t *testing.T) {
	assert.True(t, IsReservedSlug("www"))
	assert.True(t, IsReservedSlug("MASTER"))
	assert.True(t, IsReservedSlug("  api  "))
	assert.False(t, IsReservedSlug("al-hidayah"))
	assert.False(t, IsReservedSlug(""))
}
