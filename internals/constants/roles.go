package constants

import "strings"

// ==========================
// Role peringkat kariah (tenant)
// ==========================
const (
	RoleAdmin      = "ADMIN"
	RoleImam       = "IMAM"
	RolePengurusan = "PENGURUSAN"
)

// ==========================
// Role peringkat platform (master)
// ==========================
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleSupport    = "SUPPORT"
)

var (
	AllTenantRoles = []string{RoleAdmin, RoleImam, RolePengurusan}
	AllMasterRoles = []string{RoleSuperAdmin, RoleSupport}
)

func IsValidTenantRole(role string) bool {
	for _, r := range AllTenantRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsValidMasterRole(role string) bool {
	for _, r := range AllMasterRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ==========================
// Slug subdomain terpelihara
// ==========================

// slug yang tidak boleh dipakai tenant (route platform & subdomain umum)
var ReservedSlugs = []string{
	"www", "api", "app", "admin", "master", "auth",
	"mail", "smtp", "ftp", "static", "assets", "cdn",
	"health", "status", "dev", "staging", "test",
}

func IsReservedSlug(slug string) bool {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, s := range ReservedSlugs {
		if s == slug {
			return true
		}
	}
	return false
}
