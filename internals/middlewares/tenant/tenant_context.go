// file: internals/middlewares/tenant/tenant_context.go
package tenant

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "kariahku_backend/internals/helpers"
)

/* ==========================
   Consts & Types
========================== */

const (
	StatusActive = "ACTIVE"

	LocTenantName  = "tenant_name"
	LocTenantLogo  = "tenant_logo_url"
	LocTenantTheme = "tenant_theme"
)

type TenantContextOpts struct {
	DB *gorm.DB
	// Optional: route publik boleh lewat tanpa konteks tenant
	// (mis. /analytics/public); selain itu gagal 404.
	Optional bool
}

type tenantRow struct {
	TenantID uuid.UUID      `gorm:"column:tenant_id"`
	Slug     string         `gorm:"column:tenant_slug"`
	Name     string         `gorm:"column:tenant_name"`
	LogoURL  *string        `gorm:"column:tenant_logo_url"`
	Theme    datatypes.JSON `gorm:"column:tenant_theme"`
	Status   string         `gorm:"column:tenant_status"`
	MasjidID uuid.UUID      `gorm:"column:masjid_id"`
}

/* ==========================
   Helpers (host/strings)
========================== */

func normalizeHost(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	if h == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(h); err == nil {
		h = host
	}
	return h
}

func isLocalHostOrIP(h string) bool {
	if h == "localhost" || h == "localhost.localdomain" {
		return true
	}
	return net.ParseIP(h) != nil
}

// ExtractTenantSlug memetakan hostname → slug subdomain.
// Hos 3+ label ⇒ label pertama adalah slug; "www" dan hos 2 label ⇒
// konteks platform (tiada tenant). localhost/IP juga tiada tenant.
func ExtractTenantSlug(host string) string {
	h := normalizeHost(host)
	if h == "" || isLocalHostOrIP(h) {
		return ""
	}
	parts := strings.Split(h, ".")
	if len(parts) < 3 {
		return ""
	}
	if parts[0] == "www" {
		return ""
	}
	return parts[0]
}

// requestHost: utamakan X-Forwarded-Host (di belakang proxy), fallback Host.
func requestHost(c *fiber.Ctx) string {
	if fh := strings.TrimSpace(c.Get("X-Forwarded-Host")); fh != "" {
		// boleh jadi senarai "a, b" — ambil yang pertama
		if i := strings.IndexByte(fh, ','); i >= 0 {
			fh = fh[:i]
		}
		return fh
	}
	return c.Hostname()
}

/* ==========================
   Middleware
========================== */

// TenantContext resolve tenant dari slug (header/query/subdomain) lalu
// lampirkan {tenant_id, slug, name, branding, masjid_id} ke locals.
// Satu lookup DB per request — tiada lapisan cache.
func TenantContext(o TenantContextOpts) fiber.Handler {
	if o.DB == nil {
		panic("TenantContext: DB wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Override eksplisit (header/query) — kemudahan dev & testing
		slug := strings.TrimSpace(c.Get("X-Tenant-Slug"))
		if slug == "" {
			slug = strings.TrimSpace(c.Query("tenant"))
		}

		// 2) Subdomain dari host
		if slug == "" {
			slug = ExtractTenantSlug(requestHost(c))
		}

		if slug == "" {
			if o.Optional {
				return c.Next()
			}
			return helper.JsonError(c, fiber.StatusNotFound, "Tenant tidak ditemukan dari konteks")
		}

		var row tenantRow
		err := o.DB.Raw(`
			SELECT t.tenant_id, t.tenant_slug, t.tenant_name, t.tenant_logo_url,
			       t.tenant_theme, t.tenant_status, m.masjid_id
			FROM tenants t
			LEFT JOIN masjids m ON m.masjid_tenant_id = t.tenant_id
			WHERE LOWER(t.tenant_slug) = LOWER(?)
			LIMIT 1
		`, slug).Scan(&row).Error
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Ralat dalaman pelayan")
		}

		if row.TenantID == uuid.Nil || row.Status != StatusActive || row.MasjidID == uuid.Nil {
			if o.Optional {
				return c.Next()
			}
			return helper.JsonError(c, fiber.StatusNotFound, "Tenant tidak ditemukan atau tidak aktif")
		}

		c.Locals(helper.LocTenantID, row.TenantID)
		c.Locals(helper.LocTenantSlug, row.Slug)
		c.Locals(helper.LocMasjidID, row.MasjidID)
		c.Locals(LocTenantName, row.Name)
		if row.LogoURL != nil {
			c.Locals(LocTenantLogo, *row.LogoURL)
		}
		if len(row.Theme) > 0 {
			c.Locals(LocTenantTheme, row.Theme)
		}

		return c.Next()
	}
}
