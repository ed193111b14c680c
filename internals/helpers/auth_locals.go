// file: internals/helpers/auth_locals.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci locals yang dihydrate oleh middleware auth & tenant.
const (
	LocUserID     = "user_id"
	LocUserEmail  = "user_email"
	LocUserRole   = "user_role"
	LocIsMaster   = "is_master"
	LocTenantID   = "tenant_id"
	LocTenantSlug = "tenant_slug"
	LocMasjidID   = "masjid_id"
)

func localsUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	switch v := c.Locals(key).(type) {
	case uuid.UUID:
		if v != uuid.Nil {
			return v, nil
		}
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(v)); err == nil {
			return id, nil
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Konteks tidak sah")
}

// GetUserID: id principal daripada token (user atau master admin).
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, LocUserID)
}

func GetUserRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserRole).(string); ok {
		return s
	}
	return ""
}

func IsMaster(c *fiber.Ctx) bool {
	b, _ := c.Locals(LocIsMaster).(bool)
	return b
}

// GetMasjidID: masjid aktif daripada konteks tenant (diset oleh TenantContext).
func GetMasjidID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := localsUUID(c, LocMasjidID)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Tenant tidak ditemukan dari konteks")
	}
	return id, nil
}

func GetTenantID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := localsUUID(c, LocTenantID)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Tenant tidak ditemukan dari konteks")
	}
	return id, nil
}
