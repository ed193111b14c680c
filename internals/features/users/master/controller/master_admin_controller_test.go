// file: internals/features/users/master/controller/master_admin_controller_test.go
package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	helper "kariahku_backend/internals/helpers"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

var masterAdminCols = []string{
	"master_admin_id", "master_admin_email", "master_admin_password",
	"master_admin_full_name", "master_admin_role", "master_admin_is_active",
	"master_admin_created_at", "master_admin_updated_at",
}

func activeSuperRow(adminID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(masterAdminCols).AddRow(
		adminID.String(), "super@kariahku.my", "$2a$10$hash",
		"Super Utama", "SUPER_ADMIN", true, now, now,
	)
}

// Nyahaktif SUPER_ADMIN aktif terakhir → Forbidden, bukan Conflict.
func TestUpdate_SuperAdminTerakhirForbidden(t *testing.T) {
	gdb, mock := newMockDB(t)
	mc := NewMasterAdminController(gdb)

	app := fiber.New()
	app.Put("/master/admins/:id", mc.Update)

	adminID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "master_admins"`).
		WillReturnRows(activeSuperRow(adminID))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "master_admins"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	req := httptest.NewRequest("PUT", "/master/admins/"+adminID.String(),
		strings.NewReader(`{"master_admin_is_active": false}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), msgLastSuperAdmin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_SuperAdminTerakhirForbidden(t *testing.T) {
	gdb, mock := newMockDB(t)
	mc := NewMasterAdminController(gdb)

	actorID := uuid.New()
	app := fiber.New()
	app.Delete("/master/admins/:id", func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, actorID.String())
		return c.Next()
	}, mc.Delete)

	adminID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "master_admins"`).
		WillReturnRows(activeSuperRow(adminID))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "master_admins"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	req := httptest.NewRequest("DELETE", "/master/admins/"+adminID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_DiriSendiriForbidden(t *testing.T) {
	gdb, _ := newMockDB(t)
	mc := NewMasterAdminController(gdb)

	actorID := uuid.New()
	app := fiber.New()
	app.Delete("/master/admins/:id", func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, actorID.String())
		return c.Next()
	}, mc.Delete)

	req := httptest.NewRequest("DELETE", "/master/admins/"+actorID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
