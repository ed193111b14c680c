// file: internals/features/users/user/service/user_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kariahku_backend/internals/features/users/user/dto"
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

var userCols = []string{
	"user_id", "user_masjid_id", "user_email", "user_password",
	"user_full_name", "user_role", "user_is_active",
	"user_created_at", "user_updated_at",
}

func activeAdminRow(userID, masjidID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userCols).AddRow(
		userID.String(), masjidID.String(), "admin@contoh.my", "$2a$10$hash",
		"Admin Utama", "ADMIN", true, now, now,
	)
}

func countRow(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

// Nyahaktif ADMIN aktif terakhir mesti ditolak dengan Forbidden.
func TestUpdate_AdminAktifTerakhirForbidden(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserService(gdb)

	masjidID, userID := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_id`).
		WillReturnRows(activeAdminRow(userID, masjidID))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(countRow(0))

	inactive := false
	_, err := s.Update(masjidID, userID, dto.UpdateUserRequest{UserIsActive: &inactive})

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.Equal(t, MsgLastAdminGuard, fe.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Turun role ADMIN terakhir ke PENGURUSAN pun kena guard yang sama.
func TestUpdate_TurunRoleAdminTerakhirForbidden(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserService(gdb)

	masjidID, userID := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_id`).
		WillReturnRows(activeAdminRow(userID, masjidID))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(countRow(0))

	role := "PENGURUSAN"
	_, err := s.Update(masjidID, userID, dto.UpdateUserRequest{UserRole: &role})

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_AdminAktifTerakhirForbidden(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserService(gdb)

	masjidID, userID, actorID := uuid.New(), uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_id`).
		WillReturnRows(activeAdminRow(userID, masjidID))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(countRow(0))

	err := s.Delete(masjidID, userID, actorID)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.Equal(t, MsgLastAdminGuard, fe.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Masih ada ADMIN aktif lain → padam dibenarkan.
func TestDelete_AdaAdminLainDibenarkan(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserService(gdb)

	masjidID, userID, actorID := uuid.New(), uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_id`).
		WillReturnRows(activeAdminRow(userID, masjidID))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(countRow(1))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Delete(masjidID, userID, actorID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_DiriSendiriForbidden(t *testing.T) {
	gdb, _ := newMockDB(t)
	s := NewUserService(gdb)

	masjidID, userID := uuid.New(), uuid.New()
	err := s.Delete(masjidID, userID, userID)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}
