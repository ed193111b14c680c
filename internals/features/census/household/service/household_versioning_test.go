// file: internals/features/census/household/service/household_versioning_test.go
package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kariahku_backend/internals/features/census/household/dto"
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

func minimalRequest() dto.HouseholdRequest {
	return dto.HouseholdRequest{
		ApplicantName: "Ali bin Abu",
		Address:       "Kg Contoh",
		HousingStatus: "OWN",
	}
}

/* ==========================
   Penomboran versi
========================== */

// Versi baru sentiasa MAX sedia ada + 1 — tiada lompatan, tiada guna semula.
func TestInsertVersionTree_NomborSeterusnya(t *testing.T) {
	gdb, mock := newMockDB(t)
	householdID, createdBy, versionID := uuid.New(), uuid.New(), uuid.New()

	// tiga versi sedia ada → yang seterusnya mesti 4
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(household_version_number\), 0\) \+ 1`).
		WithArgs(householdID).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(4))
	mock.ExpectQuery(`INSERT INTO "household_versions"`).
		WillReturnRows(sqlmock.NewRows([]string{"household_version_id"}).AddRow(versionID.String()))
	mock.ExpectCommit()

	tx := gdb.Begin()
	v, err := insertVersionTree(tx, householdID, &createdBy, minimalRequest())
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	assert.Equal(t, 4, v.HouseholdVersionNumber)
	assert.Equal(t, versionID, v.HouseholdVersionID)
	assert.Equal(t, householdID, v.HouseholdVersionHouseholdID)
	// tiada UPDATE/DELETE terhadap versi lama — hanya INSERT yang dijangka
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Household baru tanpa versi: COALESCE jatuh ke 0 → versi pertama = 1.
func TestInsertVersionTree_VersiPertama(t *testing.T) {
	gdb, mock := newMockDB(t)
	householdID, versionID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(household_version_number\), 0\) \+ 1`).
		WithArgs(householdID).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "household_versions"`).
		WillReturnRows(sqlmock.NewRows([]string{"household_version_id"}).AddRow(versionID.String()))
	mock.ExpectCommit()

	tx := gdb.Begin()
	v, err := insertVersionTree(tx, householdID, nil, minimalRequest())
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	assert.Equal(t, 1, v.HouseholdVersionNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Tanggungan dapat row Person BARU setiap versi (snapshot, bukan reuse).
func TestInsertVersionTree_TanggunganRowBaru(t *testing.T) {
	gdb, mock := newMockDB(t)
	householdID, versionID := uuid.New(), uuid.New()
	personID, linkID := uuid.New(), uuid.New()

	req := minimalRequest()
	req.Dependents = []dto.DependentInput{{Name: "Siti binti Ali", Relationship: "Anak"}}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(household_version_number\), 0\) \+ 1`).
		WithArgs(householdID).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(2))
	mock.ExpectQuery(`INSERT INTO "household_versions"`).
		WillReturnRows(sqlmock.NewRows([]string{"household_version_id"}).AddRow(versionID.String()))
	mock.ExpectQuery(`INSERT INTO "persons"`).
		WillReturnRows(sqlmock.NewRows([]string{"person_id"}).AddRow(personID.String()))
	mock.ExpectQuery(`INSERT INTO "version_dependents"`).
		WillReturnRows(sqlmock.NewRows([]string{"version_dependent_id"}).AddRow(linkID.String()))
	mock.ExpectCommit()

	tx := gdb.Begin()
	v, err := insertVersionTree(tx, householdID, nil, req)
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	assert.Equal(t, 2, v.HouseholdVersionNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Alih penunjuk versi semasa menyentuh jadual households SAHAJA.
func TestRepointCurrentVersion(t *testing.T) {
	gdb, mock := newMockDB(t)
	householdID, versionID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "households" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx := gdb.Begin()
	require.NoError(t, repointCurrentVersion(tx, householdID, versionID))
	require.NoError(t, tx.Commit().Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ==========================
   Skop keunikan IC
========================== */

// Keunikan IC berskop SATU masjid — masjid lain bebas daftar IC sama.
func TestCheckIcExists_SkopSatuMasjid(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewHouseholdService(gdb)

	masjidA, masjidB := uuid.New(), uuid.New()
	ic := "800101-01-1234"

	mock.ExpectQuery(`SELECT count\(\*\) FROM households AS h`).
		WithArgs(masjidA, ic).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	exists, err := s.CheckIcExists(masjidA, ic, nil)
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(`SELECT count\(\*\) FROM households AS h`).
		WithArgs(masjidB, ic).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	exists, err = s.CheckIcExists(masjidB, ic, nil)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Saat edit, rekod sendiri dikecualikan dari probe.
func TestCheckIcExists_KecualiRekodSendiri(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewHouseholdService(gdb)

	masjidID, householdID := uuid.New(), uuid.New()
	ic := "800101-01-1234"

	mock.ExpectQuery(`SELECT count\(\*\) FROM households AS h`).
		WithArgs(masjidID, ic, householdID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := s.CheckIcExists(masjidID, ic, &householdID)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// IC kosong tidak pernah sampai ke DB.
func TestCheckIcExists_ICKosong(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewHouseholdService(gdb)

	exists, err := s.CheckIcExists(uuid.New(), "   ", nil)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ==========================
   Filter julat tanggungan
========================== */

func TestFindAll_JulatTanggungan(t *testing.T) {
	zero := 0

	t.Run("julat 0-0 tanpa padanan terus pulang kosong", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		s := NewHouseholdService(gdb)
		masjidID := uuid.New()

		mock.ExpectQuery(`SELECT h\.household_id`).
			WithArgs(masjidID, 0, 0).
			WillReturnRows(sqlmock.NewRows([]string{"household_id"}))

		items, total, err := s.FindAll(masjidID,
			dto.HouseholdFilter{DependentsMin: &zero, DependentsMax: &zero},
			helper.Paging{Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Zero(t, total)
		// tiada query lanjut selepas senarai id kosong
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("julat 0-0 padan household tanpa tanggungan", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		s := NewHouseholdService(gdb)
		masjidID, householdID := uuid.New(), uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT h\.household_id`).
			WithArgs(masjidID, 0, 0).
			WillReturnRows(sqlmock.NewRows([]string{"household_id"}).AddRow(householdID.String()))
		mock.ExpectQuery(`SELECT count\(\*\) FROM households AS h`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT h\.household_id, h\.household_created_at`).
			WillReturnRows(sqlmock.NewRows([]string{
				"household_id", "household_created_at", "household_updated_at",
				"household_version_number", "household_version_applicant_name",
				"household_version_applicant_ic", "household_version_applicant_phone",
				"household_version_kampung", "household_version_net_income",
				"household_version_housing_status", "dependents_count",
			}).AddRow(
				householdID.String(), now, now,
				1, "Ali bin Abu", nil, nil, nil, nil, "OWN", 0,
			))

		items, total, err := s.FindAll(masjidID,
			dto.HouseholdFilter{DependentsMin: &zero, DependentsMax: &zero},
			helper.Paging{Limit: 20})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, householdID, items[0].HouseholdID)
		assert.Equal(t, 0, items[0].DependentsCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
