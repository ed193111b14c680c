// file: internals/features/users/auth/service/auth_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func hashedCred(t *testing.T, password string, active bool) Credential {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return Credential{
		Principal:    Principal{ID: uuid.New(), Email: "staf@contoh.my", Role: "PENGURUSAN"},
		PasswordHash: hash,
		Active:       active,
	}
}

func fixedLookup(cred Credential, err error) CredentialLookup {
	return func(_ *gorm.DB, _ string) (Credential, error) {
		return cred, err
	}
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
	assert.Equal(t, MsgInvalidCredentials, fe.Message)
}

func TestLoginSuccess(t *testing.T) {
	cred := hashedCred(t, "rahsia-kuat", true)

	p, err := Login(nil, fixedLookup(cred, nil), "Staf@Contoh.MY ", "rahsia-kuat")
	require.NoError(t, err)
	assert.Equal(t, cred.Principal.ID, p.ID)
}

// tiga kes gagal mesti pulangkan mesej seragam yang sama
func TestLoginUniformFailureMessage(t *testing.T) {
	cred := hashedCred(t, "rahsia-kuat", true)

	t.Run("akaun tiada", func(t *testing.T) {
		_, err := Login(nil, fixedLookup(Credential{}, gorm.ErrRecordNotFound), "x@y.my", "apa-apa")
		assertUnauthorized(t, err)
	})

	t.Run("akaun tidak aktif", func(t *testing.T) {
		inactive := cred
		inactive.Active = false
		_, err := Login(nil, fixedLookup(inactive, nil), "staf@contoh.my", "rahsia-kuat")
		assertUnauthorized(t, err)
	})

	t.Run("password salah", func(t *testing.T) {
		_, err := Login(nil, fixedLookup(cred, nil), "staf@contoh.my", "salah")
		assertUnauthorized(t, err)
	})
}

func TestRefreshRejectsNonMasterInMasterDomain(t *testing.T) {
	cred := hashedCred(t, "x", true)
	pair, err := IssueTokenPair(cred.Principal, testAccessSecret, testRefreshSecret, time.Minute, time.Hour)
	require.NoError(t, err)

	byID := func(_ *gorm.DB, _ uuid.UUID) (Credential, error) { return cred, nil }

	// domain tenant: OK
	_, err = Refresh(nil, pair.RefreshToken, testRefreshSecret, byID, false)
	assert.NoError(t, err)

	// domain master: token tanpa is_master ditolak
	_, err = Refresh(nil, pair.RefreshToken, testRefreshSecret, byID, true)
	assert.Error(t, err)
}

func TestRefreshRejectsInactiveAccount(t *testing.T) {
	cred := hashedCred(t, "x", false)
	pair, err := IssueTokenPair(cred.Principal, testAccessSecret, testRefreshSecret, time.Minute, time.Hour)
	require.NoError(t, err)

	byID := func(_ *gorm.DB, _ uuid.UUID) (Credential, error) { return cred, nil }

	_, err = Refresh(nil, pair.RefreshToken, testRefreshSecret, byID, false)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, "Akaun telah dinyahaktifkan", fe.Message)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("kata-laluan")
	require.NoError(t, err)

	assert.NoError(t, CheckPasswordHash(hash, "kata-laluan"))
	assert.Error(t, CheckPasswordHash(hash, "lain"))
}
