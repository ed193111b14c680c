// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-ujian"
	testRefreshSecret = "refresh-secret-ujian"
)

func testPrincipal() Principal {
	return Principal{
		ID:    uuid.New(),
		Email: "admin@al-hidayah.my",
		Role:  "ADMIN",
	}
}

func TestIssueTokenPairAndParseRefresh(t *testing.T) {
	p := testPrincipal()

	pair, err := IssueTokenPair(p, testAccessSecret, testRefreshSecret, 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))

	rc, err := ParseRefreshToken(pair.RefreshToken, testRefreshSecret)
	require.NoError(t, err)
	assert.Equal(t, p.ID, rc.SubjectID)
	assert.False(t, rc.IsMaster)
}

func TestParseRefreshRejectsAccessToken(t *testing.T) {
	p := testPrincipal()
	pair, err := IssueTokenPair(p, testAccessSecret, testAccessSecret, time.Minute, time.Minute)
	require.NoError(t, err)

	// access token ditandatangani secret yang sama — mesti ditolak kerana typ
	_, err = ParseRefreshToken(pair.AccessToken, testAccessSecret)
	assert.Error(t, err)
}

func TestParseRefreshRejectsWrongSecret(t *testing.T) {
	pair, err := IssueTokenPair(testPrincipal(), testAccessSecret, testRefreshSecret, time.Minute, time.Minute)
	require.NoError(t, err)

	_, err = ParseRefreshToken(pair.RefreshToken, "secret-lain")
	assert.Error(t, err)
}

func TestParseRefreshRejectsExpired(t *testing.T) {
	pair, err := IssueTokenPair(testPrincipal(), testAccessSecret, testRefreshSecret, time.Minute, -time.Minute)
	require.NoError(t, err)

	_, err = ParseRefreshToken(pair.RefreshToken, testRefreshSecret)
	assert.Error(t, err)
}

func TestParseRefreshRejectsEmpty(t *testing.T) {
	_, err := ParseRefreshToken("   ", testRefreshSecret)
	assert.Error(t, err)
}

func TestIsMasterClaimPropagates(t *testing.T) {
	p := testPrincipal()
	p.IsMaster = true

	pair, err := IssueTokenPair(p, testAccessSecret, testRefreshSecret, time.Minute, time.Hour)
	require.NoError(t, err)

	rc, err := ParseRefreshToken(pair.RefreshToken, testRefreshSecret)
	require.NoError(t, err)
	assert.True(t, rc.IsMaster)
}
