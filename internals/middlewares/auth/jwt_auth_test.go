// file: internals/middlewares/auth/jwt_auth_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authService "kariahku_backend/internals/features/users/auth/service"
)

const testSecret = "secret-ujian"

func newGuardedApp(t *testing.T, extra ...fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthJWT(AuthJWTOpts{Secret: testSecret})}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/protected", handlers...)
	return app
}

func issueAccess(t *testing.T, role string, master bool) string {
	t.Helper()
	pair, err := authService.IssueTokenPair(authService.Principal{
		ID:       uuid.New(),
		Email:    "x@y.my",
		Role:     role,
		IsMaster: master,
	}, testSecret, testSecret+"-r", time.Minute, time.Hour)
	require.NoError(t, err)
	return pair.AccessToken
}

func doGet(t *testing.T, app *fiber.App, bearer string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthJWTMissingToken(t *testing.T) {
	app := newGuardedApp(t)
	resp := doGet(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTInvalidToken(t *testing.T) {
	app := newGuardedApp(t)
	resp := doGet(t, app, "bukan.token.sah")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTValidToken(t *testing.T) {
	app := newGuardedApp(t)
	resp := doGet(t, app, issueAccess(t, "ADMIN", false))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// refresh token tidak boleh dipakai sebagai access token
func TestAuthJWTRejectsRefreshToken(t *testing.T) {
	pair, err := authService.IssueTokenPair(authService.Principal{
		ID: uuid.New(), Email: "x@y.my", Role: "ADMIN",
	}, testSecret+"-x", testSecret, time.Minute, time.Hour)
	require.NoError(t, err)

	app := newGuardedApp(t)
	resp := doGet(t, app, pair.RefreshToken)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoles(t *testing.T) {
	app := newGuardedApp(t, RequireRoles("ADMIN", "PENGURUSAN"))

	t.Run("role dibenarkan", func(t *testing.T) {
		resp := doGet(t, app, issueAccess(t, "PENGURUSAN", false))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("role ditolak", func(t *testing.T) {
		resp := doGet(t, app, issueAccess(t, "IMAM", false))
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestRequireMaster(t *testing.T) {
	app := newGuardedApp(t, RequireMaster())

	resp := doGet(t, app, issueAccess(t, "SUPER_ADMIN", true))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doGet(t, app, issueAccess(t, "ADMIN", false))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
