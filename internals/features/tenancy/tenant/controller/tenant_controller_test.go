// file: internals/features/tenancy/tenant/controller/tenant_controller_test.go
package controller

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Slug terpelihara ditolak awal (sebelum sentuh DB) sebagai BadRequest —
// Conflict dikhaskan untuk slug yang sudah diambil tenant lain.
func TestCreate_SlugTerpeliharaBadRequest(t *testing.T) {
	tc := NewTenantController(nil)
	app := fiber.New()
	app.Post("/master/tenants", tc.Create)

	for _, slug := range []string{"admin", "www", "api", "master"} {
		t.Run(slug, func(t *testing.T) {
			body := fmt.Sprintf(
				`{"tenant_slug":%q,"tenant_name":"Kariah Contoh","masjid_name":"Masjid Contoh"}`,
				slug,
			)
			req := httptest.NewRequest("POST", "/master/tenants", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			raw, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(raw), "dikhaskan untuk sistem")
		})
	}
}

func TestCreate_SlugTidakSahBadRequest(t *testing.T) {
	tc := NewTenantController(nil)
	app := fiber.New()
	app.Post("/master/tenants", tc.Create)

	// selepas normalisasi slug jadi kosong → tidak sah
	body := `{"tenant_slug":"!!","tenant_name":"Kariah Contoh","masjid_name":"Masjid Contoh"}`
	req := httptest.NewRequest("POST", "/master/tenants", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
