// file: internals/middlewares/tenant/tenant_context_test.go
package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTenantSlug(t *testing.T) {
	cases := []struct {
		name string
		host string
		want string
	}{
		{"subdomain tenant", "al-hidayah.kariahku.my", "al-hidayah"},
		{"subdomain dengan port", "al-hidayah.kariahku.my:3000", "al-hidayah"},
		{"huruf besar dinormalisasi", "Al-Hidayah.Kariahku.MY", "al-hidayah"},
		{"www bukan tenant", "www.kariahku.my", ""},
		{"root domain 2 label", "kariahku.my", ""},
		{"localhost", "localhost", ""},
		{"localhost dengan port", "localhost:3000", ""},
		{"alamat IP", "192.168.1.10", ""},
		{"IP dengan port", "192.168.1.10:8080", ""},
		{"kosong", "", ""},
		{"subdomain dalam", "a.b.kariahku.my", "a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractTenantSlug(tc.host))
		})
	}
}

func TestNormalizeHost(t *testing.T) {
	assert.Equal(t, "contoh.kariahku.my", normalizeHost(" Contoh.Kariahku.MY:8080 "))
	assert.Equal(t, "", normalizeHost("   "))
}
