// file: internals/helpers/slug_test.go
package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Masjid Al-Hidayah", "masjid-al-hidayah"},
		{"  Kariah   Kampung  Baru  ", "kariah-kampung-baru"},
		{"UPPER case", "upper-case"},
		{"simbol!@#pelik", "simbolpelik"},
		{"--sengkang--berganda--", "sengkang-berganda"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), tc.in)
	}
}

func TestGenerateSlugTruncates(t *testing.T) {
	long := strings.Repeat("a", 100)
	got := GenerateSlug(long)
	assert.LessOrEqual(t, len(got), 63)
	assert.True(t, IsValidSlug(got))
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("al-hidayah"))
	assert.True(t, IsValidSlug("kariah123"))
	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("Huruf-Besar"))
	assert.False(t, IsValidSlug("ada spasi"))
	assert.False(t, IsValidSlug(strings.Repeat("x", 64)))
}
