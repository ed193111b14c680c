// file: internals/helpers/slug.go
package helper

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashes  = regexp.MustCompile(`-{2,}`)
)

// GenerateSlug: normalisasi nama menjadi slug DNS-safe (subdomain tenant).
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 63 {
		s = strings.Trim(s[:63], "-")
	}
	return s
}

// IsValidSlug: slug mesti patuh label DNS (huruf kecil, digit, sengkang).
func IsValidSlug(s string) bool {
	if s == "" || len(s) > 63 {
		return false
	}
	return GenerateSlug(s) == s
}
