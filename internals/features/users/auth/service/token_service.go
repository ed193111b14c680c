package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

/* ==========================
   Principal & TokenPair
========================== */

// Principal: bentuk claim generik untuk kedua-dua jenis akaun
// (User tenant & MasterAdmin platform) — satu jalur penerbitan token.
type Principal struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsMaster bool      `json:"is_master,omitempty"`
}

type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

/* ==========================
   Issue & Parse
========================== */

func buildAccessClaims(p Principal, now time.Time, ttl time.Duration) jwt.MapClaims {
	claims := jwt.MapClaims{
		"typ":   "access",
		"sub":   p.ID.String(),
		"email": p.Email,
		"role":  p.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	if p.IsMaster {
		claims["is_master"] = true
	}
	return claims
}

func buildRefreshClaims(p Principal, now time.Time, ttl time.Duration) jwt.MapClaims {
	claims := jwt.MapClaims{
		"typ": "refresh",
		"sub": p.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if p.IsMaster {
		claims["is_master"] = true
	}
	return claims
}

// IssueTokenPair menandatangani pasangan access+refresh untuk satu principal.
// Refresh dirotasi setiap guna — pemanggil wajib keluarkan pasangan baru.
func IssueTokenPair(p Principal, accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) (TokenPair, error) {
	now := time.Now().UTC()

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(p, now, accessTTL)).
		SignedString([]byte(accessSecret))
	if err != nil {
		return TokenPair{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(p, now, refreshTTL)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return TokenPair{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	return TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  now.Add(accessTTL),
		RefreshExpiresAt: now.Add(refreshTTL),
	}, nil
}

// RefreshClaims: hasil verifikasi refresh token (sebelum re-fetch principal).
type RefreshClaims struct {
	SubjectID uuid.UUID
	IsMaster  bool
}

// ParseRefreshToken: verifikasi tandatangan + expiry + typ=refresh.
func ParseRefreshToken(raw, refreshSecret string) (RefreshClaims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RefreshClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak sah")
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return RefreshClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak sah")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return RefreshClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak sah")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return RefreshClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak sah")
	}

	sub, _ := claims["sub"].(string)
	id, perr := uuid.Parse(strings.TrimSpace(sub))
	if perr != nil {
		return RefreshClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak sah")
	}

	out := RefreshClaims{SubjectID: id}
	if b, ok := claims["is_master"].(bool); ok {
		out.IsMaster = b
	}
	return out, nil
}
