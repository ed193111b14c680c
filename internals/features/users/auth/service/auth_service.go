package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==========================
   Generic principal auth
========================== */

// Pesan ralat login sengaja seragam untuk tiga kes (akaun tiada,
// tidak aktif, password salah) — elak user enumeration.
const MsgInvalidCredentials = "E-mel atau kata laluan salah"

// Credential: hasil lookup by email untuk satu jenis principal.
type Credential struct {
	Principal    Principal
	PasswordHash string
	Active       bool
}

// CredentialLookup: cari principal by email. Pulangkan gorm.ErrRecordNotFound
// jika tiada — Login akan seragamkan jadi Unauthorized.
type CredentialLookup func(db *gorm.DB, email string) (Credential, error)

// PrincipalLookup: re-fetch principal by id (refresh & me).
type PrincipalLookup func(db *gorm.DB, id uuid.UUID) (Credential, error)

// Login: flow tunggal untuk User tenant dan MasterAdmin — beza hanya
// pada fungsi lookup yang disuntik.
func Login(db *gorm.DB, lookup CredentialLookup, email, password string) (Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	cred, err := lookup(db, email)
	if err != nil {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, MsgInvalidCredentials)
	}
	if !cred.Active {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, MsgInvalidCredentials)
	}
	if err := CheckPasswordHash(cred.PasswordHash, password); err != nil {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, MsgInvalidCredentials)
	}
	return cred.Principal, nil
}

// Refresh: verifikasi refresh token, re-fetch principal, tolak jika tidak
// aktif atau (untuk domain master) claim is_master tiada. Pasangan token
// baru diterbitkan oleh pemanggil — refresh dirotasi setiap guna.
func Refresh(db *gorm.DB, raw, refreshSecret string, byID PrincipalLookup, wantMaster bool) (Principal, error) {
	rc, err := ParseRefreshToken(raw, refreshSecret)
	if err != nil {
		return Principal{}, err
	}
	if wantMaster && !rc.IsMaster {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak sah")
	}

	cred, err := byID(db, rc.SubjectID)
	if err != nil {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak sah")
	}
	if !cred.Active {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Akaun telah dinyahaktifkan")
	}
	return cred.Principal, nil
}
