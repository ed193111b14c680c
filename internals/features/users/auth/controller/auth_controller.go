// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kariahku_backend/internals/configs"
	authDTO "kariahku_backend/internals/features/users/auth/dto"
	authService "kariahku_backend/internals/features/users/auth/service"
	userModel "kariahku_backend/internals/features/users/user/model"
	helper "kariahku_backend/internals/helpers"
)

// AuthController: login/refresh/me untuk User tenant. Flow generik
// di service — controller cuma suntik lookup skop masjid.
type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ==========================
   Lookup adapters (User)
========================== */

func userToPrincipal(u userModel.UserModel) authService.Principal {
	return authService.Principal{
		ID:    u.UserID,
		Email: u.UserEmail,
		Role:  u.UserRole,
	}
}

// Login pada subdomain tenant hanya sah untuk user masjid tenant itu.
func userByEmailInMasjid(masjidID uuid.UUID) authService.CredentialLookup {
	return func(db *gorm.DB, email string) (authService.Credential, error) {
		var u userModel.UserModel
		if err := db.
			Where("LOWER(user_email) = ? AND user_masjid_id = ?", email, masjidID).
			First(&u).Error; err != nil {
			return authService.Credential{}, err
		}
		return authService.Credential{
			Principal:    userToPrincipal(u),
			PasswordHash: u.UserPassword,
			Active:       u.UserIsActive,
		}, nil
	}
}

func userByIDInMasjid(masjidID uuid.UUID) authService.PrincipalLookup {
	return func(db *gorm.DB, id uuid.UUID) (authService.Credential, error) {
		var u userModel.UserModel
		if err := db.
			Where("user_id = ? AND user_masjid_id = ?", id, masjidID).
			First(&u).Error; err != nil {
			return authService.Credential{}, err
		}
		return authService.Credential{
			Principal:    userToPrincipal(u),
			PasswordHash: u.UserPassword,
			Active:       u.UserIsActive,
		}, nil
	}
}

/* ==========================
   Handlers
========================== */

// POST /auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	p, err := authService.Login(ac.DB, userByEmailInMasjid(masjidID), req.Email, req.Password)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	return issueAndRespond(c, p, "Log masuk berjaya")
}

// POST /auth/refresh — refresh dirotasi setiap guna
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	raw := refreshTokenFromRequest(c)
	p, err := authService.Refresh(ac.DB, raw, configs.JWTRefreshSecret, userByIDInMasjid(masjidID), false)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	return issueAndRespond(c, p, "Token diperbaharui")
}

// GET /auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var u userModel.UserModel
	if err := ac.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akaun tidak ditemukan")
	}
	// UserPassword bertanda json:"-" — tidak pernah keluar
	return helper.JsonOK(c, "ok", u)
}

/* ==========================
   Shared (tenant & master)
========================== */

func refreshTokenFromRequest(c *fiber.Ctx) string {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err == nil && strings.TrimSpace(req.RefreshToken) != "" {
		return strings.TrimSpace(req.RefreshToken)
	}
	return strings.TrimSpace(c.Cookies("refresh_token"))
}

func issueAndRespond(c *fiber.Ctx, p authService.Principal, message string) error {
	pair, err := authService.IssueTokenPair(
		p,
		configs.JWTSecret,
		configs.JWTRefreshSecret,
		configs.AccessTokenTTL(),
		configs.RefreshTokenTTL(),
	)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	setAuthCookies(c, pair)

	return helper.JsonOK(c, message, fiber.Map{
		"principal":     p,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func setAuthCookies(c *fiber.Ctx, pair authService.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    pair.AccessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  pair.AccessExpiresAt,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    pair.RefreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  pair.RefreshExpiresAt,
	})
}

// Logout: kosongkan cookies (idempotent).
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	expired := time.Now().UTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
	return helper.JsonOK(c, "Log keluar berjaya", nil)
}
