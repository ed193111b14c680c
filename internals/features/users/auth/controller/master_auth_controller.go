// file: internals/features/users/auth/controller/master_auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kariahku_backend/internals/configs"
	authDTO "kariahku_backend/internals/features/users/auth/dto"
	authService "kariahku_backend/internals/features/users/auth/service"
	masterModel "kariahku_backend/internals/features/users/master/model"
	helper "kariahku_backend/internals/helpers"
)

// MasterAuthController: domain auth platform — struktur sama dengan
// AuthController, cuma lookup MasterAdmin + claim is_master.
type MasterAuthController struct {
	DB *gorm.DB
}

func NewMasterAuthController(db *gorm.DB) *MasterAuthController {
	return &MasterAuthController{DB: db}
}

func masterToPrincipal(m masterModel.MasterAdminModel) authService.Principal {
	return authService.Principal{
		ID:       m.MasterAdminID,
		Email:    m.MasterAdminEmail,
		Role:     m.MasterAdminRole,
		IsMaster: true,
	}
}

func masterByEmail(db *gorm.DB, email string) (authService.Credential, error) {
	var m masterModel.MasterAdminModel
	if err := db.Where("LOWER(master_admin_email) = ?", email).First(&m).Error; err != nil {
		return authService.Credential{}, err
	}
	return authService.Credential{
		Principal:    masterToPrincipal(m),
		PasswordHash: m.MasterAdminPassword,
		Active:       m.MasterAdminIsActive,
	}, nil
}

func masterByID(db *gorm.DB, id uuid.UUID) (authService.Credential, error) {
	var m masterModel.MasterAdminModel
	if err := db.First(&m, "master_admin_id = ?", id).Error; err != nil {
		return authService.Credential{}, err
	}
	return authService.Credential{
		Principal:    masterToPrincipal(m),
		PasswordHash: m.MasterAdminPassword,
		Active:       m.MasterAdminIsActive,
	}, nil
}

// POST /master/auth/login
func (mc *MasterAuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	p, err := authService.Login(mc.DB, masterByEmail, req.Email, req.Password)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	return issueAndRespond(c, p, "Log masuk berjaya")
}

// POST /master/auth/refresh — tolak token tanpa claim is_master
func (mc *MasterAuthController) Refresh(c *fiber.Ctx) error {
	raw := refreshTokenFromRequest(c)
	p, err := authService.Refresh(mc.DB, raw, configs.JWTRefreshSecret, masterByID, true)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return issueAndRespond(c, p, "Token diperbaharui")
}

// GET /master/auth/me
func (mc *MasterAuthController) Me(c *fiber.Ctx) error {
	id, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var m masterModel.MasterAdminModel
	if err := mc.DB.First(&m, "master_admin_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akaun tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", m)
}
