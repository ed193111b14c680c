// file: internals/features/users/master/controller/master_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kariahku_backend/internals/constants"
	authService "kariahku_backend/internals/features/users/auth/service"
	"kariahku_backend/internals/features/users/master/dto"
	"kariahku_backend/internals/features/users/master/model"
	helper "kariahku_backend/internals/helpers"
)

const msgLastSuperAdmin = "Platform mesti mempunyai sekurang-kurangnya seorang SUPER_ADMIN aktif"

// MasterAdminController: CRUD akaun pentadbir platform (SUPER_ADMIN sahaja).
type MasterAdminController struct {
	DB *gorm.DB
}

func NewMasterAdminController(db *gorm.DB) *MasterAdminController {
	return &MasterAdminController{DB: db}
}

func isDuplicateKey(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "SQLSTATE 23505"))
}

func (mc *MasterAdminController) countOtherActiveSupers(excludeID uuid.UUID) (int64, error) {
	var n int64
	err := mc.DB.Model(&model.MasterAdminModel{}).
		Where("master_admin_id <> ?", excludeID).
		Where("master_admin_role = ? AND master_admin_is_active = TRUE", constants.RoleSuperAdmin).
		Count(&n).Error
	return n, err
}

// 🟢 GET /master/admins
func (mc *MasterAdminController) FindAll(c *fiber.Ctx) error {
	var admins []model.MasterAdminModel
	if err := mc.DB.Order("master_admin_created_at ASC").Find(&admins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil senarai pentadbir")
	}
	return helper.JsonOK(c, "ok", admins)
}

// 🟢 POST /master/admins
func (mc *MasterAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateMasterAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	hashed, err := authService.HashPassword(req.MasterAdminPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses kata laluan")
	}

	admin := model.MasterAdminModel{
		MasterAdminEmail:    strings.ToLower(strings.TrimSpace(req.MasterAdminEmail)),
		MasterAdminPassword: hashed,
		MasterAdminFullName: strings.TrimSpace(req.MasterAdminFullName),
		MasterAdminRole:     req.MasterAdminRole,
		MasterAdminIsActive: true,
	}
	if err := mc.DB.Create(&admin).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "E-mel sudah didaftarkan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah pentadbir")
	}
	return helper.JsonCreated(c, "Pentadbir berjaya ditambah", admin)
}

// 🟢 PUT /master/admins/:id
func (mc *MasterAdminController) Update(c *fiber.Ctx) error {
	adminID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak sah")
	}

	var req dto.UpdateMasterAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var admin model.MasterAdminModel
	if err := mc.DB.Where("master_admin_id = ?", adminID).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pentadbir tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pentadbir")
	}

	// jaga SUPER_ADMIN aktif terakhir
	if admin.MasterAdminRole == constants.RoleSuperAdmin && admin.MasterAdminIsActive {
		loses := (req.MasterAdminRole != nil && *req.MasterAdminRole != constants.RoleSuperAdmin) ||
			(req.MasterAdminIsActive != nil && !*req.MasterAdminIsActive)
		if loses {
			others, cerr := mc.countOtherActiveSupers(admin.MasterAdminID)
			if cerr != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyemak pentadbir")
			}
			if others == 0 {
				return helper.JsonError(c, fiber.StatusForbidden, msgLastSuperAdmin)
			}
		}
	}

	if req.MasterAdminEmail != nil {
		admin.MasterAdminEmail = strings.ToLower(strings.TrimSpace(*req.MasterAdminEmail))
	}
	if req.MasterAdminPassword != nil {
		hashed, herr := authService.HashPassword(*req.MasterAdminPassword)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses kata laluan")
		}
		admin.MasterAdminPassword = hashed
	}
	if req.MasterAdminFullName != nil {
		admin.MasterAdminFullName = strings.TrimSpace(*req.MasterAdminFullName)
	}
	if req.MasterAdminRole != nil {
		admin.MasterAdminRole = *req.MasterAdminRole
	}
	if req.MasterAdminIsActive != nil {
		admin.MasterAdminIsActive = *req.MasterAdminIsActive
	}

	if err := mc.DB.Save(&admin).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "E-mel sudah didaftarkan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengemas kini pentadbir")
	}
	return helper.JsonUpdated(c, "Pentadbir dikemas kini", admin)
}

// 🟢 DELETE /master/admins/:id
func (mc *MasterAdminController) Delete(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	adminID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak sah")
	}
	if adminID == actorID {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh memadam akaun sendiri")
	}

	var admin model.MasterAdminModel
	if err := mc.DB.Where("master_admin_id = ?", adminID).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pentadbir tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pentadbir")
	}

	if admin.MasterAdminRole == constants.RoleSuperAdmin && admin.MasterAdminIsActive {
		others, cerr := mc.countOtherActiveSupers(adminID)
		if cerr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyemak pentadbir")
		}
		if others == 0 {
			return helper.JsonError(c, fiber.StatusForbidden, msgLastSuperAdmin)
		}
	}

	if err := mc.DB.Delete(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memadam pentadbir")
	}
	return helper.JsonDeleted(c, "Pentadbir dipadam", fiber.Map{"master_admin_id": adminID})
}
