// file: internals/features/users/master/controller/tenant_user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userDTO "kariahku_backend/internals/features/users/user/dto"
	userService "kariahku_backend/internals/features/users/user/service"
	helper "kariahku_backend/internals/helpers"
)

// TenantUserController: pengurusan pengguna sesebuah tenant dari konsol
// master, dialamatkan ikut slug (/master/tenants/:slug/users).
type TenantUserController struct {
	DB      *gorm.DB
	Service *userService.UserService
}

func NewTenantUserController(db *gorm.DB) *TenantUserController {
	return &TenantUserController{DB: db, Service: userService.NewUserService(db)}
}

func (tc *TenantUserController) masjidIDBySlug(slug string) (uuid.UUID, error) {
	var row struct {
		MasjidID uuid.UUID `gorm:"column:masjid_id"`
	}
	err := tc.DB.Raw(`
		SELECT m.masjid_id
		FROM tenants t
		JOIN masjids m ON m.masjid_tenant_id = t.tenant_id
		WHERE LOWER(t.tenant_slug) = LOWER(?)
		LIMIT 1
	`, strings.TrimSpace(slug)).Scan(&row).Error
	if err != nil {
		return uuid.Nil, err
	}
	if row.MasjidID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Tenant tidak ditemukan")
	}
	return row.MasjidID, nil
}

// 🟢 GET /master/tenants/:slug/users
func (tc *TenantUserController) FindAll(c *fiber.Ctx) error {
	masjidID, err := tc.masjidIDBySlug(c.Params("slug"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	users, err := tc.Service.FindAll(masjidID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", users)
}

// 🟢 POST /master/tenants/:slug/users
func (tc *TenantUserController) Create(c *fiber.Ctx) error {
	masjidID, err := tc.masjidIDBySlug(c.Params("slug"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	user, err := tc.Service.Create(masjidID, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Pengguna berjaya ditambah", user)
}

// 🟢 PUT /master/tenants/:slug/users/:id
func (tc *TenantUserController) Update(c *fiber.Ctx) error {
	masjidID, err := tc.masjidIDBySlug(c.Params("slug"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak sah")
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	user, err := tc.Service.Update(masjidID, userID, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Pengguna dikemas kini", user)
}

// 🟢 DELETE /master/tenants/:slug/users/:id
func (tc *TenantUserController) Delete(c *fiber.Ctx) error {
	masjidID, err := tc.masjidIDBySlug(c.Params("slug"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak sah")
	}

	if err := tc.Service.Delete(masjidID, userID, actorID); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memadam pengguna")
	}
	return helper.JsonDeleted(c, "Pengguna dipadam", fiber.Map{"user_id": userID})
}
