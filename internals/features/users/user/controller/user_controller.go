// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kariahku_backend/internals/features/users/user/dto"
	"kariahku_backend/internals/features/users/user/service"
	helper "kariahku_backend/internals/helpers"
)

// UserController: pengurusan pengguna oleh ADMIN tenant sendiri.
type UserController struct {
	Service *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Service: service.NewUserService(db)}
}

// 🟢 GET /users
func (uc *UserController) FindAll(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	users, err := uc.Service.FindAll(masjidID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", users)
}

// 🟢 POST /users
func (uc *UserController) Create(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	user, err := uc.Service.Create(masjidID, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Pengguna berjaya ditambah", user)
}

// 🟢 PUT /users/:id
func (uc *UserController) Update(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak sah")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	user, err := uc.Service.Update(masjidID, userID, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Pengguna dikemas kini", user)
}

// 🟢 PATCH /users/:id/deactivate
func (uc *UserController) Deactivate(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak sah")
	}

	user, err := uc.Service.Deactivate(masjidID, userID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Pengguna dinyahaktifkan", user)
}

// 🟢 DELETE /users/:id
func (uc *UserController) Delete(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
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

	if err := uc.Service.Delete(masjidID, userID, actorID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Pengguna dipadam", fiber.Map{"user_id": userID})
}
