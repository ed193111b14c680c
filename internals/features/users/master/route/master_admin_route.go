// file: internals/features/users/master/route/master_admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kariahku_backend/internals/constants"
	masterController "kariahku_backend/internals/features/users/master/controller"
	authMw "kariahku_backend/internals/middlewares/auth"
)

// MasterAdminRoutes: CRUD akaun platform — r sudah membawa JWT + guard
// is_master; ubah akaun terhad SUPER_ADMIN.
func MasterAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := masterController.NewMasterAdminController(db)
	superOnly := authMw.RequireRoles(constants.RoleSuperAdmin)

	r.Get("/", ctrl.FindAll)
	r.Post("/", superOnly, ctrl.Create)
	r.Put("/:id", superOnly, ctrl.Update)
	r.Delete("/:id", superOnly, ctrl.Delete)
}
