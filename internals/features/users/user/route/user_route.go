// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "kariahku_backend/internals/features/users/user/controller"
)

// UserRoutes: pengurusan staf tenant — r sudah membawa konteks tenant +
// JWT + guard ADMIN.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	r.Get("/", ctrl.FindAll)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Patch("/:id/deactivate", ctrl.Deactivate)
	r.Delete("/:id", ctrl.Delete)
}
