// file: internals/features/census/kampung/route/kampung_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kariahku_backend/internals/constants"
	kampungController "kariahku_backend/internals/features/census/kampung/controller"
	authMw "kariahku_backend/internals/middlewares/auth"
)

// KampungRoutes: baca untuk semua role; ubah terhad ADMIN.
func KampungRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := kampungController.NewKampungController(db)
	adminOnly := authMw.RequireRoles(constants.RoleAdmin)

	r.Get("/", ctrl.FindAll)
	r.Post("/", adminOnly, ctrl.Create)
	r.Put("/:id", adminOnly, ctrl.Update)
	r.Delete("/:id", adminOnly, ctrl.Delete)
}
