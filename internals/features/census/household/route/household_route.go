// file: internals/features/census/household/route/household_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kariahku_backend/internals/constants"
	householdController "kariahku_backend/internals/features/census/household/controller"
	authMw "kariahku_backend/internals/middlewares/auth"
)

// HouseholdRoutes: r sudah membawa konteks tenant + JWT. Semua role boleh
// baca; tulis terhad kepada ADMIN & PENGURUSAN (IMAM baca sahaja).
func HouseholdRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := householdController.NewHouseholdController(db)
	writeGuard := authMw.RequireRoles(constants.RoleAdmin, constants.RolePengurusan)

	r.Get("/", ctrl.FindAll)
	r.Get("/check-ic/:icNo", ctrl.CheckIC)
	r.Get("/:id", ctrl.FindOne)
	r.Get("/:id/versions", ctrl.VersionHistory)

	r.Post("/", writeGuard, ctrl.Create)
	r.Put("/:id", writeGuard, ctrl.Update)
}
