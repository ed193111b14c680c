// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "kariahku_backend/internals/features/users/auth/controller"
)

// AuthRoutes: login/refresh/logout pada subdomain tenant (r sudah membawa
// konteks tenant); /auth/me sahaja yang perlu JWT.
func AuthRoutes(r fiber.Router, jwtGuard fiber.Handler, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r.Post("/login", ctrl.Login)
	r.Post("/refresh", ctrl.Refresh)
	r.Post("/logout", ctrl.Logout)
	r.Get("/me", jwtGuard, ctrl.Me)
}

// MasterAuthRoutes: pintu log masuk konsol master — tiada konteks tenant.
func MasterAuthRoutes(r fiber.Router, jwtGuard fiber.Handler, db *gorm.DB) {
	ctrl := authController.NewMasterAuthController(db)

	r.Post("/login", ctrl.Login)
	r.Post("/refresh", ctrl.Refresh)
	r.Get("/me", jwtGuard, ctrl.Me)
}
