// file: internals/features/tenancy/tenant/route/master_tenant_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tenantController "kariahku_backend/internals/features/tenancy/tenant/controller"
	masterController "kariahku_backend/internals/features/users/master/controller"
)

// MasterTenantRoutes: provisioning tenant dari konsol master — r sudah
// membawa JWT + guard is_master. Pengurusan pengguna tenant dinested
// ikut slug.
func MasterTenantRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := tenantController.NewTenantController(db)
	userCtrl := masterController.NewTenantUserController(db)

	r.Get("/", ctrl.FindAll)
	r.Post("/", ctrl.Create)
	r.Get("/:slug", ctrl.FindOne)
	r.Put("/:slug", ctrl.Update)
	r.Delete("/:slug", ctrl.Deactivate)

	r.Get("/:slug/users", userCtrl.FindAll)
	r.Post("/:slug/users", userCtrl.Create)
	r.Put("/:slug/users/:id", userCtrl.Update)
	r.Delete("/:slug/users/:id", userCtrl.Delete)
}

// MasterStatsRoutes: ringkasan platform untuk papan pemuka master.
func MasterStatsRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := tenantController.NewTenantController(db)

	r.Get("/stats", ctrl.Stats)
}
