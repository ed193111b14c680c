// file: internals/features/census/export/route/export_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exportController "kariahku_backend/internals/features/census/export/controller"
)

// ExportRoutes: muat turun Excel/CSV — r sudah membawa konteks tenant + JWT.
func ExportRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := exportController.NewExportController(db)

	r.Get("/excel", ctrl.ExportExcel)
	r.Get("/csv", ctrl.ExportCSV)
}
