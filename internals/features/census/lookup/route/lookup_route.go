// file: internals/features/census/lookup/route/lookup_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lookupController "kariahku_backend/internals/features/census/lookup/controller"
)

// LookupRoutes: rujukan global (dropdown borang).
func LookupRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := lookupController.NewLookupController(db)

	r.Get("/disability-types", ctrl.DisabilityTypes)
}
