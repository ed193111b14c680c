// file: internals/features/census/lookup/controller/lookup_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kariahku_backend/internals/features/census/lookup/model"
	helper "kariahku_backend/internals/helpers"
)

type LookupController struct {
	DB *gorm.DB
}

func NewLookupController(db *gorm.DB) *LookupController {
	return &LookupController{DB: db}
}

// 🟢 GET /lookup/disability-types
func (lc *LookupController) DisabilityTypes(c *fiber.Ctx) error {
	var types []model.DisabilityTypeModel
	if err := lc.DB.Order("disability_type_name ASC").Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenis OKU")
	}
	return helper.JsonOK(c, "ok", types)
}
