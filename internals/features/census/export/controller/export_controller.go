// file: internals/features/census/export/controller/export_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kariahku_backend/internals/features/census/export/service"
	helper "kariahku_backend/internals/helpers"
)

type ExportController struct {
	Service *service.ExportService
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{Service: service.NewExportService(db)}
}

// 🟢 GET /export/excel?kampung=
func (ec *ExportController) ExportExcel(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	data, err := ec.Service.GenerateExcel(masjidID, strings.TrimSpace(c.Query("kampung")))
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	filename := service.ExportFilename("xlsx")
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// 🟢 GET /export/csv?kampung=
func (ec *ExportController) ExportCSV(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	data, err := ec.Service.GenerateCSV(masjidID, strings.TrimSpace(c.Query("kampung")))
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	filename := service.ExportFilename("csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
