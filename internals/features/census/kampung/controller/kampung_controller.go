// file: internals/features/census/kampung/controller/kampung_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kariahku_backend/internals/features/census/kampung/dto"
	"kariahku_backend/internals/features/census/kampung/model"
	helper "kariahku_backend/internals/helpers"
)

type KampungController struct {
	DB *gorm.DB
}

func NewKampungController(db *gorm.DB) *KampungController {
	return &KampungController{DB: db}
}

func isDuplicateKey(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "SQLSTATE 23505"))
}

// 🟢 GET /kampung
func (kc *KampungController) FindAll(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	q := kc.DB.Where("kampung_masjid_id = ?", masjidID)
	if c.Query("include_inactive") != "true" {
		q = q.Where("kampung_is_active = TRUE")
	}

	var kampungs []model.KampungModel
	if err := q.Order("kampung_name ASC").Find(&kampungs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil senarai kampung")
	}
	return helper.JsonOK(c, "ok", kampungs)
}

// 🟢 POST /kampung (ADMIN sahaja)
func (kc *KampungController) Create(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.KampungRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	kampung := model.KampungModel{
		KampungMasjidID: masjidID,
		KampungName:     strings.TrimSpace(req.KampungName),
		KampungIsActive: true,
	}
	if req.KampungIsActive != nil {
		kampung.KampungIsActive = *req.KampungIsActive
	}

	if err := kc.DB.Create(&kampung).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kampung sudah wujud")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah kampung")
	}
	return helper.JsonCreated(c, "Kampung berjaya ditambah", kampung)
}

// 🟢 PUT /kampung/:id (ADMIN sahaja)
func (kc *KampungController) Update(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	kampungID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak sah")
	}

	var req dto.KampungRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var kampung model.KampungModel
	if err := kc.DB.
		Where("kampung_id = ? AND kampung_masjid_id = ?", kampungID, masjidID).
		First(&kampung).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kampung tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kampung")
	}

	kampung.KampungName = strings.TrimSpace(req.KampungName)
	if req.KampungIsActive != nil {
		kampung.KampungIsActive = *req.KampungIsActive
	}

	if err := kc.DB.Save(&kampung).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kampung sudah wujud")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengemas kini kampung")
	}
	return helper.JsonUpdated(c, "Kampung dikemas kini", kampung)
}

// 🟢 DELETE /kampung/:id (ADMIN sahaja)
func (kc *KampungController) Delete(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	kampungID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak sah")
	}

	res := kc.DB.
		Where("kampung_id = ? AND kampung_masjid_id = ?", kampungID, masjidID).
		Delete(&model.KampungModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memadam kampung")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kampung tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kampung dipadam", fiber.Map{"kampung_id": kampungID})
}
