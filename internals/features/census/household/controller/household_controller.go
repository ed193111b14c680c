// file: internals/features/census/household/controller/household_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kariahku_backend/internals/features/census/household/dto"
	"kariahku_backend/internals/features/census/household/service"
	helper "kariahku_backend/internals/helpers"
)

type HouseholdController struct {
	Service *service.HouseholdService
}

func NewHouseholdController(db *gorm.DB) *HouseholdController {
	return &HouseholdController{Service: service.NewHouseholdService(db)}
}

/* ==========================
   Query parsing
========================== */

func queryFloat(c *fiber.Ctx, key string) *float64 {
	if v := strings.TrimSpace(c.Query(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
	}
	return nil
}

func queryInt(c *fiber.Ctx, key string) *int {
	if v := strings.TrimSpace(c.Query(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}

func parseHouseholdFilter(c *fiber.Ctx) dto.HouseholdFilter {
	return dto.HouseholdFilter{
		Search:        c.Query("search"),
		HousingStatus: c.Query("housing_status"),
		IncomeMin:     queryFloat(c, "income_min"),
		IncomeMax:     queryFloat(c, "income_max"),
		DependentsMin: queryInt(c, "dependents_min"),
		DependentsMax: queryInt(c, "dependents_max"),
		SortBy:        c.Query("sort_by"),
		SortOrder:     c.Query("order"),
	}
}

/* ==========================
   Handlers
========================== */

// 🟢 POST /household
func (hc *HouseholdController) Create(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.HouseholdRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	hh, err := hc.Service.Create(masjidID, userID, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Rekod isi rumah berjaya didaftarkan", hh)
}

// 🟢 PUT /household/:id
func (hc *HouseholdController) Update(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	householdID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak sah")
	}

	var req dto.HouseholdRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	hh, err := hc.Service.Update(masjidID, householdID, userID, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Rekod isi rumah dikemas kini", hh)
}

// 🟢 GET /household
func (hc *HouseholdController) FindAll(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	items, total, err := hc.Service.FindAll(masjidID, parseHouseholdFilter(c), paging)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	return helper.JsonList(c, "ok", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /household/:id
func (hc *HouseholdController) FindOne(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	householdID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak sah")
	}

	hh, err := hc.Service.FindOne(masjidID, householdID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", hh)
}

// 🟢 GET /household/:id/versions
func (hc *HouseholdController) VersionHistory(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	householdID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak sah")
	}

	versions, err := hc.Service.VersionHistory(masjidID, householdID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", versions)
}

// 🟢 GET /household/check-ic/:icNo?exclude_household_id=
func (hc *HouseholdController) CheckIC(c *fiber.Ctx) error {
	masjidID, err := helper.GetMasjidID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var exclude *uuid.UUID
	if v := strings.TrimSpace(c.Query("exclude_household_id")); v != "" {
		id, perr := uuid.Parse(v)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "exclude_household_id tidak sah")
		}
		exclude = &id
	}

	exists, err := hc.Service.CheckIcExists(masjidID, c.Params("icNo"), exclude)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{"exists": exists})
}
