// file: internals/features/census/analytics/controller/analytics_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kariahku_backend/internals/features/census/analytics/service"
	helper "kariahku_backend/internals/helpers"
)

type AnalyticsController struct {
	DB      *gorm.DB
	Service *service.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db, Service: service.NewAnalyticsService(db)}
}

/* ==========================
   Scope resolution
========================== */

// resolveMasjidID: route terlindung pakai konteks tenant. Mirror publik
// boleh jatuh ke ?masjid_id= atau, kalau tiada juga, masjid pertama
// platform (papan pemuka demo).
func (ac *AnalyticsController) resolveMasjidID(c *fiber.Ctx, public bool) (uuid.UUID, error) {
	if id, err := helper.GetMasjidID(c); err == nil {
		return id, nil
	}
	if !public {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Tenant tidak ditemukan dari konteks")
	}

	if v := strings.TrimSpace(c.Query("masjid_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "masjid_id tidak sah")
		}
		return id, nil
	}

	var row struct {
		MasjidID uuid.UUID `gorm:"column:masjid_id"`
	}
	err := ac.DB.Raw(`SELECT masjid_id FROM masjids ORDER BY masjid_created_at ASC LIMIT 1`).
		Scan(&row).Error
	if err != nil || row.MasjidID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Tiada masjid didaftarkan")
	}
	return row.MasjidID, nil
}

func kampungParam(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Query("kampung"))
}

/* ==========================
   Handlers (dipakai dua mount:
   terlindung & mirror publik)
========================== */

func (ac *AnalyticsController) Summary(public bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		masjidID, err := ac.resolveMasjidID(c, public)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		out, err := ac.Service.Summary(masjidID, kampungParam(c))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonOK(c, "ok", out)
	}
}

func (ac *AnalyticsController) IncomeDistribution(public bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		masjidID, err := ac.resolveMasjidID(c, public)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		out, err := ac.Service.IncomeDistribution(masjidID, kampungParam(c))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonOK(c, "ok", out)
	}
}

func (ac *AnalyticsController) HousingStatus(public bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		masjidID, err := ac.resolveMasjidID(c, public)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		out, err := ac.Service.HousingStatus(masjidID, kampungParam(c))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonOK(c, "ok", out)
	}
}

func (ac *AnalyticsController) RecentSubmissions(public bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		masjidID, err := ac.resolveMasjidID(c, public)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		limit, _ := strconv.Atoi(c.Query("limit", "5"))
		out, err := ac.Service.RecentSubmissions(masjidID, kampungParam(c), limit)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonOK(c, "ok", out)
	}
}

func (ac *AnalyticsController) GenderDistribution(public bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		masjidID, err := ac.resolveMasjidID(c, public)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		out, err := ac.Service.GenderDistribution(masjidID, kampungParam(c))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonOK(c, "ok", out)
	}
}

func (ac *AnalyticsController) Kampungs(public bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		masjidID, err := ac.resolveMasjidID(c, public)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		out, err := ac.Service.ListKampungNames(masjidID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonOK(c, "ok", out)
	}
}
