// file: internals/features/tenancy/tenant/controller/tenant_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kariahku_backend/internals/constants"
	"kariahku_backend/internals/features/tenancy/tenant/dto"
	"kariahku_backend/internals/features/tenancy/tenant/model"
	authService "kariahku_backend/internals/features/users/auth/service"
	userModel "kariahku_backend/internals/features/users/user/model"
	helper "kariahku_backend/internals/helpers"
)

// TenantController: provisioning tenant oleh master admin. Satu tenant =
// satu masjid; cipta kedua-duanya (plus ADMIN pertama jika diberi) atomik.
type TenantController struct {
	DB *gorm.DB
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{DB: db}
}

func isDuplicateKey(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "SQLSTATE 23505"))
}

func (tc *TenantController) findBySlug(slug string) (*model.TenantModel, error) {
	var tenant model.TenantModel
	err := tc.DB.
		Preload("Masjid").
		Where("LOWER(tenant_slug) = LOWER(?)", strings.TrimSpace(slug)).
		First(&tenant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Tenant tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// 🟢 POST /master/tenants
func (tc *TenantController) Create(c *fiber.Ctx) error {
	var req dto.CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	slug := helper.GenerateSlug(req.TenantSlug)
	if !helper.IsValidSlug(slug) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug tidak sah")
	}
	if constants.IsReservedSlug(slug) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug ini dikhaskan untuk sistem")
	}

	tenant := model.TenantModel{
		TenantSlug:    slug,
		TenantName:    strings.TrimSpace(req.TenantName),
		TenantLogoURL: req.TenantLogoURL,
		TenantTheme:   req.TenantTheme,
		TenantStatus:  model.TenantStatusActive,
	}

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}
		masjid := model.MasjidModel{
			MasjidTenantID: tenant.TenantID,
			MasjidName:     strings.TrimSpace(req.MasjidName),
			MasjidAddress:  strings.TrimSpace(req.MasjidAddress),
			MasjidPhone:    strings.TrimSpace(req.MasjidPhone),
		}
		if err := tx.Create(&masjid).Error; err != nil {
			return err
		}
		tenant.Masjid = &masjid

		if req.InitialAdmin != nil {
			hashed, herr := authService.HashPassword(req.InitialAdmin.UserPassword)
			if herr != nil {
				return herr
			}
			admin := userModel.UserModel{
				UserMasjidID: masjid.MasjidID,
				UserEmail:    strings.ToLower(strings.TrimSpace(req.InitialAdmin.UserEmail)),
				UserPassword: hashed,
				UserFullName: strings.TrimSpace(req.InitialAdmin.UserFullName),
				UserRole:     constants.RoleAdmin,
				UserIsActive: true,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug atau e-mel sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencipta tenant")
	}

	return helper.JsonCreated(c, "Tenant berjaya dicipta", tenant)
}

// 🟢 GET /master/tenants
func (tc *TenantController) FindAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := tc.DB.Table("tenants t").
		Joins("LEFT JOIN masjids m ON m.masjid_tenant_id = t.tenant_id")
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		base = base.Where("t.tenant_name ILIKE ? OR t.tenant_slug ILIKE ?", like, like)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		base = base.Where("t.tenant_status = ?", strings.ToUpper(st))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengira tenant")
	}

	var items []dto.TenantListItem
	err := base.Session(&gorm.Session{}).
		Select(`t.tenant_id, t.tenant_slug, t.tenant_name, t.tenant_status, t.tenant_created_at,
			COALESCE(m.masjid_name, '') AS masjid_name,
			(SELECT COUNT(*) FROM households h WHERE h.household_masjid_id = m.masjid_id)  AS household_count,
			(SELECT COUNT(*) FROM users u WHERE u.user_masjid_id = m.masjid_id)            AS user_count`).
		Order("t.tenant_created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Scan(&items).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil senarai tenant")
	}

	return helper.JsonList(c, "ok", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /master/tenants/:slug
func (tc *TenantController) FindOne(c *fiber.Ctx) error {
	tenant, err := tc.findBySlug(c.Params("slug"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", tenant)
}

// 🟢 PUT /master/tenants/:slug
func (tc *TenantController) Update(c *fiber.Ctx) error {
	var req dto.UpdateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fe := helper.ValidateStruct(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	tenant, err := tc.findBySlug(c.Params("slug"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	if req.TenantName != nil {
		tenant.TenantName = strings.TrimSpace(*req.TenantName)
	}
	if req.TenantLogoURL != nil {
		tenant.TenantLogoURL = req.TenantLogoURL
	}
	if len(req.TenantTheme) > 0 {
		tenant.TenantTheme = req.TenantTheme
	}
	if req.TenantStatus != nil {
		tenant.TenantStatus = *req.TenantStatus
	}

	err = tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Masjid").Save(tenant).Error; err != nil {
			return err
		}
		if tenant.Masjid != nil {
			if req.MasjidName != nil {
				tenant.Masjid.MasjidName = strings.TrimSpace(*req.MasjidName)
			}
			if req.MasjidAddress != nil {
				tenant.Masjid.MasjidAddress = strings.TrimSpace(*req.MasjidAddress)
			}
			if req.MasjidPhone != nil {
				tenant.Masjid.MasjidPhone = strings.TrimSpace(*req.MasjidPhone)
			}
			if err := tx.Save(tenant.Masjid).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengemas kini tenant")
	}
	return helper.JsonUpdated(c, "Tenant dikemas kini", tenant)
}

// 🟢 DELETE /master/tenants/:slug — nyahaktif sahaja, data kekal.
func (tc *TenantController) Deactivate(c *fiber.Ctx) error {
	tenant, err := tc.findBySlug(c.Params("slug"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	tenant.TenantStatus = model.TenantStatusInactive
	if err := tc.DB.Omit("Masjid").Save(tenant).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyahaktifkan tenant")
	}
	return helper.JsonDeleted(c, "Tenant dinyahaktifkan", fiber.Map{
		"tenant_slug":   tenant.TenantSlug,
		"tenant_status": tenant.TenantStatus,
	})
}

// 🟢 GET /master/stats
func (tc *TenantController) Stats(c *fiber.Ctx) error {
	var agg struct {
		TotalTenants    int64 `gorm:"column:total_tenants"`
		ActiveTenants   int64 `gorm:"column:active_tenants"`
		TotalHouseholds int64 `gorm:"column:total_households"`
		TotalUsers      int64 `gorm:"column:total_users"`
	}
	err := tc.DB.Raw(`
		SELECT
			(SELECT COUNT(*) FROM tenants)                                    AS total_tenants,
			(SELECT COUNT(*) FROM tenants WHERE tenant_status = 'ACTIVE')     AS active_tenants,
			(SELECT COUNT(*) FROM households)                                 AS total_households,
			(SELECT COUNT(*) FROM users)                                      AS total_users
	`).Scan(&agg).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengira statistik")
	}

	var top []dto.TenantRanking
	err = tc.DB.Raw(`
		SELECT t.tenant_slug, t.tenant_name, COUNT(h.household_id) AS household_count
		FROM tenants t
		JOIN masjids m ON m.masjid_tenant_id = t.tenant_id
		LEFT JOIN households h ON h.household_masjid_id = m.masjid_id
		GROUP BY t.tenant_slug, t.tenant_name
		ORDER BY household_count DESC, t.tenant_slug ASC
		LIMIT 5
	`).Scan(&top).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengira statistik")
	}

	return helper.JsonOK(c, "ok", dto.PlatformStatsResponse{
		TotalTenants:    agg.TotalTenants,
		ActiveTenants:   agg.ActiveTenants,
		TotalHouseholds: agg.TotalHouseholds,
		TotalUsers:      agg.TotalUsers,
		TopTenants:      top,
	})
}
