// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kariahku_backend/internals/configs"
	"kariahku_backend/internals/constants"
	analyticsRoute "kariahku_backend/internals/features/census/analytics/route"
	exportRoute "kariahku_backend/internals/features/census/export/route"
	householdRoute "kariahku_backend/internals/features/census/household/route"
	kampungRoute "kariahku_backend/internals/features/census/kampung/route"
	lookupRoute "kariahku_backend/internals/features/census/lookup/route"
	tenantRoute "kariahku_backend/internals/features/tenancy/tenant/route"
	authRoute "kariahku_backend/internals/features/users/auth/route"
	masterRoute "kariahku_backend/internals/features/users/master/route"
	userRoute "kariahku_backend/internals/features/users/user/route"
	authMw "kariahku_backend/internals/middlewares/auth"
	tenantMw "kariahku_backend/internals/middlewares/tenant"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	tenantCtx := tenantMw.TenantContext(tenantMw.TenantContextOpts{DB: db})
	tenantCtxOptional := tenantMw.TenantContext(tenantMw.TenantContextOpts{DB: db, Optional: true})
	jwtGuard := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app.Group("/auth", tenantCtx), jwtGuard, db)
	authRoute.MasterAuthRoutes(app.Group("/master/auth"), jwtGuard, db)

	// ===================== TENANT (terlindung) =====================
	log.Println("[INFO] Setting up tenant feature routes...")
	householdRoute.HouseholdRoutes(app.Group("/household", tenantCtx, jwtGuard), db)
	exportRoute.ExportRoutes(app.Group("/export", tenantCtx, jwtGuard), db)
	kampungRoute.KampungRoutes(app.Group("/kampung", tenantCtx, jwtGuard), db)
	lookupRoute.LookupRoutes(app.Group("/lookup", tenantCtx, jwtGuard), db)
	userRoute.UserRoutes(app.Group("/users",
		tenantCtx, jwtGuard, authMw.RequireRoles(constants.RoleAdmin)), db)

	// ===================== ANALYTICS =====================
	// didaftar per-route: /analytics/public mesti bebas guard terlindung
	log.Println("[INFO] Setting up AnalyticsRoutes...")
	analyticsRoute.AnalyticsRoutes(app, db, tenantCtx, tenantCtxOptional, jwtGuard)

	// ===================== MASTER =====================
	log.Println("[INFO] Setting up master routes...")
	master := app.Group("/master", jwtGuard, authMw.RequireMaster())
	tenantRoute.MasterTenantRoutes(master.Group("/tenants"), db)
	masterRoute.MasterAdminRoutes(master.Group("/admins"), db)
	tenantRoute.MasterStatsRoutes(master, db)
}
