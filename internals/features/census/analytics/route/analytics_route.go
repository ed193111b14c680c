// file: internals/features/census/analytics/route/analytics_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsController "kariahku_backend/internals/features/census/analytics/controller"
)

// AnalyticsRoutes: set terlindung + mirror publik (papan pemuka tanpa
// log masuk). Didaftar per-route supaya guard terlindung tidak melimpah
// ke prefix /analytics/public.
func AnalyticsRoutes(app *fiber.App, db *gorm.DB, tenantCtx, tenantCtxOptional, jwtGuard fiber.Handler) {
	ctrl := analyticsController.NewAnalyticsController(db)

	app.Get("/analytics/public/summary", tenantCtxOptional, ctrl.Summary(true))
	app.Get("/analytics/public/income-distribution", tenantCtxOptional, ctrl.IncomeDistribution(true))
	app.Get("/analytics/public/housing-status", tenantCtxOptional, ctrl.HousingStatus(true))
	app.Get("/analytics/public/recent-submissions", tenantCtxOptional, ctrl.RecentSubmissions(true))
	app.Get("/analytics/public/gender-distribution", tenantCtxOptional, ctrl.GenderDistribution(true))
	app.Get("/analytics/public/kampungs", tenantCtxOptional, ctrl.Kampungs(true))

	app.Get("/analytics/summary", tenantCtx, jwtGuard, ctrl.Summary(false))
	app.Get("/analytics/income-distribution", tenantCtx, jwtGuard, ctrl.IncomeDistribution(false))
	app.Get("/analytics/housing-status", tenantCtx, jwtGuard, ctrl.HousingStatus(false))
	app.Get("/analytics/recent-submissions", tenantCtx, jwtGuard, ctrl.RecentSubmissions(false))
	app.Get("/analytics/gender-distribution", tenantCtx, jwtGuard, ctrl.GenderDistribution(false))
	app.Get("/analytics/kampungs", tenantCtx, jwtGuard, ctrl.Kampungs(false))
}
