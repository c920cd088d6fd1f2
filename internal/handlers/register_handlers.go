package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finbook-app/finbook_backend/internal/core/domain"
	"github.com/finbook-app/finbook_backend/internal/core/services"
	"github.com/finbook-app/finbook_backend/internal/middleware"
	"github.com/finbook-app/finbook_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facades.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svcs services.ServiceProvider) {
	registerCustomValidations()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	if cfg.EnableMetrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	setupAPIV1Routes(r, svcs)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// entity-specific route registrations. Every v1 route is tenant-scoped.
func setupAPIV1Routes(r *gin.Engine, svcs services.ServiceProvider) {
	v1 := r.Group("/api/v1", middleware.TenantMiddleware())

	registerAccountRoutes(v1, svcs.AccountSvc, svcs.LedgerSvc, svcs.SeedSvc)
	registerJournalRoutes(v1, svcs.JournalSvc)
	registerReportingRoutes(v1, svcs.ReportingSvc)
}

// registerCustomValidations installs the binding validations the request DTOs
// reference for the domain enums.
func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
		return domain.AccountType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("linedirection", func(fl validator.FieldLevel) bool {
		d := domain.LineDirection(fl.Field().String())
		return d == domain.Debit || d == domain.Credit
	})
}
