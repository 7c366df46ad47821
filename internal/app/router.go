// Package app provides router configuration.
package app

import (
	"github.com/guttosm/payroll-service/config"
	"github.com/guttosm/payroll-service/internal/http"
	"github.com/guttosm/payroll-service/internal/middleware"
	"github.com/guttosm/payroll-service/internal/service"
	"github.com/rs/zerolog/log"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	Groups        []http.RouteGroup
}

// InitializeRouter builds the handlers, route groups and router
// configuration. audit may be nil when there is no database.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	audit *middleware.AsyncLogger,
	cfg config.Config,
) *RouterComponents {
	var sink middleware.LogSink
	if audit != nil {
		sink = audit
	}

	var loggingService service.LoggingService
	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.DB})
		for name, cb := range dbComponents.circuitBreakers() {
			healthHandler.RegisterCircuitBreaker(name, cb)
		}
	}

	handler := http.NewHandler(services.Engine,
		http.WithTaxPacks(services.TaxPacks),
		http.WithRunner(services.Runner),
		http.WithAuditSink(sink),
	)

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		AuditSink:      sink,
	}
	if cfg.Auth.Enabled {
		if len(cfg.Auth.APIKeys) == 0 {
			log.Warn().Msg("AUTH_ENABLED is set but API_KEYS is empty - API routes are unauthenticated")
		}
		routerCfg.APIKeys = cfg.Auth.APIKeys
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
		Groups: []http.RouteGroup{
			http.NewPayrollRoutes(handler),
			http.NewTaxPackRoutes(http.NewTaxPacksHandler(services.TaxPacks, sink)),
			http.NewAuditRoutes(http.NewAuditHandler(loggingService)),
		},
	}
}
