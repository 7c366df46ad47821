// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/payroll-service/config"
	"github.com/guttosm/payroll-service/internal/http"
	"github.com/guttosm/payroll-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

// App is the wired application and the resources it releases on Close.
type App struct {
	Router *gin.Engine

	services *ServiceComponents
	database *DatabaseComponents
	audit    *middleware.AsyncLogger
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)

	serviceComponents, err := InitializeServices(cfg, dbComponents)
	if err != nil {
		_ = dbComponents.Close(context.Background())
		return nil, err
	}

	var audit *middleware.AsyncLogger
	if dbComponents != nil {
		audit = middleware.NewAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerComponents := InitializeRouter(serviceComponents, dbComponents, audit, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config, routerComponents.Groups...),
		services: serviceComponents,
		database: dbComponents,
		audit:    audit,
	}, nil
}

// Close flushes pending audit entries, stops background work and
// disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	a.audit.Stop()
	if a.audit != nil {
		enqueued, dropped, written, failed := a.audit.Stats()
		log.Info().
			Int64("enqueued", enqueued).
			Int64("dropped", dropped).
			Int64("written", written).
			Int64("failed", failed).
			Msg("Audit logger stopped")
	}
	a.services.Stop()
	return a.database.Close(ctx)
}
