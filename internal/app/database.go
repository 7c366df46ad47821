// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/payroll-service/config"
	"github.com/guttosm/payroll-service/internal/circuitbreaker"
	"github.com/guttosm/payroll-service/internal/repository"
	"github.com/guttosm/payroll-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components. Each repository is
// wrapped in its own circuit breaker.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	TaxPackRepo            repository.TaxPackRepositoryInterface
	PayslipRepo            repository.PayslipRepositoryInterface
	LoggingService         service.LoggingService
	TaxPacksCircuitBreaker *circuitbreaker.CircuitBreaker
	PayslipsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the repositories.
// Returns nil if the database is disabled or the connection fails; the
// service then runs on its built-in tax packs without persistence.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	newBreaker := func(name string) *circuitbreaker.CircuitBreaker {
		return circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: cfg.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.CircuitBreakerTimeout,
			Name:             name,
		})
	}
	taxPacksCB := newBreaker("mongodb-tax-packs")
	payslipsCB := newBreaker("mongodb-payslips")
	logsCB := newBreaker("mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                     db,
		TaxPackRepo:            repository.NewTaxPackRepositoryWithCircuitBreaker(repository.NewTaxPackRepository(db), taxPacksCB),
		PayslipRepo:            repository.NewPayslipRepositoryWithCircuitBreaker(repository.NewPayslipRepository(db), payslipsCB),
		LoggingService:         service.NewLoggingService(logsRepo),
		TaxPacksCircuitBreaker: taxPacksCB,
		PayslipsCircuitBreaker: payslipsCB,
		LogsCircuitBreaker:     logsCB,
	}
}

// Close disconnects from MongoDB. It is safe on nil components.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

// circuitBreakers returns the repository breakers keyed by health check name.
func (d *DatabaseComponents) circuitBreakers() map[string]*circuitbreaker.CircuitBreaker {
	return map[string]*circuitbreaker.CircuitBreaker{
		"mongodb_tax_packs": d.TaxPacksCircuitBreaker,
		"mongodb_payslips":  d.PayslipsCircuitBreaker,
		"mongodb_logs":      d.LogsCircuitBreaker,
	}
}

// mongoChecker reports MongoDB reachability to the readiness probe.
type mongoChecker struct {
	db *repository.MongoDB
}

func (m mongoChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.db.HealthCheck(ctx)
}
