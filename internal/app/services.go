// Package app provides service initialization.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/payroll-service/config"
	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/repository"
	"github.com/guttosm/payroll-service/internal/service"
	"github.com/guttosm/payroll-service/internal/service/cache"
	"github.com/guttosm/payroll-service/internal/taxengine"
	"github.com/rs/zerolog/log"
)

// seedTimeout bounds storing the built-in packs at startup.
const seedTimeout = 5 * time.Second

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Engine   *service.PayrollEngine
	TaxPacks service.TaxPackService
	Runner   *service.PayrollRunner

	packCache cache.Cache[model.Country, model.TaxPack]
}

// InitializeServices builds the payroll engine, the tax pack service and the
// period runner. Built-in packs come from cfg.Payroll.TaxPacksFile when set.
// They serve as the fallback when storage holds no pack, and are stored as
// the first version of each country when db is available.
func InitializeServices(cfg config.Config, db *DatabaseComponents) (*ServiceComponents, error) {
	builtIn, err := loadBuiltInPacks(cfg.Payroll.TaxPacksFile)
	if err != nil {
		return nil, err
	}

	engine := service.NewPayrollEngine(
		service.WithTaxPacks(builtIn...),
		service.WithDefaultAge(cfg.Payroll.DefaultEmployeeAge),
	)

	var (
		packRepo    repository.TaxPackRepositoryInterface
		payslipRepo repository.PayslipRepositoryInterface
	)
	if db != nil {
		packRepo = db.TaxPackRepo
		payslipRepo = db.PayslipRepo
	}

	var packCache cache.Cache[model.Country, model.TaxPack]
	if cfg.Cache.Size > 0 && packRepo != nil {
		packCache = cache.NewTTL[model.Country, model.TaxPack](cfg.Cache.Size, cfg.Cache.TTL)
	}

	packs := service.NewTaxPackService(packRepo, packCache, engine.Pack)
	if packRepo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
		defer cancel()
		if err := packs.Seed(ctx, builtIn...); err != nil {
			log.Warn().Err(err).Msg("Failed to seed built-in tax packs")
		}
	}

	runner := service.NewPayrollRunner(engine,
		service.WithConcurrency(cfg.Payroll.RunConcurrency),
		service.WithTaxPackService(packs),
		service.WithPayslipRepository(payslipRepo),
	)

	return &ServiceComponents{
		Engine:    engine,
		TaxPacks:  packs,
		Runner:    runner,
		packCache: packCache,
	}, nil
}

// Stop releases the tax pack cache. It is safe on nil components.
func (s *ServiceComponents) Stop() {
	if s != nil && s.packCache != nil {
		s.packCache.Stop()
	}
}

// loadBuiltInPacks reads path, or returns the compiled-in packs when path is empty.
func loadBuiltInPacks(path string) ([]model.TaxPack, error) {
	if path == "" {
		return []model.TaxPack{taxengine.DefaultNamibiaPack(), taxengine.DefaultSouthAfricaPack()}, nil
	}
	packs, err := taxengine.LoadPackFile(path)
	if err != nil {
		return nil, fmt.Errorf("load tax packs: %w", err)
	}
	log.Info().Str("file", path).Int("packs", len(packs)).Msg("Loaded tax packs")
	return packs, nil
}
