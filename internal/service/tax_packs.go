package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/logger"
	"github.com/guttosm/payroll-service/internal/repository"
	"github.com/guttosm/payroll-service/internal/service/cache"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// SystemActor is recorded as the creator of packs seeded at startup.
const SystemActor = "system"

// TaxPackService provides the active tax pack per jurisdiction and manages
// stored pack versions.
type TaxPackService interface {
	// GetActive returns the stored active pack, or the fallback pack when
	// none is stored or storage is unavailable.
	GetActive(ctx context.Context, country model.Country) (model.TaxPack, error)
	// Create validates pack and stores it as the new active version.
	Create(ctx context.Context, pack model.TaxPack, createdBy string) (*model.TaxPackVersion, error)
	// List returns stored versions for country, newest first.
	List(ctx context.Context, country model.Country, limit int) ([]model.TaxPackVersion, error)
	// Seed stores each pack whose country has no active version yet.
	Seed(ctx context.Context, packs ...model.TaxPack) error
}

// FallbackFunc supplies the pack used when storage has none.
type FallbackFunc func(country model.Country) (model.TaxPack, error)

// TaxPackServiceImpl implements TaxPackService.
type TaxPackServiceImpl struct {
	repo     repository.TaxPackRepositoryInterface
	cache    cache.Cache[model.Country, model.TaxPack]
	fallback FallbackFunc
}

// NewTaxPackService creates a tax pack service. repo and c may be nil.
func NewTaxPackService(repo repository.TaxPackRepositoryInterface, c cache.Cache[model.Country, model.TaxPack], fallback FallbackFunc) *TaxPackServiceImpl {
	return &TaxPackServiceImpl{repo: repo, cache: c, fallback: fallback}
}

func (s *TaxPackServiceImpl) GetActive(ctx context.Context, country model.Country) (model.TaxPack, error) {
	if !country.IsSupported() {
		return nil, &model.UnsupportedJurisdictionError{Country: country}
	}
	if s.cache != nil {
		if pack, ok := s.cache.Get(country); ok {
			return pack, nil
		}
	}
	if s.repo == nil {
		return s.fallbackPack(country)
	}

	doc, err := s.repo.GetActive(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("load active %s tax pack: %w", country, err)
	}
	if doc == nil {
		return s.fallbackPack(country)
	}

	pack, err := doc.ToModel()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(country, pack)
	}
	return pack, nil
}

func (s *TaxPackServiceImpl) fallbackPack(country model.Country) (model.TaxPack, error) {
	if s.fallback == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrTaxPackNotFound, country)
	}
	return s.fallback(country)
}

func (s *TaxPackServiceImpl) Create(ctx context.Context, pack model.TaxPack, createdBy string) (*model.TaxPackVersion, error) {
	if pack == nil {
		return nil, model.NewInvalidInput("tax_pack", "is required")
	}
	if err := pack.Validate(); err != nil {
		return nil, err
	}
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	doc, err := repository.NewTaxPackDocument(pack, createdBy)
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(pack.Country())
	}

	logger.FromContext(ctx).Info().
		Str("country", string(pack.Country())).
		Int("version", stored.Version).
		Str("period", pack.Period().String()).
		Msg("Tax pack activated")

	return &model.TaxPackVersion{
		Version:   stored.Version,
		Active:    stored.Active,
		CreatedBy: stored.CreatedBy,
		CreatedAt: stored.CreatedAt,
		UpdatedAt: stored.UpdatedAt,
		Pack:      pack,
	}, nil
}

func (s *TaxPackServiceImpl) List(ctx context.Context, country model.Country, limit int) ([]model.TaxPackVersion, error) {
	if !country.IsSupported() {
		return nil, &model.UnsupportedJurisdictionError{Country: country}
	}
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	docs, err := s.repo.List(ctx, country, limit)
	if err != nil {
		return nil, err
	}

	versions := make([]model.TaxPackVersion, 0, len(docs))
	for i := range docs {
		pack, err := docs[i].ToModel()
		if err != nil {
			return nil, err
		}
		versions = append(versions, model.TaxPackVersion{
			Version:   docs[i].Version,
			Active:    docs[i].Active,
			CreatedBy: docs[i].CreatedBy,
			CreatedAt: docs[i].CreatedAt,
			UpdatedAt: docs[i].UpdatedAt,
			Pack:      pack,
		})
	}
	return versions, nil
}

func (s *TaxPackServiceImpl) Seed(ctx context.Context, packs ...model.TaxPack) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	for _, pack := range packs {
		active, err := s.repo.GetActive(ctx, pack.Country())
		if err != nil {
			return fmt.Errorf("seed %s tax pack: %w", pack.Country(), err)
		}
		if active != nil {
			continue
		}
		if _, err := s.Create(ctx, pack, SystemActor); err != nil {
			return fmt.Errorf("seed %s tax pack: %w", pack.Country(), err)
		}
	}
	return nil
}
