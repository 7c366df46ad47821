package repository

import (
	"context"

	"github.com/guttosm/payroll-service/internal/domain/model"
)

// TaxPackRepositoryInterface defines the tax pack storage operations.
type TaxPackRepositoryInterface interface {
	GetActive(ctx context.Context, country model.Country) (*TaxPackDocument, error)
	Create(ctx context.Context, doc *TaxPackDocument) (*TaxPackDocument, error)
	List(ctx context.Context, country model.Country, limit int) ([]TaxPackDocument, error)
}

// PayslipRepositoryInterface defines the payslip storage operations.
type PayslipRepositoryInterface interface {
	CreateMany(ctx context.Context, docs []*PayslipDocument) error
	ListByRun(ctx context.Context, runID string) ([]PayslipDocument, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
