package repository

import (
	"context"
	"errors"

	"github.com/guttosm/payroll-service/internal/circuitbreaker"
	"github.com/guttosm/payroll-service/internal/domain/model"
)

// TaxPackRepositoryWithCircuitBreaker wraps a tax pack repository with circuit breaker protection.
type TaxPackRepositoryWithCircuitBreaker struct {
	repo           TaxPackRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTaxPackRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewTaxPackRepositoryWithCircuitBreaker(repo TaxPackRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *TaxPackRepositoryWithCircuitBreaker {
	return &TaxPackRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// GetActive returns the active pack. An open circuit reports no pack so
// callers fall back to the built-in one.
func (r *TaxPackRepositoryWithCircuitBreaker) GetActive(ctx context.Context, country model.Country) (*TaxPackDocument, error) {
	doc, err := circuitbreaker.Call(ctx, r.circuitBreaker, func() (*TaxPackDocument, error) {
		return r.repo.GetActive(ctx, country)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return doc, err
}

// Create stores a new pack version with circuit breaker protection.
func (r *TaxPackRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *TaxPackDocument) (*TaxPackDocument, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*TaxPackDocument, error) {
		return r.repo.Create(ctx, doc)
	})
}

// List returns stored versions with circuit breaker protection.
func (r *TaxPackRepositoryWithCircuitBreaker) List(ctx context.Context, country model.Country, limit int) ([]TaxPackDocument, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]TaxPackDocument, error) {
		return r.repo.List(ctx, country, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *TaxPackRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// PayslipRepositoryWithCircuitBreaker wraps a payslip repository with circuit breaker protection.
type PayslipRepositoryWithCircuitBreaker struct {
	repo           PayslipRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPayslipRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPayslipRepositoryWithCircuitBreaker(repo PayslipRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PayslipRepositoryWithCircuitBreaker {
	return &PayslipRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// CreateMany stores a run's payslips with circuit breaker protection.
func (r *PayslipRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, docs []*PayslipDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, docs)
	})
}

// ListByRun returns a run's payslips with circuit breaker protection.
func (r *PayslipRepositoryWithCircuitBreaker) ListByRun(ctx context.Context, runID string) ([]PayslipDocument, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]PayslipDocument, error) {
		return r.repo.ListByRun(ctx, runID)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PayslipRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores a single log entry. Logging is non-critical, so an open
// circuit drops the entry silently.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries, dropping them when the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]*LogEntryDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
