// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockTaxPackRepositoryInterface struct {
	mock.Mock
}

func (m *MockTaxPackRepositoryInterface) GetActive(ctx context.Context, country model.Country) (*repository.TaxPackDocument, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TaxPackDocument), args.Error(1)
}

func (m *MockTaxPackRepositoryInterface) Create(ctx context.Context, doc *repository.TaxPackDocument) (*repository.TaxPackDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TaxPackDocument), args.Error(1)
}

func (m *MockTaxPackRepositoryInterface) List(ctx context.Context, country model.Country, limit int) ([]repository.TaxPackDocument, error) {
	args := m.Called(ctx, country, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TaxPackDocument), args.Error(1)
}

type MockPayslipRepositoryInterface struct {
	mock.Mock
}

func (m *MockPayslipRepositoryInterface) CreateMany(ctx context.Context, docs []*repository.PayslipDocument) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}

func (m *MockPayslipRepositoryInterface) ListByRun(ctx context.Context, runID string) ([]repository.PayslipDocument, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PayslipDocument), args.Error(1)
}

type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.LogEntryDocument), args.Error(1)
}

func (m *MockLogsRepositoryInterface) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
