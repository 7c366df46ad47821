// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

type MockTaxPackService struct {
	mock.Mock
}

func (m *MockTaxPackService) GetActive(ctx context.Context, country model.Country) (model.TaxPack, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.TaxPack), args.Error(1)
}

func (m *MockTaxPackService) Create(ctx context.Context, pack model.TaxPack, createdBy string) (*model.TaxPackVersion, error) {
	args := m.Called(ctx, pack, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaxPackVersion), args.Error(1)
}

func (m *MockTaxPackService) List(ctx context.Context, country model.Country, limit int) ([]model.TaxPackVersion, error) {
	args := m.Called(ctx, country, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TaxPackVersion), args.Error(1)
}

func (m *MockTaxPackService) Seed(ctx context.Context, packs ...model.TaxPack) error {
	args := m.Called(ctx, packs)
	return args.Error(0)
}

type MockPeriodRunner struct {
	mock.Mock
}

func (m *MockPeriodRunner) Run(ctx context.Context, run model.PeriodRun) (*model.PeriodRunResult, error) {
	args := m.Called(ctx, run)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PeriodRunResult), args.Error(1)
}

func (m *MockPeriodRunner) StoredRun(ctx context.Context, runID string) (*model.PeriodRunResult, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PeriodRunResult), args.Error(1)
}
