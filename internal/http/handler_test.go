package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/guttosm/payroll-service/internal/circuitbreaker"
	"github.com/guttosm/payroll-service/internal/domain/dto"
	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/middleware"
	"github.com/guttosm/payroll-service/internal/mocks"
	"github.com/guttosm/payroll-service/internal/service"
	"github.com/guttosm/payroll-service/internal/taxengine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingSink keeps audit entries in memory.
type recordingSink struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (s *recordingSink) Log(entry *model.LogEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return true
}

func (s *recordingSink) Entries() []*model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.LogEntry(nil), s.entries...)
}

const testAPIKey = "test-key"

// newTestEngine mounts groups under /api behind the request id, error
// handler and API key middleware. The test key authenticates "payroll-admin".
func newTestEngine(groups ...RouteGroup) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	api := r.Group("/api", middleware.APIKeyAuth(map[string]string{testAPIKey: "payroll-admin"}))
	for _, g := range groups {
		g.RegisterRoutes(api)
	}
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success response into T.
func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var resp struct {
		Data      T      `json:"data"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	assert.NotEmpty(t, resp.RequestID)
	return resp.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

const flatNamibiaPack = `{"year": 2025, "month": 3,
	"paye_brackets": [{"min": "0", "rate": "0.1"}],
	"ssc_employee_rate": "0.009", "ssc_employer_rate": "0.009",
	"ssc_min_ceiling": "500", "ssc_max_ceiling": "11000", "vet_levy_rate": "0.01"}`

func TestHandler_CalculatePayroll(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setupPacks  func(*mocks.MockTaxPackService)
		wantStatus  int
		wantPAYE    string
		wantNet     string
		wantMessage string
		wantDetails map[string]string
		wantAudit   bool
		wantCustom  bool
	}{
		{
			name:       "namibia with active pack",
			body:       `{"country": "NA", "gross_salary": "20000", "pension": "1000", "medical_aid": "500", "other_deductions": "200"}`,
			setupPacks: func(m *mocks.MockTaxPackService) {
				m.On("GetActive", mock.Anything, model.CountryNamibia).Return(taxengine.DefaultNamibiaPack(), nil)
			},
			wantStatus: http.StatusOK,
			wantPAYE:   "N$ 3,291.67",
			wantNet:    "N$ 14,909.33",
			wantAudit:  true,
		},
		{
			name:       "embedded tax pack skips the stored one",
			body:       `{"country": "NA", "gross_salary": "10000", "ssc_applicable": false, "tax_pack": ` + flatNamibiaPack + `}`,
			wantStatus: http.StatusOK,
			wantPAYE:   "N$ 1,000.00",
			wantNet:    "N$ 9,000.00",
			wantAudit:  true,
			wantCustom: true,
		},
		{
			name:        "missing fields",
			body:        `{"medical_aid_members": 1}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
			wantDetails: map[string]string{"country": "required", "gross_salary": "required"},
		},
		{
			name:        "unsupported country",
			body:        `{"country": "BW", "gross_salary": "20000"}`,
			setupPacks: func(m *mocks.MockTaxPackService) {
				m.On("GetActive", mock.Anything, model.Country("BW")).
					Return(nil, &model.UnsupportedJurisdictionError{Country: "BW"})
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Payroll is not supported for this country",
			wantDetails: map[string]string{"country": "BW"},
		},
		{
			name:        "embedded pack missing a rate",
			body:        `{"country": "NA", "gross_salary": "20000", "tax_pack": {"year": 2025, "month": 3, "paye_brackets": [{"min": "0", "rate": "0.1"}]}}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "The payroll input is invalid",
			wantDetails: map[string]string{"ssc_employee_rate": "is required"},
		},
		{
			name: "negative gross salary",
			body: `{"country": "ZA", "gross_salary": "-1"}`,
			setupPacks: func(m *mocks.MockTaxPackService) {
				m.On("GetActive", mock.Anything, model.CountrySouthAfrica).Return(taxengine.DefaultSouthAfricaPack(), nil)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "The payroll input is invalid",
			wantAudit:   true,
		},
		{
			name: "tax pack storage down",
			body: `{"country": "ZA", "gross_salary": "30000"}`,
			setupPacks: func(m *mocks.MockTaxPackService) {
				m.On("GetActive", mock.Anything, model.CountrySouthAfrica).Return(nil, circuitbreaker.ErrCircuitOpen)
			},
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: "Storage is not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packs := &mocks.MockTaxPackService{}
			if tt.setupPacks != nil {
				tt.setupPacks(packs)
			}
			sink := &recordingSink{}
			h := NewHandler(service.NewPayrollEngine(), WithTaxPacks(packs), WithAuditSink(sink))
			r := newTestEngine(NewPayrollRoutes(h))

			w := doRequest(r, http.MethodPost, "/api/payroll/calculate", tt.body)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusOK {
				slip := decodeData[dto.PayslipResponse](t, w)
				assert.Equal(t, model.CountryNamibia, slip.Country)
				assert.Equal(t, tt.wantPAYE, slip.PAYE.Formatted)
				assert.Equal(t, tt.wantNet, slip.NetSalary.Formatted)
				assert.Contains(t, slip.Details, "ssc_employee")
			} else {
				resp := decodeError(t, w)
				assert.Equal(t, tt.wantMessage, resp.Message)
				if tt.wantDetails != nil {
					assert.Equal(t, tt.wantDetails, resp.Details)
				}
			}

			entries := sink.Entries()
			if !tt.wantAudit {
				assert.Empty(t, entries)
			} else {
				require.Len(t, entries, 1)
				assert.Equal(t, model.ActionCalculate, entries[0].ActionType)
				assert.Equal(t, "payroll-admin", entries[0].Actor)
				assert.Equal(t, tt.wantCustom, entries[0].Fields["custom_tax_pack"])
				if tt.wantStatus != http.StatusOK {
					assert.Equal(t, "error", entries[0].Level)
				}
			}
			packs.AssertExpectations(t)
		})
	}
}

func TestHandler_CalculatePayroll_BuiltInPacks(t *testing.T) {
	r := newTestEngine(NewPayrollRoutes(NewHandler(service.NewPayrollEngine())))

	w := doRequest(r, http.MethodPost, "/api/payroll/calculate",
		`{"country": "ZA", "gross_salary": "30000", "age": 40, "medical_aid_members": 2}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	slip := decodeData[dto.PayslipResponse](t, w)
	assert.Equal(t, model.CountrySouthAfrica, slip.Country)
	assert.Equal(t, "R", slip.Currency)
	assert.Contains(t, slip.Details, "medical_aid_tax_credit")
	assert.True(t, slip.NetSalary.Value.Add(slip.TotalDeductions.Value).Equal(slip.GrossSalary.Value))
}

func TestHandler_RunPayroll(t *testing.T) {
	body := `{"country": "ZA", "year": 2025, "month": 3, "employees": [
		{"employee_id": "E-2", "gross_salary": "20000", "date_of_birth": "1950-01-15"},
		{"employee_id": "E-1", "gross_salary": "30000", "pension": "1500"}]}`

	t.Run("completed run", func(t *testing.T) {
		sink := &recordingSink{}
		runner := service.NewPayrollRunner(service.NewPayrollEngine())
		r := newTestEngine(NewPayrollRoutes(NewHandler(service.NewPayrollEngine(), WithRunner(runner), WithAuditSink(sink))))

		w := doRequest(r, http.MethodPost, "/api/payroll/runs", body)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		run := decodeData[dto.RunResponse](t, w)
		assert.NotEmpty(t, run.RunID)
		assert.Equal(t, model.CountrySouthAfrica, run.Country)
		assert.Equal(t, "2025-03", run.Period)
		assert.Equal(t, 2, run.Employees)
		require.Len(t, run.Payslips, 2)
		assert.Equal(t, "E-2", run.Payslips[0].EmployeeID)
		assert.Equal(t, "R 50,000.00", run.Totals.GrossSalary.Formatted)

		entries := sink.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, model.ActionRunPeriod, entries[0].ActionType)
		assert.Equal(t, run.RunID, entries[0].Fields["run_id"])
		assert.Equal(t, "info", entries[0].Level)
	})

	t.Run("run that times out", func(t *testing.T) {
		sink := &recordingSink{}
		runner := &mocks.MockPeriodRunner{}
		runner.On("Run", mock.Anything, mock.MatchedBy(func(run model.PeriodRun) bool {
			return run.Country == model.CountrySouthAfrica && len(run.Employees) == 2
		})).Return(nil, context.DeadlineExceeded)
		r := newTestEngine(NewPayrollRoutes(NewHandler(service.NewPayrollEngine(), WithRunner(runner), WithAuditSink(sink))))

		w := doRequest(r, http.MethodPost, "/api/payroll/runs", body)

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		entries := sink.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "Payroll run failed", entries[0].Message)
		assert.Equal(t, "error", entries[0].Level)
		runner.AssertExpectations(t)
	})

	t.Run("invalid period", func(t *testing.T) {
		runner := &mocks.MockPeriodRunner{}
		r := newTestEngine(NewPayrollRoutes(NewHandler(service.NewPayrollEngine(), WithRunner(runner))))

		w := doRequest(r, http.MethodPost, "/api/payroll/runs",
			`{"country": "ZA", "year": 2025, "month": 0, "employees": [{"employee_id": "E-1", "gross_salary": "1"}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string]string{"month": "required"}, decodeError(t, w).Details)
		runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
	})

	t.Run("routes need a runner", func(t *testing.T) {
		r := newTestEngine(NewPayrollRoutes(NewHandler(service.NewPayrollEngine())))

		w := doRequest(r, http.MethodPost, "/api/payroll/runs", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_GetRunPayslips(t *testing.T) {
	engine := service.NewPayrollEngine()
	res, err := engine.CalculatePayroll(model.PayrollInput{
		Country:     model.CountryNamibia,
		GrossSalary: decimal.RequireFromString("20000"),
	})
	require.NoError(t, err)
	stored := &model.PeriodRunResult{
		RunID:    "run-1",
		Country:  model.CountryNamibia,
		Period:   model.PackPeriod{Year: 2025, Month: 7},
		Payslips: []model.EmployeePayslip{{EmployeeID: "E-1", Result: res}, {EmployeeID: "E-2", Result: res}},
	}

	tests := []struct {
		name       string
		run        *model.PeriodRunResult
		err        error
		wantStatus int
	}{
		{
			name:       "stored run",
			run:        stored,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown run",
			err:        model.ErrPayrollRunNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "run without payslips",
			run:        &model.PeriodRunResult{RunID: "run-1"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "storage not configured",
			err:        service.ErrRepositoryNotConfigured,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mocks.MockPeriodRunner{}
			if tt.err != nil {
				runner.On("StoredRun", mock.Anything, "run-1").Return(nil, tt.err)
			} else {
				runner.On("StoredRun", mock.Anything, "run-1").Return(tt.run, nil)
			}
			r := newTestEngine(NewPayrollRoutes(NewHandler(engine, WithRunner(runner))))

			w := doRequest(r, http.MethodGet, "/api/payroll/runs/run-1/payslips", "")

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			switch tt.wantStatus {
			case http.StatusOK:
				run := decodeData[dto.RunResponse](t, w)
				assert.Equal(t, "run-1", run.RunID)
				assert.Equal(t, model.CountryNamibia, run.Country)
				assert.Equal(t, "2025-07", run.Period)
				assert.Equal(t, 2, run.Employees)
				assert.Equal(t, "N$ 40,000.00", run.Totals.GrossSalary.Formatted)
			case http.StatusNotFound:
				assert.Equal(t, "No payslips found for this payroll run", decodeError(t, w).Message)
			}
			runner.AssertExpectations(t)
		})
	}
}

func TestTaxPacksHandler_GetActiveTaxPack(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(*mocks.MockTaxPackService)
		wantStatus int
	}{
		{
			name: "lowercase country",
			path: "/api/tax-packs/na",
			setup: func(m *mocks.MockTaxPackService) {
				m.On("GetActive", mock.Anything, model.CountryNamibia).Return(taxengine.DefaultNamibiaPack(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unsupported country",
			path: "/api/tax-packs/BW",
			setup: func(m *mocks.MockTaxPackService) {
				m.On("GetActive", mock.Anything, model.Country("BW")).
					Return(nil, &model.UnsupportedJurisdictionError{Country: "BW"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "no pack",
			path: "/api/tax-packs/ZA",
			setup: func(m *mocks.MockTaxPackService) {
				m.On("GetActive", mock.Anything, model.CountrySouthAfrica).Return(nil, model.ErrTaxPackNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packs := &mocks.MockTaxPackService{}
			tt.setup(packs)
			r := newTestEngine(NewTaxPackRoutes(NewTaxPacksHandler(packs, nil)))

			w := doRequest(r, http.MethodGet, tt.path, "")

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusOK {
				data := decodeData[map[string]interface{}](t, w)
				assert.Equal(t, "NA", data["country"])
				assert.Equal(t, true, data["active"])
				assert.NotContains(t, data, "version")
				assert.Contains(t, data, "pack")
			}
			packs.AssertExpectations(t)
		})
	}
}

func TestTaxPacksHandler_UpdateTaxPack(t *testing.T) {
	t.Run("stores a new version", func(t *testing.T) {
		packs := &mocks.MockTaxPackService{}
		packs.On("Create", mock.Anything, mock.MatchedBy(func(p model.TaxPack) bool {
			return p.Country() == model.CountryNamibia && p.Period() == model.PackPeriod{Year: 2025, Month: 3}
		}), "payroll-admin").Return(&model.TaxPackVersion{
			Version:   2,
			Active:    true,
			CreatedBy: "payroll-admin",
			Pack:      taxengine.DefaultNamibiaPack(),
		}, nil)
		sink := &recordingSink{}
		r := newTestEngine(NewTaxPackRoutes(NewTaxPacksHandler(packs, sink)))

		w := doRequest(r, http.MethodPut, "/api/tax-packs/NA", flatNamibiaPack)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := decodeData[map[string]interface{}](t, w)
		assert.Equal(t, float64(2), data["version"])
		assert.Equal(t, "payroll-admin", data["created_by"])

		entries := sink.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, model.ActionUpdateTaxPack, entries[0].ActionType)
		assert.Equal(t, 2, entries[0].Fields["version"])
		assert.Equal(t, "2025-03", entries[0].Fields["period"])
		packs.AssertExpectations(t)
	})

	t.Run("missing rate", func(t *testing.T) {
		packs := &mocks.MockTaxPackService{}
		r := newTestEngine(NewTaxPackRoutes(NewTaxPacksHandler(packs, nil)))

		w := doRequest(r, http.MethodPut, "/api/tax-packs/NA",
			`{"year": 2025, "month": 3, "paye_brackets": [{"min": "0", "rate": "0.1"}]}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "The tax pack is invalid", resp.Message)
		assert.Equal(t, map[string]string{"ssc_employee_rate": "is required"}, resp.Details)
		packs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejected by validation", func(t *testing.T) {
		packs := &mocks.MockTaxPackService{}
		packs.On("Create", mock.Anything, mock.Anything, "payroll-admin").
			Return(nil, model.NewInvalidInput("paye_brackets[0].min", "first bracket must start at 0"))
		sink := &recordingSink{}
		r := newTestEngine(NewTaxPackRoutes(NewTaxPacksHandler(packs, sink)))

		w := doRequest(r, http.MethodPut, "/api/tax-packs/NA", flatNamibiaPack)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "The tax pack is invalid", decodeError(t, w).Message)
		require.Len(t, sink.Entries(), 1)
		assert.Equal(t, "Tax pack rejected", sink.Entries()[0].Message)
	})

	t.Run("unsupported country keeps its message", func(t *testing.T) {
		packs := &mocks.MockTaxPackService{}
		r := newTestEngine(NewTaxPackRoutes(NewTaxPacksHandler(packs, nil)))

		w := doRequest(r, http.MethodPut, "/api/tax-packs/BW", flatNamibiaPack)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Payroll is not supported for this country", decodeError(t, w).Message)
	})

	t.Run("storage down", func(t *testing.T) {
		packs := &mocks.MockTaxPackService{}
		packs.On("Create", mock.Anything, mock.Anything, "payroll-admin").Return(nil, service.ErrRepositoryNotConfigured)
		r := newTestEngine(NewTaxPackRoutes(NewTaxPacksHandler(packs, nil)))

		w := doRequest(r, http.MethodPut, "/api/tax-packs/NA", flatNamibiaPack)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestTaxPacksHandler_ListTaxPacks(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{name: "default limit", query: "", wantLimit: DefaultHistoryLimit},
		{name: "explicit limit", query: "?limit=5", wantLimit: 5},
		{name: "invalid limit", query: "?limit=abc", wantLimit: DefaultHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pack := taxengine.DefaultSouthAfricaPack()
			packs := &mocks.MockTaxPackService{}
			packs.On("List", mock.Anything, model.CountrySouthAfrica, tt.wantLimit).Return([]model.TaxPackVersion{
				{Version: 2, Active: true, Pack: pack},
				{Version: 1, Active: false, Pack: pack},
			}, nil)
			r := newTestEngine(NewTaxPackRoutes(NewTaxPacksHandler(packs, nil)))

			w := doRequest(r, http.MethodGet, "/api/tax-packs/za/history"+tt.query, "")

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			data := decodeData[[]map[string]interface{}](t, w)
			require.Len(t, data, 2)
			assert.Equal(t, float64(2), data[0]["version"])
			assert.Equal(t, true, data[0]["active"])
			assert.Equal(t, false, data[1]["active"])
			packs.AssertExpectations(t)
		})
	}
}

func TestAuditHandler_ListAuditLogs(t *testing.T) {
	t.Run("storage not configured", func(t *testing.T) {
		r := newTestEngine(NewAuditRoutes(NewAuditHandler(nil)))

		w := doRequest(r, http.MethodGet, "/api/audit-logs", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("filters and pages", func(t *testing.T) {
		logs := &mocks.MockLoggingService{}
		matches := mock.MatchedBy(func(o model.LogQueryOptions) bool {
			return o.ActionType == model.ActionUpdateTaxPack &&
				o.AuditOnly &&
				o.Country == model.CountrySouthAfrica &&
				o.Limit == MaxAuditLimit &&
				o.Skip == 10 &&
				o.StartTime != nil && o.StartTime.Year() == 2025 &&
				o.EndTime == nil
		})
		logs.On("QueryLogs", mock.Anything, matches).Return([]model.LogEntry{
			{Message: "Tax pack activated", ActionType: model.ActionUpdateTaxPack, Country: model.CountrySouthAfrica},
		}, nil)
		logs.On("CountLogs", mock.Anything, matches).Return(int64(11), nil)
		r := newTestEngine(NewAuditRoutes(NewAuditHandler(logs)))

		w := doRequest(r, http.MethodGet,
			"/api/audit-logs?action=update_tax_pack&country=za&limit=1000&skip=10&since=2025-03-01T00:00:00Z", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := decodeData[dto.AuditLogListResponse](t, w)
		assert.Equal(t, int64(11), data.Total)
		assert.Equal(t, MaxAuditLimit, data.Limit)
		require.Len(t, data.Entries, 1)
		assert.Equal(t, "Tax pack activated", data.Entries[0].Message)
		logs.AssertExpectations(t)
	})

	t.Run("empty result", func(t *testing.T) {
		logs := &mocks.MockLoggingService{}
		logs.On("QueryLogs", mock.Anything, mock.Anything).Return(nil, nil)
		logs.On("CountLogs", mock.Anything, mock.Anything).Return(int64(0), nil)
		r := newTestEngine(NewAuditRoutes(NewAuditHandler(logs)))

		w := doRequest(r, http.MethodGet, "/api/audit-logs", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"entries":[]`)
		assert.Contains(t, w.Body.String(), `"limit":50`)
	})

	t.Run("invalid time filter", func(t *testing.T) {
		logs := &mocks.MockLoggingService{}
		r := newTestEngine(NewAuditRoutes(NewAuditHandler(logs)))

		w := doRequest(r, http.MethodGet, "/api/audit-logs?until=yesterday", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Details, "until")
		logs.AssertNotCalled(t, "QueryLogs", mock.Anything, mock.Anything)
	})

	t.Run("query failure", func(t *testing.T) {
		logs := &mocks.MockLoggingService{}
		logs.On("QueryLogs", mock.Anything, mock.Anything).Return(nil, errors.New("mongo down"))
		logs.On("CountLogs", mock.Anything, mock.Anything).Return(int64(0), nil).Maybe()
		r := newTestEngine(NewAuditRoutes(NewAuditHandler(logs)))

		w := doRequest(r, http.MethodGet, "/api/audit-logs", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
