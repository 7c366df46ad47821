package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/payroll-service/internal/mocks"
	"github.com/guttosm/payroll-service/internal/service"
	"github.com/stretchr/testify/assert"
)

func registeredRoutes(groups ...RouteGroup) []string {
	r := gin.New()
	api := r.Group("/api")
	for _, g := range groups {
		g.RegisterRoutes(api)
	}
	routes := make([]string, 0)
	for _, info := range r.Routes() {
		routes = append(routes, info.Method+" "+info.Path)
	}
	return routes
}

func TestPayrollRoutes_RegisterRoutes(t *testing.T) {
	engine := service.NewPayrollEngine()

	tests := []struct {
		name    string
		handler *Handler
		want    []string
	}{
		{
			name:    "calculation only",
			handler: NewHandler(engine),
			want:    []string{http.MethodPost + " /api/payroll/calculate"},
		},
		{
			name:    "with runner",
			handler: NewHandler(engine, WithRunner(&mocks.MockPeriodRunner{})),
			want: []string{
				http.MethodPost + " /api/payroll/calculate",
				http.MethodPost + " /api/payroll/runs",
				http.MethodGet + " /api/payroll/runs/:id/payslips",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, registeredRoutes(NewPayrollRoutes(tt.handler)))
		})
	}
}

func TestTaxPackRoutes_RegisterRoutes(t *testing.T) {
	routes := registeredRoutes(NewTaxPackRoutes(NewTaxPacksHandler(&mocks.MockTaxPackService{}, nil)))

	assert.ElementsMatch(t, []string{
		http.MethodGet + " /api/tax-packs/:country",
		http.MethodPut + " /api/tax-packs/:country",
		http.MethodGet + " /api/tax-packs/:country/history",
	}, routes)
}

func TestAuditRoutes_RegisterRoutes(t *testing.T) {
	routes := registeredRoutes(NewAuditRoutes(NewAuditHandler(nil)))

	assert.Equal(t, []string{http.MethodGet + " /api/audit-logs"}, routes)
}
