package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// PayrollRoutes registers calculation and period run routes.
type PayrollRoutes struct {
	handler *Handler
}

// NewPayrollRoutes creates a new PayrollRoutes instance.
func NewPayrollRoutes(handler *Handler) *PayrollRoutes {
	return &PayrollRoutes{handler: handler}
}

// RegisterRoutes registers /payroll routes. Run routes need a runner.
func (r *PayrollRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	payroll := rg.Group("/payroll")
	payroll.POST("/calculate", r.handler.CalculatePayroll)
	if r.handler.runner != nil {
		payroll.POST("/runs", r.handler.RunPayroll)
		payroll.GET("/runs/:id/payslips", r.handler.GetRunPayslips)
	}
}

// TaxPackRoutes registers tax pack management routes.
type TaxPackRoutes struct {
	handler *TaxPacksHandler
}

// NewTaxPackRoutes creates a new TaxPackRoutes instance.
func NewTaxPackRoutes(handler *TaxPacksHandler) *TaxPackRoutes {
	return &TaxPackRoutes{handler: handler}
}

// RegisterRoutes registers /tax-packs routes.
func (r *TaxPackRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	packs := rg.Group("/tax-packs")
	packs.GET("/:country", r.handler.GetActiveTaxPack)
	packs.PUT("/:country", r.handler.UpdateTaxPack)
	packs.GET("/:country/history", r.handler.ListTaxPacks)
}

// AuditRoutes registers the audit trail route.
type AuditRoutes struct {
	handler *AuditHandler
}

// NewAuditRoutes creates a new AuditRoutes instance.
func NewAuditRoutes(handler *AuditHandler) *AuditRoutes {
	return &AuditRoutes{handler: handler}
}

// RegisterRoutes registers /audit-logs.
func (r *AuditRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/audit-logs", r.handler.ListAuditLogs)
}
