package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/payroll-service/internal/domain/dto"
	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/middleware"
	"github.com/guttosm/payroll-service/internal/service"
)

// Handler provides HTTP handlers for payroll calculation routes.
type Handler struct {
	calculator service.PayrollCalculator
	packs      service.TaxPackService
	runner     service.PeriodRunner
	audit      middleware.LogSink
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithTaxPacks makes calculations use the active stored pack of their country.
func WithTaxPacks(packs service.TaxPackService) HandlerOption {
	return func(h *Handler) {
		h.packs = packs
	}
}

// WithRunner enables the period run routes.
func WithRunner(runner service.PeriodRunner) HandlerOption {
	return func(h *Handler) {
		h.runner = runner
	}
}

// WithAuditSink records calculations and runs in the audit trail.
func WithAuditSink(sink middleware.LogSink) HandlerOption {
	return func(h *Handler) {
		h.audit = sink
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.PayrollCalculator, opts ...HandlerOption) *Handler {
	h := &Handler{calculator: calculator}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// CalculatePayroll handles POST /api/payroll/calculate requests.
//
// @Summary      Calculate monthly payroll
// @Description  Calculates PAYE, statutory contributions, deductions and net pay for one employee. Uses the active tax pack of the country unless the request embeds one.
// @Tags         Payroll
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Response language (en, af)"
// @Param        request body dto.CalculatePayrollRequest true "Employee monthly figures"
// @Success      200 {object} dto.SuccessResponse{data=dto.PayslipResponse} "Payslip"
// @Failure      400 {object} dto.ErrorResponse "Invalid input or unsupported country"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/payroll/calculate [post]
func (h *Handler) CalculatePayroll(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CalculatePayrollRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		_ = c.Error(err)
		return
	}

	customPack := in.TaxPack != nil
	if !customPack && h.packs != nil {
		pack, err := h.packs.GetActive(c.Request.Context(), in.Country)
		if err != nil {
			_ = c.Error(err)
			return
		}
		in.TaxPack = pack
	}

	res, err := h.calculator.CalculatePayroll(in)
	middleware.AuditLog(h.audit, c, middleware.AuditEvent{
		Action:  model.ActionCalculate,
		Country: in.Country,
		Message: "Payroll calculated",
		Fields: map[string]interface{}{
			"custom_tax_pack": customPack,
			"tax_period":      res.TaxPeriod.String(),
		},
		Err: err,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	builder.SuccessOK(dto.NewPayslipResponse(res))
}

// RunPayroll handles POST /api/payroll/runs requests.
//
// @Summary      Run company payroll for a month
// @Description  Calculates every employee of a company for one month with company level levies, stores the payslips and returns them with period totals. Totals are sums of the rounded payslip amounts.
// @Tags         Payroll
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Response language (en, af)"
// @Param        request body dto.PeriodRunRequest true "Company period run"
// @Success      201 {object} dto.SuccessResponse{data=dto.RunResponse} "Completed run"
// @Failure      400 {object} dto.ErrorResponse "Invalid input or unsupported country"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Payslip storage unavailable"
// @Failure      504 {object} dto.ErrorResponse "Run did not finish in time"
// @Security     ApiKeyAuth
// @Router       /api/payroll/runs [post]
func (h *Handler) RunPayroll(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.PeriodRunRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	run, err := req.ToModel()
	if err != nil {
		_ = c.Error(err)
		return
	}

	res, err := h.runner.Run(c.Request.Context(), run)
	event := middleware.AuditEvent{
		Action:  model.ActionRunPeriod,
		Country: run.Country,
		Message: "Payroll run completed",
		Fields: map[string]interface{}{
			"period":    run.Period().String(),
			"employees": len(run.Employees),
		},
		Err: err,
	}
	if err != nil {
		event.Message = "Payroll run failed"
	} else {
		event.Fields["run_id"] = res.RunID
	}
	middleware.AuditLog(h.audit, c, event)
	if err != nil {
		_ = c.Error(err)
		return
	}

	builder.SuccessCreated(dto.NewRunResultResponse(res))
}

// GetRunPayslips handles GET /api/payroll/runs/:id/payslips requests.
//
// @Summary      Get the payslips of a run
// @Description  Returns the stored payslips of a completed run ordered by employee id, with totals.
// @Tags         Payroll
// @Produce      json
// @Param        id path string true "Run id"
// @Success      200 {object} dto.SuccessResponse{data=dto.RunResponse} "Stored run"
// @Failure      404 {object} dto.ErrorResponse "Unknown run"
// @Failure      503 {object} dto.ErrorResponse "Payslip storage unavailable"
// @Security     ApiKeyAuth
// @Router       /api/payroll/runs/{id}/payslips [get]
func (h *Handler) GetRunPayslips(c *gin.Context) {
	runID := c.Param("id")
	res, err := h.runner.StoredRun(c.Request.Context(), runID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if len(res.Payslips) == 0 {
		_ = c.Error(model.ErrPayrollRunNotFound)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.NewRunResultResponse(res))
}
