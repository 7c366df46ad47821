package dto

import (
	"time"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/payslip"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PayslipResponse is a rendered payslip with the amounts only its
// jurisdiction produces.
//
// @Description Payslip rounded to cents with formatted amounts
type PayslipResponse struct {
	payslip.Payslip
	Details map[string]payslip.Amount `json:"details,omitempty"`
} // @name PayslipResponse

// NewPayslipResponse renders res.
func NewPayslipResponse(res model.PayrollResult) PayslipResponse {
	resp := PayslipResponse{Payslip: payslip.Present(res)}
	switch d := res.Details.(type) {
	case model.NamibiaDetails:
		resp.Details = map[string]payslip.Amount{
			"ssc_employee": payslip.NewAmount(res.Country, d.SSCEmployee),
			"ssc_employer": payslip.NewAmount(res.Country, d.SSCEmployer),
			"vet_levy":     payslip.NewAmount(res.Country, d.VETLevy),
		}
	case model.SouthAfricaDetails:
		resp.Details = map[string]payslip.Amount{
			"uif_employee":           payslip.NewAmount(res.Country, d.UIFEmployee),
			"uif_employer":           payslip.NewAmount(res.Country, d.UIFEmployer),
			"sdl":                    payslip.NewAmount(res.Country, d.SDL),
			"medical_aid_tax_credit": payslip.NewAmount(res.Country, d.MedicalAidTaxCredit),
			"pension_deduction":      payslip.NewAmount(res.Country, d.PensionDeduction),
		}
	}
	return resp
}

// EmployeePayslipResponse is one employee's payslip within a run.
type EmployeePayslipResponse struct {
	EmployeeID string `json:"employee_id" example:"E-001"`
	PayslipResponse
} // @name EmployeePayslipResponse

// RunTotalsResponse sums the rounded payslips of a run, so each total
// equals the sum of the amounts shown on the payslips.
type RunTotalsResponse struct {
	GrossSalary       payslip.Amount `json:"gross_salary"`
	PAYE              payslip.Amount `json:"paye"`
	TotalDeductions   payslip.Amount `json:"total_deductions"`
	NetSalary         payslip.Amount `json:"net_salary"`
	TotalEmployerCost payslip.Amount `json:"total_employer_cost"`
} // @name RunTotalsResponse

// RunResponse is the outcome of a payroll run.
//
// @Description Payslips of every employee of a run with period totals
type RunResponse struct {
	RunID     string                    `json:"run_id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Country   model.Country             `json:"country" example:"ZA"`
	Period    string                    `json:"period" example:"2025-03"`
	Employees int                       `json:"employees" example:"2"`
	Payslips  []EmployeePayslipResponse `json:"payslips"`
	Totals    RunTotalsResponse         `json:"totals"`
} // @name RunResponse

// NewRunResponse renders the payslips of a run in the given order.
func NewRunResponse(runID string, country model.Country, period model.PackPeriod, slips []model.EmployeePayslip) RunResponse {
	rendered := lo.Map(slips, func(s model.EmployeePayslip, _ int) EmployeePayslipResponse {
		return EmployeePayslipResponse{EmployeeID: s.EmployeeID, PayslipResponse: NewPayslipResponse(s.Result)}
	})

	zero := payslip.NewAmount(country, decimal.Zero)
	totals := lo.Reduce(rendered, func(t RunTotalsResponse, p EmployeePayslipResponse, _ int) RunTotalsResponse {
		add := func(a, b payslip.Amount) payslip.Amount {
			return payslip.NewAmount(country, a.Value.Add(b.Value))
		}
		return RunTotalsResponse{
			GrossSalary:       add(t.GrossSalary, p.GrossSalary),
			PAYE:              add(t.PAYE, p.PAYE),
			TotalDeductions:   add(t.TotalDeductions, p.TotalDeductions),
			NetSalary:         add(t.NetSalary, p.NetSalary),
			TotalEmployerCost: add(t.TotalEmployerCost, p.TotalEmployerCost),
		}
	}, RunTotalsResponse{zero, zero, zero, zero, zero})

	return RunResponse{
		RunID:     runID,
		Country:   country,
		Period:    period.String(),
		Employees: len(rendered),
		Payslips:  rendered,
		Totals:    totals,
	}
}

// NewRunResultResponse renders a completed run.
func NewRunResultResponse(res *model.PeriodRunResult) RunResponse {
	return NewRunResponse(res.RunID, res.Country, res.Period, res.Payslips)
}

// TaxPackResponse is a stored tax pack version.
//
// @Description Tax pack with version metadata
type TaxPackResponse struct {
	Country   model.Country `json:"country" example:"NA"`
	Period    string        `json:"period" example:"2025-03"`
	Version   int           `json:"version,omitempty" example:"3"`
	Active    bool          `json:"active" example:"true"`
	CreatedBy string        `json:"created_by,omitempty" example:"payroll-admin"`
	CreatedAt *time.Time    `json:"created_at,omitempty"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
	Pack      model.TaxPack `json:"pack" swaggertype:"object"`
} // @name TaxPackResponse

// NewTaxPackResponse renders pack without version metadata, as used for
// built-in packs that were never stored.
func NewTaxPackResponse(pack model.TaxPack) TaxPackResponse {
	return TaxPackResponse{
		Country: pack.Country(),
		Period:  pack.Period().String(),
		Active:  true,
		Pack:    pack,
	}
}

// NewTaxPackVersionResponse renders a stored version.
func NewTaxPackVersionResponse(v model.TaxPackVersion) TaxPackResponse {
	resp := NewTaxPackResponse(v.Pack)
	resp.Version = v.Version
	resp.Active = v.Active
	resp.CreatedBy = v.CreatedBy
	resp.CreatedAt = &v.CreatedAt
	resp.UpdatedAt = &v.UpdatedAt
	return resp
}

// AuditLogListResponse is a page of audit log entries.
//
// @Description Audit log entries, newest first
type AuditLogListResponse struct {
	Entries []model.LogEntry `json:"entries"`
	Total   int64            `json:"total" example:"42"`
	Limit   int              `json:"limit" example:"50"`
	Skip    int              `json:"skip" example:"0"`
} // @name AuditLogListResponse
