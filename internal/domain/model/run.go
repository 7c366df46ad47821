package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRecord is one employee's monthly figures within a period run.
type EmployeeRecord struct {
	EmployeeID        string          `json:"employee_id"`
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	DateOfBirth       *time.Time      `json:"date_of_birth,omitempty"`
	MedicalAid        decimal.Decimal `json:"medical_aid"`
	MedicalAidMembers int             `json:"medical_aid_members"`
	Pension           decimal.Decimal `json:"pension"`
	OtherDeductions   decimal.Decimal `json:"other_deductions"`
	SSCApplicable     *bool           `json:"ssc_applicable,omitempty"`
	UIFApplicable     *bool           `json:"uif_applicable,omitempty"`
}

// AgeAt returns the employee's age in whole years on day, or nil when the
// date of birth is unknown.
func (e EmployeeRecord) AgeAt(day time.Time) *int {
	if e.DateOfBirth == nil {
		return nil
	}
	dob := e.DateOfBirth.UTC()
	day = day.UTC()
	age := day.Year() - dob.Year()
	if day.Month() < dob.Month() || (day.Month() == dob.Month() && day.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return &age
}

// PeriodRun is a monthly payroll run for every employee of one company.
// Employer levies are company level: VETLevyApplicable and SDLApplicable
// apply to every employee, and CompanyPayroll, when set, is the monthly
// payroll the levy thresholds are tested against.
type PeriodRun struct {
	Country           Country          `json:"country"`
	Year              int              `json:"year"`
	Month             int              `json:"month"`
	Employees         []EmployeeRecord `json:"employees"`
	VETLevyApplicable *bool            `json:"vet_levy_applicable,omitempty"`
	SDLApplicable     *bool            `json:"sdl_applicable,omitempty"`
	CompanyPayroll    *decimal.Decimal `json:"company_payroll,omitempty"`
}

// Period returns the run's year and month.
func (r PeriodRun) Period() PackPeriod {
	return PackPeriod{Year: r.Year, Month: r.Month}
}

// PeriodEnd returns the last day of the run's month in UTC.
func (r PeriodRun) PeriodEnd() time.Time {
	return time.Date(r.Year, time.Month(r.Month)+1, 0, 0, 0, 0, 0, time.UTC)
}

// Validate checks the period, the country and that employee ids are unique.
func (r PeriodRun) Validate() error {
	if !r.Country.IsSupported() {
		return &UnsupportedJurisdictionError{Country: r.Country}
	}
	if err := r.Period().validate(); err != nil {
		return err
	}
	if len(r.Employees) == 0 {
		return NewInvalidInput("employees", "at least one employee is required")
	}
	if r.CompanyPayroll != nil && r.CompanyPayroll.IsNegative() {
		return NewInvalidInput("company_payroll", "must not be negative")
	}
	seen := make(map[string]struct{}, len(r.Employees))
	for i, e := range r.Employees {
		if e.EmployeeID == "" {
			return NewInvalidInput("employees", "employee %d has no id", i)
		}
		if _, dup := seen[e.EmployeeID]; dup {
			return NewInvalidInput("employees", "duplicate employee id %q", e.EmployeeID)
		}
		seen[e.EmployeeID] = struct{}{}
	}
	return nil
}

// EmployeePayslip is the calculation result for one employee of a run.
type EmployeePayslip struct {
	EmployeeID string        `json:"employee_id"`
	Result     PayrollResult `json:"result"`
}

// RunTotals sums the payslips of a run.
type RunTotals struct {
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	PAYE              decimal.Decimal `json:"paye"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	TotalEmployerCost decimal.Decimal `json:"total_employer_cost"`
}

// PeriodRunResult is the outcome of a completed run.
// Payslips are in the order of PeriodRun.Employees.
type PeriodRunResult struct {
	RunID    string            `json:"run_id"`
	Country  Country           `json:"country"`
	Period   PackPeriod        `json:"period"`
	Payslips []EmployeePayslip `json:"payslips"`
	Totals   RunTotals         `json:"totals"`
}
