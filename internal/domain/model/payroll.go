package model

import (
	"github.com/shopspring/decimal"
)

// DefaultAge is assumed for rebate purposes when no age is supplied.
const DefaultAge = 30

// PayrollInput is the monthly calculation request for one employee.
//
// Optional flags are pointers: a nil SSCApplicable or UIFApplicable means
// true, a nil SDLApplicable or VETLevyApplicable means false.
type PayrollInput struct {
	Country           Country         `json:"country"`
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	Age               *int            `json:"age,omitempty"`
	MedicalAid        decimal.Decimal `json:"medical_aid"`
	MedicalAidMembers int             `json:"medical_aid_members"`
	Pension           decimal.Decimal `json:"pension"`
	OtherDeductions   decimal.Decimal `json:"other_deductions"`
	SSCApplicable     *bool           `json:"ssc_applicable,omitempty"`
	UIFApplicable     *bool           `json:"uif_applicable,omitempty"`
	SDLApplicable     *bool           `json:"sdl_applicable,omitempty"`
	VETLevyApplicable *bool           `json:"vet_levy_applicable,omitempty"`

	// LevyPayroll is the monthly payroll whose annualized value is tested
	// against the VET and SDL thresholds. Nil means GrossSalary.
	LevyPayroll *decimal.Decimal `json:"levy_payroll,omitempty"`

	// TaxPack overrides the engine's pack for the input's country.
	TaxPack TaxPack `json:"-"`
}

// EffectiveAge returns Age, or DefaultAge when it was not supplied.
func (in PayrollInput) EffectiveAge() int {
	if in.Age == nil {
		return DefaultAge
	}
	return *in.Age
}

// LevyBase returns the monthly amount levy thresholds are tested against.
func (in PayrollInput) LevyBase() decimal.Decimal {
	if in.LevyPayroll == nil {
		return in.GrossSalary
	}
	return *in.LevyPayroll
}

// SSCEnabled reports whether Namibian social security applies (default true).
func (in PayrollInput) SSCEnabled() bool { return flag(in.SSCApplicable, true) }

// UIFEnabled reports whether South African UIF applies (default true).
func (in PayrollInput) UIFEnabled() bool { return flag(in.UIFApplicable, true) }

// SDLEnabled reports whether the South African skills levy applies (default false).
func (in PayrollInput) SDLEnabled() bool { return flag(in.SDLApplicable, false) }

// VETLevyEnabled reports whether the Namibian VET levy applies (default false).
func (in PayrollInput) VETLevyEnabled() bool { return flag(in.VETLevyApplicable, false) }

// Validate rejects negative amounts, ages and member counts.
func (in PayrollInput) Validate() error {
	if in.GrossSalary.IsNegative() {
		return NewInvalidInput("gross_salary", "must not be negative")
	}
	if in.Age != nil && *in.Age < 0 {
		return NewInvalidInput("age", "must not be negative")
	}
	if in.MedicalAidMembers < 0 {
		return NewInvalidInput("medical_aid_members", "must not be negative")
	}
	if in.MedicalAid.IsNegative() {
		return NewInvalidInput("medical_aid", "must not be negative")
	}
	if in.Pension.IsNegative() {
		return NewInvalidInput("pension", "must not be negative")
	}
	if in.OtherDeductions.IsNegative() {
		return NewInvalidInput("other_deductions", "must not be negative")
	}
	if in.LevyPayroll != nil && in.LevyPayroll.IsNegative() {
		return NewInvalidInput("levy_payroll", "must not be negative")
	}
	return nil
}

func flag(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Bool returns a pointer to v, for populating optional flags.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for populating Age.
func Int(v int) *int { return &v }

// JurisdictionDetails holds the amounts only one jurisdiction produces.
// Implementations are NamibiaDetails and SouthAfricaDetails.
type JurisdictionDetails interface {
	// EmployeeContribution is the statutory amount withheld from the employee.
	EmployeeContribution() decimal.Decimal
	// EmployerCharges is the sum of statutory amounts paid by the employer.
	EmployerCharges() decimal.Decimal

	isJurisdictionDetails()
}

// NamibiaDetails are the Namibian statutory amounts.
type NamibiaDetails struct {
	SSCEmployee decimal.Decimal `json:"ssc_employee"`
	SSCEmployer decimal.Decimal `json:"ssc_employer"`
	VETLevy     decimal.Decimal `json:"vet_levy"`
}

func (d NamibiaDetails) EmployeeContribution() decimal.Decimal { return d.SSCEmployee }
func (d NamibiaDetails) EmployerCharges() decimal.Decimal {
	return d.SSCEmployer.Add(d.VETLevy)
}
func (NamibiaDetails) isJurisdictionDetails() {}

// SouthAfricaDetails are the South African statutory amounts and tax reliefs.
type SouthAfricaDetails struct {
	UIFEmployee         decimal.Decimal `json:"uif_employee"`
	UIFEmployer         decimal.Decimal `json:"uif_employer"`
	SDL                 decimal.Decimal `json:"sdl"`
	MedicalAidTaxCredit decimal.Decimal `json:"medical_aid_tax_credit"`
	PensionDeduction    decimal.Decimal `json:"pension_deduction"`
}

func (d SouthAfricaDetails) EmployeeContribution() decimal.Decimal { return d.UIFEmployee }
func (d SouthAfricaDetails) EmployerCharges() decimal.Decimal {
	return d.UIFEmployer.Add(d.SDL)
}
func (SouthAfricaDetails) isJurisdictionDetails() {}

// PayrollResult is the full monthly calculation for one employee.
// Amounts are unrounded; see package payslip for presentation.
type PayrollResult struct {
	Country           Country             `json:"country"`
	GrossSalary       decimal.Decimal     `json:"gross_salary"`
	TaxableIncome     decimal.Decimal     `json:"taxable_income"`
	PAYE              decimal.Decimal     `json:"paye"`
	MedicalAid        decimal.Decimal     `json:"medical_aid"`
	Pension           decimal.Decimal     `json:"pension"`
	OtherDeductions   decimal.Decimal     `json:"other_deductions"`
	TotalDeductions   decimal.Decimal     `json:"total_deductions"`
	NetSalary         decimal.Decimal     `json:"net_salary"`
	TotalEmployerCost decimal.Decimal     `json:"total_employer_cost"`
	Details           JurisdictionDetails `json:"details"`
	TaxPeriod         PackPeriod          `json:"tax_period"`
	LineItems         []PayslipLineItem   `json:"line_items"`
}

// Namibia returns the Namibian details, if any.
func (r PayrollResult) Namibia() (NamibiaDetails, bool) {
	d, ok := r.Details.(NamibiaDetails)
	return d, ok
}

// SouthAfrica returns the South African details, if any.
func (r PayrollResult) SouthAfrica() (SouthAfricaDetails, bool) {
	d, ok := r.Details.(SouthAfricaDetails)
	return d, ok
}

// LineItemType classifies a payslip line.
type LineItemType string

const (
	LineItemEarning              LineItemType = "EARNING"
	LineItemDeduction            LineItemType = "DEDUCTION"
	LineItemEmployerContribution LineItemType = "EMPLOYER_CONTRIBUTION"
)

// Payslip line codes.
const (
	CodeBasic   = "BASIC"
	CodePAYE    = "PAYE"
	CodeSSCEE   = "SSC_EE"
	CodeSSCER   = "SSC_ER"
	CodeUIFEE   = "UIF_EE"
	CodeUIFER   = "UIF_ER"
	CodeMedAid  = "MED_AID"
	CodePension = "PENSION"
	CodeOther   = "OTHER"
	CodeVET     = "VET"
	CodeSDL     = "SDL"
)

// PayslipLineItem is one printable payslip line.
type PayslipLineItem struct {
	Type        LineItemType     `json:"type"`
	Code        string           `json:"code"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
}
