// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"
	"time"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// DateLayout is the format of dates in request bodies.
const DateLayout = "2006-01-02"

// CalculatePayrollRequest represents the JSON request body for a single
// employee's monthly calculation.
//
// Amounts are accepted as JSON strings or numbers. Omitted flags take the
// engine defaults: SSC and UIF on, SDL and VET levy off.
//
// @Description Request to calculate one employee's monthly payroll
// @Example {"country": "NA", "gross_salary": "20000", "pension": "1000"}
type CalculatePayrollRequest struct {
	Country           model.Country    `json:"country" binding:"required,country" example:"NA"`
	GrossSalary       *decimal.Decimal `json:"gross_salary" binding:"required" swaggertype:"string" example:"20000"`
	Age               *int             `json:"age,omitempty" binding:"omitempty,gte=0,lte=150" example:"30"`
	MedicalAid        decimal.Decimal  `json:"medical_aid" swaggertype:"string" example:"500"`
	MedicalAidMembers int              `json:"medical_aid_members" binding:"gte=0" example:"2"`
	Pension           decimal.Decimal  `json:"pension" swaggertype:"string" example:"1000"`
	OtherDeductions   decimal.Decimal  `json:"other_deductions" swaggertype:"string" example:"0"`
	SSCApplicable     *bool            `json:"ssc_applicable,omitempty"`
	UIFApplicable     *bool            `json:"uif_applicable,omitempty"`
	SDLApplicable     *bool            `json:"sdl_applicable,omitempty"`
	VETLevyApplicable *bool            `json:"vet_levy_applicable,omitempty"`
	// LevyPayroll is the company's monthly payroll for the levy thresholds.
	LevyPayroll *decimal.Decimal `json:"levy_payroll,omitempty" swaggertype:"string" example:"150000"`
	// TaxPack replaces the active pack of Country for this calculation only.
	TaxPack *TaxPackRequest `json:"tax_pack,omitempty"`
} // @name CalculatePayrollRequest

// ToInput converts the request into engine input.
func (r *CalculatePayrollRequest) ToInput() (model.PayrollInput, error) {
	in := model.PayrollInput{
		Country:           r.Country,
		Age:               r.Age,
		MedicalAid:        r.MedicalAid,
		MedicalAidMembers: r.MedicalAidMembers,
		Pension:           r.Pension,
		OtherDeductions:   r.OtherDeductions,
		SSCApplicable:     r.SSCApplicable,
		UIFApplicable:     r.UIFApplicable,
		SDLApplicable:     r.SDLApplicable,
		VETLevyApplicable: r.VETLevyApplicable,
		LevyPayroll:       r.LevyPayroll,
	}
	if r.GrossSalary == nil {
		return model.PayrollInput{}, model.NewInvalidInput("gross_salary", "is required")
	}
	in.GrossSalary = *r.GrossSalary

	if r.TaxPack != nil {
		pack, err := r.TaxPack.ToModel(r.Country)
		if err != nil {
			return model.PayrollInput{}, err
		}
		in.TaxPack = pack
	}
	return in, nil
}

// BracketRequest is one PAYE bracket. A missing max marks the top bracket.
//
// @Description Annual PAYE bracket
type BracketRequest struct {
	Min         *decimal.Decimal `json:"min" binding:"required" swaggertype:"string" example:"100000"`
	Max         *decimal.Decimal `json:"max,omitempty" swaggertype:"string" example:"300000"`
	Rate        *decimal.Decimal `json:"rate" binding:"required" swaggertype:"string" example:"0.25"`
	FixedAmount *decimal.Decimal `json:"fixed_amount,omitempty" swaggertype:"string" example:"9000"`
} // @name BracketRequest

// TaxPackRequest represents a tax pack in a request body. Which rate fields
// are required depends on the country the pack is for.
//
// @Description Tax pack for one country and period
type TaxPackRequest struct {
	Year         int              `json:"year" binding:"required,gte=1900" example:"2025"`
	Month        int              `json:"month" binding:"required,min=1,max=12" example:"3"`
	PAYEBrackets []BracketRequest `json:"paye_brackets" binding:"required,min=1,dive"`

	SSCEmployeeRate *decimal.Decimal `json:"ssc_employee_rate,omitempty" swaggertype:"string" example:"0.009"`
	SSCEmployerRate *decimal.Decimal `json:"ssc_employer_rate,omitempty" swaggertype:"string" example:"0.009"`
	SSCMinCeiling   *decimal.Decimal `json:"ssc_min_ceiling,omitempty" swaggertype:"string" example:"500"`
	SSCMaxCeiling   *decimal.Decimal `json:"ssc_max_ceiling,omitempty" swaggertype:"string" example:"11000"`
	VETLevyRate     *decimal.Decimal `json:"vet_levy_rate,omitempty" swaggertype:"string" example:"0.01"`

	PrimaryRebate   *decimal.Decimal `json:"primary_rebate,omitempty" swaggertype:"string" example:"17235"`
	SecondaryRebate *decimal.Decimal `json:"secondary_rebate,omitempty" swaggertype:"string" example:"9444"`
	TertiaryRebate  *decimal.Decimal `json:"tertiary_rebate,omitempty" swaggertype:"string" example:"3145"`
	UIFEmployeeRate *decimal.Decimal `json:"uif_employee_rate,omitempty" swaggertype:"string" example:"0.01"`
	UIFEmployerRate *decimal.Decimal `json:"uif_employer_rate,omitempty" swaggertype:"string" example:"0.01"`
	UIFMaxCeiling   *decimal.Decimal `json:"uif_max_ceiling,omitempty" swaggertype:"string" example:"17712"`
	SDLRate         *decimal.Decimal `json:"sdl_rate,omitempty" swaggertype:"string" example:"0.01"`
} // @name TaxPackRequest

// requiredFields reads pointer fields, remembering the first missing one.
type requiredFields struct {
	err error
}

func (f *requiredFields) get(field string, d *decimal.Decimal) decimal.Decimal {
	if d != nil {
		return *d
	}
	if f.err == nil {
		f.err = model.NewInvalidInput(field, "is required")
	}
	return decimal.Zero
}

// ToModel builds the pack of country. Rates of the other country are
// rejected. It does not validate bracket contiguity or rate ranges; callers
// run TaxPack.Validate.
func (r *TaxPackRequest) ToModel(country model.Country) (model.TaxPack, error) {
	var f requiredFields

	brackets := make(model.BracketTable, len(r.PAYEBrackets))
	for i, b := range r.PAYEBrackets {
		field := fmt.Sprintf("paye_brackets[%d]", i)
		brackets[i] = model.TaxBracket{
			Min:  f.get(field+".min", b.Min),
			Rate: f.get(field+".rate", b.Rate),
		}
		if b.Max != nil {
			brackets[i].Max = decimal.NewNullDecimal(*b.Max)
		}
		if b.FixedAmount != nil {
			brackets[i].FixedAmount = *b.FixedAmount
		}
	}
	if f.err != nil {
		return nil, f.err
	}

	return model.NewTaxPack(country, model.PackPeriod{Year: r.Year, Month: r.Month}, brackets, model.PackRates{
		SSCEmployeeRate: r.SSCEmployeeRate,
		SSCEmployerRate: r.SSCEmployerRate,
		SSCMinCeiling:   r.SSCMinCeiling,
		SSCMaxCeiling:   r.SSCMaxCeiling,
		VETLevyRate:     r.VETLevyRate,
		PrimaryRebate:   r.PrimaryRebate,
		SecondaryRebate: r.SecondaryRebate,
		TertiaryRebate:  r.TertiaryRebate,
		UIFEmployeeRate: r.UIFEmployeeRate,
		UIFEmployerRate: r.UIFEmployerRate,
		UIFMaxCeiling:   r.UIFMaxCeiling,
		SDLRate:         r.SDLRate,
	})
}

// EmployeeRequest is one employee of a period run.
//
// @Description Employee monthly figures
type EmployeeRequest struct {
	EmployeeID        string           `json:"employee_id" binding:"required,max=64" example:"E-001"`
	GrossSalary       *decimal.Decimal `json:"gross_salary" binding:"required" swaggertype:"string" example:"20000"`
	DateOfBirth       string           `json:"date_of_birth,omitempty" binding:"omitempty,datetime=2006-01-02" example:"1985-06-30"`
	MedicalAid        decimal.Decimal  `json:"medical_aid" swaggertype:"string" example:"0"`
	MedicalAidMembers int              `json:"medical_aid_members" binding:"gte=0" example:"0"`
	Pension           decimal.Decimal  `json:"pension" swaggertype:"string" example:"0"`
	OtherDeductions   decimal.Decimal  `json:"other_deductions" swaggertype:"string" example:"0"`
	SSCApplicable     *bool            `json:"ssc_applicable,omitempty"`
	UIFApplicable     *bool            `json:"uif_applicable,omitempty"`
} // @name EmployeeRequest

// PeriodRunRequest represents the JSON request body for a company's
// monthly payroll run.
//
// @Description Monthly payroll run for every employee of a company
type PeriodRunRequest struct {
	Country           model.Country     `json:"country" binding:"required,country" example:"ZA"`
	Year              int               `json:"year" binding:"required,gte=1900" example:"2025"`
	Month             int               `json:"month" binding:"required,min=1,max=12" example:"3"`
	VETLevyApplicable *bool             `json:"vet_levy_applicable,omitempty"`
	SDLApplicable     *bool             `json:"sdl_applicable,omitempty"`
	CompanyPayroll    *decimal.Decimal  `json:"company_payroll,omitempty" swaggertype:"string" example:"150000"`
	Employees         []EmployeeRequest `json:"employees" binding:"required,min=1,dive"`
} // @name PeriodRunRequest

// ToModel converts the request into a period run.
func (r *PeriodRunRequest) ToModel() (model.PeriodRun, error) {
	run := model.PeriodRun{
		Country:           r.Country,
		Year:              r.Year,
		Month:             r.Month,
		VETLevyApplicable: r.VETLevyApplicable,
		SDLApplicable:     r.SDLApplicable,
		CompanyPayroll:    r.CompanyPayroll,
		Employees:         make([]model.EmployeeRecord, len(r.Employees)),
	}
	for i, e := range r.Employees {
		if e.GrossSalary == nil {
			return model.PeriodRun{}, model.NewInvalidInput(fmt.Sprintf("employees[%d].gross_salary", i), "is required")
		}
		rec := model.EmployeeRecord{
			EmployeeID:        e.EmployeeID,
			GrossSalary:       *e.GrossSalary,
			MedicalAid:        e.MedicalAid,
			MedicalAidMembers: e.MedicalAidMembers,
			Pension:           e.Pension,
			OtherDeductions:   e.OtherDeductions,
			SSCApplicable:     e.SSCApplicable,
			UIFApplicable:     e.UIFApplicable,
		}
		if e.DateOfBirth != "" {
			dob, err := time.Parse(DateLayout, e.DateOfBirth)
			if err != nil {
				return model.PeriodRun{}, model.NewInvalidInput(fmt.Sprintf("employees[%d].date_of_birth", i), "%q is not YYYY-MM-DD", e.DateOfBirth)
			}
			rec.DateOfBirth = &dob
		}
		run.Employees[i] = rec
	}
	return run, nil
}
