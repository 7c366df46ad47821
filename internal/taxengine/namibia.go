package taxengine

import (
	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// NamibiaCalculator computes Namibian PAYE, social security and VET levy
// from one tax pack.
type NamibiaCalculator struct {
	pack *model.NamibiaTaxPack
}

// NewNamibiaCalculator returns a calculator bound to pack.
func NewNamibiaCalculator(pack *model.NamibiaTaxPack) *NamibiaCalculator {
	return &NamibiaCalculator{pack: pack}
}

// Pack returns the tax pack the calculator uses.
func (c *NamibiaCalculator) Pack() *model.NamibiaTaxPack {
	return c.pack
}

// PAYE returns the monthly tax on a monthly taxable income.
func (c *NamibiaCalculator) PAYE(monthlyTaxable decimal.Decimal) decimal.Decimal {
	return Monthly(BracketTax(Annualize(monthlyTaxable), c.pack.PAYEBrackets))
}

// SSC returns the social security contribution on gross, clamped to the
// pack's floor and ceiling.
func (c *NamibiaCalculator) SSC(gross decimal.Decimal, employer bool) decimal.Decimal {
	rate := c.pack.SSCEmployeeRate
	if employer {
		rate = c.pack.SSCEmployerRate
	}
	return CappedContribution(gross, rate, decimal.NewNullDecimal(c.pack.SSCMinCeiling), c.pack.SSCMaxCeiling)
}

// VETLevy returns the levy on gross when payroll reaches N$1,000,000 a year.
func (c *NamibiaCalculator) VETLevy(gross, payroll decimal.Decimal) decimal.Decimal {
	return Levy(gross, payroll, c.pack.VETLevyRate, VETLevyThreshold)
}

// Calculate runs the full Namibian payroll for in. Pension and medical aid
// reduce taxable income; net pay and employer cost follow from the totals.
// Line items are left to the caller.
func (c *NamibiaCalculator) Calculate(in model.PayrollInput) model.PayrollResult {
	gross := in.GrossSalary
	taxable := gross.Sub(in.Pension).Sub(in.MedicalAid)
	paye := c.PAYE(taxable)

	details := model.NamibiaDetails{
		SSCEmployee: decimal.Zero,
		SSCEmployer: decimal.Zero,
		VETLevy:     decimal.Zero,
	}
	if in.SSCEnabled() {
		details.SSCEmployee = c.SSC(gross, false)
		details.SSCEmployer = c.SSC(gross, true)
	}
	if in.VETLevyEnabled() {
		details.VETLevy = c.VETLevy(gross, in.LevyBase())
	}

	totalDeductions := paye.
		Add(details.EmployeeContribution()).
		Add(in.MedicalAid).
		Add(in.Pension).
		Add(in.OtherDeductions)

	return model.PayrollResult{
		Country:           model.CountryNamibia,
		GrossSalary:       gross,
		TaxableIncome:     taxable,
		PAYE:              paye,
		MedicalAid:        in.MedicalAid,
		Pension:           in.Pension,
		OtherDeductions:   in.OtherDeductions,
		TotalDeductions:   totalDeductions,
		NetSalary:         gross.Sub(totalDeductions),
		TotalEmployerCost: gross.Add(details.EmployerCharges()),
		Details:           details,
		TaxPeriod:         c.pack.Period(),
	}
}
