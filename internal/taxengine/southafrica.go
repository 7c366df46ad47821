package taxengine

import (
	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

const (
	// SecondaryRebateAge is the age from which the secondary rebate applies.
	SecondaryRebateAge = 65
	// TertiaryRebateAge is the age from which the tertiary rebate applies.
	TertiaryRebateAge = 75
)

var (
	// MedicalCreditMainMember is the monthly credit for the first member.
	MedicalCreditMainMember = decimal.NewFromInt(364)
	// MedicalCreditDependant is the monthly credit for each further member.
	MedicalCreditDependant = decimal.NewFromInt(246)
	// PensionDeductionCap is the share of gross that pension may reduce
	// taxable income by.
	PensionDeductionCap = decimal.RequireFromString("0.275")
)

// SouthAfricaCalculator computes South African PAYE, UIF and SDL from one
// tax pack.
type SouthAfricaCalculator struct {
	pack *model.SouthAfricaTaxPack
}

// NewSouthAfricaCalculator returns a calculator bound to pack.
func NewSouthAfricaCalculator(pack *model.SouthAfricaTaxPack) *SouthAfricaCalculator {
	return &SouthAfricaCalculator{pack: pack}
}

// Pack returns the tax pack the calculator uses.
func (c *SouthAfricaCalculator) Pack() *model.SouthAfricaTaxPack {
	return c.pack
}

// Rebate returns the stacked annual rebate for age.
func (c *SouthAfricaCalculator) Rebate(age int) decimal.Decimal {
	rebate := c.pack.PrimaryRebate
	if age >= SecondaryRebateAge {
		rebate = rebate.Add(c.pack.SecondaryRebate)
	}
	if age >= TertiaryRebateAge {
		rebate = rebate.Add(c.pack.TertiaryRebate)
	}
	return rebate
}

// AnnualPAYE returns bracket tax less age rebates, never negative.
func (c *SouthAfricaCalculator) AnnualPAYE(annualTaxable decimal.Decimal, age int) decimal.Decimal {
	tax := BracketTax(annualTaxable, c.pack.PAYEBrackets).Sub(c.Rebate(age))
	return decimal.Max(tax, decimal.Zero)
}

// MonthlyPAYE returns the monthly PAYE before medical aid credits.
func (c *SouthAfricaCalculator) MonthlyPAYE(monthlyTaxable decimal.Decimal, age int) decimal.Decimal {
	return Monthly(c.AnnualPAYE(Annualize(monthlyTaxable), age))
}

// MedicalAidTaxCredit returns the monthly credit for members covered:
// 364 for the main member and 246 for every member after the first.
func MedicalAidTaxCredit(members int) decimal.Decimal {
	if members <= 0 {
		return decimal.Zero
	}
	return MedicalCreditMainMember.Add(MedicalCreditDependant.Mul(decimal.NewFromInt(int64(members - 1))))
}

// PensionDeduction returns pension capped at 27.5% of gross.
func PensionDeduction(gross, pension decimal.Decimal) decimal.Decimal {
	return decimal.Min(pension, gross.Mul(PensionDeductionCap))
}

// UIF returns the unemployment insurance contribution on gross, capped at
// the pack ceiling. There is no floor.
func (c *SouthAfricaCalculator) UIF(gross decimal.Decimal, employer bool) decimal.Decimal {
	rate := c.pack.UIFEmployeeRate
	if employer {
		rate = c.pack.UIFEmployerRate
	}
	return CappedContribution(gross, rate, decimal.NullDecimal{}, c.pack.UIFMaxCeiling)
}

// SDL returns the skills levy on gross when payroll exceeds R500,000 a year.
func (c *SouthAfricaCalculator) SDL(gross, payroll decimal.Decimal) decimal.Decimal {
	return Levy(gross, payroll, c.pack.SDLRate, SDLThreshold)
}

// Calculate runs the full South African payroll for in. Only the capped
// pension reduces taxable income, while total deductions use the raw pension
// and medical aid amounts.
func (c *SouthAfricaCalculator) Calculate(in model.PayrollInput) model.PayrollResult {
	gross := in.GrossSalary
	pensionDeduction := PensionDeduction(gross, in.Pension)
	taxable := gross.Sub(pensionDeduction)
	credit := MedicalAidTaxCredit(in.MedicalAidMembers)
	paye := decimal.Max(c.MonthlyPAYE(taxable, in.EffectiveAge()).Sub(credit), decimal.Zero)

	details := model.SouthAfricaDetails{
		UIFEmployee:         decimal.Zero,
		UIFEmployer:         decimal.Zero,
		SDL:                 decimal.Zero,
		MedicalAidTaxCredit: credit,
		PensionDeduction:    pensionDeduction,
	}
	if in.UIFEnabled() {
		details.UIFEmployee = c.UIF(gross, false)
		details.UIFEmployer = c.UIF(gross, true)
	}
	if in.SDLEnabled() {
		details.SDL = c.SDL(gross, in.LevyBase())
	}

	totalDeductions := paye.
		Add(details.EmployeeContribution()).
		Add(in.Pension).
		Add(in.MedicalAid).
		Add(in.OtherDeductions)

	return model.PayrollResult{
		Country:           model.CountrySouthAfrica,
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
