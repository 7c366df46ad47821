package taxengine

import (
	"github.com/shopspring/decimal"
)

// CappedContribution returns rate applied to gross clamped into
// [floor, ceiling]. An invalid floor clamps the ceiling only.
func CappedContribution(gross, rate decimal.Decimal, floor decimal.NullDecimal, ceiling decimal.Decimal) decimal.Decimal {
	base := gross
	if floor.Valid && base.LessThan(floor.Decimal) {
		base = floor.Decimal
	}
	if base.GreaterThan(ceiling) {
		base = ceiling
	}
	return base.Mul(rate)
}

// Threshold is an annual payroll level above which a levy becomes payable.
type Threshold struct {
	Annual decimal.Decimal
	// Inclusive makes a payroll exactly at Annual liable.
	Inclusive bool
}

var (
	// VETLevyThreshold is the Namibian N$1,000,000 annual payroll threshold.
	VETLevyThreshold = Threshold{Annual: decimal.NewFromInt(1_000_000), Inclusive: true}
	// SDLThreshold is the South African R500,000 annual payroll threshold.
	SDLThreshold = Threshold{Annual: decimal.NewFromInt(500_000)}
)

// Met reports whether the annualized monthly payroll reaches the threshold.
func (t Threshold) Met(monthlyPayroll decimal.Decimal) bool {
	annual := Annualize(monthlyPayroll)
	if t.Inclusive {
		return annual.GreaterThanOrEqual(t.Annual)
	}
	return annual.GreaterThan(t.Annual)
}

// Levy returns monthly × rate when payroll meets the threshold, zero otherwise.
func Levy(monthly, payroll, rate decimal.Decimal, threshold Threshold) decimal.Decimal {
	if !threshold.Met(payroll) {
		return decimal.Zero
	}
	return monthly.Mul(rate)
}
