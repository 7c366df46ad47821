// Package taxengine implements the Namibian and South African payroll tax
// rules. Every function is pure: no I/O, no clock, no shared state.
package taxengine

import (
	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// Annualize converts a monthly amount to its annual equivalent.
func Annualize(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(monthsPerYear)
}

// Monthly converts an annual amount to its monthly equivalent.
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(monthsPerYear)
}

// BracketTax returns the annual tax owed on annualIncome under table.
// Income no bracket covers (negative income) owes nothing.
func BracketTax(annualIncome decimal.Decimal, table model.BracketTable) decimal.Decimal {
	b, ok := table.Find(annualIncome)
	if !ok {
		return decimal.Zero
	}
	return b.Tax(annualIncome)
}
