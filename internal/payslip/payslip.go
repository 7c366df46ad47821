// Package payslip renders payroll results for display: amounts rounded to
// cents, totals recomputed from the rounded lines and currency formatting.
package payslip

import (
	"fmt"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Places is the number of decimal places shown on a payslip.
const Places = 2

// CurrencySymbol returns the symbol amounts of country are shown in.
func CurrencySymbol(country model.Country) string {
	switch country {
	case model.CountryNamibia:
		return "N$"
	case model.CountrySouthAfrica:
		return "R"
	default:
		return string(country)
	}
}

var printer = message.NewPrinter(language.English)

// Format renders d as "N$ 12,345.67", rounding half away from zero.
func Format(country model.Country, d decimal.Decimal) string {
	return CurrencySymbol(country) + " " + FormatNumber(d)
}

// FormatNumber renders d with comma thousands separators and two decimals.
func FormatNumber(d decimal.Decimal) string {
	fixed := d.Round(Places)
	sign := ""
	if fixed.IsNegative() {
		sign = "-"
		fixed = fixed.Neg()
	}
	whole := fixed.Truncate(0)
	cents := fixed.Sub(whole).Shift(Places).IntPart()
	return sign + printer.Sprintf("%d", whole.IntPart()) + fmt.Sprintf(".%02d", cents)
}

// Amount is a rounded amount with its display form.
type Amount struct {
	Value     decimal.Decimal `json:"value"`
	Formatted string          `json:"formatted"`
}

// Line is one rendered payslip line.
type Line struct {
	Type        model.LineItemType `json:"type"`
	Code        string             `json:"code"`
	Description string             `json:"description"`
	Amount      Amount             `json:"amount"`
	Quantity    *decimal.Decimal   `json:"quantity,omitempty"`
	Rate        *decimal.Decimal   `json:"rate,omitempty"`
}

// NewAmount rounds d to Places and formats it in country's currency.
func NewAmount(country model.Country, d decimal.Decimal) Amount {
	v := d.Round(Places)
	return Amount{Value: v, Formatted: Format(country, v)}
}

// Payslip is a payroll result ready for display. NetSalary plus
// TotalDeductions equals GrossSalary on the rounded values.
type Payslip struct {
	Country               model.Country `json:"country"`
	Currency              string        `json:"currency"`
	Period                string        `json:"period"`
	GrossSalary           Amount        `json:"gross_salary"`
	TaxableIncome         Amount        `json:"taxable_income"`
	PAYE                  Amount        `json:"paye"`
	TotalDeductions       Amount        `json:"total_deductions"`
	NetSalary             Amount        `json:"net_salary"`
	TotalEmployerCost     Amount        `json:"total_employer_cost"`
	Earnings              []Line        `json:"earnings"`
	Deductions            []Line        `json:"deductions"`
	EmployerContributions []Line        `json:"employer_contributions"`
}

// Present renders res. Lines that round to zero are dropped, except basic salary.
func Present(res model.PayrollResult) Payslip {
	amount := func(d decimal.Decimal) Amount {
		return NewAmount(res.Country, d)
	}

	p := Payslip{
		Country:               res.Country,
		Currency:              CurrencySymbol(res.Country),
		Period:                res.TaxPeriod.String(),
		Earnings:              []Line{},
		Deductions:            []Line{},
		EmployerContributions: []Line{},
	}

	gross := res.GrossSalary.Round(Places)
	deductions := decimal.Zero
	employer := decimal.Zero

	for _, item := range res.LineItems {
		rounded := item.Amount.Round(Places)
		if rounded.IsZero() && item.Code != model.CodeBasic {
			continue
		}
		line := Line{
			Type:        item.Type,
			Code:        item.Code,
			Description: item.Description,
			Amount:      amount(rounded),
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		}
		switch item.Type {
		case model.LineItemEarning:
			p.Earnings = append(p.Earnings, line)
		case model.LineItemDeduction:
			deductions = deductions.Add(rounded)
			p.Deductions = append(p.Deductions, line)
		case model.LineItemEmployerContribution:
			employer = employer.Add(rounded)
			p.EmployerContributions = append(p.EmployerContributions, line)
		}
	}

	p.GrossSalary = amount(gross)
	p.TaxableIncome = amount(res.TaxableIncome)
	p.PAYE = amount(res.PAYE)
	p.TotalDeductions = amount(deductions)
	p.NetSalary = amount(gross.Sub(deductions))
	p.TotalEmployerCost = amount(gross.Add(employer))
	return p
}
