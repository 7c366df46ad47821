package service

import (
	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Line item descriptions printed on payslips.
const (
	descBasic      = "Basic Salary"
	descPAYE       = "Pay As You Earn Tax"
	descSSCEE      = "Social Security (Employee)"
	descSSCER      = "Social Security (Employer)"
	descUIFEE      = "UIF (Employee)"
	descUIFER      = "UIF (Employer)"
	descMedicalAid = "Medical Aid"
	descPension    = "Pension Fund"
	descOther      = "Other Deductions"
	descVETLevy    = "VET Levy"
	descSDL        = "Skills Development Levy"
)

type lineItems []model.PayslipLineItem

// add appends a line unless amount is zero.
func (l *lineItems) add(typ model.LineItemType, code, desc string, amount decimal.Decimal, rate *decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	*l = append(*l, model.PayslipLineItem{Type: typ, Code: code, Description: desc, Amount: amount, Rate: rate})
}

func ratePtr(d decimal.Decimal) *decimal.Decimal { return &d }

// buildLineItems projects res onto payslip lines: the basic salary earning,
// then deductions, then employer contributions. Zero amounts are omitted
// except for the basic salary line.
func buildLineItems(res model.PayrollResult, pack model.TaxPack) []model.PayslipLineItem {
	one := decimal.NewFromInt(1)
	items := lineItems{{
		Type:        model.LineItemEarning,
		Code:        model.CodeBasic,
		Description: descBasic,
		Amount:      res.GrossSalary,
		Quantity:    &one,
		Rate:        ratePtr(res.GrossSalary),
	}}

	items.add(model.LineItemDeduction, model.CodePAYE, descPAYE, res.PAYE, nil)

	switch d := res.Details.(type) {
	case model.NamibiaDetails:
		p, _ := pack.(*model.NamibiaTaxPack)
		items.add(model.LineItemDeduction, model.CodeSSCEE, descSSCEE, d.SSCEmployee, packRate(p, func(p *model.NamibiaTaxPack) decimal.Decimal { return p.SSCEmployeeRate }))
		items.addDeductions(res)
		items.add(model.LineItemEmployerContribution, model.CodeSSCER, descSSCER, d.SSCEmployer, packRate(p, func(p *model.NamibiaTaxPack) decimal.Decimal { return p.SSCEmployerRate }))
		items.add(model.LineItemEmployerContribution, model.CodeVET, descVETLevy, d.VETLevy, packRate(p, func(p *model.NamibiaTaxPack) decimal.Decimal { return p.VETLevyRate }))
	case model.SouthAfricaDetails:
		p, _ := pack.(*model.SouthAfricaTaxPack)
		items.add(model.LineItemDeduction, model.CodeUIFEE, descUIFEE, d.UIFEmployee, packRate(p, func(p *model.SouthAfricaTaxPack) decimal.Decimal { return p.UIFEmployeeRate }))
		items.addDeductions(res)
		items.add(model.LineItemEmployerContribution, model.CodeUIFER, descUIFER, d.UIFEmployer, packRate(p, func(p *model.SouthAfricaTaxPack) decimal.Decimal { return p.UIFEmployerRate }))
		items.add(model.LineItemEmployerContribution, model.CodeSDL, descSDL, d.SDL, packRate(p, func(p *model.SouthAfricaTaxPack) decimal.Decimal { return p.SDLRate }))
	default:
		items.addDeductions(res)
	}
	return items
}

func (l *lineItems) addDeductions(res model.PayrollResult) {
	l.add(model.LineItemDeduction, model.CodeMedAid, descMedicalAid, res.MedicalAid, nil)
	l.add(model.LineItemDeduction, model.CodePension, descPension, res.Pension, nil)
	l.add(model.LineItemDeduction, model.CodeOther, descOther, res.OtherDeductions, nil)
}

func packRate[P any](p *P, field func(*P) decimal.Decimal) *decimal.Decimal {
	if p == nil {
		return nil
	}
	return ratePtr(field(p))
}
