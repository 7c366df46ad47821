package repository

import (
	"testing"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayslipDocument(t *testing.T) {
	slip := model.EmployeePayslip{
		EmployeeID: "emp-7",
		Result: model.PayrollResult{
			Country:           model.CountryNamibia,
			GrossSalary:       decimal.NewFromInt(20000),
			TaxableIncome:     decimal.NewFromInt(18500),
			PAYE:              decimal.RequireFromString("3291.6666666666666667"),
			TotalDeductions:   decimal.RequireFromString("5090.6666666666666667"),
			NetSalary:         decimal.RequireFromString("14909.3333333333333333"),
			TotalEmployerCost: decimal.NewFromInt(20099),
			TaxPeriod:         model.PackPeriod{Year: 2025, Month: 3},
			LineItems: []model.PayslipLineItem{
				{Type: model.LineItemEarning, Code: model.CodeBasic, Description: "Basic Salary", Amount: decimal.NewFromInt(20000)},
				{Type: model.LineItemDeduction, Code: model.CodePAYE, Description: "PAYE", Amount: decimal.RequireFromString("3291.6666666666666667")},
			},
		},
	}

	doc, err := NewPayslipDocument("run-1", model.PackPeriod{Year: 2025, Month: 7}, slip)
	require.NoError(t, err)

	assert.Equal(t, "run-1", doc.RunID)
	assert.Equal(t, "2025-07", doc.PeriodID)
	assert.Equal(t, "2025-03", doc.TaxPeriod)
	assert.Equal(t, "emp-7", doc.EmployeeID)
	assert.Equal(t, "NA", doc.Country)
	assert.Equal(t, "3291.6666666666666667", doc.PAYE.String())
	assert.Equal(t, "20099", doc.TotalEmployerCost.String())
	require.Len(t, doc.LineItems, 2)
	assert.Equal(t, "EARNING", doc.LineItems[0].Type)
	assert.Equal(t, "PAYE", doc.LineItems[1].Code)
	assert.True(t, doc.ID.IsZero(), "ids are assigned on insert")
}

func TestPayslipDocument_ToModel(t *testing.T) {
	rate := decimal.RequireFromString("0.009")
	one := decimal.NewFromInt(1)
	gross := decimal.NewFromInt(20000)
	slip := model.EmployeePayslip{
		EmployeeID: "emp-7",
		Result: model.PayrollResult{
			Country:           model.CountryNamibia,
			GrossSalary:       gross,
			TaxableIncome:     decimal.NewFromInt(18500),
			PAYE:              decimal.RequireFromString("3291.6666666666666667"),
			MedicalAid:        decimal.NewFromInt(1500),
			TotalDeductions:   decimal.RequireFromString("4890.6666666666666667"),
			NetSalary:         decimal.RequireFromString("15109.3333333333333333"),
			TotalEmployerCost: decimal.NewFromInt(20099),
			TaxPeriod:         model.PackPeriod{Year: 2025, Month: 3},
			LineItems: []model.PayslipLineItem{
				{Type: model.LineItemEarning, Code: model.CodeBasic, Description: "Basic Salary", Amount: gross, Quantity: &one, Rate: &gross},
				{Type: model.LineItemDeduction, Code: model.CodeSSCEE, Description: "Social Security (Employee)", Amount: decimal.NewFromInt(99), Rate: &rate},
				{Type: model.LineItemDeduction, Code: model.CodeMedAid, Description: "Medical Aid", Amount: decimal.NewFromInt(1500)},
			},
		},
	}

	doc, err := NewPayslipDocument("run-1", model.PackPeriod{Year: 2025, Month: 7}, slip)
	require.NoError(t, err)
	require.NotNil(t, doc.LineItems[1].Rate)
	assert.Nil(t, doc.LineItems[1].Quantity)

	got, err := doc.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "emp-7", got.EmployeeID)
	assert.Equal(t, model.CountryNamibia, got.Result.Country)
	assert.Equal(t, model.PackPeriod{Year: 2025, Month: 3}, got.Result.TaxPeriod)
	assert.True(t, got.Result.PAYE.Equal(slip.Result.PAYE))
	assert.True(t, got.Result.NetSalary.Equal(slip.Result.NetSalary))
	assert.True(t, got.Result.MedicalAid.Equal(decimal.NewFromInt(1500)))
	assert.Nil(t, got.Result.Details)
	require.Len(t, got.Result.LineItems, 3)
	assert.True(t, got.Result.LineItems[0].Quantity.Equal(one))
	assert.True(t, got.Result.LineItems[1].Rate.Equal(rate))
	assert.Nil(t, got.Result.LineItems[2].Rate)

	period, err := doc.Period()
	require.NoError(t, err)
	assert.Equal(t, model.PackPeriod{Year: 2025, Month: 7}, period)
}

func TestPayslipDocument_ToModelErrors(t *testing.T) {
	doc, err := NewPayslipDocument("run-1", model.PackPeriod{Year: 2025, Month: 3}, model.EmployeePayslip{
		EmployeeID: "emp-1",
		Result:     model.PayrollResult{Country: model.CountrySouthAfrica, TaxPeriod: model.PackPeriod{Year: 2025, Month: 3}},
	})
	require.NoError(t, err)

	doc.TaxPeriod = "March"
	_, err = doc.ToModel()
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	doc.PeriodID = "2025-13"
	_, err = doc.Period()
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
