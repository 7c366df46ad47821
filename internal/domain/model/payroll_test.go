package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollInput_Defaults(t *testing.T) {
	in := PayrollInput{Country: CountryNamibia, GrossSalary: decimal.NewFromInt(20000)}

	assert.Equal(t, DefaultAge, in.EffectiveAge())
	assert.True(t, in.SSCEnabled())
	assert.True(t, in.UIFEnabled())
	assert.False(t, in.SDLEnabled())
	assert.False(t, in.VETLevyEnabled())

	in.Age = Int(0)
	in.SSCApplicable = Bool(false)
	in.SDLApplicable = Bool(true)
	assert.Equal(t, 0, in.EffectiveAge())
	assert.False(t, in.SSCEnabled())
	assert.True(t, in.SDLEnabled())
}

func TestPayrollInput_Validate(t *testing.T) {
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name      string
		input     PayrollInput
		wantField string
	}{
		{name: "zero gross is valid", input: PayrollInput{}},
		{name: "negative gross", input: PayrollInput{GrossSalary: negative}, wantField: "gross_salary"},
		{name: "negative age", input: PayrollInput{Age: Int(-1)}, wantField: "age"},
		{name: "negative members", input: PayrollInput{MedicalAidMembers: -2}, wantField: "medical_aid_members"},
		{name: "negative medical aid", input: PayrollInput{MedicalAid: negative}, wantField: "medical_aid"},
		{name: "negative pension", input: PayrollInput{Pension: negative}, wantField: "pension"},
		{name: "negative other deductions", input: PayrollInput{OtherDeductions: negative}, wantField: "other_deductions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

func TestPayrollResult_Details(t *testing.T) {
	na := PayrollResult{Details: NamibiaDetails{
		SSCEmployee: decimal.NewFromInt(99),
		SSCEmployer: decimal.NewFromInt(99),
		VETLevy:     decimal.NewFromInt(10),
	}}
	d, ok := na.Namibia()
	require.True(t, ok)
	assert.Equal(t, "99", d.EmployeeContribution().String())
	assert.Equal(t, "109", d.EmployerCharges().String())
	_, ok = na.SouthAfrica()
	assert.False(t, ok)

	za := PayrollResult{Details: SouthAfricaDetails{UIFEmployer: decimal.NewFromInt(177), SDL: decimal.NewFromInt(500)}}
	zd, ok := za.SouthAfrica()
	require.True(t, ok)
	assert.Equal(t, "677", zd.EmployerCharges().String())
}
