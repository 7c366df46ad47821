package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRecord_AgeAt(t *testing.T) {
	day := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	dob := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name string
		dob  *time.Time
		want *int
	}{
		{name: "unknown", dob: nil, want: nil},
		{name: "birthday already passed", dob: dob(1960, time.January, 15), want: Int(65)},
		{name: "birthday on the day", dob: dob(1950, time.March, 31), want: Int(75)},
		{name: "birthday next month", dob: dob(1960, time.April, 1), want: Int(64)},
		{name: "born after the day", dob: dob(2026, time.January, 1), want: Int(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EmployeeRecord{DateOfBirth: tt.dob}.AgeAt(day)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestPeriodRun_PeriodEnd(t *testing.T) {
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		PeriodRun{Year: 2024, Month: 2}.PeriodEnd())
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		PeriodRun{Year: 2025, Month: 12}.PeriodEnd())
}

func TestPeriodRun_Validate(t *testing.T) {
	valid := func() PeriodRun {
		return PeriodRun{
			Country: CountryNamibia, Year: 2025, Month: 3,
			Employees: []EmployeeRecord{{EmployeeID: "e1"}, {EmployeeID: "e2"}},
		}
	}
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name      string
		mutate    func(*PeriodRun)
		wantField string
		wantErr   error
	}{
		{name: "valid", mutate: func(*PeriodRun) {}},
		{name: "unsupported country", mutate: func(r *PeriodRun) { r.Country = "BW" }, wantErr: ErrUnsupportedJurisdiction},
		{name: "bad month", mutate: func(r *PeriodRun) { r.Month = 13 }, wantField: "month"},
		{name: "no employees", mutate: func(r *PeriodRun) { r.Employees = nil }, wantField: "employees"},
		{name: "missing id", mutate: func(r *PeriodRun) { r.Employees[1].EmployeeID = "" }, wantField: "employees"},
		{name: "duplicate id", mutate: func(r *PeriodRun) { r.Employees[1].EmployeeID = "e1" }, wantField: "employees"},
		{name: "negative company payroll", mutate: func(r *PeriodRun) { r.CompanyPayroll = &negative }, wantField: "company_payroll"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := valid()
			tt.mutate(&run)
			err := run.Validate()

			switch {
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr))
			case tt.wantField != "":
				var invalid *InvalidInputError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.wantField, invalid.Field)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
