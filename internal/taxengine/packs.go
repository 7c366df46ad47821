package taxengine

import (
	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// DefaultNamibiaPack returns the Namibian pack effective March 2025.
// Each call returns a fresh copy.
func DefaultNamibiaPack() *model.NamibiaTaxPack {
	return &model.NamibiaTaxPack{
		PackPeriod: model.PackPeriod{Year: 2025, Month: 3},
		PAYEBrackets: model.BracketTable{
			model.Bracket(0, 50000, 0, 0),
			model.Bracket(50000, 100000, 0.18, 0),
			model.Bracket(100000, 300000, 0.25, 9000),
			model.Bracket(300000, 500000, 0.28, 59000),
			model.Bracket(500000, 800000, 0.30, 115000),
			model.Bracket(800000, 1500000, 0.32, 205000),
			model.TopBracket(1500000, 0.37, 429000),
		},
		SSCEmployeeRate: decimal.RequireFromString("0.009"),
		SSCEmployerRate: decimal.RequireFromString("0.009"),
		SSCMinCeiling:   decimal.NewFromInt(500),
		SSCMaxCeiling:   decimal.NewFromInt(11000),
		VETLevyRate:     decimal.RequireFromString("0.01"),
	}
}

// DefaultSouthAfricaPack returns the South African pack effective March 2025.
// Each call returns a fresh copy.
func DefaultSouthAfricaPack() *model.SouthAfricaTaxPack {
	return &model.SouthAfricaTaxPack{
		PackPeriod: model.PackPeriod{Year: 2025, Month: 3},
		PAYEBrackets: model.BracketTable{
			model.Bracket(0, 237100, 0.18, 0),
			model.Bracket(237100, 370500, 0.26, 42678),
			model.Bracket(370500, 512800, 0.31, 77362),
			model.Bracket(512800, 673000, 0.36, 121475),
			model.Bracket(673000, 857900, 0.39, 179147),
			model.Bracket(857900, 1817000, 0.41, 251258),
			model.TopBracket(1817000, 0.45, 644489),
		},
		PrimaryRebate:   decimal.NewFromInt(17235),
		SecondaryRebate: decimal.NewFromInt(9444),
		TertiaryRebate:  decimal.NewFromInt(3145),
		UIFEmployeeRate: decimal.RequireFromString("0.01"),
		UIFEmployerRate: decimal.RequireFromString("0.01"),
		UIFMaxCeiling:   decimal.NewFromInt(17712),
		SDLRate:         decimal.RequireFromString("0.01"),
	}
}

// DefaultPack returns the built-in pack for country.
func DefaultPack(country model.Country) (model.TaxPack, error) {
	switch country {
	case model.CountryNamibia:
		return DefaultNamibiaPack(), nil
	case model.CountrySouthAfrica:
		return DefaultSouthAfricaPack(), nil
	default:
		return nil, &model.UnsupportedJurisdictionError{Country: country}
	}
}
