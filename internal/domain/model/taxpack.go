// Package model defines the core domain entities for the payroll service.
package model

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Country is the ISO 3166-1 alpha-2 code of a payroll jurisdiction.
type Country string

const (
	// CountryNamibia selects the Namibian calculator.
	CountryNamibia Country = "NA"
	// CountrySouthAfrica selects the South African calculator.
	CountrySouthAfrica Country = "ZA"
)

// SupportedCountries lists every jurisdiction the engine can calculate.
var SupportedCountries = []Country{CountryNamibia, CountrySouthAfrica}

// IsSupported reports whether c has a calculator.
func (c Country) IsSupported() bool {
	return lo.Contains(SupportedCountries, c)
}

// TaxBracket is one band of a progressive income tax table.
// Max is not Valid for the top, unbounded bracket.
//
// @Description Progressive tax bracket, amounts are annual
type TaxBracket struct {
	Min         decimal.Decimal     `json:"min" swaggertype:"string" example:"100000"`
	Max         decimal.NullDecimal `json:"max" swaggertype:"string" example:"300000"`
	Rate        decimal.Decimal     `json:"rate" swaggertype:"string" example:"0.25"`
	FixedAmount decimal.Decimal     `json:"fixed_amount" swaggertype:"string" example:"9000"`
} // @name TaxBracket

// Unbounded reports whether the bracket has no upper limit.
func (b TaxBracket) Unbounded() bool {
	return !b.Max.Valid
}

// Contains reports whether income falls in (min, max]. A bracket starting
// at zero also contains zero, so a contiguous table matches every
// non-negative income exactly once.
func (b TaxBracket) Contains(income decimal.Decimal) bool {
	above := income.GreaterThan(b.Min) || (b.Min.IsZero() && income.IsZero())
	if !above {
		return false
	}
	return b.Unbounded() || income.LessThanOrEqual(b.Max.Decimal)
}

// Tax returns (income - min) * rate + fixedAmount.
func (b TaxBracket) Tax(income decimal.Decimal) decimal.Decimal {
	return income.Sub(b.Min).Mul(b.Rate).Add(b.FixedAmount)
}

// Bracket builds a bounded bracket from float literals.
func Bracket(min, max, rate, fixed float64) TaxBracket {
	return TaxBracket{
		Min:         decimal.NewFromFloat(min),
		Max:         decimal.NewNullDecimal(decimal.NewFromFloat(max)),
		Rate:        decimal.NewFromFloat(rate),
		FixedAmount: decimal.NewFromFloat(fixed),
	}
}

// TopBracket builds the unbounded top bracket from float literals.
func TopBracket(min, rate, fixed float64) TaxBracket {
	return TaxBracket{
		Min:         decimal.NewFromFloat(min),
		Rate:        decimal.NewFromFloat(rate),
		FixedAmount: decimal.NewFromFloat(fixed),
	}
}

// BracketTable is an ordered, contiguous set of brackets starting at zero.
type BracketTable []TaxBracket

// Validate checks that the table partitions [0, inf): the first bracket starts
// at zero, each bracket starts where the previous one ends, only the last one
// is unbounded and every rate is within [0, 1].
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return NewInvalidInput("paye_brackets", "at least one bracket is required")
	}
	if !t[0].Min.IsZero() {
		return NewInvalidInput("paye_brackets", "first bracket must start at 0, got %s", t[0].Min)
	}

	last := len(t) - 1
	for i, b := range t {
		field := fmt.Sprintf("paye_brackets[%d]", i)
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return NewInvalidInput(field, "rate %s outside [0, 1]", b.Rate)
		}
		if b.FixedAmount.IsNegative() {
			return NewInvalidInput(field, "fixed amount must not be negative")
		}
		if i == last {
			if !b.Unbounded() {
				return NewInvalidInput(field, "last bracket must be unbounded")
			}
			continue
		}
		if b.Unbounded() {
			return NewInvalidInput(field, "only the last bracket may be unbounded")
		}
		if !b.Max.Decimal.GreaterThan(b.Min) {
			return NewInvalidInput(field, "max %s must be greater than min %s", b.Max.Decimal, b.Min)
		}
		next := t[i+1].Min
		switch {
		case next.LessThan(b.Max.Decimal):
			return NewInvalidInput(field, "overlaps next bracket starting at %s", next)
		case next.GreaterThan(b.Max.Decimal):
			return NewInvalidInput(field, "gap between %s and %s", b.Max.Decimal, next)
		}
	}
	return nil
}

// Find returns the bracket containing income.
func (t BracketTable) Find(income decimal.Decimal) (TaxBracket, bool) {
	for _, b := range t {
		if b.Contains(income) {
			return b, true
		}
	}
	return TaxBracket{}, false
}

// PackPeriod is the year and month from which a tax pack is effective.
type PackPeriod struct {
	Year  int `json:"year" example:"2025"`
	Month int `json:"month" example:"3"`
}

func (p PackPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// ParsePackPeriod parses the "YYYY-MM" form produced by String.
func ParsePackPeriod(s string) (PackPeriod, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return PackPeriod{}, NewInvalidInput("period", "%q is not YYYY-MM", s)
	}
	p := PackPeriod{Year: t.Year(), Month: int(t.Month())}
	if err := p.validate(); err != nil {
		return PackPeriod{}, err
	}
	return p, nil
}

func (p PackPeriod) validate() error {
	if p.Year < 1900 {
		return NewInvalidInput("year", "must be a four digit year, got %d", p.Year)
	}
	if p.Month < 1 || p.Month > 12 {
		return NewInvalidInput("month", "must be between 1 and 12, got %d", p.Month)
	}
	return nil
}

// TaxPack is the rate and bracket table of one jurisdiction for one period.
// Implementations are NamibiaTaxPack and SouthAfricaTaxPack; a pack must not
// be mutated once it has been handed to the engine.
type TaxPack interface {
	Country() Country
	Period() PackPeriod
	Brackets() BracketTable
	Validate() error

	isTaxPack()
}

// NamibiaTaxPack carries PAYE brackets, social security and VET levy rates.
//
// @Description Namibian tax pack
type NamibiaTaxPack struct {
	PackPeriod
	PAYEBrackets    BracketTable    `json:"paye_brackets"`
	SSCEmployeeRate decimal.Decimal `json:"ssc_employee_rate" swaggertype:"string" example:"0.009"`
	SSCEmployerRate decimal.Decimal `json:"ssc_employer_rate" swaggertype:"string" example:"0.009"`
	SSCMinCeiling   decimal.Decimal `json:"ssc_min_ceiling" swaggertype:"string" example:"500"`
	SSCMaxCeiling   decimal.Decimal `json:"ssc_max_ceiling" swaggertype:"string" example:"11000"`
	VETLevyRate     decimal.Decimal `json:"vet_levy_rate" swaggertype:"string" example:"0.01"`
} // @name NamibiaTaxPack

func (*NamibiaTaxPack) Country() Country         { return CountryNamibia }
func (p *NamibiaTaxPack) Period() PackPeriod     { return p.PackPeriod }
func (p *NamibiaTaxPack) Brackets() BracketTable { return p.PAYEBrackets }
func (*NamibiaTaxPack) isTaxPack()               {}

// Validate checks the period, the bracket table and every rate.
func (p *NamibiaTaxPack) Validate() error {
	if err := p.PackPeriod.validate(); err != nil {
		return err
	}
	if err := p.PAYEBrackets.Validate(); err != nil {
		return err
	}
	if err := validateRates(map[string]decimal.Decimal{
		"ssc_employee_rate": p.SSCEmployeeRate,
		"ssc_employer_rate": p.SSCEmployerRate,
		"vet_levy_rate":     p.VETLevyRate,
	}); err != nil {
		return err
	}
	if p.SSCMinCeiling.IsNegative() {
		return NewInvalidInput("ssc_min_ceiling", "must not be negative")
	}
	if p.SSCMaxCeiling.LessThan(p.SSCMinCeiling) {
		return NewInvalidInput("ssc_max_ceiling", "must not be below ssc_min_ceiling")
	}
	return nil
}

// SouthAfricaTaxPack carries PAYE brackets, age rebates, UIF and SDL rates.
//
// @Description South African tax pack
type SouthAfricaTaxPack struct {
	PackPeriod
	PAYEBrackets    BracketTable    `json:"paye_brackets"`
	PrimaryRebate   decimal.Decimal `json:"primary_rebate" swaggertype:"string" example:"17235"`
	SecondaryRebate decimal.Decimal `json:"secondary_rebate" swaggertype:"string" example:"9444"`
	TertiaryRebate  decimal.Decimal `json:"tertiary_rebate" swaggertype:"string" example:"3145"`
	UIFEmployeeRate decimal.Decimal `json:"uif_employee_rate" swaggertype:"string" example:"0.01"`
	UIFEmployerRate decimal.Decimal `json:"uif_employer_rate" swaggertype:"string" example:"0.01"`
	UIFMaxCeiling   decimal.Decimal `json:"uif_max_ceiling" swaggertype:"string" example:"17712"`
	SDLRate         decimal.Decimal `json:"sdl_rate" swaggertype:"string" example:"0.01"`
} // @name SouthAfricaTaxPack

func (*SouthAfricaTaxPack) Country() Country         { return CountrySouthAfrica }
func (p *SouthAfricaTaxPack) Period() PackPeriod     { return p.PackPeriod }
func (p *SouthAfricaTaxPack) Brackets() BracketTable { return p.PAYEBrackets }
func (*SouthAfricaTaxPack) isTaxPack()               {}

// Validate checks the period, the bracket table, rebates and rates.
func (p *SouthAfricaTaxPack) Validate() error {
	if err := p.PackPeriod.validate(); err != nil {
		return err
	}
	if err := p.PAYEBrackets.Validate(); err != nil {
		return err
	}
	if err := validateRates(map[string]decimal.Decimal{
		"uif_employee_rate": p.UIFEmployeeRate,
		"uif_employer_rate": p.UIFEmployerRate,
		"sdl_rate":          p.SDLRate,
	}); err != nil {
		return err
	}
	for field, v := range map[string]decimal.Decimal{
		"primary_rebate":   p.PrimaryRebate,
		"secondary_rebate": p.SecondaryRebate,
		"tertiary_rebate":  p.TertiaryRebate,
		"uif_max_ceiling":  p.UIFMaxCeiling,
	} {
		if v.IsNegative() {
			return NewInvalidInput(field, "must not be negative")
		}
	}
	return nil
}

func validateRates(rates map[string]decimal.Decimal) error {
	one := decimal.NewFromInt(1)
	for field, r := range rates {
		if r.IsNegative() || r.GreaterThan(one) {
			return NewInvalidInput(field, "rate %s outside [0, 1]", r)
		}
	}
	return nil
}

// PackRates carries the per-country rate fields of a tax pack read from an
// external document. Nil marks an absent field.
type PackRates struct {
	SSCEmployeeRate *decimal.Decimal
	SSCEmployerRate *decimal.Decimal
	SSCMinCeiling   *decimal.Decimal
	SSCMaxCeiling   *decimal.Decimal
	VETLevyRate     *decimal.Decimal

	PrimaryRebate   *decimal.Decimal
	SecondaryRebate *decimal.Decimal
	TertiaryRebate  *decimal.Decimal
	UIFEmployeeRate *decimal.Decimal
	UIFEmployerRate *decimal.Decimal
	UIFMaxCeiling   *decimal.Decimal
	SDLRate         *decimal.Decimal
}

type rateField struct {
	name  string
	value *decimal.Decimal
}

func (r PackRates) namibia() []rateField {
	return []rateField{
		{"ssc_employee_rate", r.SSCEmployeeRate},
		{"ssc_employer_rate", r.SSCEmployerRate},
		{"ssc_min_ceiling", r.SSCMinCeiling},
		{"ssc_max_ceiling", r.SSCMaxCeiling},
		{"vet_levy_rate", r.VETLevyRate},
	}
}

func (r PackRates) southAfrica() []rateField {
	return []rateField{
		{"primary_rebate", r.PrimaryRebate},
		{"secondary_rebate", r.SecondaryRebate},
		{"tertiary_rebate", r.TertiaryRebate},
		{"uif_employee_rate", r.UIFEmployeeRate},
		{"uif_employer_rate", r.UIFEmployerRate},
		{"uif_max_ceiling", r.UIFMaxCeiling},
		{"sdl_rate", r.SDLRate},
	}
}

// checkRates requires every field of own and rejects every field of other.
func checkRates(own, other []rateField, country Country) error {
	for _, f := range own {
		if f.value == nil {
			return NewInvalidInput(f.name, "is required")
		}
	}
	for _, f := range other {
		if f.value != nil {
			return NewInvalidInput(f.name, "does not apply to %s packs", country)
		}
	}
	return nil
}

// NewTaxPack builds the pack of country from brackets and rates. Every rate
// of that country is required and rates of other countries are rejected.
// It does not call Validate.
func NewTaxPack(country Country, period PackPeriod, brackets BracketTable, rates PackRates) (TaxPack, error) {
	na, za := rates.namibia(), rates.southAfrica()
	switch country {
	case CountryNamibia:
		if err := checkRates(na, za, country); err != nil {
			return nil, err
		}
		return &NamibiaTaxPack{
			PackPeriod:      period,
			PAYEBrackets:    brackets,
			SSCEmployeeRate: *rates.SSCEmployeeRate,
			SSCEmployerRate: *rates.SSCEmployerRate,
			SSCMinCeiling:   *rates.SSCMinCeiling,
			SSCMaxCeiling:   *rates.SSCMaxCeiling,
			VETLevyRate:     *rates.VETLevyRate,
		}, nil
	case CountrySouthAfrica:
		if err := checkRates(za, na, country); err != nil {
			return nil, err
		}
		return &SouthAfricaTaxPack{
			PackPeriod:      period,
			PAYEBrackets:    brackets,
			PrimaryRebate:   *rates.PrimaryRebate,
			SecondaryRebate: *rates.SecondaryRebate,
			TertiaryRebate:  *rates.TertiaryRebate,
			UIFEmployeeRate: *rates.UIFEmployeeRate,
			UIFEmployerRate: *rates.UIFEmployerRate,
			UIFMaxCeiling:   *rates.UIFMaxCeiling,
			SDLRate:         *rates.SDLRate,
		}, nil
	default:
		return nil, &UnsupportedJurisdictionError{Country: country}
	}
}

// TaxPackVersion is a stored tax pack with its version metadata.
type TaxPackVersion struct {
	Version   int       `json:"version"`
	Active    bool      `json:"active"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Pack      TaxPack   `json:"pack"`
}
