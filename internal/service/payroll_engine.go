package service

import (
	"time"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/metrics"
	"github.com/guttosm/payroll-service/internal/taxengine"
)

// PayrollCalculator defines the single-employee payroll calculation.
type PayrollCalculator interface {
	CalculatePayroll(in model.PayrollInput) (model.PayrollResult, error)
}

// EngineOption configures a PayrollEngine.
type EngineOption func(*PayrollEngine)

// PayrollEngine dispatches calculations to the jurisdiction calculators and
// normalizes their results into payslip line items. It holds only immutable
// pack references and is safe for concurrent use.
type PayrollEngine struct {
	namibia     *taxengine.NamibiaCalculator
	southAfrica *taxengine.SouthAfricaCalculator
	defaultAge  int
}

// NewPayrollEngine creates an engine using the built-in packs unless
// overridden by opts.
func NewPayrollEngine(opts ...EngineOption) *PayrollEngine {
	e := &PayrollEngine{
		namibia:     taxengine.NewNamibiaCalculator(taxengine.DefaultNamibiaPack()),
		southAfrica: taxengine.NewSouthAfricaCalculator(taxengine.DefaultSouthAfricaPack()),
		defaultAge:  model.DefaultAge,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithNamibiaPack sets the engine's Namibian pack.
func WithNamibiaPack(pack *model.NamibiaTaxPack) EngineOption {
	return func(e *PayrollEngine) {
		if pack != nil {
			e.namibia = taxengine.NewNamibiaCalculator(pack)
		}
	}
}

// WithSouthAfricaPack sets the engine's South African pack.
func WithSouthAfricaPack(pack *model.SouthAfricaTaxPack) EngineOption {
	return func(e *PayrollEngine) {
		if pack != nil {
			e.southAfrica = taxengine.NewSouthAfricaCalculator(pack)
		}
	}
}

// WithDefaultAge sets the age assumed for inputs that carry none.
// Non-positive ages keep model.DefaultAge.
func WithDefaultAge(age int) EngineOption {
	return func(e *PayrollEngine) {
		if age > 0 {
			e.defaultAge = age
		}
	}
}

// WithTaxPacks sets the pack of each jurisdiction present in packs.
func WithTaxPacks(packs ...model.TaxPack) EngineOption {
	return func(e *PayrollEngine) {
		for _, pack := range packs {
			switch p := pack.(type) {
			case *model.NamibiaTaxPack:
				WithNamibiaPack(p)(e)
			case *model.SouthAfricaTaxPack:
				WithSouthAfricaPack(p)(e)
			}
		}
	}
}

// Pack returns the engine's pack for country.
func (e *PayrollEngine) Pack(country model.Country) (model.TaxPack, error) {
	switch country {
	case model.CountryNamibia:
		return e.namibia.Pack(), nil
	case model.CountrySouthAfrica:
		return e.southAfrica.Pack(), nil
	default:
		return nil, &model.UnsupportedJurisdictionError{Country: country}
	}
}

// CalculatePayroll computes the monthly payroll for one employee. A pack
// carried by in replaces the engine's pack for that call and must belong to
// in.Country.
func (e *PayrollEngine) CalculatePayroll(in model.PayrollInput) (model.PayrollResult, error) {
	start := time.Now()
	res, err := e.calculate(in)
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.RecordPayrollCalculation(string(in.Country), time.Since(start), status)
	return res, err
}

func (e *PayrollEngine) calculate(in model.PayrollInput) (model.PayrollResult, error) {
	if !in.Country.IsSupported() {
		return model.PayrollResult{}, &model.UnsupportedJurisdictionError{Country: in.Country}
	}
	if err := in.Validate(); err != nil {
		return model.PayrollResult{}, err
	}
	if in.Age == nil {
		in.Age = model.Int(e.defaultAge)
	}

	pack := in.TaxPack
	if pack == nil {
		pack, _ = e.Pack(in.Country)
	} else {
		if pack.Country() != in.Country {
			return model.PayrollResult{}, model.NewInvalidInput("tax_pack",
				"pack for %s cannot calculate %s payroll", pack.Country(), in.Country)
		}
		if err := pack.Validate(); err != nil {
			return model.PayrollResult{}, err
		}
	}

	var res model.PayrollResult
	switch p := pack.(type) {
	case *model.NamibiaTaxPack:
		calc := e.namibia
		if p != calc.Pack() {
			calc = taxengine.NewNamibiaCalculator(p)
		}
		res = calc.Calculate(in)
	case *model.SouthAfricaTaxPack:
		calc := e.southAfrica
		if p != calc.Pack() {
			calc = taxengine.NewSouthAfricaCalculator(p)
		}
		res = calc.Calculate(in)
	default:
		return model.PayrollResult{}, model.NewInvalidInput("tax_pack", "unsupported pack type %T", pack)
	}

	res.LineItems = buildLineItems(res, pack)
	return res, nil
}
