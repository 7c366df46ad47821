package taxengine

import (
	"fmt"
	"io"
	"os"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

// yamlDecimal accepts both quoted and bare numeric scalars.
type yamlDecimal struct {
	decimal.Decimal
}

func (d *yamlDecimal) value() *decimal.Decimal {
	if d == nil {
		return nil
	}
	return &d.Decimal
}

func (d *yamlDecimal) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("decimal %q: %w", raw, err)
	}
	d.Decimal = v
	return nil
}

type yamlBracket struct {
	Min         yamlDecimal  `yaml:"min"`
	Max         *yamlDecimal `yaml:"max"`
	Rate        yamlDecimal  `yaml:"rate"`
	FixedAmount yamlDecimal  `yaml:"fixed_amount"`
}

type yamlPack struct {
	Country      model.Country `yaml:"country"`
	Year         int           `yaml:"year"`
	Month        int           `yaml:"month"`
	PAYEBrackets []yamlBracket `yaml:"paye_brackets"`

	SSCEmployeeRate *yamlDecimal `yaml:"ssc_employee_rate"`
	SSCEmployerRate *yamlDecimal `yaml:"ssc_employer_rate"`
	SSCMinCeiling   *yamlDecimal `yaml:"ssc_min_ceiling"`
	SSCMaxCeiling   *yamlDecimal `yaml:"ssc_max_ceiling"`
	VETLevyRate     *yamlDecimal `yaml:"vet_levy_rate"`

	PrimaryRebate   *yamlDecimal `yaml:"primary_rebate"`
	SecondaryRebate *yamlDecimal `yaml:"secondary_rebate"`
	TertiaryRebate  *yamlDecimal `yaml:"tertiary_rebate"`
	UIFEmployeeRate *yamlDecimal `yaml:"uif_employee_rate"`
	UIFEmployerRate *yamlDecimal `yaml:"uif_employer_rate"`
	UIFMaxCeiling   *yamlDecimal `yaml:"uif_max_ceiling"`
	SDLRate         *yamlDecimal `yaml:"sdl_rate"`
}

type yamlPackFile struct {
	Packs []yamlPack `yaml:"packs"`
}

// LoadPacks decodes a YAML pack file and validates every pack in it. A file
// holds at most one pack per country, and every rate of that country is
// required.
//
//	packs:
//	  - country: NA
//	    year: 2025
//	    month: 3
//	    paye_brackets:
//	      - {min: 0, max: 50000, rate: 0, fixed_amount: 0}
//	      - {min: 50000, rate: 0.18, fixed_amount: 0}
//	    ssc_employee_rate: 0.009
func LoadPacks(r io.Reader) ([]model.TaxPack, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tax packs: %w", err)
	}

	var file yamlPackFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("decode tax packs: %w", err)
	}

	packs := make([]model.TaxPack, 0, len(file.Packs))
	seen := make(map[model.Country]int, len(file.Packs))
	for i, raw := range file.Packs {
		if first, ok := seen[raw.Country]; ok {
			return nil, fmt.Errorf("tax pack %d: %w", i,
				model.NewInvalidInput("country", "%s already defined by tax pack %d", raw.Country, first))
		}
		seen[raw.Country] = i

		pack, err := raw.toModel()
		if err != nil {
			return nil, fmt.Errorf("tax pack %d: %w", i, err)
		}
		if err := pack.Validate(); err != nil {
			return nil, fmt.Errorf("tax pack %d (%s %s): %w", i, pack.Country(), pack.Period(), err)
		}
		packs = append(packs, pack)
	}
	return packs, nil
}

// LoadPackFile opens path and calls LoadPacks.
func LoadPackFile(path string) ([]model.TaxPack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tax packs: %w", err)
	}
	defer f.Close()
	return LoadPacks(f)
}

func (p yamlPack) toModel() (model.TaxPack, error) {
	period := model.PackPeriod{Year: p.Year, Month: p.Month}
	brackets := make(model.BracketTable, len(p.PAYEBrackets))
	for i, b := range p.PAYEBrackets {
		brackets[i] = model.TaxBracket{
			Min:         b.Min.Decimal,
			Rate:        b.Rate.Decimal,
			FixedAmount: b.FixedAmount.Decimal,
		}
		if b.Max != nil {
			brackets[i].Max = decimal.NewNullDecimal(b.Max.Decimal)
		}
	}

	return model.NewTaxPack(p.Country, period, brackets, model.PackRates{
		SSCEmployeeRate: p.SSCEmployeeRate.value(),
		SSCEmployerRate: p.SSCEmployerRate.value(),
		SSCMinCeiling:   p.SSCMinCeiling.value(),
		SSCMaxCeiling:   p.SSCMaxCeiling.value(),
		VETLevyRate:     p.VETLevyRate.value(),
		PrimaryRebate:   p.PrimaryRebate.value(),
		SecondaryRebate: p.SecondaryRebate.value(),
		TertiaryRebate:  p.TertiaryRebate.value(),
		UIFEmployeeRate: p.UIFEmployeeRate.value(),
		UIFEmployerRate: p.UIFEmployerRate.value(),
		UIFMaxCeiling:   p.UIFMaxCeiling.value(),
		SDLRate:         p.SDLRate.value(),
	})
}
