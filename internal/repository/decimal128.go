package repository

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// toDecimal128 stores d without loss for up to 34 significant digits.
func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("decimal %s: %w", d, err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("decimal128 %s: %w", v, err)
	}
	return d, nil
}

func optionalDecimal128(d *decimal.Decimal) (*primitive.Decimal128, error) {
	if d == nil {
		return nil, nil
	}
	v, err := toDecimal128(*d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalDecimal(v *primitive.Decimal128) (*decimal.Decimal, error) {
	if v == nil {
		return nil, nil
	}
	d, err := fromDecimal128(*v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// decimalFields converts named decimals, stopping at the first failure.
func decimalFields(in map[string]decimal.Decimal) (map[string]primitive.Decimal128, error) {
	out := make(map[string]primitive.Decimal128, len(in))
	for k, d := range in {
		v, err := toDecimal128(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// decimalReader pulls decimals out of a map, remembering the first error.
type decimalReader struct {
	fields map[string]primitive.Decimal128
	err    error
}

func (r *decimalReader) get(key string) decimal.Decimal {
	if r.err != nil {
		return decimal.Zero
	}
	v, ok := r.fields[key]
	if !ok {
		r.err = fmt.Errorf("missing field %q", key)
		return decimal.Zero
	}
	d, err := fromDecimal128(v)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", key, err)
	}
	return d
}
