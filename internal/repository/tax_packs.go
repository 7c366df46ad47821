package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Rate field keys stored in TaxPackDocument.Rates.
const (
	rateSSCEmployee     = "ssc_employee_rate"
	rateSSCEmployer     = "ssc_employer_rate"
	rateSSCMinCeiling   = "ssc_min_ceiling"
	rateSSCMaxCeiling   = "ssc_max_ceiling"
	rateVETLevy         = "vet_levy_rate"
	ratePrimaryRebate   = "primary_rebate"
	rateSecondaryRebate = "secondary_rebate"
	rateTertiaryRebate  = "tertiary_rebate"
	rateUIFEmployee     = "uif_employee_rate"
	rateUIFEmployer     = "uif_employer_rate"
	rateUIFMaxCeiling   = "uif_max_ceiling"
	rateSDL             = "sdl_rate"
)

// BracketDocument is a stored tax bracket. Max is absent for the top bracket.
type BracketDocument struct {
	Min         primitive.Decimal128  `bson:"min"`
	Max         *primitive.Decimal128 `bson:"max,omitempty"`
	Rate        primitive.Decimal128  `bson:"rate"`
	FixedAmount primitive.Decimal128  `bson:"fixed_amount"`
}

// TaxPackDocument is one stored version of a jurisdiction's tax pack.
// At most one document per country is Active.
type TaxPackDocument struct {
	ID        primitive.ObjectID              `bson:"_id,omitempty"`
	Country   string                          `bson:"country"`
	Year      int                             `bson:"year"`
	Month     int                             `bson:"month"`
	Active    bool                            `bson:"active"`
	Version   int                             `bson:"version"`
	Brackets  []BracketDocument               `bson:"brackets"`
	Rates     map[string]primitive.Decimal128 `bson:"rates"`
	CreatedAt time.Time                       `bson:"created_at"`
	UpdatedAt time.Time                       `bson:"updated_at"`
	CreatedBy string                          `bson:"created_by,omitempty"`
}

// NewTaxPackDocument converts pack to its stored form.
func NewTaxPackDocument(pack model.TaxPack, createdBy string) (*TaxPackDocument, error) {
	var fields map[string]decimal.Decimal
	switch p := pack.(type) {
	case *model.NamibiaTaxPack:
		fields = map[string]decimal.Decimal{
			rateSSCEmployee:   p.SSCEmployeeRate,
			rateSSCEmployer:   p.SSCEmployerRate,
			rateSSCMinCeiling: p.SSCMinCeiling,
			rateSSCMaxCeiling: p.SSCMaxCeiling,
			rateVETLevy:       p.VETLevyRate,
		}
	case *model.SouthAfricaTaxPack:
		fields = map[string]decimal.Decimal{
			ratePrimaryRebate:   p.PrimaryRebate,
			rateSecondaryRebate: p.SecondaryRebate,
			rateTertiaryRebate:  p.TertiaryRebate,
			rateUIFEmployee:     p.UIFEmployeeRate,
			rateUIFEmployer:     p.UIFEmployerRate,
			rateUIFMaxCeiling:   p.UIFMaxCeiling,
			rateSDL:             p.SDLRate,
		}
	default:
		return nil, fmt.Errorf("unknown tax pack type %T", pack)
	}

	rates, err := decimalFields(fields)
	if err != nil {
		return nil, err
	}

	brackets := make([]BracketDocument, len(pack.Brackets()))
	for i, b := range pack.Brackets() {
		doc, err := newBracketDocument(b)
		if err != nil {
			return nil, fmt.Errorf("bracket %d: %w", i, err)
		}
		brackets[i] = doc
	}

	period := pack.Period()
	return &TaxPackDocument{
		Country:   string(pack.Country()),
		Year:      period.Year,
		Month:     period.Month,
		Brackets:  brackets,
		Rates:     rates,
		CreatedBy: createdBy,
	}, nil
}

func newBracketDocument(b model.TaxBracket) (BracketDocument, error) {
	var doc BracketDocument
	var err error
	if doc.Min, err = toDecimal128(b.Min); err != nil {
		return doc, err
	}
	if doc.Rate, err = toDecimal128(b.Rate); err != nil {
		return doc, err
	}
	if doc.FixedAmount, err = toDecimal128(b.FixedAmount); err != nil {
		return doc, err
	}
	if !b.Unbounded() {
		max, err := toDecimal128(b.Max.Decimal)
		if err != nil {
			return doc, err
		}
		doc.Max = &max
	}
	return doc, nil
}

// ToModel converts the document back to its jurisdiction's tax pack.
func (d *TaxPackDocument) ToModel() (model.TaxPack, error) {
	brackets := make(model.BracketTable, len(d.Brackets))
	for i, b := range d.Brackets {
		bracket, err := b.toModel()
		if err != nil {
			return nil, fmt.Errorf("bracket %d: %w", i, err)
		}
		brackets[i] = bracket
	}

	period := model.PackPeriod{Year: d.Year, Month: d.Month}
	r := &decimalReader{fields: d.Rates}

	var pack model.TaxPack
	switch model.Country(d.Country) {
	case model.CountryNamibia:
		pack = &model.NamibiaTaxPack{
			PackPeriod:      period,
			PAYEBrackets:    brackets,
			SSCEmployeeRate: r.get(rateSSCEmployee),
			SSCEmployerRate: r.get(rateSSCEmployer),
			SSCMinCeiling:   r.get(rateSSCMinCeiling),
			SSCMaxCeiling:   r.get(rateSSCMaxCeiling),
			VETLevyRate:     r.get(rateVETLevy),
		}
	case model.CountrySouthAfrica:
		pack = &model.SouthAfricaTaxPack{
			PackPeriod:      period,
			PAYEBrackets:    brackets,
			PrimaryRebate:   r.get(ratePrimaryRebate),
			SecondaryRebate: r.get(rateSecondaryRebate),
			TertiaryRebate:  r.get(rateTertiaryRebate),
			UIFEmployeeRate: r.get(rateUIFEmployee),
			UIFEmployerRate: r.get(rateUIFEmployer),
			UIFMaxCeiling:   r.get(rateUIFMaxCeiling),
			SDLRate:         r.get(rateSDL),
		}
	default:
		return nil, &model.UnsupportedJurisdictionError{Country: model.Country(d.Country)}
	}
	if r.err != nil {
		return nil, fmt.Errorf("tax pack %s v%d: %w", d.Country, d.Version, r.err)
	}
	return pack, nil
}

func (b BracketDocument) toModel() (model.TaxBracket, error) {
	var out model.TaxBracket
	var err error
	if out.Min, err = fromDecimal128(b.Min); err != nil {
		return out, err
	}
	if out.Rate, err = fromDecimal128(b.Rate); err != nil {
		return out, err
	}
	if out.FixedAmount, err = fromDecimal128(b.FixedAmount); err != nil {
		return out, err
	}
	if b.Max != nil {
		max, err := fromDecimal128(*b.Max)
		if err != nil {
			return out, err
		}
		out.Max = decimal.NewNullDecimal(max)
	}
	return out, nil
}

// TaxPackRepository stores versioned tax packs.
type TaxPackRepository struct {
	collection *mongo.Collection
}

// NewTaxPackRepository creates a new tax pack repository.
func NewTaxPackRepository(db *MongoDB) *TaxPackRepository {
	return &TaxPackRepository{collection: db.TaxPacks}
}

// GetActive returns the active pack for country, or nil if none is stored.
func (r *TaxPackRepository) GetActive(ctx context.Context, country model.Country) (*TaxPackDocument, error) {
	var doc TaxPackDocument
	err := r.collection.FindOne(ctx, bson.M{"country": string(country), "active": true}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create stores doc as the next version for its country and makes it the
// only active one.
func (r *TaxPackRepository) Create(ctx context.Context, doc *TaxPackDocument) (*TaxPackDocument, error) {
	latest, err := r.latestVersion(ctx, doc.Country)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc.ID = primitive.NewObjectID()
	doc.Version = latest + 1
	doc.Active = true
	doc.CreatedAt = now
	doc.UpdatedAt = now

	_, err = r.collection.UpdateMany(ctx,
		bson.M{"country": doc.Country, "active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": now}},
	)
	if err != nil {
		return nil, err
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *TaxPackRepository) latestVersion(ctx context.Context, country string) (int, error) {
	var doc TaxPackDocument
	opts := options.FindOne().
		SetSort(bson.D{{Key: "version", Value: -1}}).
		SetProjection(bson.M{"version": 1})
	err := r.collection.FindOne(ctx, bson.M{"country": country}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.Version, nil
}

// List returns the stored versions for country, newest first.
func (r *TaxPackRepository) List(ctx context.Context, country model.Country, limit int) ([]TaxPackDocument, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"country": string(country)}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []TaxPackDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
