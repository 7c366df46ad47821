package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LineItemDocument is a stored payslip line.
type LineItemDocument struct {
	Type        string               `bson:"type" json:"type"`
	Code        string               `bson:"code" json:"code"`
	Description string               `bson:"description" json:"description"`
	Amount      primitive.Decimal128  `bson:"amount" json:"amount"`
	Quantity    *primitive.Decimal128 `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Rate        *primitive.Decimal128 `bson:"rate,omitempty" json:"rate,omitempty"`
}

// PayslipDocument is one employee's stored result within a period run.
type PayslipDocument struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	RunID             string               `bson:"run_id" json:"run_id"`
	PeriodID          string               `bson:"period_id" json:"period_id"`
	TaxPeriod         string               `bson:"tax_period" json:"tax_period"`
	EmployeeID        string               `bson:"employee_id" json:"employee_id"`
	Country           string               `bson:"country" json:"country"`
	GrossSalary       primitive.Decimal128 `bson:"gross_salary" json:"gross_salary"`
	TaxableIncome     primitive.Decimal128 `bson:"taxable_income" json:"taxable_income"`
	PAYE              primitive.Decimal128 `bson:"paye" json:"paye"`
	TotalDeductions   primitive.Decimal128 `bson:"total_deductions" json:"total_deductions"`
	NetSalary         primitive.Decimal128 `bson:"net_salary" json:"net_salary"`
	TotalEmployerCost primitive.Decimal128 `bson:"total_employer_cost" json:"total_employer_cost"`
	LineItems         []LineItemDocument   `bson:"line_items" json:"line_items"`
	CreatedAt         time.Time            `bson:"created_at" json:"created_at"`
}

// NewPayslipDocument converts one employee's result to its stored form.
// period is the run's month; the pack period is kept as tax_period.
func NewPayslipDocument(runID string, period model.PackPeriod, slip model.EmployeePayslip) (*PayslipDocument, error) {
	r := slip.Result
	amounts, err := decimalFields(map[string]decimal.Decimal{
		"gross_salary":        r.GrossSalary,
		"taxable_income":      r.TaxableIncome,
		"paye":                r.PAYE,
		"total_deductions":    r.TotalDeductions,
		"net_salary":          r.NetSalary,
		"total_employer_cost": r.TotalEmployerCost,
	})
	if err != nil {
		return nil, fmt.Errorf("payslip %s: %w", slip.EmployeeID, err)
	}

	items := make([]LineItemDocument, len(r.LineItems))
	for i, item := range r.LineItems {
		doc, err := newLineItemDocument(item)
		if err != nil {
			return nil, fmt.Errorf("payslip %s line %s: %w", slip.EmployeeID, item.Code, err)
		}
		items[i] = doc
	}

	return &PayslipDocument{
		RunID:             runID,
		PeriodID:          period.String(),
		TaxPeriod:         r.TaxPeriod.String(),
		EmployeeID:        slip.EmployeeID,
		Country:           string(r.Country),
		GrossSalary:       amounts["gross_salary"],
		TaxableIncome:     amounts["taxable_income"],
		PAYE:              amounts["paye"],
		TotalDeductions:   amounts["total_deductions"],
		NetSalary:         amounts["net_salary"],
		TotalEmployerCost: amounts["total_employer_cost"],
		LineItems:         items,
	}, nil
}

func newLineItemDocument(item model.PayslipLineItem) (LineItemDocument, error) {
	amount, err := toDecimal128(item.Amount)
	if err != nil {
		return LineItemDocument{}, err
	}
	doc := LineItemDocument{
		Type:        string(item.Type),
		Code:        item.Code,
		Description: item.Description,
		Amount:      amount,
	}
	if doc.Quantity, err = optionalDecimal128(item.Quantity); err != nil {
		return LineItemDocument{}, fmt.Errorf("quantity: %w", err)
	}
	if doc.Rate, err = optionalDecimal128(item.Rate); err != nil {
		return LineItemDocument{}, fmt.Errorf("rate: %w", err)
	}
	return doc, nil
}

// Period returns the month of the run the payslip belongs to.
func (d *PayslipDocument) Period() (model.PackPeriod, error) {
	return model.ParsePackPeriod(d.PeriodID)
}

// ToModel converts a stored payslip back to an employee result. Jurisdiction
// details are not stored, so Details is nil.
func (d *PayslipDocument) ToModel() (model.EmployeePayslip, error) {
	period, err := model.ParsePackPeriod(d.TaxPeriod)
	if err != nil {
		return model.EmployeePayslip{}, err
	}
	reader := decimalReader{fields: map[string]primitive.Decimal128{
		"gross_salary":        d.GrossSalary,
		"taxable_income":      d.TaxableIncome,
		"paye":                d.PAYE,
		"total_deductions":    d.TotalDeductions,
		"net_salary":          d.NetSalary,
		"total_employer_cost": d.TotalEmployerCost,
	}}
	res := model.PayrollResult{
		Country:           model.Country(d.Country),
		GrossSalary:       reader.get("gross_salary"),
		TaxableIncome:     reader.get("taxable_income"),
		PAYE:              reader.get("paye"),
		TotalDeductions:   reader.get("total_deductions"),
		NetSalary:         reader.get("net_salary"),
		TotalEmployerCost: reader.get("total_employer_cost"),
		TaxPeriod:         period,
		LineItems:         make([]model.PayslipLineItem, len(d.LineItems)),
	}
	if reader.err != nil {
		return model.EmployeePayslip{}, fmt.Errorf("payslip %s: %w", d.EmployeeID, reader.err)
	}

	for i, item := range d.LineItems {
		line, err := item.toModel()
		if err != nil {
			return model.EmployeePayslip{}, fmt.Errorf("payslip %s line %s: %w", d.EmployeeID, item.Code, err)
		}
		res.LineItems[i] = line
		switch line.Code {
		case model.CodeMedAid:
			res.MedicalAid = line.Amount
		case model.CodePension:
			res.Pension = line.Amount
		case model.CodeOther:
			res.OtherDeductions = line.Amount
		}
	}
	return model.EmployeePayslip{EmployeeID: d.EmployeeID, Result: res}, nil
}

func (d LineItemDocument) toModel() (model.PayslipLineItem, error) {
	amount, err := fromDecimal128(d.Amount)
	if err != nil {
		return model.PayslipLineItem{}, err
	}
	line := model.PayslipLineItem{
		Type:        model.LineItemType(d.Type),
		Code:        d.Code,
		Description: d.Description,
		Amount:      amount,
	}
	if line.Quantity, err = optionalDecimal(d.Quantity); err != nil {
		return model.PayslipLineItem{}, fmt.Errorf("quantity: %w", err)
	}
	if line.Rate, err = optionalDecimal(d.Rate); err != nil {
		return model.PayslipLineItem{}, fmt.Errorf("rate: %w", err)
	}
	return line, nil
}

// PayslipRepository stores period run payslips.
type PayslipRepository struct {
	collection *mongo.Collection
}

// NewPayslipRepository creates a new payslip repository.
func NewPayslipRepository(db *MongoDB) *PayslipRepository {
	return &PayslipRepository{collection: db.Payslips}
}

// CreateMany inserts the payslips of one run.
func (r *PayslipRepository) CreateMany(ctx context.Context, docs []*PayslipDocument) error {
	if len(docs) == 0 {
		return nil
	}

	now := time.Now()
	batch := make([]interface{}, len(docs))
	for i, doc := range docs {
		if doc.ID.IsZero() {
			doc.ID = primitive.NewObjectID()
		}
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = now
		}
		batch[i] = doc
	}

	_, err := r.collection.InsertMany(ctx, batch)
	return err
}

// ListByRun returns a run's payslips ordered by employee id.
func (r *PayslipRepository) ListByRun(ctx context.Context, runID string) ([]PayslipDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "employee_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"run_id": runID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []PayslipDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
