package service

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/logger"
	"github.com/guttosm/payroll-service/internal/metrics"
	"github.com/guttosm/payroll-service/internal/repository"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// PeriodRunner runs the monthly payroll of a whole company.
type PeriodRunner interface {
	Run(ctx context.Context, run model.PeriodRun) (*model.PeriodRunResult, error)
	// StoredRun reloads a completed run with its payslips and totals.
	StoredRun(ctx context.Context, runID string) (*model.PeriodRunResult, error)
}

// RunnerOption configures a PayrollRunner.
type RunnerOption func(*PayrollRunner)

// PayrollRunner calculates every employee of a period run concurrently.
type PayrollRunner struct {
	calculator  PayrollCalculator
	packs       TaxPackService
	payslips    repository.PayslipRepositoryInterface
	concurrency int
	newRunID    func() string
}

// NewPayrollRunner creates a runner over calculator.
func NewPayrollRunner(calculator PayrollCalculator, opts ...RunnerOption) *PayrollRunner {
	r := &PayrollRunner{
		calculator:  calculator,
		concurrency: runtime.GOMAXPROCS(0),
		newRunID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithConcurrency bounds how many employees are calculated at once.
func WithConcurrency(n int) RunnerOption {
	return func(r *PayrollRunner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithTaxPackService makes runs use the active stored pack of their country.
func WithTaxPackService(packs TaxPackService) RunnerOption {
	return func(r *PayrollRunner) {
		r.packs = packs
	}
}

// WithPayslipRepository persists every completed run's payslips.
func WithPayslipRepository(repo repository.PayslipRepositoryInterface) RunnerOption {
	return func(r *PayrollRunner) {
		r.payslips = repo
	}
}

// Run calculates each employee of run and returns payslips in employee
// order with period totals. The first failing employee cancels the run.
func (r *PayrollRunner) Run(ctx context.Context, run model.PeriodRun) (*model.PeriodRunResult, error) {
	if err := run.Validate(); err != nil {
		return nil, err
	}

	result, err := r.run(ctx, run)
	if err != nil {
		metrics.RecordPayrollRun(string(run.Country), len(run.Employees), "error")
		return nil, err
	}
	metrics.RecordPayrollRun(string(run.Country), len(run.Employees), "success")
	return result, nil
}

func (r *PayrollRunner) run(ctx context.Context, run model.PeriodRun) (*model.PeriodRunResult, error) {
	start := time.Now()
	logger.FromContext(ctx).Debug().
		Str("country", string(run.Country)).
		Str("period", run.Period().String()).
		Int("employees", len(run.Employees)).
		Msg("Payroll run started")

	var pack model.TaxPack
	if r.packs != nil {
		var err error
		if pack, err = r.packs.GetActive(ctx, run.Country); err != nil {
			return nil, err
		}
	}

	periodEnd := run.PeriodEnd()
	slips := make([]model.EmployeePayslip, len(run.Employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, emp := range run.Employees {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.calculator.CalculatePayroll(employeeInput(run, emp, periodEnd, pack))
			if err != nil {
				return fmt.Errorf("employee %s: %w", emp.EmployeeID, err)
			}
			slips[i] = model.EmployeePayslip{EmployeeID: emp.EmployeeID, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &model.PeriodRunResult{
		RunID:    r.newRunID(),
		Country:  run.Country,
		Period:   run.Period(),
		Payslips: slips,
		Totals:   sumTotals(slips),
	}

	if r.payslips != nil {
		if err := r.persist(ctx, result); err != nil {
			return nil, err
		}
	}

	logger.FromContext(ctx).Info().
		Str("run_id", result.RunID).
		Str("country", string(run.Country)).
		Str("period", result.Period.String()).
		Int("employees", len(slips)).
		Str("gross_salary", result.Totals.GrossSalary.StringFixed(2)).
		Str("net_salary", result.Totals.NetSalary.StringFixed(2)).
		Dur("duration", time.Since(start)).
		Msg("Payroll run completed")

	return result, nil
}

// employeeInput builds the calculation input for emp. Employer levies and
// the levy threshold base come from the company.
func employeeInput(run model.PeriodRun, emp model.EmployeeRecord, periodEnd time.Time, pack model.TaxPack) model.PayrollInput {
	return model.PayrollInput{
		Country:           run.Country,
		GrossSalary:       emp.GrossSalary,
		Age:               emp.AgeAt(periodEnd),
		MedicalAid:        emp.MedicalAid,
		MedicalAidMembers: emp.MedicalAidMembers,
		Pension:           emp.Pension,
		OtherDeductions:   emp.OtherDeductions,
		SSCApplicable:     emp.SSCApplicable,
		UIFApplicable:     emp.UIFApplicable,
		SDLApplicable:     run.SDLApplicable,
		VETLevyApplicable: run.VETLevyApplicable,
		LevyPayroll:       run.CompanyPayroll,
		TaxPack:           pack,
	}
}

func sumTotals(slips []model.EmployeePayslip) model.RunTotals {
	zero := model.RunTotals{
		GrossSalary:       decimal.Zero,
		PAYE:              decimal.Zero,
		TotalDeductions:   decimal.Zero,
		NetSalary:         decimal.Zero,
		TotalEmployerCost: decimal.Zero,
	}
	return lo.Reduce(slips, func(t model.RunTotals, s model.EmployeePayslip, _ int) model.RunTotals {
		return model.RunTotals{
			GrossSalary:       t.GrossSalary.Add(s.Result.GrossSalary),
			PAYE:              t.PAYE.Add(s.Result.PAYE),
			TotalDeductions:   t.TotalDeductions.Add(s.Result.TotalDeductions),
			NetSalary:         t.NetSalary.Add(s.Result.NetSalary),
			TotalEmployerCost: t.TotalEmployerCost.Add(s.Result.TotalEmployerCost),
		}
	}, zero)
}

func (r *PayrollRunner) persist(ctx context.Context, result *model.PeriodRunResult) error {
	docs := make([]*repository.PayslipDocument, 0, len(result.Payslips))
	for _, slip := range result.Payslips {
		doc, err := repository.NewPayslipDocument(result.RunID, result.Period, slip)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if err := r.payslips.CreateMany(ctx, docs); err != nil {
		return fmt.Errorf("persist payslips of run %s: %w", result.RunID, err)
	}
	return nil
}

// StoredRun loads the stored payslips of runID ordered by employee id and
// recomputes the run totals.
func (r *PayrollRunner) StoredRun(ctx context.Context, runID string) (*model.PeriodRunResult, error) {
	if r.payslips == nil {
		return nil, ErrRepositoryNotConfigured
	}
	docs, err := r.payslips.ListByRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("list payslips of run %s: %w", runID, err)
	}
	if len(docs) == 0 {
		return nil, model.ErrPayrollRunNotFound
	}

	period, err := docs[0].Period()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	slips := make([]model.EmployeePayslip, len(docs))
	for i := range docs {
		if slips[i], err = docs[i].ToModel(); err != nil {
			return nil, err
		}
	}
	return &model.PeriodRunResult{
		RunID:    runID,
		Country:  slips[0].Result.Country,
		Period:   period,
		Payslips: slips,
		Totals:   sumTotals(slips),
	}, nil
}
