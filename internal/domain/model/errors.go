package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedJurisdiction is wrapped by UnsupportedJurisdictionError.
	ErrUnsupportedJurisdiction = errors.New("unsupported jurisdiction")
	// ErrInvalidInput is wrapped by InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTaxPackNotFound is returned when no tax pack exists for a jurisdiction.
	ErrTaxPackNotFound = errors.New("tax pack not found")
	// ErrPayrollRunNotFound is returned when no payslips are stored for a run.
	ErrPayrollRunNotFound = errors.New("payroll run not found")
)

// UnsupportedJurisdictionError is returned when a calculation names a country
// the engine has no calculator for.
type UnsupportedJurisdictionError struct {
	Country Country
}

func (e *UnsupportedJurisdictionError) Error() string {
	return fmt.Sprintf("unsupported country: %q", string(e.Country))
}

// Unwrap allows errors.Is(err, ErrUnsupportedJurisdiction).
func (e *UnsupportedJurisdictionError) Unwrap() error {
	return ErrUnsupportedJurisdiction
}

// InvalidInputError describes a rejected calculation input or tax pack.
type InvalidInputError struct {
	Field  string
	Reason string
}

// NewInvalidInput creates an InvalidInputError for field.
func NewInvalidInput(field, format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return "invalid input: " + e.Field + ": " + e.Reason
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
