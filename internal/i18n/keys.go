package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"

	// ErrKeyUnsupportedCountry is used when no calculator exists for a country.
	ErrKeyUnsupportedCountry = "error.unsupported_country"
	// ErrKeyInvalidPayrollInput is used when calculation input fails validation.
	ErrKeyInvalidPayrollInput = "error.invalid_payroll_input"
	// ErrKeyInvalidTaxPack is used when a submitted tax pack fails validation.
	ErrKeyInvalidTaxPack = "error.invalid_tax_pack"
	// ErrKeyTaxPackNotFound is used when a country has no tax pack.
	ErrKeyTaxPackNotFound = "error.tax_pack_not_found"
	// ErrKeyStorageUnavailable is used when tax pack or payslip storage is not configured or down.
	ErrKeyStorageUnavailable = "error.storage_unavailable"
	// ErrKeyPayrollRunNotFound is used when no payslips are stored for a run id.
	ErrKeyPayrollRunNotFound = "error.payroll_run_not_found"
)
