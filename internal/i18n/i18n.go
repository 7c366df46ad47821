// Package i18n translates user-facing API messages. English and Afrikaans
// are supported.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		if _, ok := GetTranslator().messages[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.internal_error":        "An unexpected error occurred",
			"error.unauthorized":          "Unauthorized",
			"error.api_key_required":      "API key is required",
			"error.invalid_api_key":       "Invalid API key",
			"error.forbidden":             "Forbidden",
			"error.not_found":             "Not found",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.conflict":              "Conflict",
			"error.timeout":               "The request timed out",
			"error.unsupported_country":   "Payroll is not supported for this country",
			"error.invalid_payroll_input": "The payroll input is invalid",
			"error.invalid_tax_pack":      "The tax pack is invalid",
			"error.tax_pack_not_found":    "No tax pack found for this country",
			"error.storage_unavailable":   "Storage is not available",
			"error.payroll_run_not_found": "No payslips found for this payroll run",
		},
		"af": {
			"error.invalid_request":       "Ongeldige versoek",
			"error.invalid_request_body":  "Ongeldige versoekinhoud",
			"error.internal_error":        "'n Onverwagte fout het voorgekom",
			"error.unauthorized":          "Ongemagtig",
			"error.api_key_required":      "API-sleutel word vereis",
			"error.invalid_api_key":       "Ongeldige API-sleutel",
			"error.forbidden":             "Verbode",
			"error.not_found":             "Nie gevind nie",
			"error.rate_limit_exceeded":   "Te veel versoeke, probeer asseblief later weer",
			"error.conflict":              "Konflik",
			"error.timeout":               "Die versoek het uitgetel",
			"error.unsupported_country":   "Betaalstaat word nie vir hierdie land ondersteun nie",
			"error.invalid_payroll_input": "Die betaalstaatinsette is ongeldig",
			"error.invalid_tax_pack":      "Die belastingpakket is ongeldig",
			"error.tax_pack_not_found":    "Geen belastingpakket vir hierdie land gevind nie",
			"error.storage_unavailable":   "Berging is nie beskikbaar nie",
			"error.payroll_run_not_found": "Geen betaalstrokies vir hierdie betaalstaatlopie gevind nie",
		},
	}
}
