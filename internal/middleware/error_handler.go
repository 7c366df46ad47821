package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/payroll-service/internal/circuitbreaker"
	"github.com/guttosm/payroll-service/internal/domain/dto"
	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/i18n"
	"github.com/guttosm/payroll-service/internal/logger"
	"github.com/guttosm/payroll-service/internal/service"
)

// errorClass is the HTTP rendering of a domain error.
type errorClass struct {
	status     int
	code       string
	messageKey string
}

// classifyError maps domain and infrastructure errors to HTTP responses.
func classifyError(err error) errorClass {
	switch {
	case errors.Is(err, model.ErrUnsupportedJurisdiction):
		return errorClass{http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyUnsupportedCountry}
	case errors.Is(err, model.ErrInvalidInput):
		return errorClass{http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidPayrollInput}
	case errors.Is(err, model.ErrTaxPackNotFound):
		return errorClass{http.StatusNotFound, dto.ErrCodeNotFound, i18n.ErrKeyTaxPackNotFound}
	case errors.Is(err, model.ErrPayrollRunNotFound):
		return errorClass{http.StatusNotFound, dto.ErrCodeNotFound, i18n.ErrKeyPayrollRunNotFound}
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return errorClass{http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyStorageUnavailable}
	case errors.Is(err, context.DeadlineExceeded):
		return errorClass{http.StatusGatewayTimeout, dto.ErrCodeTimeout, i18n.ErrKeyTimeout}
	default:
		return errorClass{http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError}
	}
}

// errorDetails exposes the rejected field of an input error.
func errorDetails(err error) map[string]string {
	var invalid *model.InvalidInputError
	if errors.As(err, &invalid) && invalid.Field != "" {
		return map[string]string{invalid.Field: invalid.Reason}
	}
	var unsupported *model.UnsupportedJurisdictionError
	if errors.As(err, &unsupported) {
		return map[string]string{"country": string(unsupported.Country)}
	}
	return nil
}

// ErrorHandler returns a middleware that renders the last error a handler
// attached with c.Error. A string Meta on that error overrides the message key.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		class := classifyError(last.Err)
		if key, ok := last.Meta.(string); ok && key != "" {
			class.messageKey = key
		}
		requestID := GetRequestID(c)

		log := logger.Logger()
		event := log.Warn()
		if class.status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", requestID).
			Err(last.Err).
			Int("status_code", class.status).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		message := i18n.GetTranslator().Translate(class.messageKey, i18n.GetLocale(c))
		errorResp := dto.NewError(class.code, message).
			WithRequestID(requestID)
		errorResp.Details = errorDetails(last.Err)
		c.AbortWithStatusJSON(class.status, errorResp)
	}
}
