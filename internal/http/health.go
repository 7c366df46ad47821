package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/payroll-service/internal/circuitbreaker"
	"github.com/guttosm/payroll-service/internal/domain/dto"
	"github.com/guttosm/payroll-service/internal/domain/model"
)

// HealthChecker probes one dependency of the payroll API, such as the
// MongoDB deployment holding tax packs and payslips.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a HealthHandler with no dependencies.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterChecker adds a dependency to the readiness probe.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker reports the state of a storage circuit as
// "<name>_circuit" in the readiness probe.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[name] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process can calculate payroll, with the countries it supports. Built-in tax packs need no storage, so liveness never checks dependencies.
// @Tags        Health
// @Produce     json
// @Success     200 {object} dto.HealthResponse "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    dto.HealthStatusOK,
		Countries: model.SupportedCountries,
	})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Checks tax pack, payslip and audit storage. Returns 503 when a dependency fails or a storage circuit is open.
// @Tags        Health
// @Produce     json
// @Success     200 {object} dto.HealthResponse "Service is ready"
// @Failure     503 {object} dto.HealthResponse "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	status := http.StatusOK
	checks := make(map[string]string, len(h.checkers)+len(h.circuitBreakers))

	for name, checker := range h.checkers {
		if err := checker.Check(c.Request.Context()); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks[name] = dto.HealthStatusOK
		}
	}

	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy {
			status = http.StatusServiceUnavailable
		}
	}

	if len(checks) == 0 {
		checks["service"] = dto.HealthStatusOK
	}

	resp := dto.HealthResponse{Status: dto.HealthStatusOK, Checks: checks}
	if status != http.StatusOK {
		resp.Status = dto.HealthStatusDegraded
	}
	c.JSON(status, resp)
}
