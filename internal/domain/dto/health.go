package dto

import "github.com/guttosm/payroll-service/internal/domain/model"

// Health statuses reported by the probes.
const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

// HealthResponse is the body of the liveness and readiness probes.
//
// @Description Probe result; checks maps each dependency to "ok", an error or a circuit state
type HealthResponse struct {
	Status    string            `json:"status" example:"ok"`
	Countries []model.Country   `json:"countries,omitempty" swaggertype:"array,string" example:"NA,ZA"`
	Checks    map[string]string `json:"checks,omitempty"`
} // @name HealthResponse
