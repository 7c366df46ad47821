// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/payroll-service/config"
	"github.com/guttosm/payroll-service/internal/logger"
)

// InitializeLogger configures the global JSON logger.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
