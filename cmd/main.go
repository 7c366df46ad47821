// Package main is the entry point for the payroll-service application.
//
// @title           Payroll Service API
// @version         1.0.0
// @description     Monthly payroll calculation for Namibia and South Africa.
//
//	Computes PAYE, social security, UIF and employer levies from versioned tax packs,
//	runs whole pay periods and keeps an audit trail of every calculation.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/payroll-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Payroll
// @tag.description Payroll calculation and period runs
//
// @tag.name        Tax Packs
// @tag.description Versioned tax tables per country
//
// @tag.name        Audit
// @tag.description Audit trail of payroll operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/payroll-service/docs" // swagger docs

	"github.com/guttosm/payroll-service/config"
	"github.com/guttosm/payroll-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
