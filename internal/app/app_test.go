//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/guttosm/payroll-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		wantError bool
	}{
		{
			name: "database disabled",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080", RateLimit: 100, RateWindow: time.Minute},
				Cache:  config.CacheConfig{Size: 10, TTL: time.Minute},
				Log:    config.LogConfig{Level: "error"},
			},
		},
		{
			name: "database unreachable falls back to built-in packs",
			cfg: config.Config{
				Database: config.DatabaseConfig{Enabled: true, URI: "invalid-uri", DatabaseName: "payroll"},
				Log:      config.LogConfig{Level: "error"},
			},
		},
		{
			name: "missing tax packs file",
			cfg: config.Config{
				Payroll: config.PayrollConfig{TaxPacksFile: filepath.Join(t.TempDir(), "missing.yaml")},
				Log:     config.LogConfig{Level: "error"},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			application, err := InitializeApp(tt.cfg)
			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, application)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, application.Router)
			assert.Nil(t, application.database)
			assert.Nil(t, application.audit)

			w := httptest.NewRecorder()
			application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, http.StatusOK, w.Code)

			assert.NoError(t, application.Close(context.Background()))
		})
	}
}

func TestApp_Close_WithoutResources(t *testing.T) {
	assert.NoError(t, (&App{}).Close(context.Background()))
}
