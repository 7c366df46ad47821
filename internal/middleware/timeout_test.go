package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/payroll-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		timeout    time.Duration
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:    "fast request completes",
			timeout: time.Second,
			handler: func(c *gin.Context) {
				c.Status(http.StatusOK)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "context carries deadline",
			timeout: time.Second,
			handler: func(c *gin.Context) {
				if _, ok := c.Request.Context().Deadline(); ok {
					c.Status(http.StatusOK)
					return
				}
				c.Status(http.StatusTeapot)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "handler waiting on context gets 504",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   dto.ErrCodeTimeout,
		},
		{
			name:    "response written before deadline is kept",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				c.String(http.StatusCreated, "done")
				<-c.Request.Context().Done()
			},
			wantStatus: http.StatusCreated,
			wantBody:   "done",
		},
		{
			name:    "non-positive timeout uses default",
			timeout: 0,
			handler: func(c *gin.Context) {
				deadline, _ := c.Request.Context().Deadline()
				if time.Until(deadline) > DefaultRequestTimeout-time.Second {
					c.Status(http.StatusOK)
					return
				}
				c.Status(http.StatusTeapot)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Timeout(tt.timeout))
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}
