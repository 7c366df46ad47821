package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/payroll-service/internal/domain/dto"
	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/service"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultAuditLimit is the page size when no limit is given.
	DefaultAuditLimit = 50
	// MaxAuditLimit caps the page size.
	MaxAuditLimit = 500
)

// AuditHandler serves the stored audit trail.
type AuditHandler struct {
	logs service.LoggingService
}

// NewAuditHandler creates a new AuditHandler. A nil logs answers 503.
func NewAuditHandler(logs service.LoggingService) *AuditHandler {
	return &AuditHandler{logs: logs}
}

// ListAuditLogs handles GET /api/audit-logs requests.
//
// @Summary      List audit log entries
// @Description  Returns audit entries of payroll calculations, runs and tax pack changes, newest first.
// @Tags         Audit
// @Produce      json
// @Param        action query string false "Action type" Enums(calculate_payroll, run_payroll_period, update_tax_pack)
// @Param        country query string false "ISO country code"
// @Param        request_id query string false "Request id"
// @Param        level query string false "Entry level" Enums(info, warn, error)
// @Param        since query string false "RFC 3339 start time"
// @Param        until query string false "RFC 3339 end time"
// @Param        limit query int false "Page size" default(50) maximum(500)
// @Param        skip query int false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditLogListResponse} "Audit entries"
// @Failure      400 {object} dto.ErrorResponse "Invalid time filter"
// @Failure      503 {object} dto.ErrorResponse "Audit storage unavailable"
// @Security     ApiKeyAuth
// @Router       /api/audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	if h.logs == nil {
		_ = c.Error(service.ErrRepositoryNotConfigured)
		return
	}

	opts := model.LogQueryOptions{
		ActionType: c.Query("action"),
		AuditOnly:  true,
		Country:    model.Country(strings.ToUpper(c.Query("country"))),
		RequestID:  c.Query("request_id"),
		Level:      c.Query("level"),
		Limit:      min(queryInt(c, "limit", DefaultAuditLimit), MaxAuditLimit),
		Skip:       queryInt(c, "skip", 0),
	}
	var err error
	if opts.StartTime, err = timeQuery(c, "since"); err != nil {
		_ = c.Error(err)
		return
	}
	if opts.EndTime, err = timeQuery(c, "until"); err != nil {
		_ = c.Error(err)
		return
	}
	var (
		entries []model.LogEntry
		total   int64
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		entries, err = h.logs.QueryLogs(ctx, opts)
		return err
	})
	g.Go(func() (err error) {
		total, err = h.logs.CountLogs(ctx, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		_ = c.Error(err)
		return
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}

	NewResponseBuilder(c).SuccessOK(dto.AuditLogListResponse{
		Entries: entries,
		Total:   total,
		Limit:   opts.Limit,
		Skip:    opts.Skip,
	})
}

func timeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, model.NewInvalidInput(name, "%q is not an RFC 3339 time", raw)
	}
	return &t, nil
}
