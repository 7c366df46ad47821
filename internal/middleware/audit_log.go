package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/payroll-service/internal/domain/model"
)

// AuditEvent describes a payroll action worth keeping in the audit trail.
type AuditEvent struct {
	Action  string
	Country model.Country
	Message string
	Fields  map[string]interface{}
	// Err marks the event as failed.
	Err error
}

// AuditLog enqueues event on sink with the request identity of c.
// A nil sink discards the event.
func AuditLog(sink LogSink, c *gin.Context, event AuditEvent) {
	if sink == nil {
		return
	}
	sink.Log(newAuditEntry(c, event))
}

func newAuditEntry(c *gin.Context, event AuditEvent) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      "info",
		Message:    event.Message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Country:    event.Country,
		ActionType: event.Action,
		Actor:      GetActor(c),
	}
	if len(event.Fields) > 0 {
		entry.WithFields(event.Fields)
	}
	if event.Err != nil {
		entry.Level = "error"
		entry.Error = event.Err.Error()
	}
	return entry
}
