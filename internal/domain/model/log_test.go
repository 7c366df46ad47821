package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name     string
		entry    *LogEntry
		expected map[string]interface{}
	}{
		{
			name:     "allocates fields on nil map",
			entry:    &LogEntry{},
			expected: map[string]interface{}{"country": "NA"},
		},
		{
			name:     "overwrites existing key",
			entry:    &LogEntry{Fields: map[string]interface{}{"country": "ZA", "employees": 3}},
			expected: map[string]interface{}{"country": "NA", "employees": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithField("country", "NA")
			assert.Same(t, tt.entry, result)
			assert.Equal(t, tt.expected, result.Fields)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := (&LogEntry{ActionType: ActionRunPeriod}).
		WithField("period_id", "2025-03").
		WithFields(map[string]interface{}{"employees": 12, "period_id": "2025-04"})

	assert.Equal(t, map[string]interface{}{"employees": 12, "period_id": "2025-04"}, entry.Fields)
	assert.Equal(t, ActionRunPeriod, entry.ActionType)
}
