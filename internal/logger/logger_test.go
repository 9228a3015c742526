package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := defaultLogger
	SetDefault(New(&buf, "info", "json"))
	t.Cleanup(func() { SetDefault(prev) })

	Debug("hidden")
	WithTenant(42).Info("payment recorded", "bill_type", "rent")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "payment recorded", entry["msg"])
	assert.Equal(t, float64(42), entry["tenant_id"])
	assert.Equal(t, "rent", entry["bill_type"])
}

func TestJobFinished(t *testing.T) {
	var buf bytes.Buffer
	prev := defaultLogger
	SetDefault(New(&buf, "info", "text"))
	t.Cleanup(func() { SetDefault(prev) })

	JobFinished("ResetBillingPeriod", errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "job=ResetBillingPeriod")
	assert.Contains(t, buf.String(), "error=boom")
}
