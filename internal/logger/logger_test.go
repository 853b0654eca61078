package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusErr struct{ code int }

func (e *statusErr) Error() string   { return fmt.Sprintf("http %d", e.code) }
func (e *statusErr) StatusCode() int { return e.code }

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLoggerWithWriter_RoleField verifies that every log entry contains
// the expected "role" field and a timestamp.
func TestNewLoggerWithWriter_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("test-role", &buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewLogger_GlobalLevelIsDebug verifies that NewLogger sets the global
// zerolog level to Debug.
func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	NewLogger("level-role")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestSetLevel(t *testing.T) {
	t.Run("filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLoggerWithWriter("lvl", &buf)

		require.True(t, l.SetLevel("WARN"))
		l.Info().Msg("dropped")
		assert.Empty(t, buf.String())

		l.Warn().Msg("kept")
		assert.Equal(t, "kept", decodeEntry(t, &buf)["message"])
	})

	t.Run("unknown level keeps current", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLoggerWithWriter("lvl", &buf)

		assert.False(t, l.SetLevel("loud"))
		assert.False(t, l.SetLevel(""))
		l.Debug().Msg("still here")
		assert.NotEmpty(t, buf.String())
	})
}

// TestGetChildLogger_InheritsFields verifies that the child logger is a
// distinct instance that inherits context fields from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerWithWriter("inherited-role", &buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")
	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("from context")
	assert.Equal(t, "ctx-value", decodeEntry(t, &buf)["ctx-key"])
}

func TestLogErrorInstance(t *testing.T) {
	t.Run("nil error writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLoggerWithWriter("diag", &buf)

		l.LogErrorInstance(nil)
		assert.Empty(t, buf.String())
	})

	t.Run("records chain and status", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLoggerWithWriter("diag", &buf)

		err := fmt.Errorf("download payload: %w", &statusErr{code: 502})
		l.LogErrorInstance(err)

		entry := decodeEntry(t, &buf)
		assert.Equal(t, "error", entry["level"])
		assert.Equal(t, "download payload: http 502", entry["error"])
		assert.Equal(t, float64(502), entry["status_code"])
		assert.Equal(t, []any{"http 502"}, entry["error_chain"])
		assert.Equal(t, "*fmt.wrapError", entry["error_type"])
	})

	t.Run("plain error has no status", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLoggerWithWriter("diag", &buf)

		l.LogErrorInstance(errors.New("boom"))

		entry := decodeEntry(t, &buf)
		assert.Equal(t, "boom", entry["error"])
		assert.NotContains(t, entry, "status_code")
		assert.Equal(t, []any{}, entry["error_chain"])
	})
}
