package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &entry))
	return entry
}

// TestNewLogger_EntryFields verifies role, timestamp and caller fields.
func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNewClientLogger_WritesToFile verifies that console logs never reach
// stdout and land in the configured file instead.
func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")

	l := NewClientLogger("console", path)
	l.Info().Str("period", "2026-02").Msg("fetch cycle committed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decodeEntry(t, data)
	assert.Equal(t, "console", entry["role"])
	assert.Equal(t, "2026-02", entry["period"])
}

// TestNewClientLogger_AppendsToExistingFile verifies that restarts keep
// earlier entries.
func TestNewClientLogger_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")

	NewClientLogger("console", path).Info().Msg("first")
	NewClientLogger("console", path).Info().Msg("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
}

// TestNewClientLogger_FallsBackWhenUnwritable verifies that a bad path still
// yields a usable logger.
func TestNewClientLogger_FallsBackWhenUnwritable(t *testing.T) {
	l := NewClientLogger("console", filepath.Join(t.TempDir(), "missing", "dir", "console.log"))
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("to stderr") })
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

// TestGetChildLogger_InheritsFields verifies that fields added to the child
// do not leak into the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := newLogger(&parentBuf, "console")

	child := parent.GetChildLogger()
	child.Logger = child.Output(&childBuf).With().Str("screen", "dashboard").Logger()
	child.Info().Msg("child message")
	parent.Info().Msg("parent message")

	childEntry := decodeEntry(t, childBuf.Bytes())
	assert.Equal(t, "console", childEntry["role"])
	assert.Equal(t, "dashboard", childEntry["screen"])

	parentEntry := decodeEntry(t, parentBuf.Bytes())
	assert.NotContains(t, parentEntry, "screen")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "abc", decodeEntry(t, buf.Bytes())["trace_id"])
}

func TestFromContext_NeverNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/roles", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req", decodeEntry(t, buf.Bytes())["trace_id"])
}
