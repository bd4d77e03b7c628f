package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })
	return &buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

func TestAuditLine(t *testing.T) {
	buf := capture(t)
	Audit(nil, "purchase.record", map[string]any{"product": 3})

	m := lastLine(t, buf)
	assert.Equal(t, "audit", m["kind"])
	assert.Equal(t, "purchase.record", m["action"])
	assert.Equal(t, "info", m["level"])
	assert.Equal(t, map[string]any{"product": float64(3)}, m["fields"])
	assert.NotEmpty(t, m["time"])
}

func TestErrorAndSecurityLevels(t *testing.T) {
	buf := capture(t)

	Error(nil, "seed.fail", errors.New("disk full"), nil)
	m := lastLine(t, buf)
	assert.Equal(t, "error", m["level"])
	assert.Equal(t, "disk full", m["error"])
	assert.NotContains(t, m, "fields")

	Security(nil, "auth.login.fail", nil)
	m = lastLine(t, buf)
	assert.Equal(t, "warn", m["level"])
	assert.Equal(t, "security", m["kind"])
}

func TestWriterFollowsOutput(t *testing.T) {
	capture(t)
	SetOutput(io.Discard)
	assert.Equal(t, io.Discard, Writer())
}

func TestUseFile(t *testing.T) {
	path := t.TempDir() + "/app.log"
	closer := UseFile(path)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		_ = closer.Close()
	})

	Info(nil, "boot", nil)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"action":"boot"`)
}
