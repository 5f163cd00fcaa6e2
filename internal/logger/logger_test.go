package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebug_SuppressedUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetVerbose(false)

	SetVerbose(false)
	Debug("ews: hidden %d", 1)
	assert.Empty(t, buf.String())
	assert.False(t, IsVerbose())

	SetVerbose(true)
	Debug("ews: shown %d", 2)
	assert.Contains(t, buf.String(), "ews: shown 2")
	assert.True(t, IsVerbose())
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	tests := []struct {
		name  string
		logFn func(string, ...any)
		level string
	}{
		{name: "info", logFn: Info, level: "level=INFO"},
		{name: "warn", logFn: Warn, level: "level=WARN"},
		{name: "error", logFn: Error, level: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFn("transport: %s", tt.name)
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), "transport: "+tt.name)
		})
	}
}
