package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    LogLevel
		wantErr bool
	}{
		{name: "error", level: "error", want: LogLevelError},
		{name: "warn", level: "warn", want: LogLevelWarn},
		{name: "info", level: "info", want: LogLevelInfo},
		{name: "debug", level: "debug", want: LogLevelDebug},
		{name: "trace", level: "trace", want: LogLevelTrace},
		{name: "unknown", level: "verbose", want: LogLevelError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLogLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			assert.Equal(t, tt.want, got)
			if !tt.wantErr {
				assert.Equal(t, tt.level, got.String())
			}
		})
	}
}

func TestLogger_filtersByLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, "", 0, LogLevelWarn)

	logger.Info("hidden %d", 1)
	logger.Warn("shown %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	entry := map[string]string{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown 2", entry["msg"])
}

func TestSetDefaultLogger(t *testing.T) {
	previous := getDefaultLogger()
	defer SetDefaultLogger(previous)

	buf := &bytes.Buffer{}
	SetDefaultLogger(New(buf, "", 0, LogLevelDebug))

	Debug("saved %s", "player.data")
	Trace("not written")

	assert.Contains(t, buf.String(), `"msg":"saved player.data"`)
	assert.NotContains(t, buf.String(), "not written")
}
