package observability

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/searchlab/internal/config"
)

func TestNewLogger_JSONConsole(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "searchlab"}, &buf)
	l.Debug("hidden")
	l.Info("run finished", zap.String("method", "BFS"))
	require.NoError(t, l.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "searchlab", rec["logger"])
	assert.Equal(t, "BFS", rec["method"])
}

func TestNewLogger_ColorizedConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LoggerConfig{Level: "debug", Format: "console", Colors: config.ColorConfig{Warn: "yellow"}}
	l := NewLogger(cfg, &buf)
	l.Warn("careful")
	l.Debug("plain")

	out := buf.String()
	assert.Contains(t, out, colorYellow+"WARN"+colorReset)
	assert.Contains(t, out, "\tDEBUG\t")
}

func TestNewLogger_BadLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(config.LoggerConfig{Level: "chatty", Format: "json"}, &buf)
	l.Info("dropped")
	l.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewLogger_RotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchlab.log")
	var console bytes.Buffer
	l := NewLogger(config.LoggerConfig{Level: "info", Format: "console", LogFile: path, MaxSize: 1}, &console)
	l.Info("to file", zap.Int("expanded", 4))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"expanded":4`)
	assert.Contains(t, console.String(), "to file")
}

func TestInstall_RedirectsStdLog(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "searchlab"}, &buf)
	restore := install(l)

	log.Print("from the log package")
	zap.L().Info("from zap globals")
	assert.Same(t, l, GetLogger())

	restore()
	log.Print("after restore")

	out := buf.String()
	assert.Contains(t, out, "from the log package")
	assert.Contains(t, out, "from zap globals")
	assert.NotContains(t, out, "after restore")
}

func TestGetLogger_BeforeInit(t *testing.T) {
	assert.NotNil(t, GetLogger())
}
