package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/sensorfactory/nexus/internal/config"
)

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should set the returned logger as slog default")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, config.LogConfig{Level: tt.level, Format: "text"})

			logger.Log(context.TODO(), tt.wantSlog, "should appear")
			if buf.Len() == 0 {
				t.Errorf("expected log output at level %v", tt.wantSlog)
			}

			buf.Reset()
			belowLevel := tt.wantSlog - 1
			logger.Log(context.TODO(), belowLevel, "should be suppressed")
			if buf.Len() != 0 {
				t.Errorf("level %v should suppress level %v, but got output: %s",
					tt.wantSlog, belowLevel, buf.String())
			}
		})
	}
}

func TestParseLevel_Offsets(t *testing.T) {
	if got := parseLevel("warn+2"); got != slog.LevelWarn+2 {
		t.Errorf("parseLevel(warn+2) = %v", got)
	}
	if got := parseLevel(" Error "); got != slog.LevelError {
		t.Errorf("parseLevel(Error) = %v", got)
	}
}

func TestNewLogger_SourceOnlyAtDebug(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer
	newLogger(&debugBuf, config.LogConfig{Level: "debug", Format: "text"}).Info("hello")
	newLogger(&infoBuf, config.LogConfig{Level: "info", Format: "text"}).Info("hello")

	if !strings.Contains(debugBuf.String(), "source=") {
		t.Error("debug level should include source")
	}
	if strings.Contains(infoBuf.String(), "source=") {
		t.Error("info level should not include source")
	}
}

func TestNewLogger_JSONCarriesApp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Level: "info", Format: "JSON"}).Info("hello")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["app"] != "nexus" {
		t.Errorf("app = %v, want nexus", m["app"])
	}
	if _, ok := m["source"]; ok {
		t.Error("info level should not include source")
	}
}

func TestBuildVersion_UsesCommit(t *testing.T) {
	oldV, oldC := Version, Commit
	t.Cleanup(func() { Version, Commit = oldV, oldC })

	Version, Commit = "1.4.0", "0123456789abcdef"
	if got := BuildVersion(); got != "1.4.0 (0123456789ab)" {
		t.Errorf("BuildVersion() = %q", got)
	}
}
