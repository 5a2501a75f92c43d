package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestPrettyHandlerLiftsComponent(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newPrettyHandler(&buf, levelVar))

	logger = logger.With(String(FieldComponent, "organizer"))
	logger.Info("organize run started", String("root", "/tmp/in box"))

	line := buf.String()
	if !strings.Contains(line, "INFO organizer: organize run started") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, `root="/tmp/in box"`) {
		t.Fatalf("expected quoted value in line: %q", line)
	}
}

func TestPrettyHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	handler := newPrettyHandler(&buf, levelVar)

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("info must be suppressed at warn level")
	}

	record := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)
	if err := handler.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(buf.String(), "ERROR boom") {
		t.Fatalf("unexpected line: %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("should not panic or emit", Error(nil))

	if NewComponentLogger(nil, "walker") == nil {
		t.Fatal("component logger over nil base must not be nil")
	}
}
