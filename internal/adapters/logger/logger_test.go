package logger_test

import (
	"strings"
	"testing"

	"go.trai.ch/fixgen/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	log, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("New did not return *logger.Logger")
	}

	var buf strings.Builder
	log.SetOutput(&buf)
	log.Info("resolving fixtures")

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level, got %q", out)
	}
	if !strings.Contains(out, "resolving fixtures") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestLogger_Error(t *testing.T) {
	log, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("New did not return *logger.Logger")
	}

	var buf strings.Builder
	log.SetOutput(&buf)
	log.Error(zerr.New("resolver unreachable"))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level, got %q", out)
	}
	if !strings.Contains(out, "resolver unreachable") {
		t.Errorf("expected error text in output, got %q", out)
	}
}
