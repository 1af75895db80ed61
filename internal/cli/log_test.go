package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerContextRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)

	ctx := withLogger(context.Background(), logger)
	got := loggerFromContext(ctx)
	if got != logger {
		t.Error("loggerFromContext did not return the attached logger")
	}

	got.Debug("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output %q does not contain message", buf.String())
	}
}

func TestLoggerFromEmptyContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext returned nil for a bare context")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("invisible")
	if buf.Len() != 0 {
		t.Errorf("debug message leaked at info level: %q", buf.String())
	}

	logger.Info("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("info message missing: %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	p := newProgress(logger)
	p.done("Solved board")

	out := buf.String()
	if !strings.Contains(out, "Solved board") {
		t.Errorf("progress output %q missing message", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("progress output %q missing elapsed duration", out)
	}
}
