package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"todosync/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.New(&buf, false, false)
	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
	if !strings.Contains(buf.String(), `msg=shown`) {
		t.Errorf("expected info entry, got %q", buf.String())
	}

	buf.Reset()
	logger = logging.New(&buf, true, false)
	logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected debug entry, got %q", buf.String())
	}

	buf.Reset()
	logger = logging.New(&buf, false, true)
	logger.Info("quiet")
	logger.Warn("warned")
	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "warned") {
		t.Errorf("quiet logger should only emit warnings, got %q", buf.String())
	}
}

func TestNew_NoTimestamp(t *testing.T) {
	var buf bytes.Buffer
	logging.New(&buf, false, false).Info("x")
	if strings.Contains(buf.String(), "time=") {
		t.Errorf("expected no timestamp, got %q", buf.String())
	}
}
