package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/benchlink/benchlink-cli/internal/errors"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	logger.Info("hello", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if entry["msg"] != "hello" {
		t.Errorf("expected msg 'hello', got %v", entry["msg"])
	}

	if entry["key"] != "value" {
		t.Errorf("expected key 'value', got %v", entry["key"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: NewOutput(&buf),
	})

	logger.Info("hello world")

	if !strings.Contains(buf.String(), "hello world") {
		t.Errorf("expected output to contain message, got: %s", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: NewOutput(&buf),
	})

	logger.Debug("debug message")
	logger.Info("info message")

	if buf.Len() != 0 {
		t.Errorf("expected debug/info to be filtered at warn level, got: %s", buf.String())
	}

	logger.Warn("warn message")

	if !strings.Contains(buf.String(), "warn message") {
		t.Errorf("expected warn message to be logged, got: %s", buf.String())
	}

	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("error level should be enabled at warn threshold")
	}

	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("debug level should be disabled at warn threshold")
	}
}

func TestWithError_CodedError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	err := errors.New(errors.ErrCodeUnauthenticated, "session expired").
		WithSuggestion("log in again")

	logger.WithError(err).Error("request rejected")

	out := buf.String()
	if !strings.Contains(out, "GW-001") {
		t.Errorf("expected error code in output, got: %s", out)
	}

	if !strings.Contains(out, "session expired") {
		t.Errorf("expected error message in output, got: %s", out)
	}
}

func TestWithError_NilError(t *testing.T) {
	logger := Default()

	if logger.WithError(nil) != logger {
		t.Error("WithError(nil) should return the same logger")
	}
}

func TestLogError_PlainError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	logger.LogError(context.Canceled)

	if !strings.Contains(buf.String(), "operation failed") {
		t.Errorf("expected generic failure message, got: %s", buf.String())
	}
}
