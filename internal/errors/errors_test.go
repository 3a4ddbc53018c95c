package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeSessionLoad, "test error message")

	if err.Code != ErrCodeSessionLoad {
		t.Errorf("expected code %s, got %s", ErrCodeSessionLoad, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeFileReadFailed, "failed to read file", cause)

	if err.Code != ErrCodeFileReadFailed {
		t.Errorf("expected code %s, got %s", ErrCodeFileReadFailed, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *BenchlinkError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeUnauthenticated, "session expired"),
			wantCode: "GW-001",
			wantMsg:  "session expired",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeFileReadFailed, "read failed", fmt.Errorf("permission denied")),
			wantCode: "IO-002",
			wantMsg:  "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain message '%s', got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestWithSuggestion(t *testing.T) {
	err := NewNotLoggedInError()

	if len(err.Suggestions) == 0 {
		t.Fatal("expected suggestions to be present")
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "Suggestions:") {
		t.Errorf("error string should contain suggestions section, got: %s", errStr)
	}
}

func TestHasCode(t *testing.T) {
	inner := New(ErrCodeSessionLoad, "storage unreadable")
	outer := Wrap(ErrCodeUnauthenticated, "treated as unauthenticated", inner)

	if !HasCode(outer, ErrCodeUnauthenticated) {
		t.Error("expected outer code to match")
	}

	if !HasCode(outer, ErrCodeSessionLoad) {
		t.Error("expected wrapped code to match")
	}

	if HasCode(outer, ErrCodeServerError) {
		t.Error("did not expect unrelated code to match")
	}

	if HasCode(fmt.Errorf("plain error"), ErrCodeServerError) {
		t.Error("plain errors carry no code")
	}
}

func TestIsStorageFailure(t *testing.T) {
	if !IsStorageFailure(New(ErrCodeSessionSave, "disk full")) {
		t.Error("session save errors are storage failures")
	}

	if IsStorageFailure(New(ErrCodeServerError, "boom")) {
		t.Error("server errors are not storage failures")
	}
}
