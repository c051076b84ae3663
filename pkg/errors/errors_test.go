package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDimensions, "canvas size must be positive, got %dx%d", 0, 600)

	if err.Code != ErrCodeInvalidDimensions {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDimensions)
	}
	if err.Message != "canvas size must be positive, got 0x600" {
		t.Errorf("Message = %q", err.Message)
	}
	if want := "INVALID_DIMENSIONS: canvas size must be positive, got 0x600"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("toml: line 3: expected value")
	err := Wrap(ErrCodeInvalidConfig, cause, "parse config")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if want := "INVALID_CONFIG: parse config: toml: line 3: expected value"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestCodeLookups(t *testing.T) {
	stageWrapped := fmt.Errorf("render pdf: %w", New(ErrCodeUnsupported, "pdf export requires librsvg"))

	tests := []struct {
		name     string
		err      error
		code     Code
		is       bool
		invalid  bool
		userMsg  string
		skipUser bool
	}{
		{"direct", New(ErrCodeInvalidFormat, "invalid format: %q", "gif"), ErrCodeInvalidFormat, true, true, `invalid format: "gif"`, false},
		{"behind fmt wrap", stageWrapped, ErrCodeUnsupported, true, false, "pdf export requires librsvg", false},
		{"outer code wins", Wrap(ErrCodeInternal, New(ErrCodeInvalidColor, "inner"), "outer"), ErrCodeInternal, true, false, "outer", false},
		{"wrapped config", Wrap(ErrCodeInvalidConfig, errors.New("eof"), "bad"), ErrCodeInvalidConfig, true, true, "bad", false},
		{"plain error", errors.New("disk full"), "", false, false, "disk full", false},
		{"nil", nil, "", false, false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" {
				if got := Is(tt.err, tt.code); got != tt.is {
					t.Errorf("Is(%s) = %v, want %v", tt.code, got, tt.is)
				}
			}
			if Is(tt.err, ErrCodeFileNotFound) {
				t.Error("Is(FILE_NOT_FOUND) should be false")
			}
			if got := IsInvalid(tt.err); got != tt.invalid {
				t.Errorf("IsInvalid() = %v, want %v", got, tt.invalid)
			}
			if !tt.skipUser {
				if got := UserMessage(tt.err); got != tt.userMsg {
					t.Errorf("UserMessage() = %q, want %q", got, tt.userMsg)
				}
			}
		})
	}
}
