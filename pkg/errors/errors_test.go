package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidFormat, "unsupported format %q", "gif"), `INVALID_FORMAT: unsupported format "gif"`},
		{"with cause", Wrap(ErrCodeOutput, errors.New("permission denied"), "cannot create %s", "out.json"), "OUTPUT_ERROR: cannot create out.json: permission denied"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapChain(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("export: %w", Wrap(ErrCodeOutput, cause, "write targets.json"))

	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through the chain")
	}
	if !Is(err, ErrCodeOutput) {
		t.Error("code should be found through fmt.Errorf wrapping")
	}
	if got := UserMessage(err); got != "write targets.json" {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestIsAndGetCode(t *testing.T) {
	nested := Wrap(ErrCodeInvalidSettings, New(ErrCodeInvalidPattern, "("), "ignore patterns")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"match", New(ErrCodeInvalidModel, "x"), ErrCodeInvalidModel, true},
		{"mismatch", New(ErrCodeInvalidModel, "x"), ErrCodeOutput, false},
		{"outer code wins", nested, ErrCodeInvalidSettings, true},
		{"inner code hidden", nested, ErrCodeInvalidPattern, false},
		{"plain error", errors.New("x"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is = %v, want %v", got, tt.want)
			}
		})
	}

	if got := GetCode(errors.New("x")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %q, want empty", got)
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		code Code
		want Category
	}{
		{ErrCodeInvalidSettings, CategorySettings},
		{ErrCodeSettingsUnreadable, CategorySettings},
		{ErrCodeInvalidPattern, CategorySettings},
		{ErrCodeInvalidModel, CategoryInput},
		{ErrCodeFileNotFound, CategoryInput},
		{ErrCodeInvalidFormat, CategoryInput},
		{ErrCodeOutput, CategoryOutput},
		{ErrCodeAlreadyWritten, CategoryOutput},
		{ErrCodeUnsupported, CategoryInternal},
		{Code("SOMETHING_NEW"), CategoryInternal},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %s, want %s", tt.code, got, tt.want)
		}
	}
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid settings", New(ErrCodeInvalidSettings, "bad"), true},
		{"unreadable settings", Wrap(ErrCodeSettingsUnreadable, errors.New("eof"), "parse"), true},
		{"bad pattern", New(ErrCodeInvalidPattern, "bad"), true},
		{"output", New(ErrCodeOutput, "cannot open"), false},
		{"already written", New(ErrCodeAlreadyWritten, "twice"), false},
		{"plain", errors.New("plain"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRecoverable(tt.err); got != tt.want {
				t.Errorf("IsRecoverable() = %v, want %v", got, tt.want)
			}
		})
	}
}
