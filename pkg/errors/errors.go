// Package errors provides the coded errors shared by all targetgraph
// packages.
//
// Every error carries a [Code], and every code belongs to a [Category]:
//
//   - settings: the settings file could not be read or holds a bad value.
//     The export goes on with the values already applied.
//   - input: the model file, a target name, a flag or the format is wrong.
//   - output: the destination could not be written, or the exporter was
//     used out of order.
//   - internal: a bug, or a feature missing on this machine.
//
// Use [Is] to test for a code anywhere in a wrapped chain and
// [IsRecoverable] to decide whether to warn or abort:
//
//	if _, err := settings.Load(&s, path, ""); errors.IsRecoverable(err) {
//	    logger.Warn("settings not fully applied", "error", errors.UserMessage(err))
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidSettings    Code = "INVALID_SETTINGS"
	ErrCodeSettingsUnreadable Code = "SETTINGS_UNREADABLE"
	ErrCodeInvalidPattern     Code = "INVALID_PATTERN"

	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidModel  Code = "INVALID_MODEL"
	ErrCodeInvalidTarget Code = "INVALID_TARGET"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	ErrCodeOutput         Code = "OUTPUT_ERROR"
	ErrCodeAlreadyWritten Code = "ALREADY_WRITTEN"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Category groups codes by how the caller should react.
type Category string

const (
	CategorySettings Category = "settings"
	CategoryInput    Category = "input"
	CategoryOutput   Category = "output"
	CategoryInternal Category = "internal"
)

var categories = map[Code]Category{
	ErrCodeInvalidSettings:    CategorySettings,
	ErrCodeSettingsUnreadable: CategorySettings,
	ErrCodeInvalidPattern:     CategorySettings,
	ErrCodeInvalidInput:       CategoryInput,
	ErrCodeInvalidModel:       CategoryInput,
	ErrCodeInvalidTarget:      CategoryInput,
	ErrCodeInvalidFormat:      CategoryInput,
	ErrCodeFileNotFound:       CategoryInput,
	ErrCodeOutput:             CategoryOutput,
	ErrCodeAlreadyWritten:     CategoryOutput,
	ErrCodeInternal:           CategoryInternal,
	ErrCodeUnsupported:        CategoryInternal,
}

// Category returns the category of c. Unknown codes are internal.
func (c Code) Category() Category {
	if cat, ok := categories[c]; ok {
		return cat
	}
	return CategoryInternal
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an error with code that wraps cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ""
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// UserMessage returns the message of the outermost *Error without its code
// prefix, or err.Error() for other errors.
func UserMessage(err error) string {
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

// IsRecoverable reports whether the export can go on after err, keeping
// the settings applied so far.
func IsRecoverable(err error) bool {
	code := GetCode(err)
	return code != "" && code.Category() == CategorySettings
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
