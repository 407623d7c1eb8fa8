package errors

import (
	"slices"
	"strings"
	"unicode"
)

// maxTargetNameLength bounds target and link names read from model files.
const maxTargetNameLength = 1024

// ValidateTargetName validates a target or link name from a model file.
//
// The rules are conservative:
//   - No empty names
//   - No control characters (names end up in labels and DOT sources)
//   - No leading or trailing whitespace
//   - Maximum length of 1024 characters
func ValidateTargetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTarget, "target name cannot be empty")
	}

	if len(name) > maxTargetNameLength {
		return New(ErrCodeInvalidTarget, "target name too long (max %d characters)", maxTargetNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTarget, "target name contains invalid control characters: %q", name)
		}
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidTarget, "target name has surrounding whitespace: %q", name)
	}

	return nil
}

// ValidateFormat checks that format is one of the supported values.
// The comparison is exact; callers normalize case beforehand.
func ValidateFormat(format string, supported []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(supported, format) {
		return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(supported, ", "))
	}
	return nil
}

// ValidateIndentLength checks an indentation width read from settings.
func ValidateIndentLength(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidSettings, "indent length must not be negative: %d", n)
	}
	const maxIndent = 64
	if n > maxIndent {
		return New(ErrCodeInvalidSettings, "indent length too large: %d (max %d)", n, maxIndent)
	}
	return nil
}
