package errors

import (
	"strings"
	"unicode"
)

// ValidateRunName validates a run name for safety and correctness. The
// name becomes a directory component under the artifact root, so anything
// that could escape that directory is rejected.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - No leading dot (hidden directories)
//   - Maximum length of 128 characters
func ValidateRunName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "run name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "run name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "run name contains control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "run name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "run name cannot contain path traversal sequences (..)")
	}
	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidInput, "run name cannot start with a dot")
	}

	return nil
}

// ValidateMetadata validates an artifact filename suffix. The suffix is
// appended verbatim between the scale and the .png extension, so it must
// stay a plain filename fragment.
//
// Validation rules:
//   - Empty is allowed (no suffix)
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateMetadata(meta string) error {
	if meta == "" {
		return nil
	}

	if len(meta) > 128 {
		return New(ErrCodeInvalidInput, "metadata suffix too long (max 128 characters)")
	}

	for _, r := range meta {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "metadata suffix contains invalid characters")
		}
	}

	if strings.ContainsAny(meta, "/\\") {
		return New(ErrCodeInvalidInput, "metadata suffix cannot contain path separators")
	}
	if strings.Contains(meta, "..") {
		return New(ErrCodeInvalidInput, "metadata suffix cannot contain path traversal sequences (..)")
	}

	return nil
}
