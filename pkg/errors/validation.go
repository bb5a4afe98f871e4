package errors

import (
	"strings"
	"unicode"
)

// ValidateEntryName validates a stored-tree name for safety and correctness.
// Entry names travel through file paths, Redis keys, and URLs, so the rules
// are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path traversal sequences (.., //)
//   - Maximum length of 256 characters
func ValidateEntryName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "entry name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidName, "entry name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "entry name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "entry name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateOutputPath validates a file path supplied for export output.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateNodePath validates a slash-separated node path as used in URLs
// and CLI arguments. Empty elements are permitted (the lookup skips them),
// but control characters are not.
func ValidateNodePath(path string) error {
	const maxPathLength = 1000
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "node path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "node path contains invalid characters")
		}
	}

	return nil
}
