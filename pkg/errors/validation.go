package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a graph node id from untrusted input.
// Node ids flow into cache keys, DOT output, and file names, so the
// rules are intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidGraph, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "node id contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
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

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// validRankers lists the rank assignment strategies the engine accepts.
var validRankers = []string{"network-simplex", "tight-tree", "longest-path", "none"}

// ValidateRanker validates a ranker name. The empty string selects the
// default and is accepted.
func ValidateRanker(ranker string) error {
	if ranker == "" {
		return nil
	}
	for _, r := range validRankers {
		if ranker == r {
			return nil
		}
	}
	return New(ErrCodeInvalidRanker, "unknown ranker %q (valid: %s)", ranker, strings.Join(validRankers, ", "))
}

// validAligns lists the forced alignment variants accepted by the
// coordinate balancer, in either case.
var validAligns = []string{"ul", "ur", "dl", "dr"}

// ValidateAlign validates a forced alignment variant. The empty string
// selects balanced coordinates and is accepted.
func ValidateAlign(align string) error {
	if align == "" {
		return nil
	}
	lower := strings.ToLower(align)
	for _, a := range validAligns {
		if lower == a {
			return nil
		}
	}
	return New(ErrCodeInvalidAlign, "unknown alignment %q (valid: %s)", align, strings.Join(validAligns, ", "))
}

// validFormats lists the render output formats.
var validFormats = []string{"dot", "svg", "json"}

// ValidateFormat validates a render output format.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unknown format %q (valid: %s)", format, strings.Join(validFormats, ", "))
}
