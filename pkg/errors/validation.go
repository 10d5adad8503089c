package errors

import (
	"strings"
	"unicode"
)

// ValidateBranchName checks that name is usable as a git ref in a raw
// content URL. It follows the subset of git-check-ref-format rules that
// matter for URL construction.
func ValidateBranchName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidBranch, "branch name cannot be empty")
	}
	if len(name) > 255 {
		return New(ErrCodeInvalidBranch, "branch name too long (max 255 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidBranch, "branch name %q contains whitespace or control characters", name)
		}
	}

	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return New(ErrCodeInvalidBranch, "branch name %q cannot start or end with a slash", name)
	}

	for _, pattern := range []string{"..", "//", "~", "^", ":", "?", "*", "[", "\\", "@{"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidBranch, "branch name %q contains invalid sequence %q", name, pattern)
		}
	}
	return nil
}

// ValidatePath validates a local file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > 4096 {
		return New(ErrCodeInvalidPath, "path too long (max 4096 characters)")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}
	return nil
}
