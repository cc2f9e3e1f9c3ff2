package convert

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUsage marks a missing, surplus, or unusable command-line argument.
	ErrUsage = errors.New("usage error")
	// ErrDependencyMissing marks an encoder that cannot be found on PATH.
	ErrDependencyMissing = errors.New("dependency missing")
	// ErrPlaceholder marks a failure to create or validate the placeholder image.
	ErrPlaceholder = errors.New("placeholder generation failed")
	// ErrConversion marks an encoder failure or a missing output file.
	ErrConversion = errors.New("conversion failed")
)

// Wrap builds an error message that includes step context while tagging it
// with marker for later classification.
func Wrap(marker error, step, message string, err error) error {
	detail := buildDetail(step, message)
	if marker == nil {
		marker = ErrConversion
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(step, message string) string {
	parts := make([]string, 0, 2)
	if step = strings.TrimSpace(step); step != "" {
		parts = append(parts, step)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "conversion failure"
	}
	return strings.Join(parts, ": ")
}
