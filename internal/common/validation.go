package common

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateOutputFormat checks a requested output format against the configured
// list. An empty list means no restriction.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil
	}

	if slices.Contains(supportedFormats, format) {
		return nil
	}

	return fmt.Errorf("unsupported output format %q (supported: %s)",
		format, strings.Join(supportedFormats, ", "))
}

// GetSupportedFormats returns a sorted copy of the configured formats for
// shell completion. The copy keeps completion from mutating config state.
func GetSupportedFormats(supportedFormats []string) []string {
	formats := slices.Clone(supportedFormats)
	slices.Sort(formats)
	return formats
}
