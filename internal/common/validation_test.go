package common

import (
	"slices"
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	configured := []string{"json", "text", "markdown"}

	tests := []struct {
		name             string
		format           string
		supportedFormats []string
		wantErr          bool
	}{
		{"json allowed", "json", configured, false},
		{"text allowed", "text", configured, false},
		{"markdown allowed", "markdown", configured, false},
		{"xml rejected", "xml", configured, true},
		{"uppercase is not the same format", "JSON", configured, true},
		{"empty string rejected", "", configured, true},
		{"no restrictions configured", "xml", nil, false},
		{"single format list", "text", []string{"json"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supportedFormats)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) = nil, want error", tt.format)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) = %v, want nil", tt.format, err)
			}
		})
	}
}

func TestValidateOutputFormatErrorListsSupported(t *testing.T) {
	err := ValidateOutputFormat("yaml", []string{"json", "text"})
	if err == nil {
		t.Fatal("expected error for yaml")
	}
	for _, want := range []string{`"yaml"`, "json, text"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestGetSupportedFormats(t *testing.T) {
	configured := []string{"text", "json", "markdown"}

	got := GetSupportedFormats(configured)
	if want := []string{"json", "markdown", "text"}; !slices.Equal(got, want) {
		t.Errorf("GetSupportedFormats = %v, want sorted %v", got, want)
	}

	// Sorting must not touch the configured slice
	if !slices.Equal(configured, []string{"text", "json", "markdown"}) {
		t.Errorf("input slice was mutated: %v", configured)
	}

	if got := GetSupportedFormats(nil); len(got) != 0 {
		t.Errorf("GetSupportedFormats(nil) = %v, want empty", got)
	}
}
