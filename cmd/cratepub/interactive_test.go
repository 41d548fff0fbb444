package main

import (
	"strings"
	"testing"
)

func TestPackageNameValidator(t *testing.T) {
	validate := packageNameValidator([]string{"uorm", "uorm-macros"})

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "package name is required"},
		{"blank", "   ", "package name is required"},
		{"unknown", "serde", `package "serde" not found in workspace`},
		{"case mismatch", "Uorm", `package "Uorm" not found in workspace`},
		{"valid", "uorm", ""},
		{"valid trimmed", "  uorm-macros  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "uorm\n", "uorm"},
		{"trims whitespace", "  uorm  \n", "uorm"},
		{"empty line", "\n", ""},
		{"no input at all", "", ""},
		{"first line only", "uorm\nuorm-macros\n", "uorm"},
		{"no trailing newline", "uorm", "uorm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readLine(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("readLine error: %v", err)
			}
			if got != tt.want {
				t.Errorf("readLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
