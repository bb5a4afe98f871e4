package errors

import (
	"strings"
	"testing"
)

func TestValidateEntryName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "orgchart", false},
		{"valid with dash", "my-tree", false},
		{"valid with underscore", "my_tree", false},
		{"valid with dot", "my.tree", false},
		{"valid with slash", "team/orgchart", false},
		{"valid with spaces", "quarterly plan", false},

		{"empty", "", true},
		{"too long", strings.Repeat("x", 300), true},
		{"path traversal ..", "foo/../bar", true},
		{"path traversal //", "foo//bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntryName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEntryName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "out/tree.svg", false},
		{"valid absolute", "/tmp/tree.png", false},
		{"valid with dot", "./tree.dot", false},

		{"empty", "", true},
		{"too long", strings.Repeat("x", 600), true},
		{"null byte", "out\x00.svg", true},
		{"control char", "out\x01.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNodePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "a/b/c", false},
		{"valid with index", "a/[0]/c", false},
		{"valid empty", "", false},
		{"valid empty elements", "a//b", false},

		{"too long", strings.Repeat("x", 1100), true},
		{"null byte", "a\x00b", true},
		{"control char", "a\x01b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
