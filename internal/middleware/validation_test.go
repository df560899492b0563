package middleware

import (
	"strings"
	"testing"
)

func TestValidateChannelID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid canonical", "UCuAXFkgsw1L7xaCfnd5JJOw", "UCuAXFkgsw1L7xaCfnd5JJOw", false},
		{"valid with dash", "UC_abc-def_123", "UC_abc-def_123", false},
		{"trims whitespace", "  UCuAXFkgsw1L7xaCfnd5JJOw  ", "UCuAXFkgsw1L7xaCfnd5JJOw", false},
		{"empty", "", "", true},
		{"too long 51", strings.Repeat("a", 51), "", true},
		{"exactly 50", strings.Repeat("a", 50), strings.Repeat("a", 50), false},
		{"invalid chars", "UC test!", "", true},
		{"sql injection", "UC'; DROP--", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateChannelID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateAnalyzeInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"canonical id", "UCuAXFkgsw1L7xaCfnd5JJOw", "UCuAXFkgsw1L7xaCfnd5JJOw", false},
		{"channel name with spaces", "Veritasium Official", "Veritasium Official", false},
		{"trims whitespace", "  mkbhd  ", "mkbhd", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long 101", strings.Repeat("x", 101), "", true},
		{"exactly 100", strings.Repeat("x", 100), strings.Repeat("x", 100), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateAnalyzeInput(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateCompareInputs(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		wantLen int
		wantErr bool
	}{
		{"two valid", []string{"a", "b"}, 2, false},
		{"four valid", []string{"a", "b", "c", "d"}, 4, false},
		{"five rejected", []string{"a", "b", "c", "d", "e"}, 0, true},
		{"blanks dropped then ok", []string{"a", "", "  ", "b"}, 2, false},
		{"blanks dropped then too few", []string{"a", "", ""}, 0, true},
		{"single", []string{"a"}, 0, true},
		{"empty list", nil, 0, true},
		{"oversize element", []string{"a", strings.Repeat("x", 101)}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateCompareInputs(tt.inputs)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if len(got) != tt.wantLen {
				t.Errorf("got %d inputs, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "tech reviews", "tech reviews", false},
		{"trims whitespace", "  mkbhd ", "mkbhd", false},
		{"empty", "", "", true},
		{"too long 101", strings.Repeat("q", 101), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateQuery(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
