package models

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"before-footer", true},
		{"after-header", true},
		{"After-Header", false},
		{"", false},
		{"sidebar", false},
	}

	for _, tt := range tests {
		p, ok := ParsePosition(tt.in)
		if ok != tt.valid {
			t.Errorf("ParsePosition(%q) valid = %v, want %v", tt.in, ok, tt.valid)
		}
		if string(p) != tt.in {
			t.Errorf("ParsePosition(%q) = %q", tt.in, p)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.SiteTitle != "NameCraft Generator" {
		t.Errorf("Expected default site title, got '%s'", s.SiteTitle)
	}
	if s.NameGenerationRules.MinLength != 3 || s.NameGenerationRules.MaxLength != 20 {
		t.Errorf("Unexpected generation rules: %+v", s.NameGenerationRules)
	}
	if s.MenuItems == nil || s.Categories == nil {
		t.Error("Default slices should be empty, not nil")
	}
	if s.NameGenerationRules.CustomPrefixes == nil || s.NameGenerationRules.CustomSuffixes == nil {
		t.Error("Default rule slices should be empty, not nil")
	}
}
