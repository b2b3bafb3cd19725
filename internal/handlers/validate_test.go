package handlers

import (
	"strings"
	"testing"
)

func TestValidateCategory(t *testing.T) {
	desc := func(s string) *string { return &s }

	tests := []struct {
		name      string
		catName   string
		slug      string
		desc      *string
		wantError bool
	}{
		{"valid", "Tech", "tech", nil, false},
		{"valid with description", "Tech", "tech", desc("All things tech"), false},
		{"empty name", "", "tech", nil, true},
		{"whitespace name", "   ", "tech", nil, true},
		{"name too long", strings.Repeat("a", 201), "tech", nil, true},
		{"empty slug", "Tech", "", nil, true},
		{"malformed slug", "Tech", "Not A Slug", nil, true},
		{"slug too long", "Tech", strings.Repeat("a", 301), nil, true},
		{"description too long", "Tech", "tech", desc(strings.Repeat("a", 1_001)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateCategory(tt.catName, tt.slug, tt.desc)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidatePostFields(t *testing.T) {
	img := func(s string) *string { return &s }

	tests := []struct {
		name      string
		title     string
		content   string
		imageURL  *string
		wantError bool
	}{
		{"valid", "My Title", "Body text", nil, false},
		{"valid with image", "My Title", "Body", img("https://cdn.example.com/a.png"), false},
		{"http image allowed", "My Title", "Body", img("http://cdn.example.com/a.png"), false},
		{"empty title", "", "body", nil, true},
		{"whitespace title", "   ", "body", nil, true},
		{"title too long", strings.Repeat("a", 301), "body", nil, true},
		{"empty content", "title", "", nil, true},
		{"whitespace content", "title", "   ", nil, true},
		{"content too long", "title", strings.Repeat("a", 100_001), nil, true},
		{"relative image url", "title", "body", img("/img/a.png"), true},
		{"schemeless image url", "title", "body", img("cdn.example.com/a.png"), true},
		{"ftp image url", "title", "body", img("ftp://cdn.example.com/a.png"), true},
		{"garbage image url", "title", "body", img("not a url"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validatePostFields(tt.title, tt.content, tt.imageURL)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name      string
		slug      string
		wantError bool
	}{
		{"valid", "hello-world", false},
		{"valid numeric", "2026-02-25", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"uppercase", "Hello-World", true},
		{"spaces", "hello world", true},
		{"double hyphen", "hello--world", true},
		{"leading hyphen", "-hello", true},
		{"too long", strings.Repeat("a", 301), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateSlug(tt.slug)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}
