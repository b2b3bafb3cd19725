package handlers

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"inkwell/internal/slug"
)

// Validation limits for post and category fields.
const (
	maxNameLen    = 200
	maxTitleLen   = 300
	maxSlugLen    = 300
	maxContentLen = 100_000
	maxDescLen    = 1_000
)

// validateCategory checks category create inputs and returns the first
// error found, or "" when the input is valid.
func validateCategory(name, slugVal string, description *string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if msg := validateSlug(slugVal); msg != "" {
		return msg
	}
	if description != nil && utf8.RuneCountInString(*description) > maxDescLen {
		return "Description is too long (max 1,000 characters)."
	}
	return ""
}

// validatePostFields checks the fields shared by post create and update.
func validatePostFields(title, content string, imageURL *string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if strings.TrimSpace(content) == "" {
		return "Content is required."
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "Content is too long (max 100,000 characters)."
	}
	if imageURL != nil && !validImageURL(*imageURL) {
		return "Image URL must be a valid absolute http(s) URL."
	}
	return ""
}

// validateSlug enforces well-formed slugs server-side. The editor derives
// slugs with slug.Generate before submitting, but the server no longer
// trusts that: malformed slugs are rejected, not just empty ones.
func validateSlug(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Slug is required."
	}
	if utf8.RuneCountInString(s) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	if !slug.IsValid(s) {
		return "Slug may only contain lowercase letters, digits, and single hyphens."
	}
	return ""
}

// validImageURL reports whether raw parses as an absolute http or https URL.
func validImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
