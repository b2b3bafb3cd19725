// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public blog pages.
// Templates are embedded at compile time; each page template is paired with
// the shared base layout.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to public templates.
type PageData struct {
	Title string         // Page title for the <title> tag
	Data  map[string]any // Page-specific data
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem, each paired with the base layout.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// formatDate renders timestamps the way post bylines show them.
		"formatDate": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
	}

	entries, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, path := range entries {
		name := strings.TrimSuffix(filepath.Base(path), ".html")
		if name == "base" {
			continue
		}
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html", path)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Render executes the named page template and returns the resulting HTML.
// Returning bytes (rather than writing to the response directly) lets the
// caller store the result in the page cache.
func (r *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
