package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

func TestCategoryCreateAndGetAll(t *testing.T) {
	db, api := testAPI(t)

	slug := "apicat-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategories(t, db, slug) })

	rec := doJSON(t, api, http.MethodPost, "/api/categories", map[string]any{
		"name": "Tech",
		"slug": slug,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create: got %d, body %s", rec.Code, rec.Body.String())
	}

	var ok successResponse
	decodeBody(t, rec, &ok)
	if !ok.Success {
		t.Error("expected success: true")
	}

	rec = doJSON(t, api, http.MethodGet, "/api/categories", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("getAll: got %d", rec.Code)
	}

	var items []models.Category
	decodeBody(t, rec, &items)
	var found bool
	for _, c := range items {
		if c.Slug == slug && c.Name == "Tech" {
			found = true
		}
	}
	if !found {
		t.Errorf("created category %q missing from getAll", slug)
	}
}

func TestCategoryCreateValidation(t *testing.T) {
	_, api := testAPI(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"slug": "ok-slug"}},
		{"missing slug", map[string]any{"name": "Ok"}},
		{"blank name", map[string]any{"name": "   ", "slug": "ok-slug"}},
		{"malformed slug", map[string]any{"name": "Ok", "slug": "Not A Slug!"}},
		{"uppercase slug", map[string]any{"name": "Ok", "slug": "Bad-Case"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, api, http.MethodPost, "/api/categories", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("got %d, want 400; body %s", rec.Code, rec.Body.String())
			}
			if kind := errorKind(t, rec); kind != "validation" {
				t.Errorf("kind: got %q, want %q", kind, "validation")
			}
		})
	}
}

func TestCategoryCreateConflict(t *testing.T) {
	db, api := testAPI(t)

	slug := "apidup-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategories(t, db, slug) })

	rec := doJSON(t, api, http.MethodPost, "/api/categories", map[string]any{
		"name": "First", "slug": slug,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("first create: got %d", rec.Code)
	}

	rec = doJSON(t, api, http.MethodPost, "/api/categories", map[string]any{
		"name": "Second", "slug": slug,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate create: got %d, want 409", rec.Code)
	}
	if kind := errorKind(t, rec); kind != "conflict" {
		t.Errorf("kind: got %q, want %q", kind, "conflict")
	}
}

func TestCategoryDelete(t *testing.T) {
	db, api := testAPI(t)

	slug := "apidel-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategories(t, db, slug) })

	doJSON(t, api, http.MethodPost, "/api/categories", map[string]any{
		"name": "Doomed", "slug": slug,
	})

	var id int64
	if err := db.QueryRow("SELECT id FROM categories WHERE slug = $1", slug).Scan(&id); err != nil {
		t.Fatalf("look up id: %v", err)
	}

	rec := doJSON(t, api, http.MethodDelete, "/api/categories/"+itoa(id), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: got %d", rec.Code)
	}

	// Deleting the same id again still succeeds.
	rec = doJSON(t, api, http.MethodDelete, "/api/categories/"+itoa(id), nil)
	if rec.Code != http.StatusOK {
		t.Errorf("second delete: got %d, want 200", rec.Code)
	}

	// Garbage ids are a validation error, not a panic.
	rec = doJSON(t, api, http.MethodDelete, "/api/categories/banana", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id: got %d, want 400", rec.Code)
	}
}
