package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

func TestCategoryStoreCreateAndList(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	slug := "test-cat-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategories(t, db, slug) })

	desc := "Articles about testing"
	created, err := s.Create(&models.Category{
		Name:        "Testing",
		Slug:        slug,
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected non-zero id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	items, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var found *models.Category
	for i := range items {
		if items[i].Slug == slug {
			found = &items[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("created category %q not in List result", slug)
	}
	if found.Name != "Testing" {
		t.Errorf("name: got %q, want %q", found.Name, "Testing")
	}
	if found.Description == nil || *found.Description != desc {
		t.Errorf("description: got %v, want %q", found.Description, desc)
	}
}

func TestCategoryStoreDuplicateSlug(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	slug := "test-dup-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategories(t, db, slug) })

	if _, err := s.Create(&models.Category{Name: "First", Slug: slug}); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := s.Create(&models.Category{Name: "Second", Slug: slug})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Field != "slug" {
		t.Errorf("conflict field: got %q, want %q", conflict.Field, "slug")
	}

	// The set grew by exactly one, not two.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories WHERE slug = $1", slug).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("categories with slug %q: got %d, want 1", slug, count)
	}
}

func TestCategoryStoreDeleteIdempotent(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	slug := "test-del-" + uuid.NewString()[:8]
	created, err := s.Create(&models.Category{Name: "Gone soon", Slug: slug})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != nil {
		t.Error("expected nil after delete")
	}

	// Deleting again is a no-op, not an error.
	if err := s.Delete(created.ID); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}
