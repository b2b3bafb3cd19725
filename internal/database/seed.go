package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: a sample
// category, a published welcome post linked to it, and an unlinked draft.
// It does nothing when posts already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return fmt.Errorf("seed check posts: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	var categoryID int64
	err := db.QueryRow(`
		INSERT INTO categories (name, slug, description)
		VALUES ('General', 'general', 'Default category for uncategorized writing')
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`).Scan(&categoryID)
	if err != nil {
		return fmt.Errorf("seed insert category: %w", err)
	}

	var postID int64
	err = db.QueryRow(`
		INSERT INTO posts (title, content, slug, published)
		VALUES ('Welcome to Inkwell',
		        E'# Welcome\n\nThis is your first post. It is written in **Markdown** and rendered on the public site.',
		        'welcome-to-inkwell', TRUE)
		RETURNING id
	`).Scan(&postID)
	if err != nil {
		return fmt.Errorf("seed insert post: %w", err)
	}

	if _, err := db.Exec(`
		INSERT INTO post_categories (post_id, category_id) VALUES ($1, $2)
	`, postID, categoryID); err != nil {
		return fmt.Errorf("seed link post: %w", err)
	}

	if _, err := db.Exec(`
		INSERT INTO posts (title, content, slug, published)
		VALUES ('Draft ideas', 'Jot down ideas here before publishing.', 'draft-ideas', FALSE)
	`); err != nil {
		return fmt.Errorf("seed insert draft: %w", err)
	}

	slog.Info("database seeded with sample content",
		"category", "general",
		"posts", 2,
	)

	return nil
}
