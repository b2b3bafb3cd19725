// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"inkwell/internal/models"
)

// PostStore handles all post-related database operations, including the
// many-to-many association with categories. Every mutation that touches
// both the posts row and its post_categories rows runs in one transaction:
// a failure partway (e.g. a bad category id) leaves nothing behind.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, content, slug, image_url, published, created_at, updated_at`

// scanPost scans a row into a Post struct. Categories are left empty;
// hydration happens separately.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Content, &p.Slug,
		&p.ImageURL, &p.Published, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Categories = []models.CategoryRef{}
	return &p, nil
}

// List returns all posts, newest first, each hydrated with its category
// {id, name} pairs. The relation table is scanned once in full and grouped
// by post id in application code rather than joined per post.
func (s *PostStore) List() ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT ` + postColumns + `
		FROM posts
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refsByPost, err := s.categoryRefs()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if refs, ok := refsByPost[items[i].ID]; ok {
			items[i].Categories = refs
		}
	}
	return items, nil
}

// ListPublished returns up to limit published posts, newest first, hydrated.
// Used by the public site; limit <= 0 means no limit.
func (s *PostStore) ListPublished(limit int) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE published
		ORDER BY created_at DESC, id DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(query+` LIMIT $1`, limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refsByPost, err := s.categoryRefs()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if refs, ok := refsByPost[items[i].ID]; ok {
			items[i].Categories = refs
		}
	}
	return items, nil
}

// categoryRefs fetches the full post_categories relation joined with
// category names and groups it by post id.
func (s *PostStore) categoryRefs() (map[int64][]models.CategoryRef, error) {
	rows, err := s.db.Query(`
		SELECT pc.post_id, c.id, c.name
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		ORDER BY pc.post_id, c.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list post categories: %w", err)
	}
	defer rows.Close()

	refs := make(map[int64][]models.CategoryRef)
	for rows.Next() {
		var postID int64
		var ref models.CategoryRef
		if err := rows.Scan(&postID, &ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("scan post category: %w", err)
		}
		refs[postID] = append(refs[postID], ref)
	}
	return refs, rows.Err()
}

// hydrate attaches the category refs for a single post.
func (s *PostStore) hydrate(p *models.Post) error {
	rows, err := s.db.Query(`
		SELECT c.id, c.name
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.post_id = $1
		ORDER BY c.id
	`, p.ID)
	if err != nil {
		return fmt.Errorf("hydrate post %d: %w", p.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ref models.CategoryRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return fmt.Errorf("scan category ref: %w", err)
		}
		p.Categories = append(p.Categories, ref)
	}
	return rows.Err()
}

// FindByID retrieves a post by ID with its categories. Returns nil if not found.
func (s *PostStore) FindByID(id int64) (*models.Post, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	if err := s.hydrate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// FindBySlug retrieves a post by its slug with its categories. Returns nil
// if no post matches — callers distinguish confirmed absence from errors.
func (s *PostStore) FindBySlug(slug string) (*models.Post, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = $1`, slug)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	if err := s.hydrate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new post and its category links in one transaction and
// returns the hydrated post. A duplicate slug surfaces as a ConflictError;
// an unknown category id as a ReferenceError. In both cases nothing persists.
func (s *PostStore) Create(p *models.Post, categoryIDs []int64) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`
		INSERT INTO posts (title, content, slug, image_url, published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+postColumns,
		p.Title, p.Content, p.Slug, p.ImageURL, p.Published,
	)
	result, err := scanPost(row)
	if isUniqueViolation(err) {
		return nil, &ConflictError{Field: "slug", Value: p.Slug}
	}
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if err := replaceCategoryLinks(tx, result.ID, categoryIDs, false); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create post: %w", err)
	}

	if err := s.hydrate(result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdatePost carries the mutable fields for an Update call. Slug is
// intentionally absent: it is a URL-stable key and never changes after
// creation. A nil Published leaves the publish flag untouched.
type UpdatePost struct {
	Title     string
	Content   string
	ImageURL  *string
	Published *bool
}

// Update modifies a post's mutable fields, refreshes updated_at, and
// replaces its category set wholesale with categoryIDs (an empty set clears
// all links). Field update and link replacement commit atomically.
// Returns a NotFoundError if the id does not exist.
func (s *PostStore) Update(id int64, u UpdatePost, categoryIDs []int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE posts SET
			title = $1, content = $2, image_url = $3,
			published = COALESCE($4, published),
			updated_at = NOW()
		WHERE id = $5
	`, u.Title, u.Content, u.ImageURL, u.Published, id)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update post rows affected: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{Entity: "post", ID: id}
	}

	if err := replaceCategoryLinks(tx, id, categoryIDs, true); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update post: %w", err)
	}
	return nil
}

// Publish transitions a draft to published, keeping every other field and
// the category set as they are. It goes through Update so the transition
// carries the same transactional guarantees as any other edit.
// Returns a NotFoundError if the id does not exist.
func (s *PostStore) Publish(id int64) error {
	p, err := s.FindByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return &NotFoundError{Entity: "post", ID: id}
	}

	ids := make([]int64, 0, len(p.Categories))
	for _, ref := range p.Categories {
		ids = append(ids, ref.ID)
	}

	published := true
	return s.Update(id, UpdatePost{
		Title:     p.Title,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		Published: &published,
	}, ids)
}

// Delete removes a post and its category links in one transaction.
// Deleting an absent id is a no-op.
func (s *PostStore) Delete(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM post_categories WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("delete post categories: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete post: %w", err)
	}
	return nil
}

// replaceCategoryLinks installs categoryIDs as the complete category set for
// a post inside the given transaction. When clear is true, existing links
// are deleted first (full replace, not merge). Duplicate ids in the input
// are collapsed so they don't trip the composite primary key.
func replaceCategoryLinks(tx *sql.Tx, postID int64, categoryIDs []int64, clear bool) error {
	if clear {
		if _, err := tx.Exec(`DELETE FROM post_categories WHERE post_id = $1`, postID); err != nil {
			return fmt.Errorf("clear post categories: %w", err)
		}
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	stmt, err := tx.Prepare(`INSERT INTO post_categories (post_id, category_id) VALUES ($1, $2)`)
	if err != nil {
		return fmt.Errorf("prepare link insert: %w", err)
	}
	defer stmt.Close()

	seen := make(map[int64]bool, len(categoryIDs))
	for _, catID := range categoryIDs {
		if seen[catID] {
			continue
		}
		seen[catID] = true

		if _, err := stmt.Exec(postID, catID); err != nil {
			if isForeignKeyViolation(err) {
				return &ReferenceError{Entity: "category"}
			}
			return fmt.Errorf("link post %d to category %d: %w", postID, catID, err)
		}
	}
	return nil
}
