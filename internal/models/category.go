// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Category represents a flat content category. Posts reference categories
// through the post_categories join table, many-to-many.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryRef is the compact {id, name} pair embedded in hydrated posts.
// It carries only what post listings need to render category chips.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
