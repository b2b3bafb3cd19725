// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Post represents a blog post. Content is Markdown source; rendering to
// HTML happens at read time on the public site. ImageURL points to an
// externally hosted image — the post row never stores image bytes.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Virtual field populated by store hydration, never stored on the
	// posts row itself.
	Categories []CategoryRef `json:"categories"`
}

// IsDraft returns true if the post has not been published yet.
func (p *Post) IsDraft() bool {
	return !p.Published
}
