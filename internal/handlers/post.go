// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/store"
)

// Posts groups the post API handlers and their dependencies.
type Posts struct {
	posts     *store.PostStore
	pageCache *cache.PageCache
}

// NewPosts creates the post handler group. pageCache may be nil.
func NewPosts(posts *store.PostStore, pageCache *cache.PageCache) *Posts {
	return &Posts{posts: posts, pageCache: pageCache}
}

// List returns all posts, newest first, each with its embedded category
// {id, name} pairs.
// GET /api/posts
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.posts.List()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if items == nil {
		items = []models.Post{}
	}
	respondJSON(w, http.StatusOK, items)
}

// GetBySlug returns the post with the given slug, or a not_found error body
// when no post matches. The 404 is a confirmed absence, distinct from a
// transport failure, so clients can render a dedicated not-found state.
// GET /api/posts/slug/{slug}
func (h *Posts) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	p, err := h.posts.FindBySlug(slugParam)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, kindNotFound, "no post with that slug")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

type createPostRequest struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Slug        string  `json:"slug"`
	ImageURL    *string `json:"image_url"`
	CategoryIDs []int64 `json:"category_ids"`
	Published   bool    `json:"published"`
}

// Create inserts a new post and its category links atomically.
// POST /api/posts
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validatePostFields(req.Title, req.Content, req.ImageURL); msg != "" {
		respondError(w, http.StatusBadRequest, kindValidation, msg)
		return
	}
	if msg := validateSlug(req.Slug); msg != "" {
		respondError(w, http.StatusBadRequest, kindValidation, msg)
		return
	}

	created, err := h.posts.Create(&models.Post{
		Title:     req.Title,
		Content:   req.Content,
		Slug:      req.Slug,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}, req.CategoryIDs)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	if created.Published {
		h.pageCache.InvalidatePost(r.Context(), created.Slug)
	}

	respondSuccess(w)
}

type updatePostRequest struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	ImageURL    *string `json:"image_url"`
	CategoryIDs []int64 `json:"category_ids"`
	Published   *bool   `json:"published"`
}

// Update modifies a post's fields and replaces its category set wholesale.
// The slug is not updatable — it is the post's URL-stable key.
// PUT /api/posts/{id}
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(w, r)
	if !ok {
		return
	}

	var req updatePostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validatePostFields(req.Title, req.Content, req.ImageURL); msg != "" {
		respondError(w, http.StatusBadRequest, kindValidation, msg)
		return
	}

	err := h.posts.Update(id, store.UpdatePost{
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}, req.CategoryIDs)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	h.invalidate(r, id)
	respondSuccess(w)
}

// Publish flips a draft to published, leaving every other field and the
// category set untouched. Semantically an Update with published=true, and
// it runs through the same store path.
// POST /api/posts/{id}/publish
func (h *Posts) Publish(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(w, r)
	if !ok {
		return
	}

	if err := h.posts.Publish(id); err != nil {
		respondStoreError(w, err)
		return
	}

	h.invalidate(r, id)
	respondSuccess(w)
}

// Delete removes a post and its category links. Absent ids succeed.
// DELETE /api/posts/{id}
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(w, r)
	if !ok {
		return
	}

	// Look the post up first so its public page can be dropped from the
	// cache; the delete itself does not need it.
	p, err := h.posts.FindByID(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	if err := h.posts.Delete(id); err != nil {
		respondStoreError(w, err)
		return
	}

	if p != nil {
		h.pageCache.InvalidatePost(r.Context(), p.Slug)
	}

	respondSuccess(w)
}

// invalidate drops the cached public page for post id, if it still exists.
func (h *Posts) invalidate(r *http.Request, id int64) {
	p, err := h.posts.FindByID(id)
	if err != nil || p == nil {
		return
	}
	h.pageCache.InvalidatePost(r.Context(), p.Slug)
}
