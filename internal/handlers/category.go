// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/store"
)

// Categories groups the category API handlers and their dependencies.
type Categories struct {
	categories *store.CategoryStore
	pageCache  *cache.PageCache
}

// NewCategories creates the category handler group. pageCache may be nil.
func NewCategories(categories *store.CategoryStore, pageCache *cache.PageCache) *Categories {
	return &Categories{categories: categories, pageCache: pageCache}
}

// List returns all categories in creation order.
// GET /api/categories
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.categories.List()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	respondJSON(w, http.StatusOK, items)
}

type createCategoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

// Create inserts a new category.
// POST /api/categories
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validateCategory(req.Name, req.Slug, req.Description); msg != "" {
		respondError(w, http.StatusBadRequest, kindValidation, msg)
		return
	}

	_, err := h.categories.Create(&models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w)
}

// Delete removes a category. Its post links go with it; deleting an absent
// id still succeeds.
// DELETE /api/categories/{id}
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(w, r)
	if !ok {
		return
	}

	if err := h.categories.Delete(id); err != nil {
		respondStoreError(w, err)
		return
	}

	// Category names appear on rendered pages, so drop everything cached.
	h.pageCache.InvalidateAll(r.Context())

	respondSuccess(w)
}
