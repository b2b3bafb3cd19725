// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/cache"
	"inkwell/internal/markdown"
	"inkwell/internal/models"
	"inkwell/internal/render"
	"inkwell/internal/store"
)

// homePostLimit caps how many recent posts the homepage lists.
const homePostLimit = 10

// Public groups handlers for the public-facing blog pages. It checks the
// Valkey page cache before rendering, and stores rendered results on miss.
type Public struct {
	posts     *store.PostStore
	renderer  *render.Renderer
	pageCache *cache.PageCache
}

// NewPublic creates the public handler group. pageCache may be nil.
func NewPublic(posts *store.PostStore, renderer *render.Renderer, pageCache *cache.PageCache) *Public {
	return &Public{posts: posts, renderer: renderer, pageCache: pageCache}
}

// postView is the template-facing shape of a post: pointer fields are
// flattened and the Markdown body is already rendered.
type postView struct {
	Title      string
	Slug       string
	ImageURL   string
	CreatedAt  time.Time
	Categories []models.CategoryRef
	HTML       template.HTML
}

// Home renders the homepage: the most recent published posts, newest first.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, cache.HomeKey()); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	posts, err := p.posts.ListPublished(homePostLimit)
	if err != nil {
		slog.Error("list published posts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	rendered, err := p.renderer.Render("home", &render.PageData{
		Title: "Home",
		Data:  map[string]any{"Posts": posts},
	})
	if err != nil {
		slog.Error("render homepage failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.HomeKey(), rendered)
	writeHTML(w, http.StatusOK, rendered)
}

// Post renders a published post page by its slug. Drafts and unknown slugs
// both get the not-found page — drafts are invisible until published.
func (p *Public) Post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if cached, ok := p.pageCache.Get(ctx, cache.PostKey(slugParam)); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	post, err := p.posts.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find post by slug failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil || post.IsDraft() {
		p.notFound(w)
		return
	}

	body, err := markdown.ToHTML(post.Content)
	if err != nil {
		slog.Error("markdown render failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view := postView{
		Title:      post.Title,
		Slug:       post.Slug,
		CreatedAt:  post.CreatedAt,
		Categories: post.Categories,
		HTML:       template.HTML(body),
	}
	if post.ImageURL != nil {
		view.ImageURL = *post.ImageURL
	}

	rendered, err := p.renderer.Render("post", &render.PageData{
		Title: post.Title,
		Data:  map[string]any{"Post": view},
	})
	if err != nil {
		slog.Error("render post failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.PostKey(slugParam), rendered)
	writeHTML(w, http.StatusOK, rendered)
}

// notFound renders the 404 page. Never cached — the slug may come into
// existence later.
func (p *Public) notFound(w http.ResponseWriter) {
	rendered, err := p.renderer.Render("not_found", &render.PageData{Title: "Not found"})
	if err != nil {
		slog.Error("render not found failed", "error", err)
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeHTML(w, http.StatusNotFound, rendered)
}

// writeHTML writes an HTML response body with the given status.
func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
