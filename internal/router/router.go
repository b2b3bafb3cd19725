// Package router sets up all HTTP routes and middleware chains for the
// Inkwell server. It organizes routes into the JSON API and the public
// site with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(categories *handlers.Categories, posts *handlers.Posts, uploads *handlers.Uploads, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// JSON API. Mutations are rate-limited per client IP; reads are not.
	limiter := middleware.NewRateLimiter(60, time.Minute)
	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categories.List)
			r.With(limiter.Middleware).Post("/", categories.Create)
			r.With(limiter.Middleware).Delete("/{id}", categories.Delete)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", posts.List)
			r.Get("/slug/{slug}", posts.GetBySlug)
			r.With(limiter.Middleware).Post("/", posts.Create)
			r.With(limiter.Middleware).Put("/{id}", posts.Update)
			r.With(limiter.Middleware).Post("/{id}/publish", posts.Publish)
			r.With(limiter.Middleware).Delete("/{id}", posts.Delete)
		})

		r.With(limiter.Middleware).Post("/uploads", uploads.Create)
	})

	// Public site.
	r.Get("/", public.Home)
	r.Get("/post/{slug}", public.Post)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
