// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"inkwell/internal/storage"
)

// maxUploadSize limits image uploads to 10 MiB.
const maxUploadSize = 10 << 20

// allowedImageTypes lists the content types accepted for hosted images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Uploads handles image hosting. The stored object's public URL is returned
// to the editor, which submits it as the post's image_url — post rows never
// carry image bytes.
type Uploads struct {
	storage *storage.Client
}

// NewUploads creates the upload handler group. storageClient may be nil,
// in which case uploads respond with 503.
func NewUploads(storageClient *storage.Client) *Uploads {
	return &Uploads{storage: storageClient}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Create accepts a multipart "file" field, stores it in the public bucket
// under a random key, and returns the hosted URL.
// POST /api/uploads
func (h *Uploads) Create(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusServiceUnavailable, kindUnavailable, "image hosting is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, "upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, `multipart field "file" is required`)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		respondError(w, http.StatusBadRequest, kindValidation, "only jpeg, png, gif, and webp images are accepted")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), ext)

	url, err := h.storage.Upload(r.Context(), key, contentType, file, header.Size)
	if err != nil {
		slog.Error("image upload failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, kindInternal, "upload failed")
		return
	}

	slog.Info("image uploaded", "key", key, "size", header.Size)
	respondJSON(w, http.StatusOK, uploadResponse{URL: url})
}
