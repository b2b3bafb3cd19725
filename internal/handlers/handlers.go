// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Inkwell API and the
// public site. Handlers are grouped by concern (categories, posts, uploads,
// public) and receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/store"
)

// Error kinds exposed to API clients. Storage and driver errors are always
// translated into one of these before they leave the server.
const (
	kindValidation   = "validation"
	kindConflict     = "conflict"
	kindNotFound     = "not_found"
	kindBadReference = "bad_reference"
	kindInternal     = "internal"
	kindUnavailable  = "unavailable"
)

// successResponse is the mutation acknowledgement body. Mutations do not
// return the written row — callers re-fetch through the list endpoints.
type successResponse struct {
	Success bool `json:"success"`
}

// errorResponse is the JSON error envelope for all API errors.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// respondSuccess writes the standard {"success": true} mutation body.
func respondSuccess(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, successResponse{Success: true})
}

// respondError writes a JSON error envelope.
func respondError(w http.ResponseWriter, status int, kind, message string) {
	respondJSON(w, status, errorResponse{Error: errorDetail{Kind: kind, Message: message}})
}

// respondStoreError maps a store-layer error onto the API error taxonomy.
// Anything unrecognized is logged and reported as an internal error without
// leaking the underlying message.
func respondStoreError(w http.ResponseWriter, err error) {
	var conflict *store.ConflictError
	var notFound *store.NotFoundError
	var reference *store.ReferenceError

	switch {
	case errors.As(err, &conflict):
		respondError(w, http.StatusConflict, kindConflict, conflict.Error())
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, kindNotFound, notFound.Error())
	case errors.As(err, &reference):
		respondError(w, http.StatusUnprocessableEntity, kindBadReference, reference.Error())
	default:
		slog.Error("store operation failed", "error", err)
		respondError(w, http.StatusInternalServerError, kindInternal, "internal server error")
	}
}

// decodeJSON reads the request body into v, rejecting bodies over 1 MiB.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, "invalid JSON body")
		return false
	}
	return true
}

// urlParamID parses the {id} route parameter as an int64.
func urlParamID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, "id must be an integer")
		return 0, false
	}
	return id, true
}
