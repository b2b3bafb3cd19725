// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// errors.go defines the error taxonomy shared with the HTTP layer.
// Constraint violations coming back from PostgreSQL are translated into
// these types so that raw driver errors never reach API clients.
package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes we translate. See Appendix A of the PostgreSQL
// documentation for the full class 23 (integrity constraint violation) list.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ConflictError reports a unique-constraint violation, e.g. a duplicate slug.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

// NotFoundError reports an operation targeting a row that does not exist
// where absence is not a valid outcome (e.g. updating a missing post).
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ReferenceError reports a foreign-key violation: the caller referenced a
// related row (e.g. a category id) that does not exist.
type ReferenceError struct {
	Entity string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("referenced %s does not exist", e.Entity)
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isForeignKeyViolation reports whether err is a PostgreSQL foreign-key
// violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
