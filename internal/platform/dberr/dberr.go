// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr classifies PostgreSQL errors into application errors.
package dberr

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kalamanch/directory/internal/platform/apperr"
)

var (
	// ErrNotFound is returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into an [apperr.AppError].
// action names the failed step ("list_artist_records") and is kept in the
// cause for the server log; clients only see the classified message.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	cause := fmt.Errorf("%s: %w", action, err)

	// 2. Deadlines and cancellations: the database is slow, not broken
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperr.ServiceUnavailable("Database did not answer in time").WithCause(cause)
	}

	// 3. SQLSTATE classes worth telling apart
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch {
		case pgError.Code == pgerrcode.UndefinedTable:
			return apperr.ServiceUnavailable("Directory schema is missing").WithCause(cause)
		case pgerrcode.IsIntegrityConstraintViolation(pgError.Code):
			return apperr.Conflict(fmt.Sprintf("Record rejected by constraint %s", pgError.ConstraintName)).WithCause(cause)
		case pgerrcode.IsConnectionException(pgError.Code):
			return apperr.ServiceUnavailable("Database is unreachable").WithCause(cause)
		}
	}

	// 4. Everything else is an Internal Server Error
	return apperr.Internal(cause)
}
