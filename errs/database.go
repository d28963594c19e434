package errs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrStorage            = errors.New("storage operation failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrConstraintViolated = errors.New("storage constraint violation")
	ErrStorageTimeout     = errors.New("storage operation timed out")
)

// NewStorageError wraps a storage-layer failure for envelope translation.
// Repositories propagate raw driver errors; the boundary calls this once
// with the operation it attempted. Connectivity, constraint violations and
// timeouts all land in the same failure class (500-equivalent) but keep a
// more specific sentinel in the chain for callers that care.
func NewStorageError(code, operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	sentinel := ErrStorage
	statusCode := http.StatusInternalServerError
	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key"),
			strings.Contains(errStr, "violates unique constraint"),
			strings.Contains(errStr, "violates foreign key constraint"):
			sentinel = ErrConstraintViolated
		case strings.Contains(errStr, "connection"):
			sentinel = ErrDatabaseConnection
			statusCode = http.StatusServiceUnavailable
		case errors.Is(cause, context.DeadlineExceeded):
			sentinel = ErrStorageTimeout
		}
	}

	wrapped := error(ErrStorage)
	if sentinel != ErrStorage {
		wrapped = fmt.Errorf("%w: %w", ErrStorage, sentinel)
	}

	return &ApiErr{
		StatusCode: statusCode,
		Code:       code,
		err:        wrapped,
		Details:    details,
		Cause:      cause,
	}
}

func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolated)
}

func IsConnectionFailure(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}

func IsStorageTimeout(err error) bool {
	return errors.Is(err, ErrStorageTimeout)
}
