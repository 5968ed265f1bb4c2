package dberrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/acadservice/internal/pkg/apperrors"
)

// IsConnectionError reports whether err means the database could not be reached,
// as opposed to a statement that reached it and failed.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	// SQLSTATE class 08 is connection exception; 57P01-57P03 are admin shutdown/cannot connect now.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P0")
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded) || pgconn.SafeToRetry(err)
}

// Classify wraps a driver error with apperrors.ErrConnection or apperrors.ErrQuery.
// Errors that already carry an application kind pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.Is(err, apperrors.ErrConnection, apperrors.ErrQuery, apperrors.ErrResourceNotFound, apperrors.ErrValidationFailed) {
		return err
	}
	if IsConnectionError(err) {
		return fmt.Errorf("%w: %w", apperrors.ErrConnection, err)
	}
	return fmt.Errorf("%w: %w", apperrors.ErrQuery, err)
}
