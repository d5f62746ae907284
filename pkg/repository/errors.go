package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUnavailable marks a transient store failure (connectivity, timeouts,
// server shutdown or resource exhaustion). It is distinct from absence and
// identity conflicts and maps to a server error.
var ErrUnavailable = errors.New("store unavailable")

const pgDuplicateKeyCode = "23505"

// PostgreSQL error classes that indicate the server, not the request, failed.
var unavailableClasses = map[string]bool{
	"08": true, // connection exception
	"53": true, // insufficient resources
	"57": true, // operator intervention
	"58": true, // system error
}

// MapError translates database errors to domain errors.
// It maps sql.ErrNoRows to notFoundErr, PostgreSQL unique violation (23505)
// to duplicateErr and transient failures to ErrUnavailable. Other errors are
// returned unchanged.
func MapError(err error, notFoundErr, duplicateErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgDuplicateKeyCode {
		return duplicateErr
	}

	if IsUnavailable(err) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return err
}

// IsUnavailable reports whether err is a transient store failure.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		return unavailableClasses[pgErr.Code[:2]]
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	if pgconn.Timeout(err) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
