package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsExclusionConflict reports a Postgres exclusion-constraint violation
// (23P01), raised when two bookings race past the application-level check.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01"
	}
	return false
}
