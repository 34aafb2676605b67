package repositories

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation = "23505"
	pgRaiseException  = "P0001"
)

func IsUniqueViolationError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == pgUniqueViolation
}

// IsLedgerAppendOnlyError matches the exception raised by the
// audit_entries_append_only trigger.
func IsLedgerAppendOnlyError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == pgRaiseException &&
		strings.Contains(pgxErr.Message, "append-only")
}
