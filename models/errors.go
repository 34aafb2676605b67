package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Ledger related errors
var (
	// ErrLedgerWriteConflict is returned when an append lost the race on an
	// organization's chain head and the bounded retries were exhausted. It is
	// transient: the caller may retry the whole operation.
	ErrLedgerWriteConflict = errors.Wrap(ConflictError, "audit chain head moved concurrently")

	// ErrLedgerAppendOnly is returned by the store layer when anything other
	// than an insert reaches the audit entries relation.
	ErrLedgerAppendOnly = errors.Wrap(ForbiddenError, "audit entries are append-only")
)

// Export related errors
var (
	ErrExportSignatureInvalid = errors.Wrap(BadParameterError, "export signature does not match content")
	ErrUnknownExportFormat    = errors.Wrap(BadParameterError, "unknown export format")
)

// Authentication related errors
var ErrUnknownUser = errors.Wrap(NotFoundError, "unknown user")
