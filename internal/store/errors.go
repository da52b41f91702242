package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup, update or delete targets a
	// user id that does not exist, and when a post references such a user.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidData is returned when the database rejects a row because it
	// violates a NOT NULL or CHECK constraint (e.g. an empty name).
	ErrInvalidData = errors.New("invalid data rejected by storage")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails for a reason that has no domain meaning.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when no driver can be derived from a DSN.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
