package store

import (
	"errors"
	"fmt"
)

// Classification sentinels. Every error returned by a [Storage] carries at
// most one of them in its chain; callers match with [errors.Is].
var (
	// ErrConstraintViolation is returned when a write breaks a uniqueness or
	// other integrity constraint, e.g. a username or email that already exists.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrReferenceViolation is returned when a write references a row that
	// does not exist, e.g. a usage event for an unknown tool or user.
	ErrReferenceViolation = errors.New("reference violation")

	// ErrStorageUnavailable is returned when the operation cannot be served:
	// the database is unreachable or the server runs in fallback mode and the
	// operation needs real storage.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrMigratingSchema is returned when schema migrations cannot be applied.
	ErrMigratingSchema = errors.New("failed to migrate schema")
)

// StorageError is the typed failure of a storage operation.
// Op names the operation, Err is the wrapped cause.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func newStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
