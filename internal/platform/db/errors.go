package db

import (
	"errors"
	"fmt"
)

// Repository error taxonomy. Driver failures are wrapped into
// *DataAccessError at the scope boundary so that no pgx error type crosses
// into the service or HTTP layers. ErrEntityNotFound and ErrNoDataFound are
// raised deliberately by repository units of work when the result shape
// signals domain-level absence; they never wrap a lower-level failure.

var (
	// ErrEntityNotFound reports that a single-row lookup, update or delete
	// targeted a key that does not exist.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrNoDataFound reports that a multi-row lookup produced zero rows.
	// Only the strict repository contract uses it; the lenient DAO contract
	// models the same outcome as an empty result.
	ErrNoDataFound = errors.New("no data found")
)

// DataAccessError is a failure originating from the driver or transport
// layer, or an INSERT that inserted zero rows. It always carries the
// original cause when one exists.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// AccessError wraps cause as a DataAccessError for the given operation.
func AccessError(op string, cause error) error {
	return &DataAccessError{Op: op, Err: cause}
}

// IsDataAccess reports whether err is, or wraps, a DataAccessError.
func IsDataAccess(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae)
}
