package stores

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound reports that no document matched the query.
	ErrNotFound = errors.New("document not found")

	// ErrUnavailable reports that the store could not be reached before the
	// operation deadline.
	ErrUnavailable = errors.New("persistence unavailable")

	// ErrConcurrentModification reports that a conflicting write won the race
	// for the same aggregate. Callers retry the whole operation.
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrAlreadyExists reports a unique-index collision on insert.
	ErrAlreadyExists = errors.New("document already exists")
)

// wrapStoreErr classifies driver failures so controllers can status-code them
// without seeing driver internals.
func wrapStoreErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w: %w", op, ErrAlreadyExists, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
