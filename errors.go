package collate

import (
	"errors"
	"fmt"
)

var (
	// ErrUnfulfilled reports a result read for a position the pass never
	// visited, either because the input was shorter than the requested
	// index or because the caller read the result before feeding.
	ErrUnfulfilled = errors.New("collate: unfulfilled slot")

	// ErrNegativeIndex reports a negative index passed to Sample or
	// BulkSample. It is detected at construction and surfaced by Open or
	// Run before any input is touched.
	ErrNegativeIndex = errors.New("collate: negative index")
)

// unfulfilledErr tags ErrUnfulfilled with the position that was never fed.
func unfulfilledErr(index int) error {
	return fmt.Errorf("index %d never visited: %w", index, ErrUnfulfilled)
}

// negativeIndexErr tags ErrNegativeIndex with the offending request.
func negativeIndexErr(op string, index int) error {
	return fmt.Errorf("%s(%d): %w", op, index, ErrNegativeIndex)
}
