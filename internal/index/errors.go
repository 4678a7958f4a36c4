package index

import (
	"errors"
	"fmt"
)

// Resolution errors.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrUnboundIndex      = errors.New("unbound index")
	ErrDuplicateIndex    = errors.New("duplicate index")
	ErrRankMismatch      = fmt.Errorf("%w: wrong number of indices", ErrDimensionMismatch)
)

// MismatchError reports two occurrences of one index symbol whose axes have
// different sizes.
type MismatchError struct {
	Symbol string     // Index symbol being unified
	First  Occurrence // Occurrence that fixed the range
	Second Occurrence // Conflicting occurrence
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: index %q is %d on %s but %d on %s",
		ErrDimensionMismatch, e.Symbol,
		e.First.Dim.Size(), e.First.where(),
		e.Second.Dim.Size(), e.Second.where())
}

// Unwrap returns ErrDimensionMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrDimensionMismatch
}
