package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
)

func shapeMismatch(shape Shape, got int) error {
	return fmt.Errorf("%w: shape %v requires %d elements, but got %d",
		ErrShapeMismatch, shape, shape.NumElements(), got)
}
