package tensor

import (
	"fmt"
	"math"
	"strings"

	"github.com/born-ml/tensorism/internal/dim"
)

// Shape is the ordered list of axis dimension tags of a tensor.
// The order defines the row-major storage layout.
type Shape []dim.Dim

// Of builds a shape from dimension tags.
func Of(dims ...dim.Dim) Shape {
	return Shape(dims).Clone()
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor, or -1
// when the product of the axis sizes does not fit in an int.
func (s Shape) NumElements() int {
	n, err := s.Count()
	if err != nil {
		return -1
	}
	return n
}

// Count returns the total number of elements, failing with
// ErrShapeMismatch when the product of the axis sizes overflows an int.
func (s Shape) Count() (int, error) {
	for _, d := range s {
		if d.Size() == 0 {
			return 0, nil
		}
	}
	n := 1 // Scalar has 1 element
	for _, d := range s {
		if n > math.MaxInt/d.Size() {
			return 0, fmt.Errorf("%w: shape %v has more elements than an int can count", ErrShapeMismatch, s)
		}
		n *= d.Size()
	}
	return n, nil
}

// Sizes returns the axis sizes as plain integers.
func (s Shape) Sizes() []int {
	sizes := make([]int, len(s))
	for i, d := range s {
		sizes[i] = d.Size()
	}
	return sizes
}

// Equal checks if two shapes have the same rank and pairwise compatible axes.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Compatible(other[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1].Size()
	}
	return strides
}

// String formats the shape as 〈d1, d2, ...〉.
func (s Shape) String() string {
	var b strings.Builder
	b.WriteString("〈")
	for i, d := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
	}
	b.WriteString("〉")
	return b.String()
}
