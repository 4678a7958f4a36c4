// Package tensor provides the dense tensor container used as operand and
// result of index expressions.
package tensor

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Tensor is an immutable dense N-axis array of elements of type T.
// Every axis is stamped with a dimension tag; storage is row-major.
//
// Tensors never expose their storage: constructors copy their input and
// accessors return copies, so a tensor can be read concurrently by any
// number of evaluations.
//
// Example:
//
//	rows, cols := dim.Static(2), dim.Static(3)
//	t, err := tensor.New(tensor.Of(rows, cols), []float64{1, 2, 3, 4, 5, 6})
//	v, err := t.At(1, 2) // 6
type Tensor[T any] struct {
	shape  Shape
	stride []int
	data   []T
}

// New creates a tensor from a flat row-major element slice.
// The slice is copied into the tensor's memory.
func New[T any](shape Shape, data []T) (*Tensor[T], error) {
	if err := fits(shape, len(data)); err != nil {
		return nil, err
	}
	owned := make([]T, len(data))
	copy(owned, data)
	return wrap(shape.Clone(), owned), nil
}

// wrap takes ownership of data without copying. len(data) must match shape.
func wrap[T any](shape Shape, data []T) *Tensor[T] {
	return &Tensor[T]{
		shape:  shape,
		stride: shape.ComputeStrides(),
		data:   data,
	}
}

// Shape returns the tensor's axes, in order.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Cast returns the same elements stamped with the tags of shape. Every axis
// of shape must have the size of the matching axis of t; otherwise Cast
// fails with ErrShapeMismatch. The result shares t's read-only storage.
//
// Example:
//
//	n := dim.Static(3)
//	square, err := t.Cast(tensor.Of(n, n))
func (t *Tensor[T]) Cast(shape Shape) (*Tensor[T], error) {
	if !t.shape.Equal(shape) {
		return nil, fmt.Errorf("%w: cannot cast %v to %v", ErrShapeMismatch, t.shape, shape)
	}
	return &Tensor[T]{
		shape:  shape.Clone(),
		stride: t.stride,
		data:   t.data,
	}, nil
}

// Equal reports whether a and b have pairwise compatible axes and equal
// elements. Tags are compared by size, so a dynamically tagged tensor
// equals a statically tagged one with the same sizes and elements.
func Equal[T comparable](a, b *Tensor[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.shape.Equal(b.shape) && slices.Equal(a.data, b.data)
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Offset returns the linear storage offset of a multi-index.
func (t *Tensor[T]) Offset(indices ...int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrIndexOutOfRange, len(t.shape), len(indices))
	}

	// Calculate flat index using strides
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i].Size() {
			return 0, fmt.Errorf("%w: index %d out of bounds for axis %d (size %d)",
				ErrIndexOutOfRange, idx, i, t.shape[i].Size())
		}
		offset += idx * t.stride[i]
	}
	return offset, nil
}

// At returns the element at the given indices.
//
// Example:
//
//	value, err := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(indices ...int) (T, error) {
	offset, err := t.Offset(indices...)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[offset], nil
}

// MustAt is like At but panics with the error if indices are out of bounds.
// Evaluation recovers such panics and reports them as errors.
func (t *Tensor[T]) MustAt(indices ...int) T {
	v, err := t.At(indices...)
	if err != nil {
		panic(err)
	}
	return v
}

// Item returns the value of a rank-0 tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor[T]) Item() T {
	if len(t.shape) != 0 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// Data returns a copy of the elements in row-major order.
func (t *Tensor[T]) Data() []T {
	out := make([]T, len(t.data))
	copy(out, t.data)
	return out
}

// All iterates over every element in row-major order together with its
// multi-index. The index slice is reused between iterations.
func (t *Tensor[T]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		idx := make([]int, len(t.shape))
		for _, v := range t.data {
			if !yield(idx, v) {
				return
			}
			increment(idx, t.shape)
		}
	}
}

// increment advances a row-major multi-index by one position.
func increment(idx []int, shape Shape) {
	for k := len(idx) - 1; k >= 0; k-- {
		idx[k]++
		if idx[k] < shape[k].Size() {
			return
		}
		idx[k] = 0
	}
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	var b strings.Builder
	b.WriteString(t.shape.String())
	if len(t.shape) == 0 {
		fmt.Fprintf(&b, "[%v]", t.data[0])
		return b.String()
	}
	t.format(&b, 0, 0)
	return b.String()
}

func (t *Tensor[T]) format(b *strings.Builder, axis, offset int) {
	b.WriteString("[")
	n := t.shape[axis].Size()
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if axis == len(t.shape)-1 {
			fmt.Fprintf(b, "%v", t.data[offset+i])
		} else {
			t.format(b, axis+1, offset+i*t.stride[axis])
		}
	}
	b.WriteString("]")
}
