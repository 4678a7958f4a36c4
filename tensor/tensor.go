// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensorism/dim"
	"github.com/born-ml/tensorism/internal/tensor"
)

// Type aliases for public API

// Shape is the ordered list of axis dimension tags of a tensor.
// Example: tensor.Of(dim.Static(2), dim.Static(3)) is a 2×3 shape.
type Shape = tensor.Shape

// Tensor is an immutable dense tensor of elements of type T.
//
// Example:
//
//	t, err := tensor.New(tensor.Of(dim.Static(2), dim.Static(2)), []int{1, 2, 3, 4})
//	v := t.MustAt(1, 0) // 3
type Tensor[T any] = tensor.Tensor[T]

// Builder assembles a tensor incrementally in row-major order.
type Builder[T any] = tensor.Builder[T]

// Errors.
var (
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
)

// Of builds a shape from dimension tags.
func Of(dims ...dim.Dim) Shape {
	return tensor.Of(dims...)
}

// Creation functions

// New creates a tensor from a flat row-major element slice.
// Fails with ErrShapeMismatch if len(data) differs from the shape's size.
//
// Example:
//
//	x, err := tensor.New(tensor.Of(dim.Static(2), dim.Static(3)), []float32{1, 2, 3, 4, 5, 6})
func New[T any](shape Shape, data []T) (*Tensor[T], error) {
	return tensor.New(shape, data)
}

// Own is like New but takes ownership of data instead of copying it.
func Own[T any](shape Shape, data []T) (*Tensor[T], error) {
	return tensor.Own(shape, data)
}

// Scalar creates a rank-0 tensor.
func Scalar[T any](v T) *Tensor[T] {
	return tensor.Scalar(v)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full(tensor.Of(dim.Static(2), dim.Static(3)), 3.14)
func Full[T any](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// FromFunc creates a tensor whose element at each multi-index is f(index).
func FromFunc[T any](shape Shape, f func(index []int) T) *Tensor[T] {
	return tensor.FromFunc(shape, f)
}

// NewBuilder returns an empty builder for the given shape.
func NewBuilder[T any](shape Shape) *Builder[T] {
	return tensor.NewBuilder[T](shape)
}

// Equal reports whether a and b have the same axis sizes and equal
// elements. Dimension tags are compared by size.
func Equal[T comparable](a, b *Tensor[T]) bool {
	return tensor.Equal(a, b)
}
