package tensor

import "fmt"

// Builder assembles a tensor incrementally, in row-major order.
// Build succeeds only once every position has been set exactly once.
//
// Example:
//
//	b := tensor.NewBuilder[int](tensor.Of(dim.Static(2), dim.Static(3)))
//	b.Append(1, 2, 3).FillN(0, 3)
//	t, err := b.Build()
type Builder[T any] struct {
	shape    Shape
	size     int
	err      error // set when the shape is too large to count
	data     []T
	overflow int
}

// NewBuilder returns an empty builder for the given shape.
func NewBuilder[T any](shape Shape) *Builder[T] {
	shape = shape.Clone()
	size, err := shape.Count()
	return &Builder[T]{
		shape: shape,
		size:  size,
		err:   err,
		data:  make([]T, 0, size),
	}
}

// Set returns the number of positions already set.
func (b *Builder[T]) Set() int {
	return len(b.data)
}

// Unset returns the number of positions still to be set.
func (b *Builder[T]) Unset() int {
	return b.size - len(b.data)
}

// Append sets the next positions to values.
func (b *Builder[T]) Append(values ...T) *Builder[T] {
	for _, v := range values {
		b.push(v)
	}
	return b
}

// FillN sets the next n positions to value.
func (b *Builder[T]) FillN(value T, n int) *Builder[T] {
	for i := 0; i < n; i++ {
		b.push(value)
	}
	return b
}

// Fill sets every remaining position to value and builds the tensor.
func (b *Builder[T]) Fill(value T) (*Tensor[T], error) {
	return b.FillN(value, b.Unset()).Build()
}

func (b *Builder[T]) push(v T) {
	if b.Unset() == 0 {
		b.overflow++
		return
	}
	b.data = append(b.data, v)
}

// Build returns the tensor. It fails with ErrShapeMismatch if positions
// are missing, too many values were appended, or the shape is too large
// to count.
func (b *Builder[T]) Build() (*Tensor[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.overflow > 0 {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but %d extra were appended",
			ErrShapeMismatch, b.shape, b.size, b.overflow)
	}
	if b.Unset() != 0 {
		return nil, shapeMismatch(b.shape, len(b.data))
	}
	data := make([]T, len(b.data))
	copy(data, b.data)
	return wrap(b.shape.Clone(), data), nil
}
