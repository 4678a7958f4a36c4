package tensor

// Scalar creates a rank-0 tensor holding v.
func Scalar[T any](v T) *Tensor[T] {
	return wrap(Shape{}, []T{v})
}

// mustCount is Count for constructors without an error return.
func mustCount(shape Shape) int {
	n, err := shape.Count()
	if err != nil {
		panic(err)
	}
	return n
}

// fits checks that a buffer of n elements matches shape exactly.
func fits(shape Shape, n int) error {
	want, err := shape.Count()
	if err != nil {
		return err
	}
	if want != n {
		return shapeMismatch(shape, n)
	}
	return nil
}

// Full creates a tensor filled with a specific value.
// Panics with ErrShapeMismatch if the shape is too large to count.
//
// Example:
//
//	t := tensor.Full(tensor.Of(dim.Static(3), dim.Static(3)), 3.14)
func Full[T any](shape Shape, value T) *Tensor[T] {
	data := make([]T, mustCount(shape))
	for i := range data {
		data[i] = value
	}
	return wrap(shape.Clone(), data)
}

// FromFunc creates a tensor whose element at each multi-index is f(index).
// f is called once per element in row-major order; the index slice is
// reused between calls.
//
// Example:
//
//	eye := tensor.FromFunc(tensor.Of(n, n), func(ix []int) float64 {
//	    if ix[0] == ix[1] {
//	        return 1
//	    }
//	    return 0
//	})
func FromFunc[T any](shape Shape, f func(index []int) T) *Tensor[T] {
	shape = shape.Clone()
	data := make([]T, mustCount(shape))
	if len(data) == 0 {
		return wrap(shape, data)
	}
	idx := make([]int, len(shape))
	for i := range data {
		data[i] = f(idx)
		increment(idx, shape)
	}
	return wrap(shape, data)
}

// Own creates a tensor that takes ownership of data without copying it.
// The caller must not retain or modify data afterwards.
func Own[T any](shape Shape, data []T) (*Tensor[T], error) {
	if err := fits(shape, len(data)); err != nil {
		return nil, err
	}
	return wrap(shape.Clone(), data), nil
}
