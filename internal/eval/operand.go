package eval

import (
	"github.com/born-ml/tensorism/internal/tensor"
)

// Operand is a tensor indexed by a fixed list of indices inside one
// expression, like a[i, j] in index notation.
type Operand[T any] struct {
	name string
	t    *tensor.Tensor[T]
	idx  []Index
}

// Use registers t as an operand of x indexed by idx, one index per axis,
// and returns a handle that reads elements in an environment.
func Use[T any](x *Expr, name string, t *tensor.Tensor[T], idx ...Index) Operand[T] {
	x.On(name, t.Shape(), idx...)
	return Operand[T]{
		name: name,
		t:    t,
		idx:  append([]Index(nil), idx...),
	}
}

// Name returns the operand name used in error messages.
func (o Operand[T]) Name() string {
	return o.name
}

// At returns the element addressed by the current positions of the
// operand's indices in env.
func (o Operand[T]) At(env Env) T {
	positions := make([]int, len(o.idx))
	for k, idx := range o.idx {
		positions[k] = env.Value(idx)
	}
	v, err := o.t.At(positions...)
	if err != nil {
		raise(err)
	}
	return v
}
