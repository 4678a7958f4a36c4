package eval

import (
	"fmt"
	"iter"

	"github.com/born-ml/tensorism/internal/index"
	"github.com/born-ml/tensorism/internal/parallel"
	"github.com/born-ml/tensorism/internal/tensor"
)

// Evaluate resolves x and builds the tensor whose element at every
// combination of free indices is body(env).
//
// Combinations are enumerated row-major over the free indices in declaration
// order: the first declared index varies slowest. With no free index the
// result is a rank-0 tensor holding a single body(env).
//
// On error no tensor is returned. Errors raised inside body (out-of-range
// reads, misuse of Reduce) abort the evaluation and are returned here.
func Evaluate[T any](x *Expr, body func(Env) T) (*tensor.Tensor[T], error) {
	res, err := x.resolve()
	if err != nil {
		return nil, err
	}

	free := res.Free()
	shape := tensor.Of(res.FreeDims()...)
	sizes := shape.Sizes()
	n, err := shape.Count()
	if err != nil {
		return nil, err
	}
	x.opts.logger.Debug("expression resolved",
		"free", names(res, free),
		"shape", shape.String(),
		"elements", n,
	)

	root := Env{x: x, res: res}
	out := make([]T, n)
	var crash crashed
	fill := func(pos int) (err error) {
		defer crash.catch(&err)
		out[pos] = body(root.extend(free, unravel(pos, sizes)))
		return nil
	}
	err = parallel.For(n, fill, x.opts.parallel)
	crash.rethrow()
	if err != nil {
		x.opts.logger.Debug("expression evaluation failed", "error", err)
		return nil, err
	}

	x.opts.logger.Debug("expression evaluated", "shape", shape.String())
	return tensor.Own(shape, out)
}

// Scalar evaluates an expression without free indices and returns the bare
// value. It fails with ErrNotScalar if x declares free indices.
func Scalar[T any](x *Expr, body func(Env) T) (T, error) {
	var zero T
	t, err := Evaluate(x, body)
	if err != nil {
		return zero, err
	}
	if t.Rank() != 0 {
		return zero, fmt.Errorf("%w: result has shape %v", ErrNotScalar, t.Shape())
	}
	return t.Item(), nil
}

// Reducer consumes a finite sequence of elements and returns one summary
// element. Sequences passed to reducers can be ranged over only once.
type Reducer[T, R any] func(iter.Seq[T]) R

// Reduce enumerates every combination of the indices in group, nested
// inside env, and feeds body(env') for each of them to reducer, in order.
//
// The group is one flattened cartesian product: its indices are enumerated
// jointly, row-major, leftmost slowest. Nest Reduce calls inside body to get
// separately nested reductions instead.
//
// The sequence is lazy: body runs only as the reducer pulls elements, so a
// reducer that stops early (such as a short-circuit any/all) skips the
// remaining combinations. An empty range yields an empty sequence; what the
// reducer returns then is the reducer's own contract.
//
// Indices in group must be bound indices of env's expression, distinct, and
// not already active in env; otherwise the evaluation fails with
// ErrDuplicateIndex. The group is checked when Reduce runs, so a misuse in
// a body that is never called (for example over an empty free axis) goes
// unreported.
func Reduce[T, R any](env Env, group []Index, body func(Env) T, reducer Reducer[T, R]) R {
	slots := env.claim(group)
	sizes := make([]int, len(slots))
	total := 1
	for k, slot := range slots {
		sizes[k] = env.res.Size(slot)
		total *= sizes[k]
	}

	used := false
	seq := func(yield func(T) bool) {
		if used {
			raise(ErrSequenceReused)
		}
		used = true
		for pos := 0; pos < total; pos++ {
			if !yield(body(env.extend(slots, unravel(pos, sizes)))) {
				return
			}
		}
	}
	return reducer(seq)
}

// claim validates a reduction group against env and returns its slots.
func (e Env) claim(group []Index) []int {
	slots := make([]int, len(group))
	for k, idx := range group {
		e.own(idx)
		switch {
		case idx.role == index.Free:
			raise(fmt.Errorf("%w: free index %q cannot be reduced over", index.ErrDuplicateIndex, idx.name))
		case e.Has(idx):
			raise(fmt.Errorf("%w: %q is already active in an enclosing reduction", index.ErrDuplicateIndex, idx.name))
		}
		for _, prev := range group[:k] {
			if prev.slot == idx.slot {
				raise(fmt.Errorf("%w: %q listed twice in one reduction", index.ErrDuplicateIndex, idx.name))
			}
		}
		slots[k] = idx.slot
	}
	return slots
}

// Cond evaluates pred against env and then exactly one branch: then when
// pred holds, otherwise when it does not. The other branch is never called,
// so it may be undefined for the current positions.
func Cond[T any](env Env, pred func(Env) bool, then, otherwise func(Env) T) T {
	if pred(env) {
		return then(env)
	}
	return otherwise(env)
}

// unravel converts a row-major linear position into a multi-index.
func unravel(pos int, sizes []int) []int {
	values := make([]int, len(sizes))
	for k := len(sizes) - 1; k >= 0; k-- {
		values[k] = pos % sizes[k]
		pos /= sizes[k]
	}
	return values
}

func names(res *index.Resolution, slots []int) []string {
	out := make([]string, len(slots))
	for k, slot := range slots {
		out[k] = res.Name(slot)
	}
	return out
}
