// Package eval evaluates index expressions: declarative formulas over named
// indices that build a new tensor (or scalar) from tensor operands.
//
// An expression is declared first and evaluated afterwards:
//
//	x := eval.New()
//	i, k := x.Free("i"), x.Free("k")
//	j := x.Bound("j")
//	a := eval.Use(x, "a", A, i, j)
//	b := eval.Use(x, "b", B, j, k)
//
//	c, err := eval.Evaluate(x, func(env eval.Env) float64 {
//	    return eval.Reduce(env, []eval.Index{j}, func(env eval.Env) float64 {
//	        return a.At(env) * b.At(env)
//	    }, reduce.Sum[float64])
//	})
//
// Evaluate resolves every index against the operand axes before reading any
// element, so dimension errors never surface halfway through a reduction.
// The result axes follow the declaration order of the free indices.
package eval

import (
	"errors"
	"fmt"

	"github.com/born-ml/tensorism/internal/index"
	"github.com/born-ml/tensorism/internal/tensor"
)

// Index is a handle to an index symbol declared on an expression.
type Index struct {
	x    *Expr
	slot int
	name string
	role index.Role
}

// Name returns the symbol name.
func (i Index) Name() string {
	return i.name
}

// IsFree reports whether the index names an output axis.
func (i Index) IsFree() bool {
	return i.role == index.Free
}

// String returns the symbol name.
func (i Index) String() string {
	return i.name
}

// Expr holds the declarations of one index expression: its free and bound
// indices and the operand axes they address.
//
// An Expr is built by a single goroutine; once built it can be evaluated
// any number of times, each evaluation resolving afresh.
type Expr struct {
	table *index.Table
	opts  options
	errs  []error
}

// New returns an empty expression.
func New(opts ...Option) *Expr {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Expr{
		table: index.NewTable(),
		opts:  o,
	}
}

// Free declares an index that names an output axis. Output axes appear in
// the order free indices are declared.
func (x *Expr) Free(name string) Index {
	return x.declare(name, index.Free)
}

// Bound declares an index consumed by a reduction.
func (x *Expr) Bound(name string) Index {
	return x.declare(name, index.Bound)
}

func (x *Expr) declare(name string, role index.Role) Index {
	// Declaration errors are kept by the table and reported on resolution.
	slot, _ := x.table.Declare(name, role)
	return Index{x: x, slot: slot, name: name, role: role}
}

// On records that the operand named operand, with axes shape, is indexed
// by idx (one index per axis). Problems are reported on resolution.
func (x *Expr) On(operand string, shape tensor.Shape, idx ...Index) {
	names := make([]string, len(idx))
	for k, i := range idx {
		if i.x != x {
			x.errs = append(x.errs, fmt.Errorf("%w: %q used on %s belongs to another expression",
				index.ErrUnboundIndex, i.name, operand))
			return
		}
		names[k] = i.name
	}
	// Occurrence errors are kept by the table and reported on resolution.
	_ = x.table.Occur(operand, shape, names...)
}

// Check resolves the expression without evaluating it. Programs can call it
// at start-up to surface dimension errors as early as possible.
func (x *Expr) Check() error {
	_, err := x.resolve()
	return err
}

func (x *Expr) resolve() (*index.Resolution, error) {
	res, err := x.table.Resolve()
	if len(x.errs) > 0 {
		err = errors.Join(append(append([]error(nil), x.errs...), err)...)
	}
	if err != nil {
		x.opts.logger.Debug("expression resolution failed", "error", err)
		return nil, err
	}
	return res, nil
}
