package eval

import (
	"fmt"

	"github.com/born-ml/tensorism/internal/index"
)

// frame binds a group of slots to positions. Frames are never mutated
// after creation; extending an environment pushes a new frame.
type frame struct {
	slots  []int
	values []int
	parent *frame
}

// Env maps every active index to its current position during one step of
// enumeration. Envs are immutable values: Reduce and Evaluate extend them
// by creating new ones, so sibling branches never see each other's bindings.
type Env struct {
	x   *Expr
	res *index.Resolution
	top *frame
}

// Value returns the current position of idx, in [0, size).
// Panics with ErrUnboundIndex if idx is not active in env.
func (e Env) Value(idx Index) int {
	if v, ok := e.lookup(idx); ok {
		return v
	}
	raise(fmt.Errorf("%w: %q is not active here", index.ErrUnboundIndex, idx.name))
	return 0
}

// Has reports whether idx is active in env.
func (e Env) Has(idx Index) bool {
	_, ok := e.lookup(idx)
	return ok
}

// Size returns the range of idx as resolved for this evaluation.
func (e Env) Size(idx Index) int {
	e.own(idx)
	return e.res.Size(idx.slot)
}

func (e Env) lookup(idx Index) (int, bool) {
	if idx.x != e.x || e.x == nil {
		return 0, false
	}
	for f := e.top; f != nil; f = f.parent {
		for k, slot := range f.slots {
			if slot == idx.slot {
				return f.values[k], true
			}
		}
	}
	return 0, false
}

func (e Env) own(idx Index) {
	if e.x == nil {
		raise(fmt.Errorf("%w: environment was not created by Evaluate", index.ErrUnboundIndex))
	}
	if idx.x != e.x || idx.slot < 0 {
		raise(fmt.Errorf("%w: %q does not belong to this expression", index.ErrUnboundIndex, idx.name))
	}
}

func (e Env) extend(slots, values []int) Env {
	return Env{
		x:   e.x,
		res: e.res,
		top: &frame{slots: slots, values: values, parent: e.top},
	}
}
