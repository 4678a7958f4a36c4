package index

import "github.com/born-ml/tensorism/internal/dim"

// Resolution is the immutable outcome of resolving a Table: one dimension
// tag per declared symbol.
type Resolution struct {
	slots map[string]int
	decls []declaration
	dims  []dim.Dim
	free  []int
}

// Len returns the number of declared symbols.
func (r *Resolution) Len() int {
	return len(r.decls)
}

// Slot returns the slot of a symbol name.
func (r *Resolution) Slot(name string) (int, bool) {
	slot, ok := r.slots[name]
	return slot, ok
}

// Name returns the symbol name of a slot.
func (r *Resolution) Name(slot int) string {
	return r.decls[slot].name
}

// Role returns the role of a slot.
func (r *Resolution) Role(slot int) Role {
	return r.decls[slot].role
}

// Dim returns the dimension tag a slot resolved to.
func (r *Resolution) Dim(slot int) dim.Dim {
	return r.dims[slot]
}

// Size returns the iteration range [0, size) of a slot.
func (r *Resolution) Size(slot int) int {
	return r.dims[slot].Size()
}

// Free returns the free slots in declaration order.
func (r *Resolution) Free() []int {
	return append([]int(nil), r.free...)
}

// FreeDims returns the tags of the free slots in declaration order; they
// are the axes of the expression's result.
func (r *Resolution) FreeDims() []dim.Dim {
	dims := make([]dim.Dim, len(r.free))
	for i, slot := range r.free {
		dims[i] = r.dims[slot]
	}
	return dims
}
