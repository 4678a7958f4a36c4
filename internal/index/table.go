// Package index resolves the index symbols of one expression to dimension
// tags and checks that every occurrence of a symbol agrees on the size.
//
// A Table is filled in two steps, declarations then occurrences, and
// Resolve turns it into an immutable Resolution. Resolution never looks at
// tensor elements, only at axis tags, so shape errors are always reported
// before any iteration starts.
package index

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/born-ml/tensorism/internal/dim"
)

// Role tells whether a symbol appears in the output shape.
type Role uint8

// Symbol roles.
const (
	Free  Role = iota // Names an output axis.
	Bound             // Consumed by a reduction.
)

// String returns the role name.
func (r Role) String() string {
	if r == Free {
		return "free"
	}
	return "bound"
}

// Occurrence pairs an index symbol with the operand axis it addresses.
type Occurrence struct {
	Symbol  string
	Operand string
	Axis    int
	Dim     dim.Dim
}

func (o Occurrence) where() string {
	return fmt.Sprintf("%s (axis %d)", o.Operand, o.Axis)
}

type declaration struct {
	name string
	role Role
}

// Table collects the declarations and occurrences of one expression.
// It is not safe for concurrent use.
type Table struct {
	slots       map[string]int
	decls       []declaration
	occurrences []Occurrence
	ranks       map[string]int
	errs        []error
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		slots: make(map[string]int),
		ranks: make(map[string]int),
	}
}

// Declare adds a symbol and returns its slot. Symbol names are unique
// within one expression; redeclaring a name fails with ErrDuplicateIndex.
// Errors are also kept and reported again by Resolve.
func (t *Table) Declare(name string, role Role) (int, error) {
	if name == "" {
		return -1, t.fail(fmt.Errorf("%w: empty index name", ErrUnboundIndex))
	}
	if slot, ok := t.slots[name]; ok {
		return -1, t.fail(fmt.Errorf("%w: %q already declared as %s index",
			ErrDuplicateIndex, name, t.decls[slot].role))
	}
	slot := len(t.decls)
	t.slots[name] = slot
	t.decls = append(t.decls, declaration{name: name, role: role})
	return slot, nil
}

// Occur records that operand is indexed by symbols, one per axis of shape.
// The symbols must be declared and their count must match the rank, which
// must also be the same for every use of the operand.
func (t *Table) Occur(operand string, shape []dim.Dim, symbols ...string) error {
	if len(symbols) != len(shape) {
		return t.fail(fmt.Errorf("%w: %s has %d axes but is indexed by %d symbols",
			ErrRankMismatch, operand, len(shape), len(symbols)))
	}
	if rank, ok := t.ranks[operand]; ok && rank != len(shape) {
		return t.fail(fmt.Errorf("%w: %s used with %d and %d indices",
			ErrRankMismatch, operand, rank, len(shape)))
	}
	for _, s := range symbols {
		if _, ok := t.slots[s]; !ok {
			return t.fail(fmt.Errorf("%w: %q used on %s but never declared", ErrUnboundIndex, s, operand))
		}
	}
	t.ranks[operand] = len(shape)
	for axis, s := range symbols {
		t.occurrences = append(t.occurrences, Occurrence{
			Symbol:  s,
			Operand: operand,
			Axis:    axis,
			Dim:     shape[axis],
		})
	}
	return nil
}

func (t *Table) fail(err error) error {
	t.errs = append(t.errs, err)
	return err
}

// Resolve unifies every occurrence of each declared symbol.
//
// The outcome does not depend on the order occurrences were recorded:
// sizes are compared by value, and when several compatible tags meet the
// chosen one is a static tag if any, else the dynamic tag with the smallest
// identity. All problems are reported together.
func (t *Table) Resolve() (*Resolution, error) {
	errs := append([]error(nil), t.errs...)

	bySymbol := make([][]Occurrence, len(t.decls))
	for _, o := range t.occurrences {
		slot := t.slots[o.Symbol]
		bySymbol[slot] = append(bySymbol[slot], o)
	}

	r := &Resolution{
		slots: t.slots,
		decls: t.decls,
		dims:  make([]dim.Dim, len(t.decls)),
	}
	for slot, decl := range t.decls {
		if decl.role == Free {
			r.free = append(r.free, slot)
		}
		occ := bySymbol[slot]
		if len(occ) == 0 {
			errs = append(errs, fmt.Errorf("%w: %q is declared but never used on an operand",
				ErrUnboundIndex, decl.name))
			continue
		}
		d, err := unify(decl.name, occ)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.dims[slot] = d
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// unify checks that every occurrence has the same size and picks the
// canonical tag among them.
func unify(symbol string, occ []Occurrence) (dim.Dim, error) {
	first := occ[0]
	chosen := first.Dim
	for _, o := range occ[1:] {
		if !first.Dim.Compatible(o.Dim) {
			return dim.Dim{}, &MismatchError{Symbol: symbol, First: first, Second: o}
		}
		if prefer(o.Dim, chosen) {
			chosen = o.Dim
		}
	}
	return chosen, nil
}

func prefer(a, b dim.Dim) bool {
	if a.IsStatic() != b.IsStatic() {
		return a.IsStatic()
	}
	if a.IsStatic() {
		return false
	}
	return bytes.Compare(a.ID(), b.ID()) < 0
}
