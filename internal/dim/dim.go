// Package dim provides dimension tags: the size marker stamped on every
// tensor axis and used to check that two axes addressed by the same index
// symbol really have the same length.
//
// Two flavors exist:
//   - Static tags (Static, Of) have a size fixed before any data exists.
//     Their identity is the size itself.
//   - Dynamic tags (New) get their size at run time and carry a random
//     identity, so two dynamic tags of equal size are still distinguishable
//     when printed.
//
// Go has no compile-time numeric type parameters, so static tags cannot be
// compared by the type checker. They are constructed once (usually as
// package-level variables) and compared at first use instead. This is a
// deliberate precision trade-off: a static mismatch surfaces when the
// expression is resolved, still before any element is read.
package dim

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Flavor tells how a dimension tag was created.
type Flavor uint8

// Dimension tag flavors.
const (
	FlavorStatic Flavor = iota
	FlavorDynamic
)

// String returns a human-readable flavor name.
func (f Flavor) String() string {
	switch f {
	case FlavorStatic:
		return "static"
	case FlavorDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Extent is implemented by zero-size types that name a static size.
//
// Example:
//
//	type Rows struct{}
//
//	func (Rows) Extent() int { return 3 }
//
//	d := dim.Of[Rows]()
type Extent interface {
	Extent() int
}

// Dim is an immutable dimension tag. The zero value is a static tag of size 0.
type Dim struct {
	size   int
	flavor Flavor
	id     uuid.UUID
}

// Static returns a static dimension tag of size n.
// Panics if n is negative.
func Static(n int) Dim {
	mustNonNegative(n)
	return Dim{size: n, flavor: FlavorStatic}
}

// Of returns a static dimension tag whose size is named by the type E.
func Of[E Extent]() Dim {
	var e E
	return Static(e.Extent())
}

// New returns a dynamic dimension tag of size n with a fresh identity.
// Panics if n is negative.
func New(n int) Dim {
	mustNonNegative(n)
	return Dim{size: n, flavor: FlavorDynamic, id: uuid.New()}
}

func mustNonNegative(n int) {
	if n < 0 {
		panic(fmt.Sprintf("dimension size must be >= 0, got %d", n))
	}
}

// Size returns the number of elements along the axis.
func (d Dim) Size() int {
	return d.size
}

// Flavor returns how the tag was created.
func (d Dim) Flavor() Flavor {
	return d.flavor
}

// IsStatic reports whether the tag is of the static flavor.
func (d Dim) IsStatic() bool {
	return d.flavor == FlavorStatic
}

// Compatible reports whether d and other may be addressed by the same index
// symbol. Sizes are compared by value; for two static tags the size is also
// their identity.
func (d Dim) Compatible(other Dim) bool {
	return d.size == other.size
}

// Same reports whether d and other are the very same tag: equal static
// sizes, or the same dynamic identity.
func (d Dim) Same(other Dim) bool {
	if d.flavor != other.flavor || d.size != other.size {
		return false
	}
	return d.flavor == FlavorStatic || d.id == other.id
}

// ID returns the identity bytes of a dynamic tag. Static tags return a
// zero identity.
func (d Dim) ID() []byte {
	return d.id[:]
}

// Thumbprint returns a short printable identity for dynamic tags, or an
// empty string for static ones.
func (d Dim) Thumbprint() string {
	if d.flavor == FlavorStatic {
		return ""
	}
	return base64.StdEncoding.EncodeToString(d.id[:2])
}

// String formats the tag as its size, followed by "|thumbprint" for
// dynamic tags (e.g. "7" or "5|q3A=").
func (d Dim) String() string {
	s := strconv.Itoa(d.size)
	if tp := d.Thumbprint(); tp != "" {
		s += "|" + tp
	}
	return s
}
