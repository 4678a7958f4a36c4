// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dim provides dimension tags, the size markers stamped on tensor
// axes.
//
// Static tags (Static, Of) have a size known before any data exists; dynamic
// tags (New) get their size at run time and carry a random identity shown
// in their String form ("5|q3A="). Any two tags addressed by the same index
// symbol must have the same size.
//
// Go has no compile-time numeric type parameters, so static tags are checked
// when an expression is resolved rather than by the compiler. Declare them
// once, as package-level variables, and call Check on expressions at
// start-up to surface mismatches before any data is processed:
//
//	var (
//	    Features = dim.Static(128)
//	    Classes  = dim.Static(10)
//	)
package dim

import "github.com/born-ml/tensorism/internal/dim"

// Dim is an immutable dimension tag.
type Dim = dim.Dim

// Flavor tells whether a tag is static or dynamic.
type Flavor = dim.Flavor

// Flavors.
const (
	FlavorStatic  Flavor = dim.FlavorStatic
	FlavorDynamic Flavor = dim.FlavorDynamic
)

// Extent is implemented by zero-size types that name a static size.
type Extent = dim.Extent

// Static returns a static dimension tag of size n.
func Static(n int) Dim {
	return dim.Static(n)
}

// Of returns a static dimension tag whose size is named by the type E.
//
// Example:
//
//	type Channels struct{}
//
//	func (Channels) Extent() int { return 3 }
//
//	c := dim.Of[Channels]()
func Of[E Extent]() Dim {
	return dim.Of[E]()
}

// New returns a dynamic dimension tag of size n.
func New(n int) Dim {
	return dim.New(n)
}
