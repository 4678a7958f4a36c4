// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package reduce provides stock reducers for ricci.Reduce.
//
// A reducer consumes a finite, single-pass sequence and returns one value.
// Each reducer documents its result for an empty sequence. All, Any and
// First stop pulling once the outcome is known, which skips the remaining
// body evaluations.
package reduce

import (
	"cmp"
	"iter"

	"github.com/born-ml/tensorism/internal/reduce"
)

// Number is a constraint for numeric element types.
type Number = reduce.Number

// Extremum is the result of Max, Min and First. OK is false for an empty
// sequence.
type Extremum[T any] = reduce.Extremum[T]

// Set is a finite set of comparable elements.
type Set[K comparable] = reduce.Set[K]

// Sum returns the sum of the elements, 0 when empty.
func Sum[T Number](seq iter.Seq[T]) T { return reduce.Sum(seq) }

// Product returns the product of the elements, 1 when empty.
func Product[T Number](seq iter.Seq[T]) T { return reduce.Product(seq) }

// Count returns the number of elements.
func Count[T any](seq iter.Seq[T]) int { return reduce.Count(seq) }

// All reports whether every element is true; true when empty.
func All(seq iter.Seq[bool]) bool { return reduce.All(seq) }

// Any reports whether some element is true; false when empty.
func Any(seq iter.Seq[bool]) bool { return reduce.Any(seq) }

// Max returns the largest element.
func Max[T cmp.Ordered](seq iter.Seq[T]) Extremum[T] { return reduce.Max(seq) }

// Min returns the smallest element.
func Min[T cmp.Ordered](seq iter.Seq[T]) Extremum[T] { return reduce.Min(seq) }

// MaxOr returns a reducer yielding the largest element, or def when empty.
func MaxOr[T cmp.Ordered](def T) func(iter.Seq[T]) T { return reduce.MaxOr(def) }

// MinOr returns a reducer yielding the smallest element, or def when empty.
func MinOr[T cmp.Ordered](def T) func(iter.Seq[T]) T { return reduce.MinOr(def) }

// Collect returns the elements in enumeration order.
func Collect[T any](seq iter.Seq[T]) []T { return reduce.Collect(seq) }

// Concat joins slices in enumeration order.
func Concat[T any](seq iter.Seq[[]T]) []T { return reduce.Concat(seq) }

// First returns the first element.
func First[T any](seq iter.Seq[T]) Extremum[T] { return reduce.First(seq) }

// SetOf returns a set holding keys.
func SetOf[K comparable](keys ...K) Set[K] { return reduce.SetOf(keys...) }

// Sorted returns the elements of s in ascending order.
func Sorted[K cmp.Ordered](s Set[K]) []K { return reduce.Sorted(s) }

// Union returns the union of the sets; empty when there are none.
func Union[K comparable](seq iter.Seq[Set[K]]) Set[K] { return reduce.Union(seq) }

// Intersection returns the intersection of the sets; empty when there are
// none.
func Intersection[K comparable](seq iter.Seq[Set[K]]) Set[K] { return reduce.Intersection(seq) }
