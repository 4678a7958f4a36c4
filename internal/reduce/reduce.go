// Package reduce provides common reducers for index expressions.
//
// A reducer consumes a finite, single-pass sequence and returns one value.
// Each reducer documents what it returns for an empty sequence; the
// evaluator itself imposes no default.
//
// All and Any stop pulling from the sequence once the outcome is known.
// This short-circuit is a property of these reducers, not of the evaluator:
// any reducer may stop early, and the remaining elements are then never
// computed.
package reduce

import (
	"cmp"
	"iter"
)

// Number is a constraint for numeric element types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns the sum of the elements, 0 for an empty sequence.
func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Product returns the product of the elements, 1 for an empty sequence.
func Product[T Number](seq iter.Seq[T]) T {
	total := T(1)
	for v := range seq {
		total *= v
	}
	return total
}

// Count returns the number of elements.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// All reports whether every element is true; true for an empty sequence.
// It stops at the first false element.
func All(seq iter.Seq[bool]) bool {
	for v := range seq {
		if !v {
			return false
		}
	}
	return true
}

// Any reports whether some element is true; false for an empty sequence.
// It stops at the first true element.
func Any(seq iter.Seq[bool]) bool {
	for v := range seq {
		if v {
			return true
		}
	}
	return false
}

// Extremum is the result of Max and Min. OK is false for an empty sequence.
type Extremum[T any] struct {
	Value T
	OK    bool
}

// Max returns the largest element. For an empty sequence OK is false.
// Ties keep the first element.
func Max[T cmp.Ordered](seq iter.Seq[T]) Extremum[T] {
	return extremum(seq, func(a, b T) bool { return cmp.Less(b, a) })
}

// Min returns the smallest element. For an empty sequence OK is false.
// Ties keep the first element.
func Min[T cmp.Ordered](seq iter.Seq[T]) Extremum[T] {
	return extremum(seq, cmp.Less[T])
}

func extremum[T any](seq iter.Seq[T], better func(a, b T) bool) Extremum[T] {
	var out Extremum[T]
	for v := range seq {
		if !out.OK || better(v, out.Value) {
			out = Extremum[T]{Value: v, OK: true}
		}
	}
	return out
}

// MaxOr returns a reducer yielding the largest element, or def for an
// empty sequence.
func MaxOr[T cmp.Ordered](def T) func(iter.Seq[T]) T {
	return func(seq iter.Seq[T]) T {
		if m := Max(seq); m.OK {
			return m.Value
		}
		return def
	}
}

// MinOr returns a reducer yielding the smallest element, or def for an
// empty sequence.
func MinOr[T cmp.Ordered](def T) func(iter.Seq[T]) T {
	return func(seq iter.Seq[T]) T {
		if m := Min(seq); m.OK {
			return m.Value
		}
		return def
	}
}

// Collect returns the elements in enumeration order, nil for an empty
// sequence.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Concat joins slices in enumeration order. It is order-sensitive.
func Concat[T any](seq iter.Seq[[]T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v...)
	}
	return out
}

// First returns the first element and stops. For an empty sequence OK is
// false.
func First[T any](seq iter.Seq[T]) Extremum[T] {
	for v := range seq {
		return Extremum[T]{Value: v, OK: true}
	}
	return Extremum[T]{}
}
