package reduce

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set is a finite set of comparable elements.
type Set[K comparable] map[K]struct{}

// SetOf returns a set holding keys.
func SetOf[K comparable](keys ...K) Set[K] {
	s := make(Set[K], len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is in s.
func (s Set[K]) Has(k K) bool {
	_, ok := s[k]
	return ok
}

// Sorted returns the elements of an ordered set in ascending order.
func Sorted[K cmp.Ordered](s Set[K]) []K {
	return slices.Sorted(maps.Keys(s))
}

// Union returns the union of the sets; an empty set for an empty sequence.
func Union[K comparable](seq iter.Seq[Set[K]]) Set[K] {
	out := make(Set[K])
	for s := range seq {
		for k := range s {
			out[k] = struct{}{}
		}
	}
	return out
}

// Intersection returns the intersection of the sets. An empty sequence has
// no universe to intersect, so it yields an empty set. Once the running
// intersection is empty the remaining sets are not pulled.
func Intersection[K comparable](seq iter.Seq[Set[K]]) Set[K] {
	var out Set[K]
	for s := range seq {
		if out == nil {
			out = make(Set[K], len(s))
			for k := range s {
				out[k] = struct{}{}
			}
		} else {
			for k := range out {
				if !s.Has(k) {
					delete(out, k)
				}
			}
		}
		if len(out) == 0 {
			break
		}
	}
	if out == nil {
		out = make(Set[K])
	}
	return out
}
