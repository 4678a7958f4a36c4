package reduce

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// counting yields values and records how many were pulled.
func counting[T any](values []T, pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

func TestSumProduct(t *testing.T) {
	assert.Equal(t, 10, Sum(slices.Values([]int{1, 2, 3, 4})))
	assert.Equal(t, 24, Product(slices.Values([]int{1, 2, 3, 4})))
	assert.InDelta(t, 0.75, Sum(slices.Values([]float64{0.25, 0.5})), 1e-12)
}

func TestEmptySequences(t *testing.T) {
	empty := slices.Values([]int(nil))
	assert.Equal(t, 0, Sum(empty))
	assert.Equal(t, 1, Product(empty))
	assert.Equal(t, 0, Count(empty))
	assert.False(t, Max(empty).OK)
	assert.False(t, Min(empty).OK)
	assert.Equal(t, -1, MaxOr(-1)(empty))
	assert.Equal(t, 7, MinOr(7)(empty))
	assert.Nil(t, Collect(empty))
	assert.False(t, First(empty).OK)

	noBools := slices.Values([]bool(nil))
	assert.True(t, All(noBools))
	assert.False(t, Any(noBools))

	assert.Empty(t, Union(slices.Values([]Set[int](nil))))
	assert.Empty(t, Intersection(slices.Values([]Set[int](nil))))
}

func TestAllAnyShortCircuit(t *testing.T) {
	pulled := 0
	assert.False(t, All(counting([]bool{true, false, true, true}, &pulled)))
	assert.Equal(t, 2, pulled)

	pulled = 0
	assert.True(t, Any(counting([]bool{false, true, false}, &pulled)))
	assert.Equal(t, 2, pulled)

	pulled = 0
	assert.True(t, All(counting([]bool{true, true}, &pulled)))
	assert.Equal(t, 2, pulled)
}

func TestMaxMin(t *testing.T) {
	values := []int{3, 9, 1, 9, 4}
	assert.Equal(t, Extremum[int]{Value: 9, OK: true}, Max(slices.Values(values)))
	assert.Equal(t, Extremum[int]{Value: 1, OK: true}, Min(slices.Values(values)))
	assert.Equal(t, 9, MaxOr(0)(slices.Values(values)))
	assert.Equal(t, 1, MinOr(0)(slices.Values(values)))
	assert.Equal(t, "b", MaxOr("")(slices.Values([]string{"a", "b"})))
}

func TestOrderSensitive(t *testing.T) {
	assert.Equal(t, []string{"x", "y", "z"}, Collect(slices.Values([]string{"x", "y", "z"})))
	assert.Equal(t, []int{1, 2, 3, 4}, Concat(slices.Values([][]int{{1, 2}, {}, {3, 4}})))

	pulled := 0
	first := First(counting([]int{5, 6, 7}, &pulled))
	assert.Equal(t, 5, first.Value)
	assert.Equal(t, 1, pulled)
}

func TestSets(t *testing.T) {
	a := SetOf(1, 2, 3, 4)
	b := SetOf(2, 4, 6)
	c := SetOf(4, 2, 8)

	inter := Intersection(slices.Values([]Set[int]{a, b, c}))
	assert.Equal(t, []int{2, 4}, Sorted(inter))

	union := Union(slices.Values([]Set[int]{a, b, c}))
	assert.Equal(t, []int{1, 2, 3, 4, 6, 8}, Sorted(union))

	assert.True(t, a.Has(3))
	assert.False(t, b.Has(3))

	// Inputs are not modified.
	assert.Len(t, a, 4)
}

func TestIntersectionStopsWhenEmpty(t *testing.T) {
	pulled := 0
	sets := []Set[string]{SetOf("a"), SetOf("b"), SetOf("a", "b")}
	out := Intersection(counting(sets, &pulled))
	assert.Empty(t, out)
	assert.Equal(t, 2, pulled)
}
