package dim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seven struct{}

func (seven) Extent() int { return 7 }

func TestStaticAndDynamicSizes(t *testing.T) {
	n := 3 + len("AA")
	d := New(n)
	s := Static(7)

	assert.Equal(t, 5, d.Size())
	assert.Equal(t, 7, s.Size())
	assert.Equal(t, FlavorDynamic, d.Flavor())
	assert.True(t, s.IsStatic())
	assert.False(t, d.IsStatic())
}

func TestOfUsesExtentType(t *testing.T) {
	d := Of[seven]()
	assert.Equal(t, 7, d.Size())
	assert.True(t, d.IsStatic())
	assert.True(t, d.Same(Static(7)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "7", Static(7).String())

	d := New(5)
	s := d.String()
	require.True(t, strings.HasPrefix(s, "5|"), "dynamic tags print a thumbprint: %q", s)
	assert.Equal(t, "5|"+d.Thumbprint(), s)
	assert.Len(t, d.Thumbprint(), 4)
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		name string
		a, b Dim
		want bool
	}{
		{"static equal", Static(4), Static(4), true},
		{"static different", Static(4), Static(3), false},
		{"dynamic vs static equal", New(5), Static(5), true},
		{"dynamic vs dynamic equal", New(2), New(2), true},
		{"dynamic vs dynamic different", New(2), New(3), false},
		{"empty axes", Static(0), New(0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compatible(tt.b))
			assert.Equal(t, tt.want, tt.b.Compatible(tt.a))
		})
	}
}

func TestSame(t *testing.T) {
	d := New(3)
	assert.True(t, d.Same(d))
	assert.False(t, d.Same(New(3)), "fresh dynamic tags have distinct identities")
	assert.False(t, d.Same(Static(3)))
	assert.True(t, Static(3).Same(Static(3)))
}

func TestNegativeSizePanics(t *testing.T) {
	assert.Panics(t, func() { Static(-1) })
	assert.Panics(t, func() { New(-2) })
}

func TestFlavorString(t *testing.T) {
	assert.Equal(t, "static", FlavorStatic.String())
	assert.Equal(t, "dynamic", FlavorDynamic.String())
	assert.Equal(t, "unknown", Flavor(9).String())
}
