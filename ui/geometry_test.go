package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			"identical",
			Rect{Offset{0, 0}, Extent{5, 5}},
			Rect{Offset{0, 0}, Extent{5, 5}},
			true,
		},
		{
			"partial",
			Rect{Offset{0, 0}, Extent{5, 5}},
			Rect{Offset{3, 3}, Extent{5, 5}},
			true,
		},
		{
			"touching edges do not overlap",
			Rect{Offset{0, 0}, Extent{5, 5}},
			Rect{Offset{5, 0}, Extent{5, 5}},
			false,
		},
		{
			"disjoint",
			Rect{Offset{0, 0}, Extent{2, 2}},
			Rect{Offset{10, 10}, Extent{2, 2}},
			false,
		},
		{
			"contained",
			Rect{Offset{0, 0}, Extent{10, 10}},
			Rect{Offset{2, 2}, Extent{3, 3}},
			true,
		},
		{
			"negative offsets",
			Rect{Offset{-3, -3}, Extent{5, 5}},
			Rect{Offset{0, 0}, Extent{5, 5}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			require.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestRectIntersectMatchesOverlap(t *testing.T) {
	rects := []Rect{
		{Offset{0, 0}, Extent{5, 5}},
		{Offset{3, 1}, Extent{4, 8}},
		{Offset{5, 5}, Extent{1, 1}},
		{Offset{-2, -2}, Extent{3, 3}},
		{Offset{10, 0}, Extent{2, 2}},
	}
	for _, a := range rects {
		for _, b := range rects {
			section := a.Intersect(b)
			require.Equal(t, a.Overlaps(b), !section.Extent.IsZero(),
				"overlap and intersection disagree for %v and %v", a, b)
			if !section.Extent.IsZero() {
				require.True(t, a.Contains(section))
				require.True(t, b.Contains(section))
			}
		}
	}
}

func TestRectUnionContainsInputs(t *testing.T) {
	a := Rect{Offset{1, 2}, Extent{3, 4}}
	b := Rect{Offset{-2, 5}, Extent{2, 2}}
	u := a.Union(b)
	require.True(t, u.Contains(a))
	require.True(t, u.Contains(b))
	require.Equal(t, Rect{Offset{-2, 2}, Extent{6, 5}}, u)
}

func TestRectUnionZeroIdentity(t *testing.T) {
	a := Rect{Offset{4, 4}, Extent{2, 2}}
	require.Equal(t, a, a.Union(Rect{}))
	require.Equal(t, a, Rect{}.Union(a))
	// the zero value is not dragged into the union even when placed
	// at a far corner
	empty := Rect{Offset{80, 24}, Extent{}}
	require.Equal(t, a, empty.Union(a))
}

func TestDirectionOpposite(t *testing.T) {
	require.Equal(t, DirWest, DirEast.Opposite())
	require.Equal(t, DirEast, DirWest.Opposite())
	require.Equal(t, DirSouth, DirNorth.Opposite())
	require.Equal(t, DirNorth, DirSouth.Opposite())
	require.Equal(t, DirNone, DirNone.Opposite())
}
