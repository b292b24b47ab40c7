package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransformResolveAnchors(t *testing.T) {
	window := Extent{W: 40, H: 20}
	tests := []struct {
		name      string
		offset    Offset
		pivot     Pivot
		extent    Extent
		alignment Alignment
		want      Rect
	}{
		{
			"top left",
			Offset{2, 3}, Pivot{}, Extent{10, 4}, AlignTopLeft,
			Rect{Offset{2, 3}, Extent{10, 4}},
		},
		{
			"top right anchors past the right edge",
			Offset{-10, 0}, Pivot{}, Extent{10, 2}, AlignTopRight,
			Rect{Offset{30, 0}, Extent{10, 2}},
		},
		{
			"bottom left",
			Offset{0, -4}, Pivot{}, Extent{8, 4}, AlignBottomLeft,
			Rect{Offset{0, 16}, Extent{8, 4}},
		},
		{
			"pivot shifts against the extent",
			Offset{5, 5}, Pivot{0.5, 0.5}, Extent{10, 4}, AlignTopLeft,
			Rect{Offset{0, 3}, Extent{10, 4}},
		},
		{
			"centered",
			Offset{0, 0}, Pivot{}, Extent{10, 4}, AlignNone,
			Rect{Offset{25, 12}, Extent{10, 4}},
		},
		{
			"stretch both axes",
			Offset{2, 1}, Pivot{}, Extent{4, 2}, AlignStretch,
			Rect{Offset{2, 1}, Extent{34, 17}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform(tt.offset, tt.pivot, tt.extent, tt.alignment)
			tr.Refresh(window)
			require.Equal(t, tt.want, tr.GlobalRect())
		})
	}
}

func TestTransformStretchContainedInParent(t *testing.T) {
	window := Extent{W: 30, H: 30}
	parent := NewTransform(Offset{3, 4}, Pivot{}, Extent{20, 15}, AlignTopLeft)
	parent.Refresh(window)

	for _, offset := range []Offset{{0, 0}, {1, 2}, {5, 5}} {
		for _, extent := range []Extent{{0, 0}, {2, 3}, {10, 7}} {
			child := NewTransform(offset, Pivot{}, extent, AlignStretch)
			child.SetParent(parent)
			child.Refresh(window)
			require.True(t, parent.GlobalRect().Contains(child.GlobalRect()),
				"stretched child %v/%v escapes parent", offset, extent)
		}
	}
}

func TestTransformChildResolvesAgainstParent(t *testing.T) {
	window := Extent{W: 80, H: 24}
	parent := NewTransform(Offset{10, 5}, Pivot{}, Extent{30, 10}, AlignTopLeft)
	child := NewTransform(Offset{2, 2}, Pivot{}, Extent{5, 1}, AlignTopLeft)
	child.SetParent(parent)

	parent.Refresh(window)
	child.Refresh(window)
	require.Equal(t, Rect{Offset{12, 7}, Extent{5, 1}}, child.GlobalRect())
}

func TestTransformSetParentSplices(t *testing.T) {
	a := NewTransform(Offset{}, Pivot{}, Extent{}, AlignTopLeft)
	b := NewTransform(Offset{}, Pivot{}, Extent{}, AlignTopLeft)
	c := NewTransform(Offset{}, Pivot{}, Extent{}, AlignTopLeft)
	parent := NewTransform(Offset{}, Pivot{}, Extent{}, AlignTopLeft)

	a.SetParent(parent)
	b.SetParent(parent)
	c.SetParent(parent)
	require.Equal(t, []*Transform{a, b, c}, children(parent))

	// splice from the middle
	other := NewTransform(Offset{}, Pivot{}, Extent{}, AlignTopLeft)
	b.SetParent(other)
	require.Equal(t, []*Transform{a, c}, children(parent))
	require.Equal(t, []*Transform{b}, children(other))
	require.Equal(t, other, b.Parent())

	// detach the first child
	a.SetParent(nil)
	require.Equal(t, []*Transform{c}, children(parent))
	require.Nil(t, a.Parent())
}

func children(tr *Transform) []*Transform {
	var out []*Transform
	for c := tr.child; c != nil; c = c.sibling {
		out = append(out, c)
	}
	return out
}

func TestTransformDirtyPropagation(t *testing.T) {
	parent := NewTransform(Offset{}, Pivot{}, Extent{}, AlignTopLeft)
	child := NewTransform(Offset{}, Pivot{}, Extent{}, AlignTopLeft)
	grandchild := NewTransform(Offset{}, Pivot{}, Extent{}, AlignTopLeft)
	child.SetParent(parent)
	grandchild.SetParent(child)

	parent.dirty, child.dirty, grandchild.dirty = false, false, false
	parent.MarkDirty()
	require.True(t, parent.Dirty())
	require.True(t, child.Dirty())
	require.True(t, grandchild.Dirty())
}

func TestTransformDisconnectChildren(t *testing.T) {
	parent := NewTransform(Offset{}, Pivot{}, Extent{}, AlignTopLeft)
	a := NewTransform(Offset{}, Pivot{}, Extent{}, AlignTopLeft)
	b := NewTransform(Offset{}, Pivot{}, Extent{}, AlignTopLeft)
	a.SetParent(parent)
	b.SetParent(parent)

	a.dirty, b.dirty = false, false
	parent.DisconnectChildren()
	require.Empty(t, children(parent))
	require.Nil(t, a.Parent())
	require.Nil(t, b.Parent())
	require.True(t, a.Dirty())
	require.True(t, b.Dirty())
}
