package ui

// Transform is a node in the layout tree. It owns a local offset,
// pivot, extent and alignment, and resolves to a global rectangle given
// its parent's rectangle (or the window extent for a root).
//
// Children are kept as a first-child / next-sibling chain, so a
// transform costs two pointers regardless of fan-out.
type Transform struct {
	LocalOffset    Offset
	LocalPivot     Pivot
	LocalExtent    Extent
	LocalAlignment Alignment

	parent  *Transform
	child   *Transform
	sibling *Transform

	dirty      bool
	globalRect Rect
}

// NewTransform builds a transform with the given layout parameters and
// no parent.
func NewTransform(offset Offset, pivot Pivot, extent Extent, alignment Alignment) *Transform {
	return &Transform{
		LocalOffset:    offset,
		LocalPivot:     pivot,
		LocalExtent:    extent,
		LocalAlignment: alignment,
		dirty:          true,
	}
}

// Parent returns the parent transform, or nil for a root.
func (t *Transform) Parent() *Transform { return t.parent }

// GlobalRect returns the rectangle computed by the last Refresh.
func (t *Transform) GlobalRect() Rect { return t.globalRect }

// Dirty reports whether the transform needs a refresh.
func (t *Transform) Dirty() bool { return t.dirty }

// MarkDirty marks the transform and all of its descendants dirty, so
// the next application refresh resolves them again.
func (t *Transform) MarkDirty() {
	t.dirty = true
	for c := t.child; c != nil; c = c.sibling {
		c.MarkDirty()
	}
}

// SetParent splices the transform out of its current sibling list and
// appends it to the new parent's children. Passing nil detaches the
// transform. The subtree is marked dirty.
func (t *Transform) SetParent(parent *Transform) {
	if t.parent == parent {
		return
	}
	if t.parent != nil {
		if t.parent.child == t {
			t.parent.child = t.sibling
		} else {
			for s := t.parent.child; s != nil; s = s.sibling {
				if s.sibling == t {
					s.sibling = t.sibling
					break
				}
			}
		}
	}
	t.sibling = nil
	t.parent = parent
	if parent != nil {
		if parent.child == nil {
			parent.child = t
		} else {
			last := parent.child
			for last.sibling != nil {
				last = last.sibling
			}
			last.sibling = t
		}
	}
	t.MarkDirty()
}

// DisconnectChildren detaches every child from the transform, marking
// the detached subtrees and the transform itself dirty.
func (t *Transform) DisconnectChildren() {
	for c := t.child; c != nil; {
		next := c.sibling
		c.parent = nil
		c.sibling = nil
		c.MarkDirty()
		c = next
	}
	t.child = nil
	t.MarkDirty()
}

// Refresh resolves the global rectangle from the parent's rectangle, or
// from the window extent when the transform is a root. It does not
// clear the dirty flag; the application does that right after calling
// Refresh, before the control repaints.
func (t *Transform) Refresh(windowExtent Extent) {
	var base Offset
	extent := windowExtent
	if t.parent != nil {
		base = t.parent.globalRect.Offset
		extent = t.parent.globalRect.Extent
	}

	a := t.LocalAlignment
	var out Rect

	switch {
	case a&AlignStretchV == AlignStretchV:
		out.Offset.Y = base.Y + t.LocalOffset.Y
		out.Extent.H = extent.H - t.LocalExtent.H - t.LocalOffset.Y
	case a&AlignTop != 0:
		out.Offset.Y = base.Y + t.LocalOffset.Y - int(t.LocalPivot.Y*float64(t.LocalExtent.H))
		out.Extent.H = t.LocalExtent.H
	case a&AlignBottom != 0:
		out.Offset.Y = base.Y + extent.H + t.LocalOffset.Y - int(t.LocalPivot.Y*float64(t.LocalExtent.H))
		out.Extent.H = t.LocalExtent.H
	default:
		out.Offset.Y = base.Y + (extent.H+t.LocalExtent.H)/2 + t.LocalOffset.Y - int(t.LocalPivot.Y*float64(t.LocalExtent.H))
		out.Extent.H = t.LocalExtent.H
	}

	switch {
	case a&AlignStretchH == AlignStretchH:
		out.Offset.X = base.X + t.LocalOffset.X
		out.Extent.W = extent.W - t.LocalExtent.W - t.LocalOffset.X
	case a&AlignLeft != 0:
		out.Offset.X = base.X + t.LocalOffset.X - int(t.LocalPivot.X*float64(t.LocalExtent.W))
		out.Extent.W = t.LocalExtent.W
	case a&AlignRight != 0:
		out.Offset.X = base.X + extent.W + t.LocalOffset.X - int(t.LocalPivot.X*float64(t.LocalExtent.W))
		out.Extent.W = t.LocalExtent.W
	default:
		out.Offset.X = base.X + (extent.W+t.LocalExtent.W)/2 + t.LocalOffset.X - int(t.LocalPivot.X*float64(t.LocalExtent.W))
		out.Extent.W = t.LocalExtent.W
	}

	t.globalRect = out
}
