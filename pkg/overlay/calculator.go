package overlay

// ContainerSize is the bounding box, in pixels, that overlay controls are
// positioned within. Both dimensions are expected to be positive.
type ContainerSize struct {
	Width  float64
	Height float64
}

// Metrics carries the spacing configuration for overlay controls. It is
// passed explicitly on every call so the calculator stays free of package
// state.
type Metrics struct {
	ButtonSize float64 // side length of a square control
	ControlGap float64 // gap between adjacent controls at the same anchor
}

// DefaultMetrics returns the standard control size and gap.
func DefaultMetrics() Metrics {
	return Metrics{ButtonSize: 32, ControlGap: 4}
}

// PositionResult is the outcome of a position calculation. X and Y are the
// top-left corner of the control rect in container coordinates. Constrained
// reports whether the calculator overrode the requested growth direction
// because the default direction would have run out of lateral room.
// Direction is the growth direction actually used; callers may read it and
// Constrained for diagnostics or styling, neither is needed for correctness.
type PositionResult struct {
	X           float64
	Y           float64
	Constrained bool
	Direction   GrowDirection
}

// CalculatePosition computes where the index-th control anchored at the given
// corner or edge should sit inside the container.
//
// index is the 0-based ordinal of this control among siblings sharing the
// anchor. explicit optionally overrides the anchor's default growth
// direction; pass nil to use the default.
//
// The right-side corners TopRight and BottomRight run out of lateral room
// after the first control, so for index >= 1 they force vertical stacking
// away from their edge (down from TopRight, up from BottomRight) and ignore
// any explicit direction. This applies only to those two corners; CenterRight
// keeps its leftward default and is never constrained. Whether a call is
// constrained depends only on the anchor and index, never on the container
// size.
//
// The calculator is a pure function: no validation, no state, O(1). Out of
// contract inputs (negative index, non-positive sizes) flow through the
// arithmetic unchanged.
func CalculatePosition(container ContainerSize, anchor Anchor, index int, explicit *GrowDirection, m Metrics) PositionResult {
	constrained := (anchor == TopRight || anchor == BottomRight) && index >= 1

	var dir GrowDirection
	switch {
	case constrained && anchor == TopRight:
		dir = GrowDown
	case constrained:
		dir = GrowUp
	case explicit != nil:
		dir = *explicit
	default:
		dir = defaultDirection(anchor)
	}

	x, y := anchorBase(container, anchor, m)
	offset := float64(index) * (m.ButtonSize + m.ControlGap)
	switch dir {
	case GrowRight:
		x += offset
	case GrowLeft:
		x -= offset
	case GrowDown:
		y += offset
	case GrowUp:
		y -= offset
	}

	return PositionResult{X: x, Y: y, Constrained: constrained, Direction: dir}
}

// anchorBase returns the top-left corner of the control rect for index 0 at
// the given anchor. Right, bottom and center anchors inset by the button size
// so the rect starts inside the container.
func anchorBase(c ContainerSize, a Anchor, m Metrics) (x, y float64) {
	switch a {
	case TopLeft:
		return 0, 0
	case TopCenter:
		return (c.Width - m.ButtonSize) / 2, 0
	case TopRight:
		return c.Width - m.ButtonSize, 0
	case CenterLeft:
		return 0, (c.Height - m.ButtonSize) / 2
	case Center:
		return (c.Width - m.ButtonSize) / 2, (c.Height - m.ButtonSize) / 2
	case CenterRight:
		return c.Width - m.ButtonSize, (c.Height - m.ButtonSize) / 2
	case BottomLeft:
		return 0, c.Height - m.ButtonSize
	case BottomCenter:
		return (c.Width - m.ButtonSize) / 2, c.Height - m.ButtonSize
	case BottomRight:
		return c.Width - m.ButtonSize, c.Height - m.ButtonSize
	case Custom:
		return 0, 0
	}
	return 0, 0
}
