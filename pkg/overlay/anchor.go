package overlay

// Anchor names the corner or edge of the container from which an overlay
// control's base position is computed.
type Anchor int

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
	// Custom bases at the container origin; callers supply their own base
	// offset, typically through a script expression.
	Custom
)

func (a Anchor) String() string {
	switch a {
	case TopLeft:
		return "top-left"
	case TopCenter:
		return "top-center"
	case TopRight:
		return "top-right"
	case CenterLeft:
		return "center-left"
	case Center:
		return "center"
	case CenterRight:
		return "center-right"
	case BottomLeft:
		return "bottom-left"
	case BottomCenter:
		return "bottom-center"
	case BottomRight:
		return "bottom-right"
	case Custom:
		return "custom"
	}
	return "unknown"
}

// GrowDirection is the axis and sign along which successive siblings are
// offset from the anchor's base point.
type GrowDirection int

const (
	GrowRight GrowDirection = iota
	GrowLeft
	GrowUp
	GrowDown
)

func (d GrowDirection) String() string {
	switch d {
	case GrowRight:
		return "right"
	case GrowLeft:
		return "left"
	case GrowUp:
		return "up"
	case GrowDown:
		return "down"
	}
	return "unknown"
}

// defaultDirection returns the growth direction used when the caller does not
// request one. Left-side anchors grow toward the interior, edge centers grow
// away from their edge, and the remaining anchors fall back to rightward
// growth.
func defaultDirection(a Anchor) GrowDirection {
	switch a {
	case TopLeft, BottomLeft, CenterLeft:
		return GrowRight
	case TopCenter:
		return GrowDown
	case BottomCenter:
		return GrowUp
	case CenterRight:
		return GrowLeft
	case TopRight, BottomRight, Center, Custom:
		return GrowRight
	}
	return GrowRight
}
