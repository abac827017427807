package overlay

// ControlSpec describes one overlay control before placement. Direction is
// optional; nil selects the anchor's default.
type ControlSpec struct {
	ID        string
	Anchor    Anchor
	Direction *GrowDirection
}

// Placement pairs a control's ID with its computed position.
type Placement struct {
	ID string
	PositionResult
}

// PlaceControls assigns sibling indices and computes a position for every
// control. Controls sharing an anchor are indexed in slice order, so the
// first spec at an anchor gets index 0. The result preserves input order.
func PlaceControls(container ContainerSize, specs []ControlSpec, m Metrics) []Placement {
	counts := make(map[Anchor]int, len(specs))
	placements := make([]Placement, 0, len(specs))
	for _, s := range specs {
		index := counts[s.Anchor]
		counts[s.Anchor] = index + 1
		placements = append(placements, Placement{
			ID:             s.ID,
			PositionResult: CalculatePosition(container, s.Anchor, index, s.Direction, m),
		})
	}
	return placements
}
