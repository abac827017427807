package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"overlaykit/pkg/overlay"
)

// AnchoredObject pairs a canvas object with the overlay anchor it stacks
// from. Direction is optional; nil selects the anchor's default.
type AnchoredObject struct {
	Object    fyne.CanvasObject
	Anchor    overlay.Anchor
	Direction *overlay.GrowDirection
}

// ControlsLayout positions overlay controls over a background object using
// the overlay position calculator. Controls sharing an anchor stack in Items
// order. It implements fyne.Layout.
//
// The layout only places objects; click handling, theming and accessibility
// stay with the widgets the caller passes in.
type ControlsLayout struct {
	Background fyne.CanvasObject
	Items      []AnchoredObject
	Metrics    overlay.Metrics
}

func (l *ControlsLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if l.Background != nil {
		return l.Background.MinSize()
	}
	w, h := float32(0), float32(0)
	for _, o := range objects {
		childSize := o.MinSize()
		if childSize.Width > w {
			w = childSize.Width
		}
		if childSize.Height > h {
			h = childSize.Height
		}
	}
	return fyne.NewSize(w, h)
}

func (l *ControlsLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if l.Background != nil {
		l.Background.Resize(containerSize)
		l.Background.Move(fyne.NewPos(0, 0))
	}

	c := overlay.ContainerSize{
		Width:  float64(containerSize.Width),
		Height: float64(containerSize.Height),
	}
	side := float32(l.Metrics.ButtonSize)

	counts := make(map[overlay.Anchor]int, len(l.Items))
	for _, it := range l.Items {
		index := counts[it.Anchor]
		counts[it.Anchor] = index + 1

		res := overlay.CalculatePosition(c, it.Anchor, index, it.Direction, l.Metrics)
		it.Object.Resize(fyne.NewSize(side, side))
		it.Object.Move(fyne.NewPos(float32(res.X), float32(res.Y)))
	}
}

// NewControls builds a container that shows background stretched to the full
// container size with the given controls anchored on top of it.
func NewControls(background fyne.CanvasObject, m overlay.Metrics, items ...AnchoredObject) *fyne.Container {
	objects := make([]fyne.CanvasObject, 0, len(items)+1)
	if background != nil {
		objects = append(objects, background)
	}
	for _, it := range items {
		objects = append(objects, it.Object)
	}
	return container.New(&ControlsLayout{Background: background, Items: items, Metrics: m}, objects...)
}
