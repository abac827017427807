package main

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fogleman/gg"

	"overlaykit/pkg/overlay"
	"overlaykit/pkg/ui"
)

// placeholderThumbnail draws a stand-in gallery image so the demo has
// something to overlay.
func placeholderThumbnail(w, h int) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGB(0.35, 0.45, 0.6)
	dc.Clear()
	dc.SetRGB(0.85, 0.8, 0.5)
	dc.DrawCircle(float64(w)*0.78, float64(h)*0.25, float64(h)*0.12)
	dc.Fill()
	dc.SetRGB(0.25, 0.5, 0.35)
	dc.DrawRectangle(0, float64(h)*0.7, float64(w), float64(h)*0.3)
	dc.Fill()
	return dc.Image()
}

func controlRect(c color.Color) fyne.CanvasObject {
	return canvas.NewRectangle(c)
}

func main() {
	a := app.New()
	w := a.NewWindow("overlaykit demo")

	thumb := canvas.NewImageFromImage(placeholderThumbnail(360, 240))
	thumb.FillMode = canvas.ImageFillStretch
	thumb.SetMinSize(fyne.NewSize(360, 240))

	// Three controls at TopRight: the first sits at the corner, the rest
	// stack downward because the corner is constrained. One more control
	// sits at BottomLeft growing right.
	gallery := ui.NewControls(thumb, overlay.DefaultMetrics(),
		ui.AnchoredObject{Object: controlRect(color.NRGBA{R: 200, G: 60, B: 60, A: 230}), Anchor: overlay.TopRight},
		ui.AnchoredObject{Object: controlRect(color.NRGBA{R: 230, G: 180, B: 40, A: 230}), Anchor: overlay.TopRight},
		ui.AnchoredObject{Object: controlRect(color.NRGBA{R: 70, G: 150, B: 220, A: 230}), Anchor: overlay.TopRight},
		ui.AnchoredObject{Object: controlRect(color.NRGBA{R: 90, G: 190, B: 90, A: 230}), Anchor: overlay.BottomLeft},
	)

	status := widget.NewLabel("Top-right controls past the first stack downward; resize the window to watch the anchors follow.")
	status.Wrapping = fyne.TextWrapWord

	w.SetContent(container.NewBorder(nil, status, nil, nil, gallery))
	w.Resize(fyne.NewSize(420, 340))
	w.ShowAndRun()
}
