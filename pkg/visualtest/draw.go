package visualtest

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"overlaykit/pkg/overlay"
)

// ControlColor is the fill used for control rects in diagnostic renders.
var ControlColor = color.RGBA{R: 204, G: 51, B: 51, A: 255}

// DrawControls renders each placement as a solid square on a white canvas
// sized to the container. The output exists for tests and debugging;
// production rendering belongs to the consumer.
func DrawControls(container overlay.ContainerSize, placements []overlay.Placement, m overlay.Metrics) image.Image {
	dc := gg.NewContext(int(container.Width), int(container.Height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetColor(ControlColor)
	for _, p := range placements {
		dc.DrawRectangle(p.X, p.Y, m.ButtonSize, m.ButtonSize)
		dc.Fill()
	}
	return dc.Image()
}

// PixelAt returns the 8-bit color of the pixel at x, y.
func PixelAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
