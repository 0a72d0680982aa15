package render

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/roomforge/roomforge/pkg/layout"
	"github.com/roomforge/roomforge/pkg/room"
)

const (
	outlineWidth = 8.0
	// doorSpanHalf is how far a door span extends to each side of the wall
	// line, in pixels.
	doorSpanHalf = 10.0
)

// Conditioning renders the structural control image for a plan: white
// background, black room outline, black furniture silhouettes, and gray
// door spans crossing the wall line. No labels, no grid, no color; the
// image is a pure geometry mask.
func Conditioning(desc room.Description, furniture []layout.Placed, opts ...Option) image.Image {
	s := newSettings(opts...)
	c := canvas{ppm: s.ppm, margin: s.margin}
	dims := desc.Dimensions

	w, h := c.size(dims)
	dc := gg.NewContext(w, h)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(outlineWidth)
	dc.DrawRectangle(c.px(0), c.px(0), dims.Width*c.ppm, dims.Length*c.ppm)
	dc.Stroke()

	for _, item := range furniture {
		fp := item.Footprint()
		dc.DrawRectangle(c.px(fp.X), c.px(fp.Y), fp.W*c.ppm, fp.H*c.ppm)
		dc.Fill()
	}

	// Door spans read as gaps to the generation model: mid-gray, drawn
	// across the wall so they survive thresholding on either side.
	dc.SetRGB255(128, 128, 128)
	for _, door := range desc.Doors {
		span := door.Width * c.ppm
		x, y := c.px(door.Position.X), c.px(door.Position.Y)
		if door.Orientation == room.OrientationVertical {
			dc.DrawRectangle(x-doorSpanHalf, y, 2*doorSpanHalf, span)
		} else {
			dc.DrawRectangle(x, y-doorSpanHalf, span, 2*doorSpanHalf)
		}
		dc.Fill()
	}

	return dc.Image()
}
