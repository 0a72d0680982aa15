package render

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/roomforge/roomforge/pkg/layout"
	"github.com/roomforge/roomforge/pkg/room"
)

// Floorplan palette.
const (
	colorGrid      = "#E8E8E8"
	colorWall      = "#2C3E50"
	colorDoor      = "#8B4513"
	colorWindow    = "#87CEEB"
	colorFurniture = "#D2B48C"
	colorKeepClear = "#FADBD8"
	colorText      = "#34495E"
)

const (
	wallWidth   = 6.0
	windowWidth = 6.0
	gridStep    = 1.0 // meters
)

// Floorplan renders a human-readable plan: meter grid, colored walls and
// openings, door swing arcs, labeled furniture footprints, and the room
// dimensions along the bottom edge.
func Floorplan(desc room.Description, plan *layout.Plan, opts ...Option) image.Image {
	s := newSettings(opts...)
	c := canvas{ppm: s.ppm, margin: s.margin}
	dims := desc.Dimensions

	w, h := c.size(dims)
	dc := gg.NewContext(w, h)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if s.showGrid {
		drawGrid(dc, c, dims)
	}
	if plan != nil {
		drawKeepClear(dc, c, plan.Zones)
	}

	dc.SetHexColor(colorWall)
	dc.SetLineWidth(wallWidth)
	dc.DrawRectangle(c.px(0), c.px(0), dims.Width*c.ppm, dims.Length*c.ppm)
	dc.Stroke()

	for _, win := range desc.Windows {
		drawWindow(dc, c, dims, win)
	}
	for _, door := range desc.Doors {
		drawDoor(dc, c, door)
	}
	if plan != nil {
		drawFurniture(dc, c, plan.Furniture, s.showLabels)
	}
	if s.showLabels {
		drawDimensions(dc, c, dims)
	}

	return dc.Image()
}

func drawGrid(dc *gg.Context, c canvas, dims room.Dimensions) {
	dc.SetHexColor(colorGrid)
	dc.SetLineWidth(1)
	for x := gridStep; x < dims.Width; x += gridStep {
		dc.DrawLine(c.px(x), c.px(0), c.px(x), c.px(dims.Length))
		dc.Stroke()
	}
	for y := gridStep; y < dims.Length; y += gridStep {
		dc.DrawLine(c.px(0), c.px(y), c.px(dims.Width), c.px(y))
		dc.Stroke()
	}
}

func drawKeepClear(dc *gg.Context, c canvas, zones []layout.Zone) {
	dc.SetHexColor(colorKeepClear)
	for _, z := range zones {
		if !z.KeepClear {
			continue
		}
		dc.DrawRectangle(c.px(z.Rect.X), c.px(z.Rect.Y), z.Rect.W*c.ppm, z.Rect.H*c.ppm)
		dc.Fill()
	}
}

func drawWindow(dc *gg.Context, c canvas, dims room.Dimensions, win room.Window) {
	dc.SetHexColor(colorWindow)
	dc.SetLineWidth(windowWidth)
	span := win.Width * c.ppm
	switch win.Wall {
	case room.WallNorth:
		dc.DrawLine(c.px(win.Position.X), c.px(0), c.px(win.Position.X)+span, c.px(0))
	case room.WallSouth:
		dc.DrawLine(c.px(win.Position.X), c.px(dims.Length), c.px(win.Position.X)+span, c.px(dims.Length))
	case room.WallWest:
		dc.DrawLine(c.px(0), c.px(win.Position.Y), c.px(0), c.px(win.Position.Y)+span)
	case room.WallEast:
		dc.DrawLine(c.px(dims.Width), c.px(win.Position.Y), c.px(dims.Width), c.px(win.Position.Y)+span)
	}
	dc.Stroke()
}

func drawDoor(dc *gg.Context, c canvas, door room.Door) {
	dc.SetHexColor(colorDoor)
	dc.SetLineWidth(wallWidth)

	x, y := c.px(door.Position.X), c.px(door.Position.Y)
	span := door.Width * c.ppm

	if door.Orientation == room.OrientationVertical {
		dc.DrawLine(x, y, x, y+span)
		dc.Stroke()
		dc.SetLineWidth(1)
		dc.DrawArc(x, y, span, 0, math.Pi/2)
		dc.Stroke()
		return
	}
	dc.DrawLine(x, y, x+span, y)
	dc.Stroke()
	dc.SetLineWidth(1)
	dc.DrawArc(x, y, span, 0, math.Pi/2)
	dc.Stroke()
}

func drawFurniture(dc *gg.Context, c canvas, furniture []layout.Placed, labels bool) {
	for _, item := range furniture {
		fp := item.Footprint()
		x, y := c.px(fp.X), c.px(fp.Y)
		w, h := fp.W*c.ppm, fp.H*c.ppm

		dc.SetHexColor(colorFurniture)
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
		dc.SetHexColor(colorWall)
		dc.SetLineWidth(1.5)
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()

		if labels {
			dc.SetHexColor(colorText)
			dc.DrawStringAnchored(item.Type, x+w/2, y+h/2, 0.5, 0.5)
		}
	}
}

func drawDimensions(dc *gg.Context, c canvas, dims room.Dimensions) {
	dc.SetHexColor(colorText)
	dc.DrawStringAnchored(
		fmt.Sprintf("%.1fm", dims.Width),
		c.px(dims.Width/2), c.px(dims.Length)+c.margin/2, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(-math.Pi/2, c.margin/2, c.px(dims.Length/2))
	dc.DrawStringAnchored(
		fmt.Sprintf("%.1fm", dims.Length),
		c.margin/2, c.px(dims.Length/2), 0.5, 0.5)
	dc.Pop()
}
