// Package render rasterizes layout plans into images.
//
// Two renderers share one coordinate mapping:
//
//   - [Conditioning] produces the black-and-white control image consumed by
//     image generation models: room outline, furniture silhouettes, door
//     spans, nothing else.
//   - [Floorplan] produces an annotated plan for humans: grid, colored
//     walls and openings, labeled furniture, dimension text.
//
// Both work in room coordinates (meters) scaled by a fixed pixels-per-meter
// factor with a margin around the room. Callers own file I/O; renderers
// return an [image.Image] and [EncodePNG] writes one out.
package render

import (
	"image"
	"image/png"
	"io"

	"github.com/roomforge/roomforge/pkg/errors"
	"github.com/roomforge/roomforge/pkg/room"
)

// Raster geometry shared by both renderers.
const (
	// PixelsPerMeter is the fixed raster scale. Downstream image validation
	// derives its own scale from the plan dimensions, so this value only
	// needs to be consistent between the two renderers.
	PixelsPerMeter = 50.0

	// Margin is the blank border around the room, in pixels.
	Margin = 50.0
)

// canvas maps room coordinates to pixel coordinates.
type canvas struct {
	ppm    float64
	margin float64
}

func (c canvas) px(meters float64) float64 { return meters*c.ppm + c.margin }

func (c canvas) size(dims room.Dimensions) (w, h int) {
	return int(dims.Width*c.ppm + 2*c.margin), int(dims.Length*c.ppm + 2*c.margin)
}

// Option configures a renderer.
type Option func(*settings)

type settings struct {
	ppm        float64
	margin     float64
	showGrid   bool
	showLabels bool
}

func newSettings(opts ...Option) settings {
	s := settings{ppm: PixelsPerMeter, margin: Margin, showGrid: true, showLabels: true}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithScale overrides the pixels-per-meter factor.
func WithScale(ppm float64) Option { return func(s *settings) { s.ppm = ppm } }

// WithoutGrid drops the background grid from floorplans.
func WithoutGrid() Option { return func(s *settings) { s.showGrid = false } }

// WithoutLabels drops furniture labels and dimension text from floorplans.
func WithoutLabels() Option { return func(s *settings) { s.showLabels = false } }

// EncodePNG writes an image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding png")
	}
	return nil
}
