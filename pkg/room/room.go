// Package room defines the geometric description of a room: its dimensions
// and the door and window openings along its walls.
//
// Coordinates are room-local meters with the origin at one corner. Openings
// are owned by the caller and referenced, never copied or mutated, by the
// layout and validation packages.
package room

import (
	"fmt"

	"github.com/roomforge/roomforge/pkg/errors"
)

// Dimension limits for a usable kitchen, in meters.
const (
	MinWidth  = 1.8
	MinLength = 2.0

	// DefaultHeight is assumed when the caller omits ceiling height.
	DefaultHeight = 2.7
)

// Door orientations.
const (
	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"
)

// Walls a window can sit on.
const (
	WallNorth = "north"
	WallSouth = "south"
	WallEast  = "east"
	WallWest  = "west"
)

// Point is a position in room coordinates (meters).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dimensions holds the room extents in meters.
type Dimensions struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

// Area returns the floor area in square meters.
func (d Dimensions) Area() float64 { return d.Width * d.Length }

// Door is a door opening. Orientation says which way the span runs along
// the wall: horizontal spans run along x, vertical spans along y.
type Door struct {
	Position    Point   `json:"position"`
	Width       float64 `json:"width"`
	Orientation string  `json:"orientation"`
}

// Window is a window opening on one of the four walls.
type Window struct {
	Position Point   `json:"position"`
	Width    float64 `json:"width"`
	Wall     string  `json:"wall"`
}

// Description is the full geometric input for layout generation.
type Description struct {
	Dimensions Dimensions `json:"dimensions"`
	Doors      []Door     `json:"doors,omitempty"`
	Windows    []Window   `json:"windows,omitempty"`
}

// DimensionReport is the result of checking room dimensions. Errors make the
// room unusable; warnings are advisory (low ceilings, unusual areas).
type DimensionReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Area     float64  `json:"area"`
}

// Normalize fills in defaults for omitted optional fields.
// A zero height becomes DefaultHeight.
func (d *Description) Normalize() {
	if d.Dimensions.Height == 0 {
		d.Dimensions.Height = DefaultHeight
	}
}

// CheckDimensions evaluates the room against kitchen minimums.
//
// Width below 1.8m or length below 2.0m are hard errors. Ceiling height and
// total area outside comfortable ranges produce warnings only.
func CheckDimensions(d Dimensions) DimensionReport {
	var report DimensionReport

	if d.Width < MinWidth {
		report.Errors = append(report.Errors,
			fmt.Sprintf("kitchen width %.1fm too narrow (minimum %.1fm)", d.Width, MinWidth))
	} else if d.Width < 2.4 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("very narrow kitchen %.1fm - galley layout required", d.Width))
	}

	if d.Length < MinLength {
		report.Errors = append(report.Errors,
			fmt.Sprintf("kitchen length %.1fm too short (minimum %.1fm)", d.Length, MinLength))
	}

	if d.Height > 0 && d.Height < 2.2 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("low ceiling %.1fm - consider low-profile furniture", d.Height))
	} else if d.Height > 3.5 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("very high ceiling %.1fm - can accommodate tall cabinets", d.Height))
	}

	report.Area = d.Area()
	if report.Area < 4.0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("very small kitchen area %.1fm² - efficiency layout required", report.Area))
	} else if report.Area > 40.0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("large kitchen area %.1fm² - multiple work zones possible", report.Area))
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// Validate checks the description for contract violations and returns a
// typed error when the room cannot be laid out at all. Advisory findings
// are returned in the report either way.
func Validate(d Description) (DimensionReport, error) {
	if d.Dimensions.Width <= 0 || d.Dimensions.Length <= 0 {
		return DimensionReport{}, errors.New(errors.ErrCodeInvalidRoom,
			"room dimensions must be positive, got %.2fm x %.2fm",
			d.Dimensions.Width, d.Dimensions.Length)
	}
	for i, door := range d.Doors {
		if door.Width <= 0 {
			return DimensionReport{}, errors.New(errors.ErrCodeInvalidRoom,
				"door %d has non-positive width %.2fm", i, door.Width)
		}
	}
	for i, win := range d.Windows {
		if win.Width <= 0 {
			return DimensionReport{}, errors.New(errors.ErrCodeInvalidRoom,
				"window %d has non-positive width %.2fm", i, win.Width)
		}
	}

	report := CheckDimensions(d.Dimensions)
	if !report.Valid {
		return report, errors.New(errors.ErrCodeInvalidRoom,
			"invalid room dimensions: %v", report.Errors)
	}
	return report, nil
}
