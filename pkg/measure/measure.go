// Package measure converts and categorizes real-world measurements used in
// room descriptions. Everything internal works in meters; this package is
// the single place other units are handled.
package measure

import (
	"strings"

	"github.com/roomforge/roomforge/pkg/errors"
	"github.com/roomforge/roomforge/pkg/room"
)

// Supported length units.
const (
	UnitMeters      = "m"
	UnitCentimeters = "cm"
	UnitFeet        = "ft"
	UnitInches      = "in"
)

// Conversion factors to meters.
const (
	metersPerCentimeter = 0.01
	metersPerFoot       = 0.3048
	metersPerInch       = 0.0254
)

// Room scale categories derived from the dominant dimension.
const (
	ScaleSmall    = "small"
	ScaleStandard = "standard"
	ScaleLarge    = "large"
)

// Width thresholds for scale categories, in meters.
const (
	smallMaxWidth = 2.4
	largeMinWidth = 4.9
)

// ConvertToMeters converts a value in the named unit to meters.
// Unit matching is case-insensitive.
func ConvertToMeters(value float64, unit string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case UnitMeters, "meter", "meters":
		return value, nil
	case UnitCentimeters, "centimeter", "centimeters":
		return value * metersPerCentimeter, nil
	case UnitFeet, "foot", "feet":
		return value * metersPerFoot, nil
	case UnitInches, "inch", "inches":
		return value * metersPerInch, nil
	default:
		return 0, errors.New(errors.ErrCodeUnsupported, "unknown length unit %q", unit)
	}
}

// ConvertDescription converts every length in a room description from the
// named unit to meters: dimensions, door positions and widths, window
// positions and widths.
func ConvertDescription(desc room.Description, unit string) (room.Description, error) {
	factor, err := ConvertToMeters(1, unit)
	if err != nil {
		return room.Description{}, err
	}

	out := desc
	out.Dimensions.Width *= factor
	out.Dimensions.Length *= factor
	out.Dimensions.Height *= factor

	out.Doors = make([]room.Door, len(desc.Doors))
	for i, d := range desc.Doors {
		d.Position.X *= factor
		d.Position.Y *= factor
		d.Width *= factor
		out.Doors[i] = d
	}
	out.Windows = make([]room.Window, len(desc.Windows))
	for i, w := range desc.Windows {
		w.Position.X *= factor
		w.Position.Y *= factor
		w.Width *= factor
		out.Windows[i] = w
	}
	return out, nil
}

// ScaleCategory buckets a room by its width: small rooms constrain layout
// choices hard, large rooms open up multi-zone arrangements.
func ScaleCategory(dims room.Dimensions) string {
	switch {
	case dims.Width < smallMaxWidth:
		return ScaleSmall
	case dims.Width > largeMinWidth:
		return ScaleLarge
	default:
		return ScaleStandard
	}
}

// WallEstimate is a derived wall measurement for one room side.
type WallEstimate struct {
	Wall    string  `json:"wall"`
	Length  float64 `json:"length"`
	AreaM2  float64 `json:"area_m2"`
	Usable  float64 `json:"usable_length"`
	Windows int     `json:"windows"`
}

// AnalyzeWalls estimates per-wall dimensions and usable run lengths from a
// room description. Window spans are subtracted from the usable length of
// the wall they sit on.
func AnalyzeWalls(desc room.Description) []WallEstimate {
	dims := desc.Dimensions
	walls := []WallEstimate{
		{Wall: room.WallNorth, Length: dims.Width},
		{Wall: room.WallSouth, Length: dims.Width},
		{Wall: room.WallEast, Length: dims.Length},
		{Wall: room.WallWest, Length: dims.Length},
	}

	for i := range walls {
		walls[i].AreaM2 = walls[i].Length * dims.Height
		walls[i].Usable = walls[i].Length
	}
	for _, win := range desc.Windows {
		for i := range walls {
			if walls[i].Wall != win.Wall {
				continue
			}
			walls[i].Windows++
			walls[i].Usable -= win.Width
			if walls[i].Usable < 0 {
				walls[i].Usable = 0
			}
		}
	}
	return walls
}
