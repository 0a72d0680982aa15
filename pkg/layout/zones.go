package layout

import (
	"github.com/roomforge/roomforge/pkg/geometry"
	"github.com/roomforge/roomforge/pkg/room"
)

// Zone types.
const (
	ZoneCounter   = "counter"
	ZoneIsland    = "island"
	ZoneWalkway   = "walkway"
	ZoneOpenSpace = "open_space"
)

// Standard kitchen dimensions in meters.
const (
	MinWalkway       = 0.9 // minimum walkway
	PreferredWalkway = 1.2 // preferred walkway
	IslandClearance  = 1.0 // clearance around island
	CounterDepth     = 0.6 // standard counter depth
	IslandMinWidth   = 1.2 // minimum island width
	IslandMinLength  = 2.0 // minimum island length
	ApplianceWidth   = 0.6 // standard appliance width
	DoorSwing        = 0.9 // door swing clearance
)

// Zone is a rectangular functional region of the room. Walkway zones carry
// KeepClear and must never receive furniture.
type Zone struct {
	Type       string        `json:"type"`
	Name       string        `json:"name"`
	Rect       geometry.Rect `json:"rect"`
	Appliances []string      `json:"appliances,omitempty"`
	Seating    bool          `json:"seating,omitempty"`
	KeepClear  bool          `json:"keep_clear,omitempty"`
}

// GenerateZones emits the functional zones for an archetype. Each archetype
// has a fixed geometric recipe; the recipes keep zones disjoint by wall
// assignment, an invariant the placement and validation code relies on.
func GenerateZones(dims room.Dimensions, archetype string) []Zone {
	switch archetype {
	case TypeGalley:
		return galleyZones(dims.Width, dims.Length)
	case TypeSingleWall:
		return singleWallZones(dims.Width, dims.Length)
	case TypeLShaped:
		return lShapedZones(dims.Width, dims.Length)
	case TypeUShaped:
		return uShapedZones(dims.Width, dims.Length)
	case TypeIsland:
		return islandZones(dims.Width, dims.Length)
	}
	return nil
}

func galleyZones(width, length float64) []Zone {
	walkway := width - 2*CounterDepth

	if walkway >= MinWalkway {
		// Double galley with counters on both long walls.
		return []Zone{
			{
				Type:       ZoneCounter,
				Name:       "left_counter",
				Rect:       geometry.Rect{X: 0, Y: 0, W: CounterDepth, H: length},
				Appliances: []string{"sink", "dishwasher"},
			},
			{
				Type:       ZoneCounter,
				Name:       "right_counter",
				Rect:       geometry.Rect{X: width - CounterDepth, Y: 0, W: CounterDepth, H: length},
				Appliances: []string{"stove", "refrigerator"},
			},
			{
				Type:      ZoneWalkway,
				Name:      "center_walkway",
				Rect:      geometry.Rect{X: CounterDepth, Y: 0, W: walkway, H: length},
				KeepClear: true,
			},
		}
	}

	// Too narrow for opposing counters: single wall galley.
	return []Zone{
		{
			Type:       ZoneCounter,
			Name:       "main_counter",
			Rect:       geometry.Rect{X: 0, Y: 0, W: CounterDepth, H: length},
			Appliances: []string{"sink", "stove", "refrigerator", "dishwasher"},
		},
		{
			Type:      ZoneWalkway,
			Name:      "open_space",
			Rect:      geometry.Rect{X: CounterDepth, Y: 0, W: width - CounterDepth, H: length},
			KeepClear: true,
		},
	}
}

func singleWallZones(width, length float64) []Zone {
	return []Zone{
		{
			Type:       ZoneCounter,
			Name:       "main_wall",
			Rect:       geometry.Rect{X: 0, Y: 0, W: CounterDepth, H: length},
			Appliances: []string{"sink", "stove", "refrigerator", "dishwasher"},
		},
		{
			Type: ZoneOpenSpace,
			Name: "room_space",
			Rect: geometry.Rect{X: CounterDepth, Y: 0, W: width - CounterDepth, H: length},
		},
	}
}

func lShapedZones(width, length float64) []Zone {
	return []Zone{
		{
			Type:       ZoneCounter,
			Name:       "main_wall",
			Rect:       geometry.Rect{X: 0, Y: 0, W: CounterDepth, H: length},
			Appliances: []string{"sink", "dishwasher"},
		},
		{
			Type:       ZoneCounter,
			Name:       "side_wall",
			Rect:       geometry.Rect{X: 0, Y: length - CounterDepth, W: width * 0.6, H: CounterDepth},
			Appliances: []string{"stove", "refrigerator"},
		},
	}
}

func uShapedZones(width, length float64) []Zone {
	return []Zone{
		{
			Type:       ZoneCounter,
			Name:       "left_wall",
			Rect:       geometry.Rect{X: 0, Y: 0, W: CounterDepth, H: length},
			Appliances: []string{"refrigerator"},
		},
		{
			Type:       ZoneCounter,
			Name:       "back_wall",
			Rect:       geometry.Rect{X: 0, Y: 0, W: width, H: CounterDepth},
			Appliances: []string{"sink", "dishwasher"},
		},
		{
			Type:       ZoneCounter,
			Name:       "right_wall",
			Rect:       geometry.Rect{X: width - CounterDepth, Y: 0, W: CounterDepth, H: length},
			Appliances: []string{"stove"},
		},
	}
}

func islandZones(width, length float64) []Zone {
	availableWidth := width - 2*CounterDepth - 2*IslandClearance
	availableLength := length - 2*IslandClearance

	islandWidth := min(availableWidth, IslandMinWidth*1.5)
	islandLength := min(availableLength, IslandMinLength*1.5)

	// The island is clamped to the free rectangle but centered in the room.
	islandX := (width - islandWidth) / 2
	islandY := (length - islandLength) / 2

	return []Zone{
		{
			Type:       ZoneCounter,
			Name:       "back_counter",
			Rect:       geometry.Rect{X: 0, Y: 0, W: width, H: CounterDepth},
			Appliances: []string{"sink", "dishwasher"},
		},
		{
			Type:       ZoneCounter,
			Name:       "side_counter",
			Rect:       geometry.Rect{X: width - CounterDepth, Y: CounterDepth, W: CounterDepth, H: length - CounterDepth},
			Appliances: []string{"refrigerator"},
		},
		{
			Type:       ZoneIsland,
			Name:       "center_island",
			Rect:       geometry.Rect{X: islandX, Y: islandY, W: islandWidth, H: islandLength},
			Appliances: []string{"stove", "prep_area"},
			Seating:    true,
		},
	}
}
