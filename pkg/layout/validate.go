package layout

import (
	"fmt"

	"github.com/roomforge/roomforge/pkg/geometry"
	"github.com/roomforge/roomforge/pkg/room"
)

// gridResolution is the occupancy-grid cell size for walkway analysis.
const gridResolution = 0.1

// minFreeRatio is the fraction of the room that must stay unoccupied for
// walkways to be considered sufficient.
const minFreeRatio = 0.4

// Utilization bounds for furnishing recommendations.
const (
	underFurnishedRatio = 0.2
	overFurnishedRatio  = 0.6
)

// Report is the result of validating a finished layout. Errors make the
// layout invalid; warnings and recommendations are advisory.
type Report struct {
	Valid           bool     `json:"valid"`
	Errors          []string `json:"errors,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Utilization     float64  `json:"utilization"`
}

// ValidateConstraints runs three independent checks over a layout: walkway
// sufficiency (occupancy-grid free-area ratio), pairwise furniture spacing,
// and door-swing clearance. A layout with zero furniture is always valid
// with utilization 0.
func ValidateConstraints(dims room.Dimensions, furniture []Placed, doors []room.Door) Report {
	var report Report

	if errs := checkWalkways(dims, furniture); len(errs) > 0 {
		report.Errors = append(report.Errors, errs...)
	}
	if warns := checkSpacing(furniture); len(warns) > 0 {
		report.Warnings = append(report.Warnings, warns...)
	}
	if errs := checkDoorClearance(furniture, doors); len(errs) > 0 {
		report.Errors = append(report.Errors, errs...)
	}

	report.Utilization = utilization(dims, furniture)
	if len(furniture) > 0 {
		if report.Utilization < underFurnishedRatio {
			report.Recommendations = append(report.Recommendations,
				"Room appears under-furnished - consider adding more furniture pieces")
		} else if report.Utilization > overFurnishedRatio {
			report.Recommendations = append(report.Recommendations,
				"Room may be over-furnished - consider removing or downsizing some pieces")
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// checkWalkways rasterizes furniture footprints onto a 0.1m occupancy grid
// and requires at least minFreeRatio of the cells to stay free.
func checkWalkways(dims room.Dimensions, furniture []Placed) []string {
	gridW := int(dims.Width / gridResolution)
	gridL := int(dims.Length / gridResolution)
	if gridW <= 0 || gridL <= 0 {
		return nil
	}

	occupied := make([]bool, gridW*gridL)
	for _, item := range furniture {
		fp := item.Footprint()
		startX := clampCell(int(fp.X/gridResolution), gridW)
		endX := clampCell(int(fp.Right()/gridResolution), gridW)
		startY := clampCell(int(fp.Y/gridResolution), gridL)
		endY := clampCell(int(fp.Bottom()/gridResolution), gridL)

		for y := startY; y < endY; y++ {
			for x := startX; x < endX; x++ {
				occupied[y*gridW+x] = true
			}
		}
	}

	free := 0
	for _, cell := range occupied {
		if !cell {
			free++
		}
	}
	freeRatio := float64(free) / float64(len(occupied))

	if freeRatio < minFreeRatio {
		return []string{"Insufficient walkway space - furniture layout too dense"}
	}
	return nil
}

func clampCell(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// checkSpacing warns for every unordered pair of items whose footprints sit
// closer than MinFurnitureSpacing, naming both items and the measured gap.
func checkSpacing(furniture []Placed) []string {
	var warnings []string
	for i := 0; i < len(furniture); i++ {
		for j := i + 1; j < len(furniture); j++ {
			distance := furniture[i].Footprint().Distance(furniture[j].Footprint())
			if distance < MinFurnitureSpacing {
				warnings = append(warnings, fmt.Sprintf(
					"Insufficient spacing between %s and %s (%.1fm < %.1fm required)",
					furniture[i].Type, furniture[j].Type, distance, MinFurnitureSpacing))
			}
		}
	}
	return warnings
}

// checkDoorClearance errors for every furniture item whose origin sits
// within the door-swing radius of a door origin.
func checkDoorClearance(furniture []Placed, doors []room.Door) []string {
	var errs []string
	for _, door := range doors {
		for _, item := range furniture {
			distance := geometry.Dist(
				item.Position.X, item.Position.Y,
				door.Position.X, door.Position.Y)
			if distance < DoorClearance {
				errs = append(errs, fmt.Sprintf(
					"%s is too close to door - may interfere with door operation", item.Type))
			}
		}
	}
	return errs
}

// utilization is total furniture area over room area. Rotation does not
// change an item's area.
func utilization(dims room.Dimensions, furniture []Placed) float64 {
	area := dims.Area()
	if area <= 0 {
		return 0
	}
	var total float64
	for _, item := range furniture {
		total += item.Dimensions.Width * item.Dimensions.Depth
	}
	return total / area
}
