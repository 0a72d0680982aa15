package layout

import (
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/roomforge/roomforge/pkg/catalog"
	"github.com/roomforge/roomforge/pkg/geometry"
	"github.com/roomforge/roomforge/pkg/room"
)

// Placement search parameters, in meters.
const (
	// MinFurnitureSpacing is the buffer enforced between furniture footprints.
	MinFurnitureSpacing = 0.6

	// DoorClearance is the radius around a door origin that placements avoid.
	DoorClearance = 1.2

	gridStep   = 0.2 // candidate position resolution
	edgeMargin = 0.5 // keep-out margin along every wall
)

// baseScore is the starting score for every candidate before rules apply.
const baseScore = 100.0

// Position locates a placed item. Rotation is 0 or 90 degrees; 90 swaps the
// effective width and depth for all geometric checks.
type Position struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation int     `json:"rotation"`
}

// Dimensions is the unrotated footprint of a furniture item.
type Dimensions struct {
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`
}

// Placed is a furniture item fixed at a position. Instances are created
// only by PlaceFurniture and are immutable once part of a plan.
type Placed struct {
	Type       string     `json:"type"`
	Dimensions Dimensions `json:"dimensions"`
	Position   Position   `json:"position"`
}

// Footprint returns the rotated bounding rectangle of the item.
func (p Placed) Footprint() geometry.Rect {
	w, d := p.Dimensions.Width, p.Dimensions.Depth
	if p.Position.Rotation == 90 {
		w, d = d, w
	}
	return geometry.Rect{X: p.Position.X, Y: p.Position.Y, W: w, H: d}
}

// candidate is one grid position under evaluation.
type candidate struct {
	x, y     float64
	rotation int
	fw, fd   float64 // effective footprint after rotation
}

func (c candidate) rect() geometry.Rect {
	return geometry.Rect{X: c.x, Y: c.y, W: c.fw, H: c.fd}
}

// scoreContext carries everything a scoring rule may inspect.
type scoreContext struct {
	spec   catalog.Spec
	dims   room.Dimensions
	doors  []room.Door
	placed []Placed
}

// scoreRule adjusts a candidate's score. A fatal result rejects the
// candidate outright (score 0), short-circuiting later rules.
//
// The deltas are empirically tuned rule weights, not derived from a model;
// they and their evaluation order are pinned by tests and must not change.
type scoreRule struct {
	name  string
	apply func(c candidate, ctx *scoreContext) (delta float64, fatal bool)
}

var scoringRules = []scoreRule{
	{
		name: "room_bounds",
		apply: func(c candidate, ctx *scoreContext) (float64, bool) {
			if c.x+c.fw > ctx.dims.Width || c.y+c.fd > ctx.dims.Length {
				return 0, true
			}
			return 0, false
		},
	},
	{
		name: "collision",
		apply: func(c candidate, ctx *scoreContext) (float64, bool) {
			r := c.rect()
			for _, other := range ctx.placed {
				if r.Overlaps(other.Footprint(), MinFurnitureSpacing) {
					return 0, true
				}
			}
			return 0, false
		},
	},
	{
		name: "door_swing",
		apply: func(c candidate, ctx *scoreContext) (float64, bool) {
			var delta float64
			for _, door := range ctx.doors {
				if geometry.Dist(c.x, c.y, door.Position.X, door.Position.Y) < DoorClearance {
					delta -= 50
				}
			}
			return delta, false
		},
	},
	{
		name: "wall_access",
		apply: func(c candidate, ctx *scoreContext) (float64, bool) {
			wallDistance := math.Min(
				math.Min(c.x, c.y),
				math.Min(ctx.dims.Width-c.x-c.fw, ctx.dims.Length-c.y-c.fd),
			)
			if wallDistance > 0.5 {
				return 10, false
			}
			return 0, false
		},
	},
	{
		name: "sofa_centering",
		apply: func(c candidate, ctx *scoreContext) (float64, bool) {
			if ctx.spec.Type != "sofa" {
				return 0, false
			}
			centerX, centerY := ctx.dims.Width/2, ctx.dims.Length/2
			l1 := math.Abs(c.x+c.fw/2-centerX) + math.Abs(c.y+c.fd/2-centerY)
			return 20 / (1 + l1), false
		},
	},
	{
		name: "island_clearance",
		apply: func(c candidate, ctx *scoreContext) (float64, bool) {
			if ctx.spec.Type != "island" {
				return 0, false
			}
			if c.x > IslandClearance && c.x+c.fw < ctx.dims.Width-IslandClearance &&
				c.y > IslandClearance && c.y+c.fd < ctx.dims.Length-IslandClearance {
				return 30, false
			}
			return -30, false
		},
	},
}

// scoreCandidate runs the rule table in order and returns the final score.
func scoreCandidate(c candidate, ctx *scoreContext) float64 {
	score := baseScore
	for _, rule := range scoringRules {
		delta, fatal := rule.apply(c, ctx)
		if fatal {
			return 0
		}
		score += delta
	}
	return score
}

// PlaceFurniture places the given specs into the room in ascending priority
// order. Items whose MinRoomWidth exceeds the room width are skipped, and
// items with no feasible position (best score <= 0) are dropped silently;
// callers detect drops by comparing the result against the request.
//
// The search is deterministic: candidates are enumerated x-outer, y-inner,
// rotation 0 before 90, and the first best-scoring candidate wins ties.
// Calling twice with identical inputs yields identical placements.
func PlaceFurniture(dims room.Dimensions, doors []room.Door, specs []catalog.Spec, logger *log.Logger) []Placed {
	if logger == nil {
		logger = log.Default()
	}

	ordered := slices.Clone(specs)
	slices.SortStableFunc(ordered, func(a, b catalog.Spec) int {
		return a.Priority - b.Priority
	})

	var placed []Placed
	ctx := &scoreContext{dims: dims, doors: doors}

	for _, spec := range ordered {
		if spec.MinRoomWidth > 0 && spec.MinRoomWidth > dims.Width {
			logger.Debug("skipping item, room too narrow",
				"type", spec.Type, "min_room_width", spec.MinRoomWidth, "room_width", dims.Width)
			continue
		}

		ctx.spec = spec
		ctx.placed = placed

		best, bestScore := findBestPosition(spec, ctx)
		if bestScore <= 0 {
			logger.Debug("dropping item, no feasible position", "type", spec.Type)
			continue
		}

		placed = append(placed, Placed{
			Type:       spec.Type,
			Dimensions: Dimensions{Width: spec.Width, Depth: spec.Depth},
			Position:   Position{X: best.x, Y: best.y, Rotation: best.rotation},
		})
		logger.Debug("placed item",
			"type", spec.Type, "x", best.x, "y", best.y, "rotation", best.rotation, "score", bestScore)
	}

	return placed
}

// findBestPosition enumerates the candidate grid for one item and returns
// the highest-scoring candidate. Enumeration order is the tie-breaker.
func findBestPosition(spec catalog.Spec, ctx *scoreContext) (candidate, float64) {
	width, length := ctx.dims.Width, ctx.dims.Length
	fw, fd := spec.Width, spec.Depth

	var best candidate
	bestScore := -1.0

	try := func(c candidate) {
		if score := scoreCandidate(c, ctx); score > bestScore {
			best, bestScore = c, score
		}
	}

	for xi := 0; ; xi++ {
		x := edgeMargin + float64(xi)*gridStep
		if x >= width-fw-edgeMargin {
			break
		}
		for yi := 0; ; yi++ {
			y := edgeMargin + float64(yi)*gridStep
			if y >= length-fd-edgeMargin {
				break
			}

			try(candidate{x: x, y: y, rotation: 0, fw: fw, fd: fd})

			// Rotated footprint, only when the item is non-square and the
			// swapped extents still clear the wall margins.
			if fw != fd && x+fd < width-edgeMargin && y+fw < length-edgeMargin {
				try(candidate{x: x, y: y, rotation: 90, fw: fd, fd: fw})
			}
		}
	}

	return best, bestScore
}
