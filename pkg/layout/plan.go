package layout

import (
	"fmt"

	"github.com/roomforge/roomforge/pkg/catalog"
	"github.com/roomforge/roomforge/pkg/room"
)

// Plan is a finished layout for one generation attempt. Plans are built
// once from a room description and never mutated in place; every attempt
// produces a fresh plan with its own ID.
type Plan struct {
	ID          string          `json:"id"`
	Room        room.Dimensions `json:"room_dimensions"`
	LayoutType  string          `json:"layout_type"`
	Zones       []Zone          `json:"furniture_zones"`
	Furniture   []Placed        `json:"furniture_layout"`
	Validation  Report          `json:"validation_results"`
	Feasibility Feasibility     `json:"layout_feasibility"`
	Constraints Constraints     `json:"spatial_constraints"`
}

// Missing returns the requested furniture types that did not make it into
// the plan, one entry per missing instance. Placement drops are silent by
// design; this is how callers detect them.
func (p *Plan) Missing(requested []catalog.Spec) []string {
	placed := make(map[string]int, len(p.Furniture))
	for _, item := range p.Furniture {
		placed[item.Type]++
	}

	var missing []string
	for _, spec := range requested {
		if placed[spec.Type] > 0 {
			placed[spec.Type]--
			continue
		}
		missing = append(missing, spec.Type)
	}
	return missing
}

// Clearances are the minimum spacing requirements a generated image must
// respect, echoed into the constraints for downstream consumers.
type Clearances struct {
	WalkwayWidth     float64 `json:"walkway_width"`
	FurnitureSpacing float64 `json:"furniture_spacing"`
	DoorClearance    float64 `json:"door_clearance"`
}

// Constraints are prompt-oriented strings consumed by an external
// prompt-construction collaborator. The engine produces but never
// interprets PromptAdditions and NegativePrompts; LayoutRules are also
// checked by the image validator.
type Constraints struct {
	RoomDimensions  string     `json:"room_dimensions"`
	LayoutType      string     `json:"layout_type"`
	Area            float64    `json:"area"`
	PromptAdditions []string   `json:"prompt_additions"`
	NegativePrompts []string   `json:"negative_prompts"`
	LayoutRules     []string   `json:"layout_rules"`
	Clearances      Clearances `json:"minimum_clearances"`
}

// BuildConstraints derives the prompt constraints for a room and archetype.
func BuildConstraints(dims room.Dimensions, archetype string) Constraints {
	c := Constraints{
		RoomDimensions:  fmt.Sprintf("%.1fm x %.1fm", dims.Width, dims.Length),
		LayoutType:      archetype,
		Area:            dims.Area(),
		PromptAdditions: []string{},
		NegativePrompts: []string{},
		Clearances: Clearances{
			WalkwayWidth:     MinWalkway,
			FurnitureSpacing: MinFurnitureSpacing,
			DoorClearance:    DoorClearance,
		},
	}

	switch archetype {
	case TypeGalley:
		c.PromptAdditions = append(c.PromptAdditions,
			fmt.Sprintf("narrow galley kitchen %.1fm wide", dims.Width),
			"linear countertop arrangement",
			"efficient space utilization",
			"no center island possible",
			"streamlined workflow",
		)
		c.NegativePrompts = append(c.NegativePrompts,
			"kitchen island",
			"center furniture",
			"dining table in kitchen",
		)
	case TypeIsland:
		c.PromptAdditions = append(c.PromptAdditions,
			fmt.Sprintf("spacious kitchen %.1fm x %.1fm", dims.Width, dims.Length),
			"large center island with seating",
			"multiple work zones",
			"generous counter space",
			"professional layout",
		)
	}

	c.PromptAdditions = append(c.PromptAdditions,
		fmt.Sprintf("realistic proportions for %.1fm x %.1fm space", dims.Width, dims.Length))

	c.LayoutRules = layoutRules(dims.Width)
	return c
}

// layoutRules emits the machine-checkable rule tokens for a room width.
// The image validator matches on the NO_ISLAND and GALLEY_KITCHEN_ONLY
// substrings, so the token spelling is load-bearing.
func layoutRules(width float64) []string {
	rules := []string{
		fmt.Sprintf("maintain %.1fm minimum walkways", MinWalkway),
		fmt.Sprintf("ensure %.1fm standard counter depth", CounterDepth),
		"respect architectural constraints and real measurements",
	}

	switch {
	case width < 3.0:
		rules = append(rules, "GALLEY_KITCHEN_ONLY", "NO_ISLAND_ALLOWED")
	case width < islandMinWidth:
		rules = append(rules, "NO_FULL_ISLAND", "PENINSULA_MAXIMUM")
	default:
		rules = append(rules, "ISLAND_ALLOWED")
	}
	return rules
}

// Feasibility scores how well the chosen archetype suits the room.
type Feasibility struct {
	Feasible        bool     `json:"feasible"`
	EfficiencyScore float64  `json:"efficiency_score"`
	Warnings        []string `json:"warnings,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// AnalyzeFeasibility scores the archetype choice against the room size.
// The scores are fixed ratings per archetype fit, not a derived metric.
func AnalyzeFeasibility(dims room.Dimensions, archetype string) Feasibility {
	f := Feasibility{Feasible: true}

	switch {
	case archetype == TypeGalley && dims.Width <= galleyMaxWidth:
		f.EfficiencyScore = 0.9
		f.Recommendations = append(f.Recommendations, "excellent choice for narrow kitchen")
	case archetype == TypeIsland && dims.Width >= islandMinWidth:
		f.EfficiencyScore = 0.95
		f.Recommendations = append(f.Recommendations, "perfect dimensions for island layout")
	default:
		f.EfficiencyScore = 0.7
	}

	area := dims.Area()
	if area < 6.0 {
		f.Warnings = append(f.Warnings,
			"very compact kitchen - prioritize essential appliances only")
	} else if area > 30.0 {
		f.Warnings = append(f.Warnings,
			"large kitchen - consider multiple work zones")
	}

	return f
}
