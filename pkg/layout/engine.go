package layout

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/roomforge/roomforge/pkg/catalog"
	"github.com/roomforge/roomforge/pkg/errors"
	"github.com/roomforge/roomforge/pkg/room"
)

// Request selects the furniture to place: either an explicit spec list or a
// room type resolved against the engine's catalog. Explicit specs win when
// both are set.
type Request struct {
	RoomType  string         `json:"room_type,omitempty"`
	Furniture []catalog.Spec `json:"furniture_requirements,omitempty"`
}

// Engine generates layout plans. It is stateless across calls and safe for
// concurrent use: every invocation builds its own local state.
type Engine struct {
	catalog catalog.Config
	logger  *log.Logger
}

// NewEngine creates an engine with the given catalog configuration.
// A nil logger falls back to log.Default().
func NewEngine(cfg catalog.Config, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{catalog: cfg, logger: logger}
}

// resolveSpecs picks the furniture list for a request and validates it.
func (e *Engine) resolveSpecs(req Request) ([]catalog.Spec, error) {
	if len(req.Furniture) > 0 {
		for _, spec := range req.Furniture {
			if err := catalog.ValidateSpec(spec); err != nil {
				return nil, err
			}
		}
		return req.Furniture, nil
	}
	if req.RoomType == "" {
		return nil, errors.New(errors.ErrCodeInvalidFurniture,
			"request needs either furniture_requirements or a room_type")
	}
	return e.catalog.For(req.RoomType)
}

// GenerateLayout builds a complete plan for one generation attempt:
// classify the room, emit zones, place furniture, validate constraints,
// and score feasibility. The room description is referenced, not copied,
// and never mutated beyond Normalize defaults.
//
// Errors are returned only for contract violations (invalid room or
// furniture specs). Individual infeasible items are dropped from the plan
// silently; use Plan.Missing to detect them.
func (e *Engine) GenerateLayout(desc room.Description, req Request) (*Plan, error) {
	desc.Normalize()

	dimReport, err := room.Validate(desc)
	if err != nil {
		return nil, err
	}

	specs, err := e.resolveSpecs(req)
	if err != nil {
		return nil, err
	}

	dims := desc.Dimensions
	e.logger.Info("generating layout", "width", dims.Width, "length", dims.Length, "items", len(specs))

	archetype := Classify(dims.Width)
	e.logger.Info("classified room", "layout_type", archetype)

	zones := GenerateZones(dims, archetype)
	furniture := PlaceFurniture(dims, desc.Doors, specs, e.logger)

	plan := &Plan{
		ID:          uuid.NewString(),
		Room:        dims,
		LayoutType:  archetype,
		Zones:       zones,
		Furniture:   furniture,
		Validation:  ValidateConstraints(dims, furniture, desc.Doors),
		Feasibility: AnalyzeFeasibility(dims, archetype),
		Constraints: BuildConstraints(dims, archetype),
	}

	// Dimension warnings (low ceilings, unusual areas) ride along on the
	// feasibility result so callers see them without a second call.
	plan.Feasibility.Warnings = append(plan.Feasibility.Warnings, dimReport.Warnings...)

	if missing := plan.Missing(specs); len(missing) > 0 {
		e.logger.Info("some items could not be placed", "missing", missing)
	}

	return plan, nil
}
