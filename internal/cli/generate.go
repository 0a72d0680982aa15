package cli

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roomforge/roomforge/pkg/catalog"
	"github.com/roomforge/roomforge/pkg/layout"
	"github.com/roomforge/roomforge/pkg/measure"
	"github.com/roomforge/roomforge/pkg/render"
	"github.com/roomforge/roomforge/pkg/room"
)

// generateCommand creates the generate command for producing layout plans.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		roomType    string
		output      string
		imagePath   string
		planPath    string
		catalogPath string
		noImages    bool
		interactive bool
		unit        string
	)

	cmd := &cobra.Command{
		Use:   "generate [room.json]",
		Short: "Generate a furniture layout plan from a room description",
		Long: `Generate a furniture layout plan from a room description.

The generate command reads a room description JSON file (dimensions in
meters, plus optional doors and windows), classifies the room, places the
furniture for the chosen room type, and writes three artifacts:

  - a layout plan (JSON) with zones, placements, and prompt constraints
  - a conditioning image (PNG) for image generation models
  - an annotated floorplan image (PNG) for review

Furniture comes from the built-in catalogs unless --catalog points at a
custom catalog file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args[0], generateOptions{
				roomType:    roomType,
				output:      output,
				imagePath:   imagePath,
				planPath:    planPath,
				catalogPath: catalogPath,
				noImages:    noImages,
				interactive: interactive,
				unit:        unit,
			})
		},
	}

	cmd.Flags().StringVarP(&roomType, "type", "t", "kitchen", "room type: one of the built-in catalogs")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output plan file (default: <input>.plan.json)")
	cmd.Flags().StringVar(&imagePath, "conditioning", "", "conditioning image file (default: <input>.conditioning.png)")
	cmd.Flags().StringVar(&planPath, "floorplan", "", "floorplan image file (default: <input>.floorplan.png)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "custom furniture catalog (TOML)")
	cmd.Flags().BoolVar(&noImages, "no-images", false, "skip image rendering")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the room type interactively")
	cmd.Flags().StringVar(&unit, "unit", measure.UnitMeters, "length unit of the room description (m, cm, ft, in)")

	return cmd
}

type generateOptions struct {
	roomType    string
	output      string
	imagePath   string
	planPath    string
	catalogPath string
	noImages    bool
	interactive bool
	unit        string
}

func (c *CLI) runGenerate(cmd *cobra.Command, input string, opts generateOptions) error {
	desc, err := readRoomFile(input)
	if err != nil {
		return err
	}
	if opts.unit != "" && opts.unit != measure.UnitMeters {
		if desc, err = measure.ConvertDescription(desc, opts.unit); err != nil {
			return err
		}
	}

	cfg := catalog.Default()
	if opts.catalogPath != "" {
		if cfg, err = catalog.Load(opts.catalogPath); err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
	}

	roomType := opts.roomType
	if opts.interactive {
		picked, err := pickRoomType(cfg.RoomTypes())
		if err != nil {
			return err
		}
		roomType = picked
	}

	prog := newProgress(c.Logger)
	engine := layout.NewEngine(cfg, c.Logger)
	plan, err := engine.GenerateLayout(desc, layout.Request{RoomType: roomType})
	if err != nil {
		return fmt.Errorf("generate layout: %w", err)
	}
	prog.done("Generated layout plan")

	planOut := defaultPath(input, opts.output, ".plan.json")
	if err := writeJSON(planOut, plan); err != nil {
		return err
	}

	printSuccess("Layout complete")
	printFile(planOut)
	printKeyValue("layout type", plan.LayoutType)
	printKeyValue("room scale", measure.ScaleCategory(desc.Dimensions))
	printKeyValue("usable walls", fmt.Sprintf("%.1fm", usableWallRun(desc)))
	printKeyValue("furniture", fmt.Sprintf("%d placed", len(plan.Furniture)))
	printKeyValue("feasibility", fmt.Sprintf("%.2f", plan.Feasibility.EfficiencyScore))
	for _, w := range plan.Validation.Warnings {
		printWarning("%s", w)
	}
	for _, e := range plan.Validation.Errors {
		printError("%s", e)
	}

	if !opts.noImages {
		spinner := newSpinnerWithContext(cmd.Context(), "Rendering images...")
		spinner.Start()

		condOut := defaultPath(input, opts.imagePath, ".conditioning.png")
		floorOut := defaultPath(input, opts.planPath, ".floorplan.png")
		err := writePNG(condOut, render.Conditioning(desc, plan.Furniture))
		if err == nil {
			err = writePNG(floorOut, render.Floorplan(desc, plan))
		}
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return err
		}
		spinner.Stop()
		printFile(condOut)
		printFile(floorOut)
	}

	printNewline()
	printNextStep("Validate a generated image", appName+" validate "+planOut+" <image.png>")
	return nil
}

// usableWallRun totals the wall length left clear of windows, for the
// generate summary.
func usableWallRun(desc room.Description) float64 {
	total := 0.0
	for _, w := range measure.AnalyzeWalls(desc) {
		total += w.Usable
	}
	return total
}

// readRoomFile decodes a room description JSON file.
func readRoomFile(path string) (room.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return room.Description{}, fmt.Errorf("read room description %s: %w", path, err)
	}
	var desc room.Description
	if err := json.Unmarshal(data, &desc); err != nil {
		return room.Description{}, fmt.Errorf("parse room description %s: %w", path, err)
	}
	return desc, nil
}

// defaultPath returns override when set, otherwise input with its extension
// replaced by suffix.
func defaultPath(input, override, suffix string) string {
	if override != "" {
		return override
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := render.EncodePNG(f, img); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
