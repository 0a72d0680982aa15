package cli

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/roomforge/roomforge/pkg/layout"
	"github.com/roomforge/roomforge/pkg/vision"
)

// validateCommand creates the validate command for checking generated images.
func (c *CLI) validateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "validate [plan.json] [image.png]",
		Short: "Validate a generated room image against its layout plan",
		Long: `Validate a generated room image against its layout plan.

The validate command detects furniture in the image, matches it to the
plan's placements, and scores spatial accuracy, scale consistency, and
layout-rule compliance. The combined score and recommendations are printed,
and the full report can be written as JSON with --output.

Validation never fails hard on unusable images: when no spatial reference
can be established the report carries neutral scores marked degraded.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0], args[1], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the full report as JSON")

	return cmd
}

func (c *CLI) runValidate(planPath, imagePath, output string) error {
	plan, err := readPlanFile(planPath)
	if err != nil {
		return err
	}
	img, err := readImageFile(imagePath)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	report := vision.ValidateImage(img, plan)
	prog.done(fmt.Sprintf("Analyzed image, %d furniture regions", len(report.Detections)))

	if report.Valid {
		printSuccess("Image complies with the layout plan")
	} else {
		printError("Image does not comply with the layout plan")
	}
	printKeyValue("overall", formatScore(vision.Score{Value: report.OverallScore}))
	printKeyValue("spatial", formatScore(report.SpatialAccuracy))
	printKeyValue("scale", formatScore(report.ScaleConsistency))
	printKeyValue("layout", formatScore(report.LayoutCompliance))

	for _, v := range report.Violations {
		printWarning("%s", v)
	}
	for _, r := range report.Recommendations {
		printDetail("%s", r)
	}

	if output != "" {
		if err := writeJSON(output, report); err != nil {
			return err
		}
		printFile(output)
	}
	return nil
}

func formatScore(s vision.Score) string {
	if s.Degraded {
		return fmt.Sprintf("%.2f (degraded)", s.Value)
	}
	return fmt.Sprintf("%.2f", s.Value)
}

// readPlanFile decodes a layout plan JSON file.
func readPlanFile(path string) (*layout.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}
	var plan layout.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	return &plan, nil
}

// readImageFile decodes a PNG or JPEG image.
func readImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
