package vision

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/roomforge/roomforge/pkg/layout"
)

// Component weights for the overall score.
const (
	weightSpatial = 0.4
	weightScale   = 0.3
	weightLayout  = 0.3
)

// neutralScore is used whenever a component has nothing to measure.
const neutralScore = 0.7

// positionTolerance is the matching radius for planned versus detected
// positions, in meters.
const positionTolerance = 0.3

// validThreshold is the overall score at which an image passes.
const validThreshold = 0.7

// typeVariants maps a planned furniture type to the detection labels that
// count as a match for it.
var typeVariants = map[string][]string{
	"sofa":         {"sofa", "couch"},
	"coffee_table": {"coffee_table", "table"},
	"dining_table": {"dining_table", "table"},
	"tv_unit":      {"tv_unit", "entertainment_center"},
	"island":       {"island", "kitchen_island"},
	"bed":          {"bed"},
	"dresser":      {"dresser", "cabinet"},
	"nightstand":   {"nightstand", "side_table"},
}

// standardDims holds typical real-world footprints (width, depth in meters)
// used for scale consistency checks.
var standardDims = map[string][2]float64{
	"sofa":           {2.2, 0.9},
	"coffee_table":   {1.2, 0.6},
	"dining_table":   {1.5, 1.0},
	"bed":            {1.6, 2.0},
	"kitchen_island": {2.0, 1.0},
	"tv_unit":        {1.5, 0.4},
	"dresser":        {1.0, 0.5},
	"nightstand":     {0.5, 0.4},
}

// ComplianceReport is the full image validation result. Component scores
// can be degraded independently; see [Score].
type ComplianceReport struct {
	Valid            bool        `json:"valid"`
	OverallScore     float64     `json:"overall_score"`
	SpatialAccuracy  Score       `json:"spatial_accuracy"`
	ScaleConsistency Score       `json:"scale_consistency"`
	LayoutCompliance Score       `json:"layout_compliance"`
	Detections       []Detection `json:"detected_furniture"`
	Missing          []string    `json:"missing_furniture,omitempty"`
	Violations       []string    `json:"violations,omitempty"`
	Recommendations  []string    `json:"recommendations,omitempty"`
}

// ValidateImage scores a generated image against its plan. It never returns
// an error: when no spatial reference can be established the report comes
// back with neutral degraded scores and an explanatory violation.
func ValidateImage(img image.Image, plan *layout.Plan) ComplianceReport {
	if img == nil || plan == nil {
		return degradedReport("Unable to establish spatial reference in image")
	}
	bounds := img.Bounds()
	ref, ok := EstimateScale(bounds.Dx(), bounds.Dy(), plan.Room)
	if !ok {
		return degradedReport("Unable to establish spatial reference in image")
	}

	detections := DetectFurniture(img)

	report := ComplianceReport{Detections: detections}
	report.SpatialAccuracy, report.Missing = scorePositions(plan.Furniture, detections, ref)
	report.ScaleConsistency = scoreScale(detections, ref)
	report.LayoutCompliance, report.Violations = scoreLayout(detections, plan.Constraints.LayoutRules, ref)

	report.OverallScore = weightSpatial*report.SpatialAccuracy.Value +
		weightScale*report.ScaleConsistency.Value +
		weightLayout*report.LayoutCompliance.Value
	report.Valid = report.OverallScore >= validThreshold
	report.Recommendations = buildRecommendations(report)
	return report
}

func degradedReport(reason string) ComplianceReport {
	degraded := Score{Value: 0.5, Degraded: true}
	return ComplianceReport{
		SpatialAccuracy:  degraded,
		ScaleConsistency: degraded,
		LayoutCompliance: degraded,
		OverallScore:     0.5,
		Violations:       []string{reason},
		Recommendations:  []string{"regenerate the image with explicit room dimensions"},
	}
}

// scorePositions compares planned furniture origins against detected region
// centers in scale space. Planned items with no matching detection score a
// neutral 0.5 and are reported missing.
func scorePositions(planned []layout.Placed, detections []Detection, ref ScaleReference) (Score, []string) {
	if len(planned) == 0 {
		return Score{Value: neutralScore}, nil
	}

	var missing []string
	total := 0.0
	for _, item := range planned {
		best, ok := nearestMatch(item, detections, ref)
		if !ok {
			missing = append(missing, item.Type)
			total += 0.5
			continue
		}
		tolerancePx := positionTolerance * ref.PixelsPerMeter
		total += math.Max(0, 1-best/tolerancePx)
	}
	return Score{Value: total / float64(len(planned))}, missing
}

// nearestMatch returns the pixel distance to the closest detection whose
// label is a variant of the planned type.
func nearestMatch(item layout.Placed, detections []Detection, ref ScaleReference) (float64, bool) {
	variants := typeVariants[item.Type]
	if variants == nil {
		variants = []string{item.Type}
	}

	expectedX := item.Position.X * ref.PixelsPerMeter
	expectedY := item.Position.Y * ref.PixelsPerMeter

	best, found := math.MaxFloat64, false
	for _, det := range detections {
		matched := false
		for _, v := range variants {
			if det.Type == v {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		dist := math.Hypot(det.CenterX-expectedX, det.CenterY-expectedY)
		if dist < best {
			best, found = dist, true
		}
	}
	return best, found
}

// scoreScale checks each detection's apparent size against the standard
// footprint for its type. Detections without a standard entry are skipped;
// no measurable detections yields a neutral score.
func scoreScale(detections []Detection, ref ScaleReference) Score {
	total, n := 0.0, 0
	for _, det := range detections {
		std, ok := standardDims[det.Type]
		if !ok {
			continue
		}
		detW := det.WidthPx / ref.PixelsPerMeter
		detD := det.HeightPx / ref.PixelsPerMeter

		ratioW := math.Min(detW/std[0], std[0]/detW)
		ratioD := math.Min(detD/std[1], std[1]/detD)
		avg := (ratioW + ratioD) / 2

		total += math.Min(1, math.Max(0, (avg-0.8)/0.2))
		n++
	}
	if n == 0 {
		return Score{Value: neutralScore}
	}
	return Score{Value: total / float64(n)}
}

// scoreLayout averages the layout sub-checks equally: pairwise overlap,
// floor density, and the plan's layout-rule tokens when any are present.
// Overlap and density always contribute, scoring a clean 1.0 when there is
// nothing to measure.
func scoreLayout(detections []Detection, rules []string, ref ScaleReference) (Score, []string) {
	overlapScore, violations := scoreOverlap(detections)
	components := []float64{overlapScore, scoreDensity(detections, ref)}

	if len(rules) > 0 {
		score, v := scoreRules(detections, rules)
		components = append(components, score)
		violations = append(violations, v...)
	}

	total := 0.0
	for _, s := range components {
		total += s
	}
	return Score{Value: total / float64(len(components))}, violations
}

// scoreOverlap penalizes detection pairs whose boxes overlap by more than
// 10% of the smaller box. Fewer than two detections cannot overlap.
func scoreOverlap(detections []Detection) (float64, []string) {
	if len(detections) < 2 {
		return 1.0, nil
	}

	pairs, overlapping := 0, 0
	var violations []string

	for i := 0; i < len(detections); i++ {
		for j := i + 1; j < len(detections); j++ {
			pairs++
			a, b := detections[i], detections[j]

			ix := overlap1D(a.CenterX, a.WidthPx, b.CenterX, b.WidthPx)
			iy := overlap1D(a.CenterY, a.HeightPx, b.CenterY, b.HeightPx)
			smaller := math.Min(a.AreaPx, b.AreaPx)
			if smaller <= 0 {
				continue
			}
			if ix*iy/smaller > 0.1 {
				overlapping++
				violations = append(violations,
					fmt.Sprintf("%s and %s overlap in the image", a.Type, b.Type))
			}
		}
	}
	return 1 - float64(overlapping)/float64(pairs), violations
}

func overlap1D(c1, w1, c2, w2 float64) float64 {
	lo := math.Max(c1-w1/2, c2-w2/2)
	hi := math.Min(c1+w1/2, c2+w2/2)
	return math.Max(0, hi-lo)
}

// scoreDensity rates how much of the room floor the detections cover.
func scoreDensity(detections []Detection, ref ScaleReference) float64 {
	roomArea := ref.RoomWidthPx * ref.RoomLengthPx
	if roomArea <= 0 {
		return neutralScore
	}
	covered := 0.0
	for _, det := range detections {
		covered += det.AreaPx
	}

	switch density := covered / roomArea; {
	case density < 0.3:
		return 1.0
	case density < 0.5:
		return 0.8
	case density < 0.7:
		return 0.6
	default:
		return 0.3
	}
}

// scoreRules checks the machine-readable layout-rule tokens against what
// was detected. A NO_ISLAND rule counts one violation when any island shows
// up; GALLEY_KITCHEN_ONLY counts every center piece it finds, so the score
// is clamped at zero.
func scoreRules(detections []Detection, rules []string) (float64, []string) {
	violated := 0
	var violations []string
	for _, rule := range rules {
		switch {
		case strings.Contains(rule, "NO_ISLAND"):
			for _, det := range detections {
				if strings.Contains(strings.ToLower(det.Type), "island") {
					violated++
					violations = append(violations, "island detected but layout forbids islands")
					break
				}
			}
		case strings.Contains(rule, "GALLEY_KITCHEN_ONLY"):
			for _, det := range detections {
				if det.Type == "kitchen_island" || det.Type == "dining_table" {
					violated++
					violations = append(violations, "center furniture detected in galley-only layout")
				}
			}
		}
	}
	return math.Max(0, 1-float64(violated)/float64(len(rules))), violations
}

func buildRecommendations(r ComplianceReport) []string {
	var recs []string
	if !r.SpatialAccuracy.Degraded && r.SpatialAccuracy.Value < 0.7 {
		recs = append(recs, "furniture positions deviate from the plan - consider regenerating")
	}
	if !r.ScaleConsistency.Degraded && r.ScaleConsistency.Value < 0.7 {
		recs = append(recs, "furniture proportions look unrealistic for the room size")
	}
	if !r.LayoutCompliance.Degraded && r.LayoutCompliance.Value < 0.6 {
		recs = append(recs, "layout rules are violated - adjust prompt constraints")
	}
	if len(r.Missing) > 0 {
		recs = append(recs, fmt.Sprintf("expected furniture not found: %s", strings.Join(r.Missing, ", ")))
	}

	switch {
	case r.OverallScore < 0.5:
		recs = append(recs, "significant compliance issues - regeneration recommended")
	case r.OverallScore < validThreshold:
		recs = append(recs, "moderate compliance - review before use")
	default:
		recs = append(recs, "good compliance with spatial constraints")
	}
	return recs
}
