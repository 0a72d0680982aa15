package vision

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomforge/roomforge/pkg/layout"
	"github.com/roomforge/roomforge/pkg/room"
)

// whiteImage returns a blank canvas to draw synthetic furniture on.
func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func fillBlack(img *image.RGBA, r image.Rectangle) {
	draw.Draw(img, r, image.NewUniform(color.Black), image.Point{}, draw.Src)
}

func TestEstimateScale(t *testing.T) {
	ref, ok := EstimateScale(300, 350, room.Dimensions{Width: 4.0, Length: 5.0})
	require.True(t, ok)

	// min(300/4, 350/5) * 0.6 = 70 * 0.6 = 42 px/m.
	assert.InDelta(t, 42.0, ref.PixelsPerMeter, 1e-9)
	assert.InDelta(t, 168.0, ref.RoomWidthPx, 1e-9)
	assert.InDelta(t, 210.0, ref.RoomLengthPx, 1e-9)
}

func TestEstimateScaleMissingDimensions(t *testing.T) {
	if _, ok := EstimateScale(300, 350, room.Dimensions{}); ok {
		t.Error("zero room dimensions must not produce a scale")
	}
	if _, ok := EstimateScale(0, 0, room.Dimensions{Width: 4, Length: 5}); ok {
		t.Error("empty image must not produce a scale")
	}
}

func TestDetectFurnitureSofa(t *testing.T) {
	img := whiteImage(400, 400)
	// Large wide region in the lower band: classifies as a sofa.
	fillBlack(img, image.Rect(60, 290, 260, 390))

	detections := DetectFurniture(img)
	require.Len(t, detections, 1)

	det := detections[0]
	assert.Equal(t, "sofa", det.Type)
	assert.InDelta(t, 160, det.CenterX, 3)
	assert.InDelta(t, 340, det.CenterY, 3)
	assert.Equal(t, 0.8, det.Confidence, "large regions saturate confidence")
}

func TestDetectFurnitureIgnoresSmallRegions(t *testing.T) {
	img := whiteImage(400, 400)
	fillBlack(img, image.Rect(100, 300, 120, 320)) // ~400 px², below threshold

	if detections := DetectFurniture(img); len(detections) != 0 {
		t.Errorf("tiny region should be filtered, got %+v", detections)
	}
}

func TestDetectFurnitureDegenerateImages(t *testing.T) {
	for _, size := range []int{0, 1, 2} {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		if detections := DetectFurniture(img); detections != nil {
			t.Errorf("%dx%d image should yield no detections", size, size)
		}
	}
}

func TestClassifyRegion(t *testing.T) {
	tests := []struct {
		name string
		det  Detection
		want string
	}{
		{"large wide lower region", Detection{CenterY: 345, HeightPx: 90, Aspect: 2.2, AreaPx: 20000}, "sofa"},
		{"small wide lower region", Detection{CenterY: 345, HeightPx: 90, Aspect: 2.2, AreaPx: 8000}, "coffee_table"},
		{"large square lower region", Detection{CenterY: 345, HeightPx: 90, Aspect: 1.0, AreaPx: 25000}, "dining_table"},
		{"small square lower region", Detection{CenterY: 345, HeightPx: 90, Aspect: 1.0, AreaPx: 5000}, "nightstand"},
		{"very elongated lower region", Detection{CenterY: 345, HeightPx: 90, Aspect: 5.0, AreaPx: 18000}, "kitchen_island"},
		{"elongated middle region", Detection{CenterY: 200, HeightPx: 40, Aspect: 3.0, AreaPx: 9000}, "tv_unit"},
		{"compact middle region", Detection{CenterY: 200, HeightPx: 40, Aspect: 1.2, AreaPx: 9000}, "dresser"},
		{"upper region", Detection{CenterY: 50, HeightPx: 40, Aspect: 2.0, AreaPx: 20000}, ""},
		// Bands go by the box top: a tall region whose center sits below the
		// 0.7 line but whose top is in the middle band is middle furniture.
		{"tall region straddling the bands", Detection{CenterY: 300, HeightPx: 100, Aspect: 1.8, AreaPx: 20000}, "dresser"},
		{"aspect exactly 4.0 matches no lower band", Detection{CenterY: 345, HeightPx: 90, Aspect: 4.0, AreaPx: 18000}, ""},
		{"aspect exactly 1.5 matches no lower band", Detection{CenterY: 345, HeightPx: 90, Aspect: 1.5, AreaPx: 18000}, ""},
		{"top exactly on the 0.7 line", Detection{CenterY: 290, HeightPx: 20, Aspect: 1.2, AreaPx: 5000}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyRegion(tt.det, 400))
		})
	}
}

func TestValidateImageDegraded(t *testing.T) {
	reports := []ComplianceReport{
		ValidateImage(nil, nil),
		ValidateImage(whiteImage(100, 100), &layout.Plan{}), // zero room dims
	}
	for _, r := range reports {
		assert.True(t, r.SpatialAccuracy.Degraded)
		assert.True(t, r.ScaleConsistency.Degraded)
		assert.True(t, r.LayoutCompliance.Degraded)
		assert.Equal(t, 0.5, r.OverallScore)
		assert.False(t, r.Valid)
		require.NotEmpty(t, r.Violations)
		assert.Contains(t, r.Violations[0], "spatial reference")
	}
}

func TestValidateImageBlank(t *testing.T) {
	plan := &layout.Plan{
		Room: room.Dimensions{Width: 4.0, Length: 5.0},
		Furniture: []layout.Placed{
			{Type: "sofa", Dimensions: layout.Dimensions{Width: 2.2, Depth: 0.9}, Position: layout.Position{X: 1.0, Y: 3.5}},
		},
	}

	report := ValidateImage(whiteImage(300, 350), plan)

	assert.Equal(t, []string{"sofa"}, report.Missing)
	assert.False(t, report.SpatialAccuracy.Degraded, "an empty image scores low, it is not degraded")
	assert.Equal(t, 0.5, report.SpatialAccuracy.Value)
	assert.GreaterOrEqual(t, report.OverallScore, 0.0)
	assert.LessOrEqual(t, report.OverallScore, 1.0)
	assert.NotEmpty(t, report.Recommendations)
}

func TestValidateImageMatchesPlannedSofa(t *testing.T) {
	img := whiteImage(400, 400)
	fillBlack(img, image.Rect(60, 290, 260, 390))

	plan := &layout.Plan{
		Room: room.Dimensions{Width: 4.0, Length: 4.0},
		Furniture: []layout.Placed{
			{Type: "sofa", Dimensions: layout.Dimensions{Width: 2.2, Depth: 0.9}, Position: layout.Position{X: 0.9, Y: 3.0}},
		},
	}

	report := ValidateImage(img, plan)
	assert.Empty(t, report.Missing, "the detected sofa should match the planned one")
	require.Len(t, report.Detections, 1)
	assert.Equal(t, "sofa", report.Detections[0].Type)
}

func TestValidateImageLayoutRuleViolation(t *testing.T) {
	img := whiteImage(400, 400)
	// Very elongated lower region: classifies as a kitchen island.
	fillBlack(img, image.Rect(50, 320, 350, 380))

	plan := &layout.Plan{
		Room: room.Dimensions{Width: 4.0, Length: 4.0},
		Constraints: layout.Constraints{
			LayoutRules: []string{"GALLEY_KITCHEN_ONLY", "NO_ISLAND_ALLOWED"},
		},
	}

	report := ValidateImage(img, plan)

	islandViolation := false
	for _, v := range report.Violations {
		if v == "island detected but layout forbids islands" {
			islandViolation = true
		}
	}
	assert.True(t, islandViolation, "violations: %v", report.Violations)
	// Overlap is clean (one detection), density lands in the 0.8 band, and
	// both rules are violated: (1.0 + 0.8 + 0.0) / 3.
	assert.InDelta(t, 0.6, report.LayoutCompliance.Value, 1e-9)
}

func TestScoreLayoutAlwaysAveragesAllComponents(t *testing.T) {
	ref := ScaleReference{PixelsPerMeter: 60, RoomWidthPx: 240, RoomLengthPx: 240}
	detections := []Detection{
		{Type: "kitchen_island", CenterX: 120, CenterY: 340, WidthPx: 300, HeightPx: 60, AreaPx: 18000},
	}
	rules := []string{"GALLEY_KITCHEN_ONLY", "NO_ISLAND_ALLOWED"}

	score, violations := scoreLayout(detections, rules, ref)

	// A single detection cannot overlap (1.0), density 18000/57600 scores
	// 0.8, and both rules are violated (0.0); the average keeps all three.
	assert.InDelta(t, 0.6, score.Value, 1e-9)
	assert.Len(t, violations, 2)
}

func TestScoreLayoutEmptySceneIsClean(t *testing.T) {
	ref := ScaleReference{PixelsPerMeter: 60, RoomWidthPx: 240, RoomLengthPx: 240}

	score, violations := scoreLayout(nil, nil, ref)

	assert.Equal(t, 1.0, score.Value)
	assert.Empty(t, violations)
}

func TestScoreRulesCountsEveryCenterPiece(t *testing.T) {
	detections := []Detection{{Type: "kitchen_island"}, {Type: "dining_table"}}

	score, violations := scoreRules(detections, []string{"GALLEY_KITCHEN_ONLY"})
	assert.Equal(t, 0.0, score, "two center pieces against one rule clamp at zero")
	assert.Len(t, violations, 2)

	score, violations = scoreRules(detections, []string{"NO_ISLAND_ALLOWED"})
	assert.Equal(t, 0.0, score)
	assert.Len(t, violations, 1, "a NO_ISLAND rule counts once however many islands")
}

func TestValidateImageScoresStayInRange(t *testing.T) {
	plans := []*layout.Plan{
		{Room: room.Dimensions{Width: 2.0, Length: 2.0}},
		{Room: room.Dimensions{Width: 10.0, Length: 10.0}},
	}
	images := []*image.RGBA{
		whiteImage(3, 3),
		whiteImage(50, 400),
		func() *image.RGBA {
			img := whiteImage(400, 400)
			fillBlack(img, image.Rect(0, 0, 400, 400))
			return img
		}(),
	}
	for _, plan := range plans {
		for _, img := range images {
			report := ValidateImage(img, plan)
			for name, s := range map[string]Score{
				"spatial": report.SpatialAccuracy,
				"scale":   report.ScaleConsistency,
				"layout":  report.LayoutCompliance,
			} {
				if s.Value < 0 || s.Value > 1 {
					t.Errorf("%s score %v out of range", name, s.Value)
				}
			}
			if report.OverallScore < 0 || report.OverallScore > 1 {
				t.Errorf("overall score %v out of range", report.OverallScore)
			}
		}
	}
}
