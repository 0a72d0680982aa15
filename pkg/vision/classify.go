package vision

// classifyRegion names a detected region from where its box top sits
// vertically and its aspect ratio. This is a fixed decision table tuned for
// top-down room renders; regions that match no band return "" and are
// discarded.
//
// Vertical bands are relative to image height: the lower band holds seating
// and tables, the middle band wall-adjacent storage. Area breaks ties
// between small and large variants of the same shape. Band and aspect
// boundaries are strict, so a region sitting exactly on one is discarded.
func classifyRegion(det Detection, imgH int) string {
	if imgH <= 0 {
		return ""
	}
	relY := (det.CenterY - det.HeightPx/2) / float64(imgH)

	switch {
	case relY > 0.7:
		switch {
		case det.Aspect > 1.5 && det.Aspect < 4.0:
			if det.AreaPx > 15000 {
				return "sofa"
			}
			return "coffee_table"
		case det.Aspect > 0.8 && det.Aspect < 1.5:
			if det.AreaPx > 20000 {
				return "dining_table"
			}
			return "nightstand"
		case det.Aspect > 4.0:
			return "kitchen_island"
		}
	case relY > 0.3 && relY < 0.7:
		if det.Aspect > 2.0 {
			return "tv_unit"
		}
		return "dresser"
	}
	return ""
}
