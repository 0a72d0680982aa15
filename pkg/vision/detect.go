package vision

import (
	"image"

	"github.com/disintegration/imaging"
)

const (
	// edgeThreshold is the minimum Sobel gradient magnitude for a pixel to
	// count as an edge.
	edgeThreshold = 120.0

	// minRegionArea filters out noise: regions smaller than this many
	// square pixels are ignored.
	minRegionArea = 1000.0

	// Detection confidence grows with region size and saturates here.
	maxConfidence = 0.8
	confidenceRef = 10000.0
)

// Detection is one furniture region found in an image. Coordinates and
// sizes are in pixels; Type comes from the position/aspect classifier.
type Detection struct {
	Type       string  `json:"type"`
	CenterX    float64 `json:"center_x"`
	CenterY    float64 `json:"center_y"`
	WidthPx    float64 `json:"width_px"`
	HeightPx   float64 `json:"height_px"`
	AreaPx     float64 `json:"area_px"`
	Aspect     float64 `json:"aspect_ratio"`
	Confidence float64 `json:"confidence"`
}

// DetectFurniture finds furniture-sized regions in an image: grayscale,
// Sobel edges, 8-connected components, then the position/aspect classifier.
// Regions that classify as nothing recognizable are dropped.
func DetectFurniture(img image.Image) []Detection {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 3 || h < 3 {
		return nil
	}

	gray := imaging.Grayscale(img)
	edges := sobelEdges(gray, w, h)

	var detections []Detection
	for _, r := range labelRegions(edges, w, h) {
		area := r.area()
		if area < minRegionArea {
			continue
		}
		det := Detection{
			CenterX:  float64(r.minX+r.maxX) / 2,
			CenterY:  float64(r.minY+r.maxY) / 2,
			WidthPx:  float64(r.maxX - r.minX + 1),
			HeightPx: float64(r.maxY - r.minY + 1),
			AreaPx:   area,
		}
		det.Aspect = det.WidthPx / det.HeightPx
		det.Type = classifyRegion(det, h)
		if det.Type == "" {
			continue
		}
		det.Confidence = min(maxConfidence, area/confidenceRef)
		detections = append(detections, det)
	}
	return detections
}

// sobelEdges computes a binary edge map from a grayscale image using the
// Sobel operator. Border pixels are never edges.
func sobelEdges(gray *image.NRGBA, w, h int) []bool {
	lum := func(x, y int) float64 {
		return float64(gray.Pix[gray.PixOffset(gray.Rect.Min.X+x, gray.Rect.Min.Y+y)])
	}

	edges := make([]bool, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := -lum(x-1, y-1) + lum(x+1, y-1) +
				-2*lum(x-1, y) + 2*lum(x+1, y) +
				-lum(x-1, y+1) + lum(x+1, y+1)
			gy := -lum(x-1, y-1) - 2*lum(x, y-1) - lum(x+1, y-1) +
				lum(x-1, y+1) + 2*lum(x, y+1) + lum(x+1, y+1)
			if gx*gx+gy*gy >= edgeThreshold*edgeThreshold {
				edges[y*w+x] = true
			}
		}
	}
	return edges
}

// region is a connected component of edge pixels, tracked by bounding box.
// Area is the box area: for the closed outlines furniture produces, that
// approximates the enclosed region.
type region struct {
	minX, minY, maxX, maxY int
}

func (r region) area() float64 {
	return float64(r.maxX-r.minX+1) * float64(r.maxY-r.minY+1)
}

func (r *region) extend(x, y int) {
	r.minX = min(r.minX, x)
	r.maxX = max(r.maxX, x)
	r.minY = min(r.minY, y)
	r.maxY = max(r.maxY, y)
}

// labelRegions groups edge pixels into 8-connected components with an
// explicit stack. Scan order makes the result deterministic.
func labelRegions(edges []bool, w, h int) []region {
	visited := make([]bool, len(edges))
	var regions []region

	var stack []int
	for start := range edges {
		if !edges[start] || visited[start] {
			continue
		}

		r := region{minX: start % w, minY: start / w, maxX: start % w, maxY: start / w}
		stack = append(stack[:0], start)
		visited[start] = true

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := idx%w, idx/w
			r.extend(x, y)

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					n := ny*w + nx
					if edges[n] && !visited[n] {
						visited[n] = true
						stack = append(stack, n)
					}
				}
			}
		}
		regions = append(regions, r)
	}
	return regions
}
