package vision

import (
	"github.com/roomforge/roomforge/pkg/room"
)

// scaleMargin accounts for the blank border around the rendered room: only
// about this fraction of the image is the room itself.
const scaleMargin = 0.6

// ScaleReference maps between image pixels and room meters.
type ScaleReference struct {
	PixelsPerMeter float64 `json:"pixels_per_meter"`
	RoomWidthPx    float64 `json:"room_width_px"`
	RoomLengthPx   float64 `json:"room_length_px"`
}

// EstimateScale derives the pixel scale for an image of the given room.
// It reports false when the room dimensions cannot anchor a scale at all;
// callers then fall back to a degraded report.
func EstimateScale(imgW, imgH int, dims room.Dimensions) (ScaleReference, bool) {
	if dims.Width <= 0 || dims.Length <= 0 || imgW <= 0 || imgH <= 0 {
		return ScaleReference{}, false
	}

	ppmX := float64(imgW) / dims.Width
	ppmY := float64(imgH) / dims.Length
	ppm := min(ppmX, ppmY) * scaleMargin

	return ScaleReference{
		PixelsPerMeter: ppm,
		RoomWidthPx:    dims.Width * ppm,
		RoomLengthPx:   dims.Length * ppm,
	}, true
}
