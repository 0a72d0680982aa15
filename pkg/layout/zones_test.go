package layout

import (
	"math"
	"testing"

	"github.com/roomforge/roomforge/pkg/room"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestGalleyZonesDouble(t *testing.T) {
	// 2.8m wide: 2.8 - 2*0.6 = 1.6m walkway, comfortably above the 0.9m
	// minimum, so both counters plus a keep-clear center walkway.
	zones := GenerateZones(room.Dimensions{Width: 2.8, Length: 4.0}, TypeGalley)
	if len(zones) != 3 {
		t.Fatalf("got %d zones, want 3", len(zones))
	}

	left, right, walkway := zones[0], zones[1], zones[2]
	if left.Name != "left_counter" || right.Name != "right_counter" || walkway.Name != "center_walkway" {
		t.Fatalf("unexpected zone names: %s, %s, %s", left.Name, right.Name, walkway.Name)
	}
	if !walkway.KeepClear {
		t.Error("center walkway must be keep_clear")
	}
	if !approx(walkway.Rect.W, 1.6) {
		t.Errorf("walkway width = %v, want 1.6", walkway.Rect.W)
	}
	if !approx(right.Rect.X, 2.8-CounterDepth) {
		t.Errorf("right counter x = %v, want %v", right.Rect.X, 2.8-CounterDepth)
	}
}

func TestGalleyZonesSingleWallFallback(t *testing.T) {
	// 2.0m wide: 2.0 - 1.2 = 0.8m walkway, below the 0.9m minimum, so the
	// recipe falls back to one counter plus an open keep-clear strip.
	zones := GenerateZones(room.Dimensions{Width: 2.0, Length: 4.0}, TypeGalley)
	if len(zones) != 2 {
		t.Fatalf("got %d zones, want 2", len(zones))
	}
	if zones[0].Name != "main_counter" || zones[1].Name != "open_space" {
		t.Fatalf("unexpected zone names: %s, %s", zones[0].Name, zones[1].Name)
	}
	if len(zones[0].Appliances) != 4 {
		t.Errorf("single-wall counter should carry all four appliances, got %v", zones[0].Appliances)
	}
}

func TestUShapedZones(t *testing.T) {
	zones := GenerateZones(room.Dimensions{Width: 3.5, Length: 4.0}, TypeUShaped)
	if len(zones) != 3 {
		t.Fatalf("got %d zones, want 3", len(zones))
	}
	for _, z := range zones {
		if z.Type != ZoneCounter {
			t.Errorf("zone %s type = %s, want counter", z.Name, z.Type)
		}
	}
	// All three counters share the standard depth.
	if !approx(zones[0].Rect.W, CounterDepth) || !approx(zones[1].Rect.H, CounterDepth) || !approx(zones[2].Rect.W, CounterDepth) {
		t.Error("u-shaped counter depths must all equal CounterDepth")
	}
}

func TestIslandZones(t *testing.T) {
	dims := room.Dimensions{Width: 4.5, Length: 5.0}
	zones := GenerateZones(dims, TypeIsland)
	if len(zones) != 3 {
		t.Fatalf("got %d zones, want 3", len(zones))
	}

	island := zones[2]
	if island.Type != ZoneIsland || island.Name != "center_island" {
		t.Fatalf("third zone = %s/%s, want island/center_island", island.Type, island.Name)
	}

	// available width = 4.5 - 1.2 - 2.0 = 1.3 < 1.8 cap; length capped at 3.0.
	if !approx(island.Rect.W, 1.3) {
		t.Errorf("island width = %v, want 1.3", island.Rect.W)
	}
	if !approx(island.Rect.H, 3.0) {
		t.Errorf("island length = %v, want 3.0", island.Rect.H)
	}
	// Centered in the room.
	if !approx(island.Rect.CenterX(), dims.Width/2) || !approx(island.Rect.CenterY(), dims.Length/2) {
		t.Errorf("island not centered: center (%v,%v)", island.Rect.CenterX(), island.Rect.CenterY())
	}
	if !island.Seating {
		t.Error("island zone should carry seating")
	}
}

func TestLShapedZones(t *testing.T) {
	zones := GenerateZones(room.Dimensions{Width: 3.2, Length: 4.0}, TypeLShaped)
	if len(zones) != 2 {
		t.Fatalf("got %d zones, want 2", len(zones))
	}
	side := zones[1]
	if !approx(side.Rect.W, 3.2*0.6) {
		t.Errorf("side wall counter spans %v, want 60%% of width (%v)", side.Rect.W, 3.2*0.6)
	}
}

func TestSingleWallZones(t *testing.T) {
	zones := GenerateZones(room.Dimensions{Width: 2.2, Length: 5.0}, TypeSingleWall)
	if len(zones) != 2 {
		t.Fatalf("got %d zones, want 2", len(zones))
	}
	if zones[1].Type != ZoneOpenSpace || zones[1].KeepClear {
		t.Errorf("second zone = %s keep_clear=%v, want open_space without keep_clear",
			zones[1].Type, zones[1].KeepClear)
	}
}

func TestGenerateZonesUnknownArchetype(t *testing.T) {
	if zones := GenerateZones(room.Dimensions{Width: 3, Length: 4}, "loft"); zones != nil {
		t.Errorf("unknown archetype should yield no zones, got %v", zones)
	}
}
