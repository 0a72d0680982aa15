package layout

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		width float64
		want  string
	}{
		{1.8, TypeGalley},
		{2.4, TypeGalley},
		{2.9, TypeGalley},
		{3.0, TypeGalley},
		{3.1, TypeUShaped},
		{3.5, TypeUShaped},
		{3.7, TypeIsland},
		{4.0, TypeIsland},
		{6.5, TypeIsland},
	}
	for _, tt := range tests {
		if got := Classify(tt.width); got != tt.want {
			t.Errorf("Classify(%.1f) = %q, want %q", tt.width, got, tt.want)
		}
	}
}

// TestClassifyGalleyPrecedence pins the threshold precedence: the galley
// bound at 3.0m is checked first, so single_wall and l_shaped are never
// returned even for widths inside their nominal ranges. Changing this
// changes downstream layout rules and needs a product decision first.
func TestClassifyGalleyPrecedence(t *testing.T) {
	for _, width := range []float64{2.0, 2.3, 2.4, 2.7, 2.99} {
		if got := Classify(width); got != TypeGalley {
			t.Errorf("Classify(%.2f) = %q, want %q (galley must dominate below 3.0m)",
				width, got, TypeGalley)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	for _, width := range []float64{2.0, 3.0, 3.5, 4.0} {
		first := Classify(width)
		for i := 0; i < 3; i++ {
			if got := Classify(width); got != first {
				t.Fatalf("Classify(%.1f) changed between calls: %q vs %q", width, first, got)
			}
		}
	}
}
