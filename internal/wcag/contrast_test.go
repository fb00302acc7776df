package wcag

import (
	"math"
	"testing"

	"github.com/vedux98/UX-Audit/internal/figma"
)

func TestContrastRatio_IdenticalLuminance(t *testing.T) {
	for _, l := range []float64{0, 0.2125, 0.5, 1} {
		if got := ContrastRatio(l, l); got != 1.0 {
			t.Errorf("ContrastRatio(%v, %v) = %v, want 1.0", l, l, got)
		}
	}
}

func TestContrastRatio_Symmetric(t *testing.T) {
	a := RelativeLuminance(figma.Color{R: 0.2, G: 0.5, B: 0.9})
	b := RelativeLuminance(figma.Color{R: 0.9, G: 0.1, B: 0.3})
	if ContrastRatio(a, b) != ContrastRatio(b, a) {
		t.Errorf("ContrastRatio is not symmetric: %v vs %v", ContrastRatio(a, b), ContrastRatio(b, a))
	}
}

func TestContrastRatio_BlackOnWhite(t *testing.T) {
	white := RelativeLuminance(figma.Color{R: 1, G: 1, B: 1})
	black := RelativeLuminance(figma.Color{R: 0, G: 0, B: 0})
	got := ContrastRatio(white, black)
	if math.Abs(got-21.0) > 1e-9 {
		t.Errorf("white on black ratio = %v, want 21.0", got)
	}
}

func TestLinearize_Piecewise(t *testing.T) {
	// Below the knee the formula is linear.
	if got := Linearize(0.03); math.Abs(got-0.03/12.92) > 1e-12 {
		t.Errorf("Linearize(0.03) = %v, want %v", got, 0.03/12.92)
	}
	// Above the knee it is the exponential branch.
	want := math.Pow((0.5+0.055)/1.055, 2.4)
	if got := Linearize(0.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("Linearize(0.5) = %v, want %v", got, want)
	}
}

func TestRelativeLuminance_Extremes(t *testing.T) {
	if got := RelativeLuminance(figma.Color{R: 1, G: 1, B: 1}); math.Abs(got-1) > 1e-9 {
		t.Errorf("luminance of white = %v, want 1", got)
	}
	if got := RelativeLuminance(figma.Color{}); got != 0 {
		t.Errorf("luminance of black = %v, want 0", got)
	}
}

func TestRequiredRatio(t *testing.T) {
	tests := []struct {
		size float64
		bold bool
		want float64
	}{
		{18, false, RatioLargeText},
		{24, false, RatioLargeText},
		{14, true, RatioLargeText},
		{17.9, false, RatioNormalText},
		{14, false, RatioNormalText},
		{13.9, true, RatioNormalText},
		{10, false, RatioNormalText},
	}
	for _, tt := range tests {
		if got := RequiredRatio(tt.size, tt.bold); got != tt.want {
			t.Errorf("RequiredRatio(%v, %v) = %v, want %v", tt.size, tt.bold, got, tt.want)
		}
	}
}

func TestIsBoldWeight(t *testing.T) {
	if !IsBoldWeight(700, "") {
		t.Error("weight 700 should be bold")
	}
	if IsBoldWeight(400, "Regular") {
		t.Error("weight 400 should not be bold")
	}
	if !IsBoldWeight(0, "Bold Italic") {
		t.Error("style name containing Bold should be bold when weight is absent")
	}
}
