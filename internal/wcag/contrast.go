package wcag

import (
	"math"
	"strings"

	"github.com/vedux98/UX-Audit/internal/figma"
)

// Minimum contrast ratios for WCAG 2.1 level AA (success criterion 1.4.3).
const (
	RatioNormalText = 4.5
	RatioLargeText  = 3.0
)

// Large-text thresholds: text at or above LargeTextSize always counts as
// large; text at or above BoldTextSize counts as large when bold.
const (
	LargeTextSize = 18.0
	BoldTextSize  = 14.0
	BoldWeight    = 700.0
)

// Linearize converts one sRGB channel in [0,1] to linear light using the
// exact WCAG piecewise formula. No rounding is applied; callers keep full
// precision until the final ratio.
func Linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of a color, the
// linear-light brightness in [0,1] where 0 is black and 1 is white.
func RelativeLuminance(c figma.Color) float64 {
	return 0.2126*Linearize(c.R) + 0.7152*Linearize(c.G) + 0.0722*Linearize(c.B)
}

// ContrastRatio returns the contrast ratio between two relative luminances.
// The result is in [1, 21] and is symmetric in its arguments.
func ContrastRatio(a, b float64) float64 {
	lighter, darker := a, b
	if darker > lighter {
		lighter, darker = darker, lighter
	}
	return (lighter + 0.05) / (darker + 0.05)
}

// IsBoldWeight reports whether a font counts as bold for the large-text
// rule: numeric weight of 700 or more, or a style name containing "bold"
// when no numeric weight is available.
func IsBoldWeight(weight float64, styleName string) bool {
	if weight > 0 {
		return weight >= BoldWeight
	}
	return strings.Contains(strings.ToLower(styleName), "bold")
}

// RequiredRatio returns the minimum AA contrast ratio for text of the given
// size: 3.0 for large text (>= 18, or >= 14 bold), 4.5 otherwise.
func RequiredRatio(fontSize float64, bold bool) float64 {
	if fontSize >= LargeTextSize || (fontSize >= BoldTextSize && bold) {
		return RatioLargeText
	}
	return RatioNormalText
}
