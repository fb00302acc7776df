package audit

import (
	"fmt"
	"math"

	"github.com/vedux98/UX-Audit/internal/figma"
	"github.com/vedux98/UX-Audit/internal/wcag"
)

// Geometry thresholds for the accessibility battery, in document units.
const (
	minTouchTarget = 44.0 // WCAG 2.5.5 target size
	minTextSize    = 12.0
)

// AccessibilityIssues runs the accessibility battery over one subtree:
// contrast and text-size checks on every text descendant, touch-target
// checks on every element carrying an interaction. A failure analyzing one
// element becomes a single error-severity issue and never stops the walk.
func AccessibilityIssues(root *figma.Node) []Issue {
	var issues []Issue

	for _, text := range figma.TextNodes(root) {
		issues = append(issues, checkElement(text, checkTextContrast)...)
		issues = append(issues, checkElement(text, checkTextSize)...)
	}

	interactive := figma.FindDescendants(root, true, func(n *figma.Node) bool {
		return len(n.Reactions) > 0
	})
	for _, n := range interactive {
		issues = append(issues, checkElement(n, checkTouchTarget)...)
	}

	return issues
}

// checkElement applies one check, converting a panic on a malformed node
// into an analysis-error issue so siblings still get analyzed.
func checkElement(n *figma.Node, check func(*figma.Node) []Issue) (issues []Issue) {
	defer func() {
		if r := recover(); r != nil {
			issues = []Issue{{
				Category:    CategoryAccessibility,
				Severity:    SeverityError,
				Title:       "Analysis error",
				Description: fmt.Sprintf("Could not analyze %q: %v.", n.Name, r),
				Node:        nodeRef(n),
			}}
		}
	}()
	return check(n)
}

// checkTextContrast compares the text color against the resolved background
// and emits a warning when the WCAG AA ratio for the text's size class is
// not met. Text without a resolvable solid fill is skipped — there is no
// color to judge.
func checkTextContrast(n *figma.Node) []Issue {
	fg, ok := figma.FirstSolidFill(n)
	if !ok {
		return nil
	}
	bg := figma.EffectiveBackground(n)
	ratio := wcag.ContrastRatio(wcag.RelativeLuminance(fg), wcag.RelativeLuminance(bg))

	required := wcag.RatioNormalText
	if size, known := n.FontSize(); known {
		bold := false
		if n.Style != nil {
			bold = wcag.IsBoldWeight(n.Style.FontWeight, n.Style.FontStyle)
		}
		required = wcag.RequiredRatio(size, bold)
	}
	if ratio >= required {
		return nil
	}
	return []Issue{{
		Category: CategoryAccessibility,
		Severity: SeverityWarning,
		Title:    "Low contrast text",
		Description: fmt.Sprintf("%q has a contrast ratio of %.1f:1, below the required %.1f:1.",
			n.Characters, ratio, required),
		Remediation: fmt.Sprintf("Adjust the text or background color until the contrast ratio reaches at least %.1f:1.", required),
		Node:        nodeRef(n),
	}}
}

// checkTextSize flags text below the minimum readable size. Mixed-size text
// exports no single size and is skipped.
func checkTextSize(n *figma.Node) []Issue {
	size, known := n.FontSize()
	if !known || size >= minTextSize {
		return nil
	}
	return []Issue{{
		Category:    CategoryAccessibility,
		Severity:    SeverityWarning,
		Title:       "Small text size",
		Description: fmt.Sprintf("%q is set at %.0fpx, below the %.0fpx minimum for readable body text.", n.Characters, size, minTextSize),
		Remediation: fmt.Sprintf("Increase the font size to at least %.0fpx.", minTextSize),
		Node:        nodeRef(n),
	}}
}

// checkTouchTarget flags interactive elements smaller than the minimum
// touch target in either dimension.
func checkTouchTarget(n *figma.Node) []Issue {
	w, h := n.Bounds.Width, n.Bounds.Height
	if w >= minTouchTarget && h >= minTouchTarget {
		return nil
	}
	return []Issue{{
		Category:    CategoryAccessibility,
		Severity:    SeverityWarning,
		Title:       "Small touch target",
		Description: fmt.Sprintf("%q is %dx%dpx; touch targets should be at least %.0fx%.0fpx.", n.Name, int(math.Round(w)), int(math.Round(h)), minTouchTarget, minTouchTarget),
		Remediation: fmt.Sprintf("Enlarge the element to at least %.0fx%.0fpx or add padding around it.", minTouchTarget, minTouchTarget),
		Node:        nodeRef(n),
	}}
}

func nodeRef(n *figma.Node) *NodeRef {
	if n == nil {
		return nil
	}
	return &NodeRef{ID: n.ID, Name: n.Name}
}
