package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"

	"github.com/vedux98/UX-Audit/internal/audit"
	"github.com/vedux98/UX-Audit/internal/output"
)

// printBanner shows the tool banner on interactive runs. Piped output
// belongs to the structured result, so the banner is skipped there.
func printBanner() {
	if output.IsOutputPiped() {
		return
	}
	figure.NewColorFigure("UX AUDIT", "doom", "cyan", true).Print()
	fmt.Println()
}

var severityColor = map[audit.Severity]*color.Color{
	audit.SeverityError:   color.New(color.FgRed, color.Bold),
	audit.SeverityWarning: color.New(color.FgYellow),
	audit.SeverityInfo:    color.New(color.FgCyan),
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 90:
		return color.New(color.FgGreen)
	case score >= 70:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

var categoryLabels = map[audit.Category]string{
	audit.CategoryAccessibility: "Accessibility",
	audit.CategoryHeuristic:     "Heuristics",
	audit.CategorySEO:           "SEO",
	audit.CategoryPerformance:   "Performance",
}

// printSummary shows a colored per-category score table and severity
// tally. Piped runs get only the structured result.
func printSummary(result *audit.Result, name string) {
	if output.IsOutputPiped() {
		return
	}
	fmt.Printf("\n%s\n", name)
	for _, c := range audit.Categories {
		if score, ok := result.Score(c); ok {
			fmt.Printf("  %-14s ", categoryLabels[c])
			_, _ = scoreColor(score).Printf("%3d\n", score)
		}
	}
	if result.Overall != nil {
		fmt.Printf("  %-14s ", "Overall")
		_, _ = scoreColor(*result.Overall).Printf("%3d\n", *result.Overall)
	}

	counts := result.CountBySeverity()
	fmt.Printf("\n  %d issues", len(result.Issues))
	for _, s := range []audit.Severity{audit.SeverityError, audit.SeverityWarning, audit.SeverityInfo} {
		if counts[s] > 0 {
			fmt.Print("  ")
			_, _ = severityColor[s].Printf("%d %s", counts[s], s)
		}
	}
	fmt.Println()
	fmt.Println()
}
