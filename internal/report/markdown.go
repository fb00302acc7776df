package report

import (
	"fmt"
	"strings"

	"github.com/vedux98/UX-Audit/internal/audit"
)

var categoryHeadings = map[audit.Category]string{
	audit.CategoryAccessibility: "Accessibility",
	audit.CategoryHeuristic:     "Usability heuristics",
	audit.CategorySEO:           "SEO",
	audit.CategoryPerformance:   "Performance",
}

// Markdown renders an audit result as a Markdown document: a score summary
// table followed by one section per category with a subsection per issue.
func Markdown(result *audit.Result, displayName string, settings audit.Settings) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# UX audit: %s\n\n", displayName)

	b.WriteString("| Category | Score |\n")
	b.WriteString("| --- | --- |\n")
	for _, c := range audit.Categories {
		if score, ok := result.Score(c); ok {
			fmt.Fprintf(&b, "| %s | %d |\n", categoryHeadings[c], score)
		}
	}
	if result.Overall != nil {
		fmt.Fprintf(&b, "| **Overall** | **%d** |\n", *result.Overall)
	}
	b.WriteString("\n")

	for _, c := range audit.Categories {
		issues := result.IssuesByCategory(c)
		if _, scored := result.Score(c); !scored && len(issues) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", categoryHeadings[c])
		if len(issues) == 0 {
			b.WriteString("No issues found.\n\n")
			continue
		}
		for _, issue := range issues {
			fmt.Fprintf(&b, "### %s: %s\n\n", strings.ToUpper(string(issue.Severity)), issue.Title)
			fmt.Fprintf(&b, "%s\n\n", issue.Description)
			if issue.Node != nil {
				fmt.Fprintf(&b, "Element: %s (%s)\n\n", issue.Node.Name, issue.Node.ID)
			}
			if settings.IncludeRemediation && issue.Remediation != "" {
				fmt.Fprintf(&b, "**Remediation:** %s\n\n", issue.Remediation)
			}
		}
	}

	return []byte(b.String())
}
