package report

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/vedux98/UX-Audit/internal/audit"
)

func sampleResult() *audit.Result {
	result := &audit.Result{Issues: []audit.Issue{
		{
			Category:    audit.CategoryAccessibility,
			Severity:    audit.SeverityWarning,
			Title:       "Low contrast text",
			Description: "\"Sign in\" has a contrast ratio of 2.4:1, below the required 4.5:1.",
			Remediation: "Adjust the text or background color until the contrast ratio reaches at least 4.5:1.",
			Node:        &audit.NodeRef{ID: "10:2", Name: "Sign in label"},
		},
		{
			Category:    audit.CategoryHeuristic,
			Severity:    audit.SeverityInfo,
			Title:       "No obvious help",
			Description: "No help, support, or documentation affordance was found in this screen.",
			Remediation: "Add a help link or contextual hints where users are likely to get stuck.",
		},
	}}
	result.SetScore(audit.CategoryAccessibility, 84)
	result.SetScore(audit.CategoryHeuristic, 97)
	result.Finalize()
	return result
}

func TestMarkdown_Golden(t *testing.T) {
	g := goldie.New(t)
	got := Markdown(sampleResult(), "Login", audit.DefaultSettings())
	g.Assert(t, "markdown_report", got)
}

func TestMarkdown_RemediationGating(t *testing.T) {
	settings := audit.DefaultSettings()
	settings.IncludeRemediation = false
	got := string(Markdown(sampleResult(), "Login", settings))
	if strings.Contains(got, "Remediation") {
		t.Error("remediation text rendered despite includeRemediation=false")
	}
}

func TestMarkdown_CleanCategory(t *testing.T) {
	result := &audit.Result{}
	result.SetScore(audit.CategoryAccessibility, 100)
	result.Finalize()

	got := string(Markdown(result, "Clean", audit.DefaultSettings()))
	if !strings.Contains(got, "## Accessibility\n\nNo issues found.") {
		t.Errorf("scored category without issues should render a clean section:\n%s", got)
	}
	if strings.Contains(got, "## SEO") {
		t.Error("unscored empty category should be omitted")
	}
}
