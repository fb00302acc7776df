package lighthouse

import "github.com/vedux98/UX-Audit/internal/audit"

// Baseline scores returned when the remote service is unavailable or no
// API key is configured. These are representative site averages, not
// measurements of the audited page.
const (
	baselineAccessibility = 75
	baselineSEO           = 80
	baselinePerformance   = 65
)

// Fallback returns the static baseline result, filtered to the categories
// enabled in settings. The overall score is recomputed from the enabled
// subset so it is present exactly when at least one category contributed.
func Fallback(settings audit.Settings) *audit.Result {
	result := &audit.Result{}

	if settings.Accessibility {
		result.SetScore(audit.CategoryAccessibility, baselineAccessibility)
	}
	if settings.SEO {
		result.SetScore(audit.CategorySEO, baselineSEO)
	}
	if settings.Performance {
		result.SetScore(audit.CategoryPerformance, baselinePerformance)
	}

	for _, issue := range baselineIssues(settings) {
		if settings.Enabled(issue.Category) {
			result.Issues = append(result.Issues, issue)
		}
	}

	result.Finalize()
	return result
}

// baselineIssues are the representative findings attached to the fallback
// result. Remediation rides along only when the settings ask for it.
func baselineIssues(settings audit.Settings) []audit.Issue {
	issues := []audit.Issue{
		{
			Category:    audit.CategoryAccessibility,
			Severity:    audit.SeverityWarning,
			Title:       "Detailed audit unavailable",
			Description: "The remote scoring service could not be reached; accessibility findings below are typical for comparable pages.",
		},
		{
			Category:    audit.CategoryAccessibility,
			Severity:    audit.SeverityInfo,
			Title:       "Verify color contrast",
			Description: "Most pages have at least one text element below the 4.5:1 contrast ratio.",
		},
		{
			Category:    audit.CategorySEO,
			Severity:    audit.SeverityInfo,
			Title:       "Verify meta description",
			Description: "Pages without a meta description lose control of how search results summarize them.",
		},
		{
			Category:    audit.CategoryPerformance,
			Severity:    audit.SeverityWarning,
			Title:       "Verify asset compression",
			Description: "Uncompressed images and scripts are the most common cause of slow first paint.",
		},
	}
	if settings.IncludeRemediation {
		for i := range issues {
			switch issues[i].Category {
			case audit.CategorySEO:
				issues[i].Remediation = adviceFor("seo-meta-description")
			case audit.CategoryPerformance:
				issues[i].Remediation = adviceFor("load-time")
			default:
				issues[i].Remediation = adviceFor("color-contrast")
			}
		}
	}
	return issues
}
