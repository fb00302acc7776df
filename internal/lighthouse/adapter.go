package lighthouse

import (
	"sort"
	"strings"

	"github.com/vedux98/UX-Audit/internal/audit"
)

// Response is the normalized payload of the remote scoring service.
type Response struct {
	Error      string                   `json:"error,omitempty"`
	Categories map[string]CategoryScore `json:"categories"`
	Audits     map[string]AuditEntry    `json:"audits"`
}

// CategoryScore is one category's 0..1 score.
type CategoryScore struct {
	Score float64 `json:"score"`
}

// AuditEntry is one rule outcome. Score is a pointer because null marks a
// rule that did not apply to the page.
type AuditEntry struct {
	Score       *float64 `json:"score"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// Remote severity thresholds: a rule scoring below errorThreshold failed
// outright, below warnThreshold partially, anything else is advisory.
const (
	errorThreshold = 0.5
	warnThreshold  = 0.9
)

// categoryForRule classifies a remote rule ID by its prefix. Anything not
// recognizably seo or performance counts as accessibility, which matches
// how the service names its rules.
func categoryForRule(ruleID string) audit.Category {
	switch {
	case strings.HasPrefix(ruleID, "seo-"):
		return audit.CategorySEO
	case strings.HasPrefix(ruleID, "performance-"),
		strings.HasPrefix(ruleID, "speed-"),
		strings.HasPrefix(ruleID, "load-"):
		return audit.CategoryPerformance
	default:
		return audit.CategoryAccessibility
	}
}

func severityForScore(score float64) audit.Severity {
	switch {
	case score < errorThreshold:
		return audit.SeverityError
	case score < warnThreshold:
		return audit.SeverityWarning
	default:
		return audit.SeverityInfo
	}
}

// MapResponse converts a remote response into an audit result: category
// scores scaled to 0-100 for the enabled categories, and one issue per
// imperfect audit entry. Entries scoring exactly 1 (perfect) or null (not
// applicable) are dropped. Remediation text is attached only when the
// settings ask for it.
func MapResponse(resp *Response, settings audit.Settings) *audit.Result {
	result := &audit.Result{}

	for cat, key := range map[audit.Category]string{
		audit.CategoryAccessibility: "accessibility",
		audit.CategorySEO:           "seo",
		audit.CategoryPerformance:   "performance",
	} {
		if !settings.Enabled(cat) {
			continue
		}
		if cs, ok := resp.Categories[key]; ok {
			result.SetScore(cat, int(cs.Score*100+0.5))
		}
	}

	// Map iteration order is random; rule IDs are sorted so the issue
	// list is stable run to run.
	ruleIDs := make([]string, 0, len(resp.Audits))
	for id := range resp.Audits {
		ruleIDs = append(ruleIDs, id)
	}
	sort.Strings(ruleIDs)

	for _, id := range ruleIDs {
		entry := resp.Audits[id]
		if entry.Score == nil || *entry.Score == 1 {
			continue
		}
		category := categoryForRule(id)
		if !settings.Enabled(category) {
			continue
		}
		issue := audit.Issue{
			Category:    category,
			Severity:    severityForScore(*entry.Score),
			Title:       entry.Title,
			Description: entry.Description,
		}
		if issue.Title == "" {
			issue.Title = id
		}
		if settings.IncludeRemediation {
			issue.Remediation = adviceFor(id)
		}
		result.Issues = append(result.Issues, issue)
	}

	result.Finalize()
	return result
}
