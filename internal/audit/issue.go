package audit

import "sort"

// Category buckets issues by audit surface.
type Category string

const (
	CategoryAccessibility Category = "accessibility"
	CategoryHeuristic     Category = "heuristic"
	CategorySEO           Category = "seo"
	CategoryPerformance   Category = "performance"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryAccessibility,
	CategoryHeuristic,
	CategorySEO,
	CategoryPerformance,
}

// Severity ranks an issue. Error outranks warning outranks info, both for
// display order and for score-weight lookup.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

var severityRank = map[Severity]int{
	SeverityError:   2,
	SeverityWarning: 1,
	SeverityInfo:    0,
}

// Rank returns the numeric order of a severity; higher is more severe.
func (s Severity) Rank() int {
	return severityRank[s]
}

// NodeRef points at the element an issue originated from. It holds identity
// only — never the element itself, which belongs to the host document.
type NodeRef struct {
	ID   string `json:"id"             yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Issue is one audit finding. Issues are immutable value records: they have
// no identity beyond their fields and are owned by the caller once returned.
type Issue struct {
	Category    Category `json:"category"              yaml:"category"`
	Severity    Severity `json:"severity"              yaml:"severity"`
	Title       string   `json:"title"                 yaml:"title"`
	Description string   `json:"description"           yaml:"description"`
	Remediation string   `json:"remediation,omitempty" yaml:"remediation,omitempty"`
	Node        *NodeRef `json:"node,omitempty"        yaml:"node,omitempty"`
}

// SortIssues orders issues for display: by category in Categories order,
// then by descending severity, preserving detection order within a group.
func SortIssues(issues []Issue) {
	catOrder := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		catOrder[c] = i
	}
	sort.SliceStable(issues, func(i, j int) bool {
		if catOrder[issues[i].Category] != catOrder[issues[j].Category] {
			return catOrder[issues[i].Category] < catOrder[issues[j].Category]
		}
		return issues[i].Severity.Rank() > issues[j].Severity.Rank()
	})
}
