package audit

// Result is one completed audit: per-category scores, the overall score,
// and the ordered issue list. Score fields are pointers because presence is
// meaningful — a category score exists iff its toggle was enabled for the
// run, and Overall exists iff at least one category contributed.
type Result struct {
	Accessibility *int `json:"accessibility,omitempty" yaml:"accessibility,omitempty"`
	Heuristics    *int `json:"heuristics,omitempty"    yaml:"heuristics,omitempty"`
	SEO           *int `json:"seo,omitempty"           yaml:"seo,omitempty"`
	Performance   *int `json:"performance,omitempty"   yaml:"performance,omitempty"`
	Overall       *int `json:"overall,omitempty"       yaml:"overall,omitempty"`

	Issues []Issue `json:"issues" yaml:"issues"`
}

// Score returns the score for a category and whether it is present.
func (r *Result) Score(c Category) (int, bool) {
	p := r.scoreField(c)
	if p == nil {
		return 0, false
	}
	return *p, true
}

// SetScore records a category score, clamped to [0,100].
func (r *Result) SetScore(c Category, score int) {
	v := clampScore(score)
	switch c {
	case CategoryAccessibility:
		r.Accessibility = &v
	case CategoryHeuristic:
		r.Heuristics = &v
	case CategorySEO:
		r.SEO = &v
	case CategoryPerformance:
		r.Performance = &v
	}
}

func (r *Result) scoreField(c Category) *int {
	switch c {
	case CategoryAccessibility:
		return r.Accessibility
	case CategoryHeuristic:
		return r.Heuristics
	case CategorySEO:
		return r.SEO
	case CategoryPerformance:
		return r.Performance
	}
	return nil
}

// IssuesByCategory returns the issues belonging to one category, in order.
func (r *Result) IssuesByCategory(c Category) []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Category == c {
			out = append(out, is)
		}
	}
	return out
}

// CountBySeverity tallies issues per severity.
func (r *Result) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int)
	for _, is := range r.Issues {
		counts[is.Severity]++
	}
	return counts
}

// Finalize sorts the issue list for display and computes the overall score
// from whichever category scores are present.
func (r *Result) Finalize() {
	SortIssues(r.Issues)
	var scores []int
	for _, c := range Categories {
		if s, ok := r.Score(c); ok {
			scores = append(scores, s)
		}
	}
	if len(scores) == 0 {
		r.Overall = nil
		return
	}
	overall := OverallScore(scores)
	r.Overall = &overall
}
