package audit

import "testing"

func issuesOf(c Category, severities ...Severity) []Issue {
	issues := make([]Issue, len(severities))
	for i, s := range severities {
		issues[i] = Issue{Category: c, Severity: s, Title: "t"}
	}
	return issues
}

func TestScoreCategory_EmptyListIs100(t *testing.T) {
	for _, c := range Categories {
		if got := ScoreCategory(nil, c); got != 100 {
			t.Errorf("ScoreCategory(nil, %s) = %d, want 100", c, got)
		}
	}
}

func TestScoreCategory_Weights(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		issues   []Issue
		want     int
	}{
		{"accessibility error", CategoryAccessibility, issuesOf(CategoryAccessibility, SeverityError), 85},
		{"accessibility warning", CategoryAccessibility, issuesOf(CategoryAccessibility, SeverityWarning), 92},
		{"accessibility info", CategoryAccessibility, issuesOf(CategoryAccessibility, SeverityInfo), 97},
		{"heuristic error", CategoryHeuristic, issuesOf(CategoryHeuristic, SeverityError), 88},
		{"heuristic warning", CategoryHeuristic, issuesOf(CategoryHeuristic, SeverityWarning), 93},
		{"heuristic info", CategoryHeuristic, issuesOf(CategoryHeuristic, SeverityInfo), 97},
		{"mixed", CategoryAccessibility, issuesOf(CategoryAccessibility, SeverityError, SeverityWarning, SeverityInfo), 74},
	}
	for _, tt := range tests {
		if got := ScoreCategory(tt.issues, tt.category); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestScoreCategory_IgnoresOtherCategories(t *testing.T) {
	issues := issuesOf(CategoryHeuristic, SeverityError, SeverityError)
	if got := ScoreCategory(issues, CategoryAccessibility); got != 100 {
		t.Errorf("accessibility score = %d, heuristic issues must not count", got)
	}
}

func TestScoreCategory_ClampsOnceAtEnd(t *testing.T) {
	// 10 errors at weight 15 folds to -50 before the final clamp.
	var severities []Severity
	for i := 0; i < 10; i++ {
		severities = append(severities, SeverityError)
	}
	if got := ScoreCategory(issuesOf(CategoryAccessibility, severities...), CategoryAccessibility); got != 0 {
		t.Errorf("pathological score = %d, want 0", got)
	}
}

func TestOverallScore_RoundHalfUp(t *testing.T) {
	tests := []struct {
		scores []int
		want   int
	}{
		{[]int{100}, 100},
		{[]int{75, 80, 65}, 73},  // 73.33
		{[]int{75, 80}, 78},      // 77.5 rounds up
		{[]int{0, 1}, 1},         // 0.5 rounds up
		{[]int{90, 91, 92}, 91},
	}
	for _, tt := range tests {
		if got := OverallScore(tt.scores); got != tt.want {
			t.Errorf("OverallScore(%v) = %d, want %d", tt.scores, got, tt.want)
		}
	}
}

func TestResultFinalize_DisabledCategoryAbsent(t *testing.T) {
	// Only a heuristic issue is present, but heuristics are disabled: the
	// accessibility score must be unaffected and the heuristic score absent.
	r := &Result{Issues: issuesOf(CategoryHeuristic, SeverityError)}
	r.SetScore(CategoryAccessibility, ScoreCategory(r.Issues, CategoryAccessibility))
	r.Finalize()

	if r.Accessibility == nil || *r.Accessibility != 100 {
		t.Errorf("accessibility = %v, want 100", r.Accessibility)
	}
	if r.Heuristics != nil {
		t.Errorf("heuristics score present, want absent")
	}
	if r.Overall == nil || *r.Overall != 100 {
		t.Errorf("overall = %v, want 100 from accessibility alone", r.Overall)
	}
}

func TestResultFinalize_NoScoresNoOverall(t *testing.T) {
	r := &Result{}
	r.Finalize()
	if r.Overall != nil {
		t.Errorf("overall present with no contributing categories")
	}
}
