package audit

import "math"

// severityWeights holds the per-category score deduction for one issue of
// each severity. Accessibility findings are graded harder than heuristic
// ones; categories without their own table share the heuristic weights.
var severityWeights = map[Category]map[Severity]int{
	CategoryAccessibility: {
		SeverityError:   15,
		SeverityWarning: 8,
		SeverityInfo:    3,
	},
	CategoryHeuristic: {
		SeverityError:   12,
		SeverityWarning: 7,
		SeverityInfo:    3,
	},
}

func weightFor(c Category, s Severity) int {
	table, ok := severityWeights[c]
	if !ok {
		table = severityWeights[CategoryHeuristic]
	}
	return table[s]
}

// ScoreCategory folds the issues of one category into a 0-100 score:
// start at 100, subtract the severity weight per issue, clamp once at the
// end. Clamping only at the end means a pathological issue list cannot go
// negative mid-fold and then "recover". An empty list scores exactly 100.
func ScoreCategory(issues []Issue, c Category) int {
	score := 100
	for _, is := range issues {
		if is.Category != c {
			continue
		}
		score -= weightFor(c, is.Severity)
	}
	return clampScore(score)
}

// OverallScore averages the contributing category scores, rounded half-up
// to the nearest integer and clamped to [0,100]. Disabled categories must
// not appear in scores at all — absence, not zero.
func OverallScore(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	mean := float64(sum) / float64(len(scores))
	return clampScore(int(math.Floor(mean + 0.5)))
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
