package audit

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vedux98/UX-Audit/internal/figma"
)

// Auditor runs the tree-walking rule batteries and folds their findings
// into scores. It holds no state between runs; settings arrive as an
// explicit value with every call.
type Auditor struct {
	log *logrus.Logger
}

// New returns an Auditor logging recovered analysis failures to log. A nil
// logger disables logging.
func New(log *logrus.Logger) *Auditor {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &Auditor{log: log}
}

// Audit analyzes the selected subtrees and returns per-category scores and
// issues. The selection must be non-empty and every root must be an
// auditable container; otherwise an error is returned and no partial
// result is produced. Elements are only read, never retained.
//
// Tree audits cover the accessibility and heuristic categories; seo and
// performance scores come from the remote pipeline, so they are absent
// here regardless of their toggles.
func (a *Auditor) Audit(selection []*figma.Node, settings Settings) (*Result, error) {
	if len(selection) == 0 {
		return nil, fmt.Errorf("audit: nothing selected")
	}
	for _, root := range selection {
		if root == nil {
			return nil, fmt.Errorf("audit: nil selection entry")
		}
		if !figma.IsAuditRoot(root) {
			return nil, fmt.Errorf("audit: %q is a %s node; select a frame, group, section, or component", root.Name, root.Type)
		}
	}

	result := &Result{}
	for _, root := range selection {
		if settings.Accessibility {
			result.Issues = append(result.Issues, AccessibilityIssues(root)...)
		}
		if settings.Heuristics {
			result.Issues = append(result.Issues, HeuristicIssues(root)...)
		}
	}
	for _, is := range result.Issues {
		if is.Severity == SeverityError {
			a.log.WithField("title", is.Title).Warn(is.Description)
		}
	}

	if settings.Accessibility {
		result.SetScore(CategoryAccessibility, ScoreCategory(result.Issues, CategoryAccessibility))
	}
	if settings.Heuristics {
		result.SetScore(CategoryHeuristic, ScoreCategory(result.Issues, CategoryHeuristic))
	}
	result.Finalize()

	a.log.WithFields(logrus.Fields{
		"roots":  len(selection),
		"issues": len(result.Issues),
	}).Debug("audit complete")
	return result, nil
}
