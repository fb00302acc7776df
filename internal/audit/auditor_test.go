package audit

import (
	"testing"

	"github.com/vedux98/UX-Audit/internal/figma"
)

func TestAudit_EmptySelection(t *testing.T) {
	if _, err := New(nil).Audit(nil, DefaultSettings()); err == nil {
		t.Fatal("expected an error for an empty selection")
	}
}

func TestAudit_UnsupportedRoot(t *testing.T) {
	text := &figma.Node{ID: "t", Type: figma.NodeText, Name: "Loose text"}
	if _, err := New(nil).Audit([]*figma.Node{text}, DefaultSettings()); err == nil {
		t.Fatal("expected an error for a text root")
	}
}

func TestAudit_CategoryTogglesGateRulesAndScores(t *testing.T) {
	size := 10.0
	frame := wire(&figma.Node{
		ID: "f", Type: figma.NodeFrame, Name: "Screen",
		Fills: solidFill(1, 1, 1),
		Children: []*figma.Node{{
			ID: "t", Type: figma.NodeText, Name: "Tiny", Characters: "tiny",
			Fills: solidFill(0, 0, 0),
			Style: &figma.TypeStyle{FontSize: &size},
		}},
	})

	settings := DefaultSettings()
	settings.Heuristics = false
	result, err := New(nil).Audit([]*figma.Node{frame}, settings)
	if err != nil {
		t.Fatalf("Audit failed: %v", err)
	}

	if result.Heuristics != nil {
		t.Error("heuristics disabled but score present")
	}
	for _, is := range result.Issues {
		if is.Category == CategoryHeuristic {
			t.Fatalf("heuristics disabled but issue %q produced", is.Title)
		}
	}
	if result.Accessibility == nil {
		t.Fatal("accessibility score missing")
	}
	// One small-text warning: 100 - 8.
	if *result.Accessibility != 92 {
		t.Errorf("accessibility = %d, want 92", *result.Accessibility)
	}
	if result.Overall == nil || *result.Overall != 92 {
		t.Errorf("overall = %v, want 92 from accessibility alone", result.Overall)
	}
	// Tree audits never score the remote-only categories.
	if result.SEO != nil || result.Performance != nil {
		t.Error("seo/performance scores present on a tree audit")
	}
}

func TestAudit_AllCategoriesDisabled(t *testing.T) {
	frame := wire(&figma.Node{ID: "f", Type: figma.NodeFrame, Name: "Screen"})
	settings := Settings{ExportFormat: ExportMarkdown}
	result, err := New(nil).Audit([]*figma.Node{frame}, settings)
	if err != nil {
		t.Fatalf("Audit failed: %v", err)
	}
	if len(result.Issues) != 0 || result.Overall != nil {
		t.Errorf("disabled run should produce no issues and no overall, got %+v", result)
	}
}
