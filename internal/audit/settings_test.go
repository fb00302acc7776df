package audit

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.Accessibility || !s.Heuristics || !s.SEO || !s.Performance {
		t.Error("all category toggles should default to enabled")
	}
	if s.ExportFormat != ExportMarkdown {
		t.Errorf("default export format = %s, want markdown", s.ExportFormat)
	}
	if !s.IncludeRemediation {
		t.Error("remediation should be included by default")
	}
	if s.APIKey != "" || s.UseAI {
		t.Error("api key and useAI should default to empty/off")
	}
}

func TestParseSettings_LayersOverDefaults(t *testing.T) {
	// A legacy snapshot knowing only two fields: everything else must
	// keep its default, not zero out.
	s, err := ParseSettings([]byte(`{"heuristics": false, "apiKey": "k-123"}`))
	if err != nil {
		t.Fatalf("ParseSettings failed: %v", err)
	}
	if s.Heuristics {
		t.Error("heuristics should be disabled by the snapshot")
	}
	if !s.Accessibility || !s.SEO || !s.Performance {
		t.Error("untouched toggles should keep their defaults")
	}
	if s.APIKey != "k-123" {
		t.Errorf("apiKey = %q, want k-123", s.APIKey)
	}
	if s.ExportFormat != ExportMarkdown {
		t.Errorf("export format should default to markdown, got %s", s.ExportFormat)
	}
}

func TestParseSettings_EmptyAndInvalid(t *testing.T) {
	if s, err := ParseSettings(nil); err != nil || s != DefaultSettings() {
		t.Errorf("empty snapshot should yield defaults, got %+v, %v", s, err)
	}
	if _, err := ParseSettings([]byte(`{not json`)); err == nil {
		t.Error("malformed snapshot should error")
	}
	if _, err := ParseSettings([]byte(`{"exportFormat": "docx"}`)); err == nil {
		t.Error("unknown export format should error")
	}
}

func TestEnabledCategories(t *testing.T) {
	s := DefaultSettings()
	s.SEO = false
	s.Performance = false
	got := s.EnabledCategories()
	if len(got) != 2 || got[0] != CategoryAccessibility || got[1] != CategoryHeuristic {
		t.Errorf("enabled categories = %v", got)
	}
}
