package cmd

import (
	"testing"

	"github.com/vedux98/UX-Audit/internal/audit"
)

func TestApplySetting_Booleans(t *testing.T) {
	s := audit.DefaultSettings()
	if err := applySetting(&s, "seo", "false"); err != nil {
		t.Fatalf("applySetting failed: %v", err)
	}
	if s.SEO {
		t.Error("seo not disabled")
	}
	if err := applySetting(&s, "includeScreenshots", "true"); err != nil {
		t.Fatalf("applySetting failed: %v", err)
	}
	if !s.IncludeScreenshots {
		t.Error("includeScreenshots not enabled")
	}
	if err := applySetting(&s, "accessibility", "maybe"); err == nil {
		t.Error("expected an error for a non-boolean value")
	}
}

func TestApplySetting_FormatAndKey(t *testing.T) {
	s := audit.DefaultSettings()
	if err := applySetting(&s, "exportFormat", "html"); err != nil {
		t.Fatalf("applySetting failed: %v", err)
	}
	if s.ExportFormat != audit.ExportHTML {
		t.Errorf("exportFormat = %s", s.ExportFormat)
	}
	if err := applySetting(&s, "exportFormat", "docx"); err == nil {
		t.Error("expected an error for an unknown format")
	}

	if err := applySetting(&s, "apiKey", "k-1"); err != nil {
		t.Fatalf("applySetting failed: %v", err)
	}
	if s.APIKey != "k-1" {
		t.Errorf("apiKey = %q", s.APIKey)
	}

	if err := applySetting(&s, "bogus", "1"); err == nil {
		t.Error("expected an error for an unknown field")
	}
}

func TestParamHelpers(t *testing.T) {
	params := map[string]interface{}{
		"path":  "doc.json",
		"seo":   false,
		"empty": "",
	}
	if got := stringParam(params, "path", "x"); got != "doc.json" {
		t.Errorf("stringParam = %q", got)
	}
	if got := stringParam(params, "empty", "fallback"); got != "fallback" {
		t.Errorf("empty string should fall back, got %q", got)
	}
	if got := stringParam(params, "missing", "d"); got != "d" {
		t.Errorf("missing key should fall back, got %q", got)
	}
	if got := boolParam(params, "seo", true); got {
		t.Error("boolParam should read the explicit false")
	}
	if got := boolParam(params, "missing", true); !got {
		t.Error("boolParam should fall back for missing keys")
	}
}
