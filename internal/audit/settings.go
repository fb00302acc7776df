package audit

import (
	"encoding/json"
	"fmt"
)

// ExportFormat selects the report artifact produced for an audit result.
type ExportFormat string

const (
	ExportMarkdown ExportFormat = "markdown"
	ExportHTML     ExportFormat = "html"
	ExportPDF      ExportFormat = "pdf"
)

// Valid reports whether the format is one of the supported exports.
func (f ExportFormat) Valid() bool {
	switch f {
	case ExportMarkdown, ExportHTML, ExportPDF:
		return true
	}
	return false
}

// Settings is the configuration for one audit run. It is an explicit value
// threaded through every rule and scorer call; audits read it at invocation
// start and never mutate it.
type Settings struct {
	Accessibility bool `json:"accessibility" yaml:"accessibility"`
	Heuristics    bool `json:"heuristics"    yaml:"heuristics"`
	SEO           bool `json:"seo"           yaml:"seo"`
	Performance   bool `json:"performance"   yaml:"performance"`

	ExportFormat       ExportFormat `json:"exportFormat"       yaml:"exportFormat"`
	IncludeScreenshots bool         `json:"includeScreenshots" yaml:"includeScreenshots"`
	IncludeRemediation bool         `json:"includeRemediation" yaml:"includeRemediation"`

	// APIKey for the remote scoring service. Empty means the remote
	// detailed audit is unavailable and the baseline fallback is used.
	APIKey string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`

	// UseAI is reserved; nothing consumes it yet.
	UseAI bool `json:"useAI" yaml:"useAI"`
}

// DefaultSettings returns the configuration used when nothing is persisted.
func DefaultSettings() Settings {
	return Settings{
		Accessibility:      true,
		Heuristics:         true,
		SEO:                true,
		Performance:        true,
		ExportFormat:       ExportMarkdown,
		IncludeScreenshots: false,
		IncludeRemediation: true,
	}
}

// ParseSettings layers a persisted JSON snapshot over the defaults, so a
// snapshot written by an older version with missing fields never produces
// undefined configuration. An empty snapshot yields the defaults.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings: %w", err)
	}
	if s.ExportFormat == "" {
		s.ExportFormat = ExportMarkdown
	}
	if !s.ExportFormat.Valid() {
		return DefaultSettings(), fmt.Errorf("parse settings: unknown export format %q", s.ExportFormat)
	}
	return s, nil
}

// Enabled reports whether the given category's toggle is on.
func (s Settings) Enabled(c Category) bool {
	switch c {
	case CategoryAccessibility:
		return s.Accessibility
	case CategoryHeuristic:
		return s.Heuristics
	case CategorySEO:
		return s.SEO
	case CategoryPerformance:
		return s.Performance
	}
	return false
}

// EnabledCategories returns the enabled categories in display order.
func (s Settings) EnabledCategories() []Category {
	var out []Category
	for _, c := range Categories {
		if s.Enabled(c) {
			out = append(out, c)
		}
	}
	return out
}
