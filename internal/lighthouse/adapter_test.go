package lighthouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedux98/UX-Audit/internal/audit"
)

func score(v float64) *float64 { return &v }

func TestCategoryForRule(t *testing.T) {
	assert.Equal(t, audit.CategorySEO, categoryForRule("seo-meta-description"))
	assert.Equal(t, audit.CategoryPerformance, categoryForRule("performance-unused-css"))
	assert.Equal(t, audit.CategoryPerformance, categoryForRule("speed-index"))
	assert.Equal(t, audit.CategoryPerformance, categoryForRule("load-time"))
	assert.Equal(t, audit.CategoryAccessibility, categoryForRule("color-contrast"))
	assert.Equal(t, audit.CategoryAccessibility, categoryForRule("image-alt"))
}

func TestMapResponse_SeverityAndSkips(t *testing.T) {
	resp := &Response{
		Categories: map[string]CategoryScore{
			"accessibility": {Score: 0.82},
			"seo":           {Score: 0.91},
			"performance":   {Score: 0.4},
		},
		Audits: map[string]AuditEntry{
			"seo-meta-description":   {Score: score(0.3), Title: "Document has a meta description", Description: "Missing meta description."},
			"color-contrast":         {Score: score(0.7), Title: "Contrast is sufficient", Description: "Two elements fail."},
			"image-alt":              {Score: score(1), Title: "Images have alt text", Description: "Perfect."},
			"load-time":              {Score: nil, Title: "Load time", Description: "Not applicable."},
			"performance-unused-css": {Score: score(0.95), Title: "Unused CSS", Description: "Minor unused rules."},
		},
	}

	result := MapResponse(resp, audit.DefaultSettings())

	require.NotNil(t, result.Accessibility)
	assert.Equal(t, 82, *result.Accessibility)
	require.NotNil(t, result.SEO)
	assert.Equal(t, 91, *result.SEO)
	require.NotNil(t, result.Performance)
	assert.Equal(t, 40, *result.Performance)
	assert.Nil(t, result.Heuristics)

	require.Len(t, result.Issues, 3, "perfect and not-applicable entries must be dropped")

	byTitle := map[string]audit.Issue{}
	for _, is := range result.Issues {
		byTitle[is.Title] = is
	}
	meta := byTitle["Document has a meta description"]
	assert.Equal(t, audit.CategorySEO, meta.Category)
	assert.Equal(t, audit.SeverityError, meta.Severity, "score 0.3 is below the 0.5 error threshold")

	contrast := byTitle["Contrast is sufficient"]
	assert.Equal(t, audit.CategoryAccessibility, contrast.Category)
	assert.Equal(t, audit.SeverityWarning, contrast.Severity)

	unused := byTitle["Unused CSS"]
	assert.Equal(t, audit.SeverityInfo, unused.Severity, "score 0.95 is advisory")
}

func TestMapResponse_RemediationGating(t *testing.T) {
	resp := &Response{
		Audits: map[string]AuditEntry{
			"seo-meta-description": {Score: score(0.3), Title: "Meta"},
			"some-unknown-rule":    {Score: score(0.3), Title: "Unknown"},
		},
	}

	with := MapResponse(resp, audit.DefaultSettings())
	require.Len(t, with.Issues, 2)
	for _, is := range with.Issues {
		assert.NotEmpty(t, is.Remediation)
	}
	// Unknown rules fall back to the generic advice.
	byTitle := map[string]audit.Issue{}
	for _, is := range with.Issues {
		byTitle[is.Title] = is
	}
	assert.Equal(t, genericAdvice, byTitle["Unknown"].Remediation)
	assert.NotEqual(t, genericAdvice, byTitle["Meta"].Remediation)

	settings := audit.DefaultSettings()
	settings.IncludeRemediation = false
	without := MapResponse(resp, settings)
	for _, is := range without.Issues {
		assert.Empty(t, is.Remediation)
	}
}

func TestMapResponse_DisabledCategoriesAbsent(t *testing.T) {
	resp := &Response{
		Categories: map[string]CategoryScore{
			"accessibility": {Score: 0.8},
			"seo":           {Score: 0.9},
		},
		Audits: map[string]AuditEntry{
			"seo-meta-description": {Score: score(0.3), Title: "Meta"},
			"color-contrast":       {Score: score(0.3), Title: "Contrast"},
		},
	}
	settings := audit.DefaultSettings()
	settings.SEO = false

	result := MapResponse(resp, settings)
	assert.Nil(t, result.SEO, "disabled category score must be absent, not zero")
	for _, is := range result.Issues {
		assert.NotEqual(t, audit.CategorySEO, is.Category)
	}
}
