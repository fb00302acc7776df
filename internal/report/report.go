package report

import (
	"errors"
	"fmt"

	"github.com/vedux98/UX-Audit/internal/audit"
)

// ErrPDFNotImplemented marks a PDF export request that was served with
// Markdown content instead. Callers must surface the notice; the artifact
// still carries the full report, never an empty file.
var ErrPDFNotImplemented = errors.New("pdf export not implemented, markdown content substituted")

// Artifact is one rendered report.
type Artifact struct {
	// Extension is the suggested file extension, without the dot.
	Extension string
	Content   []byte
}

// Render produces the report artifact for the format selected in settings.
// screenshot may be nil; it is only read for HTML export when the settings
// include screenshots. PDF export returns the Markdown artifact together
// with ErrPDFNotImplemented.
func Render(result *audit.Result, displayName string, settings audit.Settings, screenshot []byte) (*Artifact, error) {
	switch settings.ExportFormat {
	case audit.ExportMarkdown:
		return &Artifact{Extension: "md", Content: Markdown(result, displayName, settings)}, nil
	case audit.ExportHTML:
		content, err := HTML(result, displayName, settings, screenshot)
		if err != nil {
			return nil, err
		}
		return &Artifact{Extension: "html", Content: content}, nil
	case audit.ExportPDF:
		return &Artifact{Extension: "md", Content: Markdown(result, displayName, settings)}, ErrPDFNotImplemented
	default:
		return nil, fmt.Errorf("render report: unknown export format %q", settings.ExportFormat)
	}
}
