package cmd

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedux98/UX-Audit/internal/audit"
	"github.com/vedux98/UX-Audit/internal/figma"
	"github.com/vedux98/UX-Audit/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <document.json>",
	Short: "Audit a design document and write a report artifact",
	Long: `Run the audit and render the result straight to a report file. The export
format comes from the settings unless --export overrides it. With
--screenshot, a capture of the audited frame is annotated with issue boxes
and embedded in HTML reports.

Examples:
  uxaudit report homepage.json --out report.md
  uxaudit report homepage.json --export html --screenshot frame.png --out report.html`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addSelectionFlags(reportCmd)
	reportCmd.Flags().String("out", "", "Report file to write (required)")
	reportCmd.Flags().String("export", "", "Export format: markdown, html, pdf (default from settings)")
	reportCmd.Flags().String("screenshot", "", "Frame capture to annotate and embed (png or jpeg)")
	reportCmd.Flags().String("settings-file", "", "Settings file to use instead of the default")
	_ = reportCmd.MarkFlagRequired("out")
}

func runReport(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if export, _ := cmd.Flags().GetString("export"); export != "" {
		format := audit.ExportFormat(export)
		if !format.Valid() {
			return fmt.Errorf("unsupported export format: %s (use markdown, html, or pdf)", export)
		}
		settings.ExportFormat = format
	}

	doc, err := figma.ParseDocumentFile(args[0])
	if err != nil {
		return err
	}
	selection, err := resolveSelection(cmd, doc)
	if err != nil {
		return err
	}

	result, err := audit.New(log).Audit(selection, settings)
	if err != nil {
		return err
	}

	var screenshot []byte
	if capturePath, _ := cmd.Flags().GetString("screenshot"); capturePath != "" {
		settings.IncludeScreenshots = true
		screenshot, err = annotateCapture(capturePath, result, doc, selection[0])
		if err != nil {
			return err
		}
	}

	name := displayNames(selection)
	out, _ := cmd.Flags().GetString("out")
	artifact, err := report.Render(result, name, settings, screenshot)
	if err != nil && !errors.Is(err, report.ErrPDFNotImplemented) {
		return err
	}
	if errors.Is(err, report.ErrPDFNotImplemented) {
		fmt.Fprintln(os.Stderr, "pdf export is not implemented yet; writing markdown content")
	}
	if err := os.WriteFile(out, artifact.Content, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.WithField("path", out).Debug("report written")
	return nil
}

// annotateCapture loads a frame capture and draws issue boxes on it.
func annotateCapture(path string, result *audit.Result, doc *figma.Document, frame *figma.Node) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open screenshot: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode screenshot %s: %w", path, err)
	}
	return report.Annotate(img, result.Issues, doc, frame)
}
