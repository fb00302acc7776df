package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/vedux98/UX-Audit/internal/audit"
)

// htmlShell wraps the converted report body in a minimal styled page.
var htmlShell = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>UX audit: {{.Name}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #1a1a1a; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #d0d0d0; padding: 0.4rem 0.9rem; text-align: left; }
h1 { border-bottom: 2px solid #1a1a1a; padding-bottom: 0.3rem; }
h2 { margin-top: 2rem; }
h3 { margin-bottom: 0.2rem; }
img.capture { max-width: 100%; border: 1px solid #d0d0d0; margin: 1rem 0; }
</style>
</head>
<body>
{{if .Screenshot}}<img class="capture" alt="Annotated frame capture" src="data:image/png;base64,{{.Screenshot}}">
{{end}}{{.Body}}</body>
</html>
`))

var markdownConverter = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

// HTML renders the audit result as a styled HTML page. The body is the
// Markdown report converted through goldmark, so both exports always carry
// the same content. A non-nil screenshot is embedded as a PNG data URI.
func HTML(result *audit.Result, displayName string, settings audit.Settings, screenshot []byte) ([]byte, error) {
	var body bytes.Buffer
	if err := markdownConverter.Convert(Markdown(result, displayName, settings), &body); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	data := struct {
		Name       string
		Body       template.HTML
		Screenshot string
	}{
		Name: displayName,
		Body: template.HTML(body.String()),
	}
	if settings.IncludeScreenshots && len(screenshot) > 0 {
		data.Screenshot = base64.StdEncoding.EncodeToString(screenshot)
	}

	var out bytes.Buffer
	if err := htmlShell.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return out.Bytes(), nil
}
