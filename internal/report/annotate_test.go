package report

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/vedux98/UX-Audit/internal/audit"
	"github.com/vedux98/UX-Audit/internal/figma"
)

func annotateFixture(t *testing.T) (*figma.Document, *figma.Node) {
	t.Helper()
	doc, err := figma.ParseDocument(strings.NewReader(`{
		"name": "fixture",
		"document": {"id": "0:0", "type": "DOCUMENT", "children": [
			{"id": "0:1", "type": "CANVAS", "name": "Page", "children": [
				{"id": "1:1", "type": "FRAME", "name": "Frame",
				 "absoluteBoundingBox": {"x": 0, "y": 0, "width": 100, "height": 100},
				 "children": [
					{"id": "1:2", "type": "TEXT", "name": "Label",
					 "absoluteBoundingBox": {"x": 10, "y": 10, "width": 40, "height": 20}}
				 ]}
			]}
		]}
	}`))
	if err != nil {
		t.Fatalf("fixture parse failed: %v", err)
	}
	return doc, doc.Node("1:1")
}

func TestAnnotate_DrawsIssueBox(t *testing.T) {
	doc, frame := annotateFixture(t)
	capture := image.NewRGBA(image.Rect(0, 0, 100, 100))

	issues := []audit.Issue{{
		Category: audit.CategoryAccessibility,
		Severity: audit.SeverityWarning,
		Title:    "Low contrast text",
		Node:     &audit.NodeRef{ID: "1:2", Name: "Label"},
	}}

	out, err := Annotate(capture, issues, doc, frame)
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}

	// The node's top-left corner pixel must carry the warning color.
	want := severityColors[audit.SeverityWarning]
	got := color.RGBAModel.Convert(img.At(10, 10)).(color.RGBA)
	if got != want {
		t.Errorf("pixel at box corner = %v, want %v", got, want)
	}
	// A pixel far from any issue stays untouched.
	empty := color.RGBAModel.Convert(img.At(90, 90)).(color.RGBA)
	if empty == want {
		t.Errorf("pixel outside the box carries the box color")
	}
}

func TestAnnotate_SkipsUnresolvableNodes(t *testing.T) {
	doc, frame := annotateFixture(t)
	capture := image.NewRGBA(image.Rect(0, 0, 100, 100))

	issues := []audit.Issue{
		{Title: "No node ref"},
		{Title: "Dangling ref", Node: &audit.NodeRef{ID: "99:99"}},
	}
	if _, err := Annotate(capture, issues, doc, frame); err != nil {
		t.Fatalf("Annotate must skip unresolvable issues, got: %v", err)
	}
}
