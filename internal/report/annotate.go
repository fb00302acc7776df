package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vedux98/UX-Audit/internal/audit"
	"github.com/vedux98/UX-Audit/internal/figma"
)

var severityColors = map[audit.Severity]color.RGBA{
	audit.SeverityError:   {R: 220, G: 38, B: 38, A: 255},
	audit.SeverityWarning: {R: 234, G: 140, B: 8, A: 255},
	audit.SeverityInfo:    {R: 37, G: 99, B: 235, A: 255},
}

// Annotate draws a box and severity label on a frame capture for every
// issue that references a node inside the frame. The capture is assumed to
// show exactly the frame's bounding box; element coordinates are converted
// from document units to image pixels by the ratio of the two. The result
// is encoded as PNG.
func Annotate(capture image.Image, issues []audit.Issue, doc *figma.Document, frame *figma.Node) ([]byte, error) {
	rgba := toRGBA(capture)

	imgBounds := capture.Bounds()
	scaleX, scaleY := 1.0, 1.0
	if frame.Bounds.Width > 0 {
		scaleX = float64(imgBounds.Dx()) / frame.Bounds.Width
	}
	if frame.Bounds.Height > 0 {
		scaleY = float64(imgBounds.Dy()) / frame.Bounds.Height
	}

	for _, issue := range issues {
		if issue.Node == nil {
			continue
		}
		node := doc.Node(issue.Node.ID)
		if node == nil {
			continue
		}
		x := int((node.Bounds.X - frame.Bounds.X) * scaleX)
		y := int((node.Bounds.Y - frame.Bounds.Y) * scaleY)
		w := int(node.Bounds.Width * scaleX)
		h := int(node.Bounds.Height * scaleY)

		c := severityColors[issue.Severity]
		drawBox(rgba, x, y, x+w, y+h, c)
		drawLabel(rgba, string(issue.Severity), x+w/2, y+h/2, c)
	}

	var out bytes.Buffer
	if err := png.Encode(&out, rgba); err != nil {
		return nil, fmt.Errorf("annotate capture: %w", err)
	}
	return out.Bytes(), nil
}

func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

// drawBox draws a rectangle outline clamped to the image bounds.
func drawBox(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

// drawLabel draws centered text with a white outline so it stays readable
// on any fill.
func drawLabel(img *image.RGBA, text string, x, y int, c color.Color) {
	// basicfont.Face7x13 glyphs are 7px wide and 13px tall.
	offsetX := x - len(text)*7/2
	offsetY := y + 13/2

	outline := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(img, text, offsetX+dx, offsetY+dy, outline)
		}
	}
	drawString(img, text, offsetX, offsetY, c)
}

func drawString(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(text)
}
