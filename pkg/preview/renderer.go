// Package preview draws a PNG card describing the placeholder layout: the
// output directories, the frame naming convention, and how the scroll
// segments split the sequence. It is a reference for whoever replaces the
// placeholders with real artwork.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/xob0t/scrollgen/pkg/generator"
)

// Options controls the card size and font.
type Options struct {
	Width    int    // Pixel width (default: 960)
	Height   int    // Pixel height (default: 540)
	FontPath string // Optional TTF/OTF; empty uses Go Regular
}

const (
	background = "#1c2329"
	foreground = "#e8e8e8"
	muted      = "#8a98a4"
	padding    = 32
	bodySize   = 18.0
	titleSize  = 30.0
	barHeight  = 36
)

// Renderer composes the preview card.
type Renderer struct {
	fonts *FontManager
}

// NewRenderer creates a renderer. Font warnings are printed to stderr.
func NewRenderer(fontPath string) (*Renderer, error) {
	fm, err := NewFontManager(fontPath, os.Stderr)
	if err != nil {
		return nil, err
	}
	return &Renderer{fonts: fm}, nil
}

// Close releases the renderer's font faces.
func (r *Renderer) Close() error {
	return r.fonts.Close()
}

// Render draws the card for m in layers: background, title, text lines,
// then the segment bar along the bottom edge.
func (r *Renderer) Render(m generator.Manifest, width, height int) (*image.RGBA, error) {
	if width <= 0 {
		width = 960
	}
	if height <= 0 {
		height = 540
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{generator.ParseHexRGBA(background)}, image.Point{}, draw.Src)

	titleFace, err := r.fonts.Face(titleSize)
	if err != nil {
		return nil, err
	}
	bodyFace, err := r.fonts.Face(bodySize)
	if err != nil {
		return nil, err
	}

	maxW := width - 2*padding
	y := padding

	for _, line := range wrapText("Scroll sequence placeholders", maxW, titleFace) {
		y += int(titleSize * 1.3)
		drawString(img, line, padding, y, generator.ParseHexRGBA(foreground), titleFace)
	}
	bodyPt := float64(bodySize)
	y += int(bodyPt * 0.6)

	for _, text := range cardLines(m) {
		col := generator.ParseHexRGBA(foreground)
		if strings.HasPrefix(text, "  ") {
			col = generator.ParseHexRGBA(muted)
		}
		for _, line := range wrapText(text, maxW, bodyFace) {
			y += int(bodySize * 1.5)
			if y > height-barHeight-padding {
				break
			}
			drawString(img, line, padding, y, col, bodyFace)
		}
	}

	drawSegmentBar(img, m, image.Rect(padding, height-padding-barHeight, width-padding, height-padding))

	return img, nil
}

func cardLines(m generator.Manifest) []string {
	lines := []string{
		fmt.Sprintf("%d frames in %s", m.TotalFrames, m.BasePath),
		fmt.Sprintf("  %s … %s", m.Frames[0].Filename, m.Frames[len(m.Frames)-1].Filename),
		fmt.Sprintf("Fallbacks: %s, %s", m.Loading, m.Missing),
		"Segments:",
	}
	for _, s := range m.Segments {
		lines = append(lines, fmt.Sprintf("  %-8s frames %d-%d, scroll %.0f%%-%.0f%%",
			s.Name, s.FirstFrame, s.LastFrame, s.ScrollStart*100, s.ScrollEnd*100))
	}
	return lines
}

// drawSegmentBar fills rect with one column band per frame, colored by the
// frame's segment.
func drawSegmentBar(img *image.RGBA, m generator.Manifest, rect image.Rectangle) {
	n := len(m.Frames)
	if n == 0 || rect.Dx() <= 0 {
		return
	}
	colors := make(map[string]color.RGBA, len(m.Segments))
	for _, s := range m.Segments {
		colors[s.Name] = generator.ParseHexRGBA(s.Color)
	}
	for i, f := range m.Frames {
		x0 := rect.Min.X + i*rect.Dx()/n
		x1 := rect.Min.X + (i+1)*rect.Dx()/n
		band := image.Rect(x0, rect.Min.Y, x1, rect.Max.Y)
		draw.Draw(img, band, &image.Uniform{colors[f.Segment]}, image.Point{}, draw.Src)
	}
}

// wrapText breaks text into lines that each fit within maxWidth pixels.
func wrapText(text string, maxWidth int, face font.Face) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	// Leading indentation survives wrapping on the first line only.
	indent := text[:len(text)-len(strings.TrimLeft(text, " "))]
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := indent + words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate).Ceil() > maxWidth {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	return append(lines, current)
}

func drawString(img *image.RGBA, text string, x, y int, col color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// SavePNG encodes img to a PNG file at path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return f.Close()
}

// Write renders the card for the current layout and saves it to path.
func Write(path string, opts Options) error {
	r, err := NewRenderer(opts.FontPath)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer r.Close()

	img, err := r.Render(generator.BuildManifest(), opts.Width, opts.Height)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return SavePNG(img, path)
}
