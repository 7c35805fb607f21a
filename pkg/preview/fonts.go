// fonts.go - Font loading with custom TTF support and embedded fallback font.
// Uses golang.org/x/image/font for OpenType rendering. Defaults to Go Regular
// when no custom font is given or the custom font cannot be read.
package preview

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager handles font loading with fallback.
type FontManager struct {
	parsed *opentype.Font
	faces  map[float64]font.Face
}

// NewFontManager creates a font manager for customPath. Read failures fall
// back to the embedded Go font and print a warning to warn; a file that
// reads but does not parse is an error.
func NewFontManager(customPath string, warn io.Writer) (*FontManager, error) {
	var fontData []byte

	if customPath != "" {
		b, err := os.ReadFile(customPath)
		if err != nil {
			if warn != nil {
				fmt.Fprintf(warn, "Warning: could not load font %q, using default\n", customPath)
			}
		} else {
			fontData = b
		}
	}

	if fontData == nil {
		fontData = goregular.TTF
	}

	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	return &FontManager{parsed: parsed, faces: make(map[float64]font.Face)}, nil
}

// Face returns a font.Face at size points and 72 DPI. Faces are cached per size.
func (fm *FontManager) Face(size float64) (font.Face, error) {
	if face, ok := fm.faces[size]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	fm.faces[size] = face
	return face, nil
}

// Close releases every cached face.
func (fm *FontManager) Close() error {
	for size, face := range fm.faces {
		if err := face.Close(); err != nil {
			return err
		}
		delete(fm.faces, size)
	}
	return nil
}
