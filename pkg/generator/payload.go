// payload.go — the embedded placeholder image.
package generator

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/jpeg"
)

// placeholderJPEG is a 1x1 grayscale baseline JPEG
// (SOI, APP0/JFIF, DQT, SOF0, DHT x2, SOS, EOI).
//
//go:embed placeholder.jpg
var placeholderJPEG string

// Payload returns the bytes written to every output file. Each call returns
// a fresh copy, so callers cannot alter what later writes see.
func Payload() []byte {
	return []byte(placeholderJPEG)
}

// CheckPayload confirms the embedded payload parses as a 1x1 JPEG.
func CheckPayload() error {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(Payload()))
	if err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	if cfg.Width != 1 || cfg.Height != 1 {
		return fmt.Errorf("payload is %dx%d, want 1x1", cfg.Width, cfg.Height)
	}
	return nil
}
