// color.go — color parsing and the colored-placeholder hook.
package generator

import (
	"crypto/rand"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor parses a color string. Accepts "#rrggbb", "random", or "".
// Empty string is treated as "random".
func ParseColor(s string) (r, g, b uint8, err error) {
	if s == "" || s == "random" {
		buf := make([]byte, 3)
		if _, err := rand.Read(buf); err != nil {
			return 0, 0, 0, fmt.Errorf("random color: %w", err)
		}
		return buf[0], buf[1], buf[2], nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q: expected 6-char hex", s)
	}

	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid red channel in %q: %w", s, err)
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid green channel in %q: %w", s, err)
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid blue channel in %q: %w", s, err)
	}

	return uint8(rv), uint8(gv), uint8(bv), nil
}

// ParseHexRGBA converts a "#rrggbb" string to color.RGBA.
// Returns white on any parse error.
func ParseHexRGBA(hex string) color.RGBA {
	r, g, b, err := ParseColor(hex)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return color.RGBA{r, g, b, 255}
}

// ColoredPayload is the hook for per-color placeholders. It validates c and
// returns the same payload as Payload regardless of the color: tinted
// placeholders are not implemented.
func ColoredPayload(c string) ([]byte, error) {
	if _, _, _, err := ParseColor(c); err != nil {
		return nil, err
	}
	return Payload(), nil
}
