package cascade

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/cascade/pkg/cascade/constants"
)

// Colors defines the two colors a cascade menu is drawn with.
type Colors struct {
	Background color.NRGBA // Surface behind all rows
	Content    color.NRGBA // Labels and icons
}

// DefaultColors returns a white surface with near-black content.
func DefaultColors() Colors {
	return Colors{
		Background: HexToColor(0xFFFFFF),
		Content:    HexToColor(0x1C1B1F),
	}
}

// HeaderContent returns the content color at medium alpha, used for the
// back header so it reads as secondary to the item rows.
func (c Colors) HeaderContent() color.NRGBA {
	return WithAlpha(c.Content, constants.MediumAlpha)
}

// HexToColor converts a 0xRRGGBB value into an opaque color.
func HexToColor(hex uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// ParseHexColor accepts "#RRGGBB" or "RRGGBB".
func ParseHexColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return HexToColor(uint32(v)), nil
}

// WithAlpha returns c with its alpha channel scaled by alpha (0..1).
func WithAlpha(c color.NRGBA, alpha float32) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float32(c.A)*alpha + 0.5)
	return c
}
