package px

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// PaletteSize is the number of palette entries, matching the index range a
// cell can hold.
const PaletteSize = MaxIndex + 1

// Palette maps the 64 cell indices to display colors. The buffer itself
// only ever stores indices; a palette is consulted at render and export
// time. Index 0 always renders fully transparent, whatever color it holds.
type Palette struct {
	colors [PaletteSize]colorful.Color
}

// DefaultPalette builds the stock palette: index 0 transparent, indices
// 1-8 a black-to-white gray ramp, and indices 9-63 eleven hue ramps of
// five shades each (two dark, one pure, two pale).
func DefaultPalette() *Palette {
	p := &Palette{}
	for i := 1; i <= 8; i++ {
		v := float64(i-1) / 7
		p.colors[i] = colorful.Color{R: v, G: v, B: v}
	}
	shades := [5][2]float64{ // {saturation, value}
		{1.0, 0.45},
		{1.0, 0.70},
		{1.0, 1.00},
		{0.55, 1.00},
		{0.30, 1.00},
	}
	for hue := 0; hue < 11; hue++ {
		h := float64(hue) * 360 / 11
		for k, sv := range shades {
			p.colors[9+hue*5+k] = colorful.Hsv(h, sv[0], sv[1])
		}
	}
	return p
}

// Color returns the display color for a palette index. Index 0 returns
// black; callers wanting transparency should special-case it or use RGBA.
func (p *Palette) Color(i uint8) colorful.Color {
	if i > MaxIndex {
		return colorful.Color{}
	}
	return p.colors[i]
}

// RGBA returns the 8-bit color for a palette index, with zero alpha for
// the transparent index.
func (p *Palette) RGBA(i uint8) color.RGBA {
	if i == uint8(Transparent) || i > MaxIndex {
		return color.RGBA{}
	}
	r, g, b := p.colors[i].Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// SetHex overrides a palette entry from a "#rrggbb" (or "#rgb") string.
// The transparent index cannot be overridden.
func (p *Palette) SetHex(i uint8, hex string) error {
	if i == uint8(Transparent) {
		return fmt.Errorf("px: palette index 0 is reserved for transparency")
	}
	if i > MaxIndex {
		return fmt.Errorf("px: palette index %d outside [1, %d]", i, MaxIndex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("px: palette index %d: %w", i, err)
	}
	p.colors[i] = c
	return nil
}
