package monoraster

import (
	"strconv"

	"github.com/gogpu/monoraster/internal/glyphdata"
)

// FontWeight selects one of the pre-rasterized weights of the font.
type FontWeight int

const (
	// FontWeightLight is the light weight.
	FontWeightLight FontWeight = iota

	// FontWeightRegular is the regular (book) weight.
	FontWeightRegular

	// FontWeightBold is the bold weight.
	FontWeightBold
)

// String returns the weight name.
func (w FontWeight) String() string {
	switch w {
	case FontWeightLight:
		return "Light"
	case FontWeightRegular:
		return "Regular"
	case FontWeightBold:
		return "Bold"
	default:
		return "Unknown"
	}
}

// RasterHeight is the height in pixels of the raster box each glyph is
// rendered into. The box includes vertical padding so that glyphs with
// ascenders and descenders (e.g. Ä, y) align on a common baseline; the
// visible glyph is therefore slightly smaller than the box.
type RasterHeight int

const (
	// RasterHeight16 is a 16px raster box.
	RasterHeight16 RasterHeight = 16

	// RasterHeight20 is a 20px raster box.
	RasterHeight20 RasterHeight = 20

	// RasterHeight24 is a 24px raster box.
	RasterHeight24 RasterHeight = 24

	// RasterHeight32 is a 32px raster box.
	RasterHeight32 RasterHeight = 32
)

// Val returns the height in pixels.
func (h RasterHeight) Val() int { return int(h) }

// String returns the height as a pixel count, e.g. "16px".
func (h RasterHeight) String() string {
	return strconv.Itoa(int(h)) + "px"
}

// RasterizedChar is a read-only view of one pre-rasterized glyph: the
// intensity grid plus its dimensions.
type RasterizedChar struct {
	raster [][]uint8
	width  int
	height int
}

// Raster returns the glyph's intensity grid: Height rows of Width bytes,
// each byte the coverage of one pixel from 0 (background) to 255 (full).
// The rows reference static table data shared by every caller and must be
// treated as read-only.
func (c RasterizedChar) Raster() [][]uint8 { return c.raster }

// Width returns the glyph's width in pixels. It is identical for every
// glyph of the same (weight, height) combination.
func (c RasterizedChar) Width() int { return c.width }

// Height returns the raster box height in pixels.
func (c RasterizedChar) Height() int { return c.height }

// Lookup returns the pre-rasterized glyph for r at the given weight and
// height.
//
// The second return value is false when r is not covered by the font
// (anything outside Unicode 0x00-0x17F, and all control characters) or when
// the (weight, height) combination was excluded from the build. Callers
// that want a visible placeholder can fall back to Lookup(' ', ...).
//
// Lookup is a pure function of its inputs and the data compiled into the
// binary: it allocates nothing and is safe for concurrent use.
func Lookup(r rune, weight FontWeight, height RasterHeight) (RasterizedChar, bool) {
	t := glyphdata.TableFor(int(weight), int(height))
	if t == nil {
		return RasterizedChar{}, false
	}
	g := t.Glyph(r)
	if g == nil {
		return RasterizedChar{}, false
	}
	return RasterizedChar{raster: g, width: t.Width, height: int(height)}, true
}

// Width returns the advance width in pixels shared by every glyph of the
// given (weight, height) combination, the mono-spaced guarantee of the font.
// It is a few percent smaller than the height.
//
// Width returns 0 only if the combination was excluded from the build via
// its opt-out build tag.
func Width(weight FontWeight, height RasterHeight) int {
	t := glyphdata.TableFor(int(weight), int(height))
	if t == nil {
		return 0
	}
	return t.Width
}
