// Package fontface adapts the monoraster glyph tables to the
// golang.org/x/image/font.Face interface, so pre-rasterized text can be
// drawn onto any draw.Image with font.Drawer.
//
// Unlike the monoraster lookup path, creating a Face allocates: every glyph
// grid is flattened once into an image.Alpha mask. The resulting Face is
// immutable and safe for concurrent use.
package fontface

import (
	"errors"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/monoraster"
	"github.com/gogpu/monoraster/internal/glyphdata"
)

// ErrUnknownCombination is returned by New when the requested
// (weight, height) combination was excluded from the build.
var ErrUnknownCombination = errors.New("fontface: weight/height combination not compiled in")

// Face exposes one (weight, height) glyph table as a font.Face.
type Face struct {
	weight monoraster.FontWeight
	height monoraster.RasterHeight
	width  int
	ascent int
	masks  map[rune]*image.Alpha
}

// Face implements font.Face.
var _ font.Face = (*Face)(nil)

// New returns a font.Face backed by the glyph table for the given weight
// and height. It returns ErrUnknownCombination if that table was stripped
// from the build via its opt-out build tag.
func New(weight monoraster.FontWeight, height monoraster.RasterHeight) (*Face, error) {
	t := glyphdata.TableFor(int(weight), int(height))
	if t == nil {
		return nil, ErrUnknownCombination
	}

	h := int(height)
	masks := make(map[rune]*image.Alpha)
	for r := rune(0); r <= glyphdata.MaxCodePoint; r++ {
		grid := t.Glyph(r)
		if grid == nil {
			continue
		}
		pix := make([]uint8, 0, h*t.Width)
		for _, row := range grid {
			pix = append(pix, row...)
		}
		masks[r] = &image.Alpha{
			Pix:    pix,
			Stride: t.Width,
			Rect:   image.Rect(0, 0, t.Width, h),
		}
	}

	return &Face{
		weight: weight,
		height: height,
		width:  t.Width,
		ascent: t.Ascent,
		masks:  masks,
	}, nil
}

// Weight returns the font weight this face was created for.
func (f *Face) Weight() monoraster.FontWeight { return f.weight }

// Height returns the raster height this face was created for.
func (f *Face) Height() monoraster.RasterHeight { return f.height }

// Close implements font.Face. It is a no-op; a Face holds no resources
// beyond static glyph data.
func (f *Face) Close() error { return nil }

// Glyph implements font.Face.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	m, ok := f.masks[r]
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Round()
	y := dot.Y.Round()
	dr = image.Rect(x, y-f.ascent, x+f.width, y-f.ascent+int(f.height))
	return dr, m, image.Point{}, fixed.I(f.width), true
}

// GlyphBounds implements font.Face.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	if _, ok := f.masks[r]; !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds = fixed.R(0, -f.ascent, f.width, int(f.height)-f.ascent)
	return bounds, fixed.I(f.width), true
}

// GlyphAdvance implements font.Face. The advance is the same for every
// supported rune (mono-spaced).
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	if _, ok := f.masks[r]; !ok {
		return 0, false
	}
	return fixed.I(f.width), true
}

// Kern implements font.Face. A mono-spaced bitmap font has no kerning.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics implements font.Face. XHeight and CapHeight are approximations;
// the glyph tables record only the raster box and baseline.
func (f *Face) Metrics() font.Metrics {
	descent := int(f.height) - f.ascent
	return font.Metrics{
		Height:     fixed.I(int(f.height)),
		Ascent:     fixed.I(f.ascent),
		Descent:    fixed.I(descent),
		XHeight:    fixed.I(f.ascent / 2),
		CapHeight:  fixed.I(f.ascent * 7 / 10),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}
