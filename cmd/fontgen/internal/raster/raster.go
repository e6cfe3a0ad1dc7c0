// Package raster converts a mono-spaced TTF font into the fixed-size
// intensity grids consumed by the monoraster glyph tables.
//
// Rasterization uses golang.org/x/image/font/opentype; code point coverage
// and line metrics are read through go-text/typesetting. This is offline
// tooling: it allocates and uses floating point freely, neither of which the
// generated tables require at runtime.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"unicode"

	tsfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// MaxCodePoint is the last Unicode scalar value included in generated
// tables (Basic Latin + Latin-1 Supplement + Latin Extended-A).
const MaxCodePoint = 0x17F

// ErrNotMonospaced is returned when the font's glyph advances differ across
// the supported code points. The generated tables guarantee a single width
// per (weight, height) combination, so only mono-spaced fonts are usable.
var ErrNotMonospaced = errors.New("raster: font is not mono-spaced across the supported range")

// MissingGlyphsError is returned when the font's cmap lacks glyphs for part
// of the supported code point range.
type MissingGlyphsError struct {
	Runes []rune
}

func (e *MissingGlyphsError) Error() string {
	return fmt.Sprintf("raster: font is missing %d glyphs in the supported range (first: %#x)",
		len(e.Runes), e.Runes[0])
}

// Sheet holds every rasterized glyph of one font at one raster height.
type Sheet struct {
	// Height is the raster box height in pixels.
	Height int

	// Width is the mono-spaced advance width in pixels, shared by all
	// glyphs.
	Width int

	// Ascent is the baseline offset from the top of the box in pixels.
	Ascent int

	// Glyphs maps each supported code point to its Height x Width grid of
	// intensity bytes.
	Glyphs map[rune][][]uint8
}

// Config controls rasterization.
type Config struct {
	// Height is the raster box height in pixels.
	Height int

	// MaxCodePoint is the last code point to include. Zero means
	// MaxCodePoint (the full supported range).
	MaxCodePoint rune

	// Logger receives per-sheet diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// Rasterize renders every supported code point of the TTF font in data into
// a Sheet at cfg.Height.
//
// The font is scaled so that its hhea line box (ascender minus descender)
// spans exactly the raster height; glyphs then share a common baseline
// inside the box. Control characters are skipped. If the font lacks a glyph
// for any other code point in the supported range, Rasterize fails with a
// *MissingGlyphsError rather than emit a table that breaks the
// every-code-point-present guarantee.
func Rasterize(data []byte, cfg Config) (*Sheet, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Height <= 0 {
		return nil, fmt.Errorf("raster: invalid height %d", cfg.Height)
	}
	maxCP := cfg.MaxCodePoint
	if maxCP == 0 {
		maxCP = MaxCodePoint
	}

	tsFace, err := tsfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("raster: parsing font for coverage: %w", err)
	}
	ext, ok := tsFace.FontHExtents()
	if !ok {
		return nil, fmt.Errorf("raster: font has no horizontal line metrics")
	}

	lineUnits := float64(ext.Ascender) - float64(ext.Descender)
	if lineUnits <= 0 {
		return nil, fmt.Errorf("raster: degenerate line metrics (ascender %v, descender %v)",
			ext.Ascender, ext.Descender)
	}
	upem := float64(tsFace.Upem())
	pxPerUnit := float64(cfg.Height) / lineUnits
	ascent := int(math.Round(float64(ext.Ascender) * pxPerUnit))

	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("raster: parsing font for rasterization: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		// At 72 DPI one point is one pixel, so the size in points is the
		// em size that makes the line box cfg.Height pixels tall.
		Size:    upem * pxPerUnit,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: creating face: %w", err)
	}
	defer face.Close()

	width, err := monoAdvance(face, tsFace, maxCP)
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{
		Height: cfg.Height,
		Width:  width,
		Ascent: ascent,
		Glyphs: make(map[rune][][]uint8),
	}

	var missing []rune
	for r := rune(0); r <= maxCP; r++ {
		if unicode.IsControl(r) {
			continue
		}
		if _, ok := tsFace.NominalGlyph(r); !ok {
			missing = append(missing, r)
			continue
		}
		sheet.Glyphs[r] = drawGlyph(face, r, width, cfg.Height, ascent)
	}
	if len(missing) > 0 {
		return nil, &MissingGlyphsError{Runes: missing}
	}

	log.Debug("rasterized sheet",
		"height", cfg.Height, "width", width, "ascent", ascent, "glyphs", len(sheet.Glyphs))
	return sheet, nil
}

// monoAdvance returns the shared advance width in pixels, verifying the
// mono-spaced invariant across the whole supported range.
func monoAdvance(face font.Face, tsFace *tsfont.Face, maxCP rune) (int, error) {
	ref := fixed.Int26_6(-1)
	for r := rune(0); r <= maxCP; r++ {
		if unicode.IsControl(r) {
			continue
		}
		if _, ok := tsFace.NominalGlyph(r); !ok {
			continue
		}
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		if ref < 0 {
			ref = adv
		} else if adv != ref {
			return 0, ErrNotMonospaced
		}
	}
	if ref < 0 {
		return 0, fmt.Errorf("raster: font covers none of the supported range")
	}
	return ref.Round(), nil
}

// drawGlyph renders r into a height x width grid with the baseline at
// ascent pixels from the top.
func drawGlyph(face font.Face, r rune, width, height, ascent int) [][]uint8 {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(string(r))

	rows := make([][]uint8, height)
	for y := 0; y < height; y++ {
		row := make([]uint8, width)
		copy(row, dst.Pix[y*dst.Stride:y*dst.Stride+width])
		rows[y] = row
	}
	return rows
}

// Lighten derives a light-weight grid from a regular-weight one by
// softening each pixel toward the minimum of its 4-neighborhood. Stroke
// interiors keep full intensity while edges thin out, approximating a
// lighter cut of the same design. Used when no light TTF exists for the
// font family.
func Lighten(grid [][]uint8) [][]uint8 {
	h := len(grid)
	out := make([][]uint8, h)
	for y := range grid {
		w := len(grid[y])
		out[y] = make([]uint8, w)
		for x := range grid[y] {
			p := int(grid[y][x])
			m := neighbor(grid, x, y-1)
			if v := neighbor(grid, x, y+1); v < m {
				m = v
			}
			if v := neighbor(grid, x-1, y); v < m {
				m = v
			}
			if v := neighbor(grid, x+1, y); v < m {
				m = v
			}
			out[y][x] = uint8(p * (39015 + 102*m) / 65025)
		}
	}
	return out
}

// LightenSheet applies Lighten to every glyph of a sheet, returning a new
// sheet with the same dimensions.
func LightenSheet(s *Sheet) *Sheet {
	out := &Sheet{
		Height: s.Height,
		Width:  s.Width,
		Ascent: s.Ascent,
		Glyphs: make(map[rune][][]uint8, len(s.Glyphs)),
	}
	for r, g := range s.Glyphs {
		out.Glyphs[r] = Lighten(g)
	}
	return out
}

func neighbor(grid [][]uint8, x, y int) int {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return 0
	}
	return int(grid[y][x])
}
