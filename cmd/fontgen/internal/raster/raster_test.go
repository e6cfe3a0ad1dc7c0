package raster

import (
	"errors"
	"testing"
	"unicode"

	"golang.org/x/image/font/gofont/gomono"
)

// asciiMax keeps tests independent of how much of Latin Extended-A a given
// test font covers; Go Mono certainly covers Basic Latin.
const asciiMax = 0x7E

func TestRasterize(t *testing.T) {
	sheet, err := Rasterize(gomono.TTF, Config{Height: 16, MaxCodePoint: asciiMax})
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}
	if sheet.Height != 16 {
		t.Errorf("Height = %d, want 16", sheet.Height)
	}
	if sheet.Width <= 0 || sheet.Width >= 16 {
		t.Errorf("Width = %d, want in (0, 16)", sheet.Width)
	}
	if sheet.Ascent <= 0 || sheet.Ascent >= 16 {
		t.Errorf("Ascent = %d, want in (0, 16)", sheet.Ascent)
	}

	for r := rune(0); r <= asciiMax; r++ {
		if unicode.IsControl(r) {
			if _, ok := sheet.Glyphs[r]; ok {
				t.Errorf("control %#U has a glyph", r)
			}
			continue
		}
		grid, ok := sheet.Glyphs[r]
		if !ok {
			t.Fatalf("%#U missing from sheet", r)
		}
		if len(grid) != 16 {
			t.Fatalf("%#U: %d rows, want 16", r, len(grid))
		}
		for y, row := range grid {
			if len(row) != sheet.Width {
				t.Fatalf("%#U row %d: %d cols, want %d", r, y, len(row), sheet.Width)
			}
		}
	}

	// 'A' has ink, space does not.
	if !hasInk(sheet.Glyphs['A']) {
		t.Error("'A' rasterized to an empty grid")
	}
	if hasInk(sheet.Glyphs[' ']) {
		t.Error("space rasterized with visible pixels")
	}
}

func TestRasterizeInvalidHeight(t *testing.T) {
	if _, err := Rasterize(gomono.TTF, Config{Height: 0}); err == nil {
		t.Error("Rasterize with height 0 succeeded, want error")
	}
}

func TestRasterizeGarbage(t *testing.T) {
	if _, err := Rasterize([]byte("definitely not a font"), Config{Height: 16}); err == nil {
		t.Error("Rasterize of garbage succeeded, want error")
	}
}

func TestMissingGlyphsError(t *testing.T) {
	e := &MissingGlyphsError{Runes: []rune{0x17F}}
	if e.Error() == "" {
		t.Error("empty error message")
	}
	var target *MissingGlyphsError
	if !errors.As(error(e), &target) {
		t.Error("errors.As failed for *MissingGlyphsError")
	}
}

func TestLighten(t *testing.T) {
	grid := [][]uint8{
		{255, 255, 255},
		{255, 255, 255},
		{255, 255, 255},
	}
	out := Lighten(grid)
	if out[1][1] != 255 {
		t.Errorf("interior pixel = %d, want 255 (all neighbors full)", out[1][1])
	}
	if out[0][0] >= 255 {
		t.Errorf("corner pixel = %d, want < 255 (edge thinning)", out[0][0])
	}
	for y := range grid {
		for x := range grid[y] {
			if out[y][x] > grid[y][x] {
				t.Errorf("pixel (%d,%d) brightened: %d > %d", x, y, out[y][x], grid[y][x])
			}
		}
	}

	empty := [][]uint8{{0, 0}, {0, 0}}
	for y, row := range Lighten(empty) {
		for x, v := range row {
			if v != 0 {
				t.Errorf("empty grid pixel (%d,%d) = %d, want 0", x, y, v)
			}
		}
	}
}

func TestLightenSheet(t *testing.T) {
	sheet, err := Rasterize(gomono.TTF, Config{Height: 16, MaxCodePoint: asciiMax})
	if err != nil {
		t.Fatal(err)
	}
	light := LightenSheet(sheet)
	if light.Width != sheet.Width || light.Height != sheet.Height || light.Ascent != sheet.Ascent {
		t.Errorf("LightenSheet changed dimensions: %+v vs %+v", light, sheet)
	}
	if len(light.Glyphs) != len(sheet.Glyphs) {
		t.Errorf("LightenSheet has %d glyphs, want %d", len(light.Glyphs), len(sheet.Glyphs))
	}
	// Lightening must not add ink anywhere.
	boldSum, lightSum := inkSum(sheet.Glyphs['B']), inkSum(light.Glyphs['B'])
	if lightSum >= boldSum {
		t.Errorf("light 'B' ink %d, want < regular ink %d", lightSum, boldSum)
	}
}

func hasInk(grid [][]uint8) bool {
	for _, row := range grid {
		for _, v := range row {
			if v > 0 {
				return true
			}
		}
	}
	return false
}

func inkSum(grid [][]uint8) int {
	sum := 0
	for _, row := range grid {
		for _, v := range row {
			sum += int(v)
		}
	}
	return sum
}
