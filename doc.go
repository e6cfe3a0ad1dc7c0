// Package monoraster provides constant-time lookup of pre-rasterized,
// anti-aliased glyph bitmaps for a mono-spaced font, indexed by font weight
// and pixel height.
//
// # Overview
//
// monoraster is aimed at environments that cannot rasterize vector fonts at
// runtime: early boot code, kernels, firmware, framebuffer consoles. Every
// glyph is baked into the binary as a grid of intensity bytes (0 =
// background, 255 = full coverage), one byte per pixel rather than one bit,
// which gives smooth anti-aliased edges instead of the blocky look of legacy
// bitmap fonts.
//
// The lookup path performs no allocation, no floating point math, and no
// I/O. All data is immutable and statically initialized, so any number of
// goroutines may call Lookup concurrently without synchronization.
//
// # Quick Start
//
//	w := monoraster.Width(monoraster.FontWeightRegular, monoraster.RasterHeight16)
//	fmt.Printf("each char is %dpx wide\n", w)
//
//	rc, ok := monoraster.Lookup('A', monoraster.FontWeightRegular, monoraster.RasterHeight16)
//	if !ok {
//	    // unsupported code point; fall back to e.g. the space glyph
//	}
//	for _, row := range rc.Raster() {
//	    for _, intensity := range row {
//	        // intensity is 0..255
//	    }
//	}
//
// # Supported Code Points
//
// The tables cover Basic Latin, Latin-1 Supplement, and Latin Extended-A:
// Unicode scalar values 0x00 through 0x17F, excluding control characters.
// Lookup reports absence for everything else; it never substitutes a
// placeholder glyph on its own.
//
// # Build-Time Selection
//
// All weight and height combinations are compiled in by default. Individual
// weights or heights can be stripped from the binary with opt-out build
// tags, e.g.:
//
//	go build -tags monoraster_nolight,monoraster_nosize32
//
// Lookup and Width report absence (false, respectively 0) for combinations
// that were stripped.
//
// # Glyph Data
//
// The tables are generated offline by cmd/fontgen from the DejaVu Sans Mono
// family (Bitstream Vera license). They are not constructed, parsed, or
// modified at runtime.
//
// # Drawing
//
// The fontface subpackage adapts a (weight, height) table to
// golang.org/x/image/font.Face, so the tables can be used with font.Drawer
// on any draw.Image.
package monoraster
