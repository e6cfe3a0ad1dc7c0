// Package glyphdata holds the pre-rasterized glyph tables consumed by the
// monoraster package.
//
// Each (weight, height) combination lives in its own generated file
// (e.g. regular_16.go) produced by cmd/fontgen. A generated file declares a
// single Table and registers it from an init function. Excluding a file via
// its build tag (e.g. -tags monoraster_nobold,monoraster_nosize32) removes
// the table and all of its data from the binary; lookups for that
// combination then report absence.
//
// All tables are immutable after init and safe for unsynchronized concurrent
// reads.
package glyphdata

// MaxCodePoint is the last Unicode scalar value any table can hold a glyph
// for. Tables cover Basic Latin, Latin-1 Supplement, and Latin Extended-A;
// control characters have no glyph.
const MaxCodePoint = 0x17F

// numSlots is the size of the direct-indexed glyph array.
const numSlots = MaxCodePoint + 1

// Weight indices. These mirror the public monoraster.FontWeight constants;
// generated files refer to them directly.
const (
	WeightLight = iota
	WeightRegular
	WeightBold
	numWeights
)

// Heights lists the raster heights tables may be generated for, in
// registry order.
var Heights = [...]int{16, 20, 24, 32}

// Table is one immutable glyph table for a single (weight, height)
// combination.
type Table struct {
	// Width is the advance width in pixels shared by every glyph in the
	// table (mono-spaced).
	Width int

	// Ascent is the baseline offset from the top of the raster box, in
	// pixels. It is not needed for plain lookups but lets adapters such as
	// fontface position glyphs on a baseline.
	Ascent int

	// Glyphs is indexed directly by code point. A nil entry means the code
	// point has no glyph (control characters). Every non-nil entry has
	// exactly height rows of exactly Width intensity bytes.
	Glyphs *[numSlots][][]uint8
}

// Glyph returns the intensity grid for r, or nil if the table has no glyph
// for it. The returned rows are shared static data and must not be modified.
func (t *Table) Glyph(r rune) [][]uint8 {
	if r < 0 || r > MaxCodePoint {
		return nil
	}
	return t.Glyphs[r]
}

// registry holds the tables compiled into this build, indexed by weight and
// by position of the height in Heights. Slots stay nil for combinations
// excluded via build tags. Written only from generated init functions,
// read-only afterwards.
var registry [numWeights][len(Heights)]*Table

// Register records t as the table for the given weight index and pixel
// height. It is called from the init functions of generated table files and
// must not be called after program initialization.
func Register(weight, height int, t *Table) {
	hi := heightIndex(height)
	if hi < 0 {
		panic("glyphdata: unsupported raster height")
	}
	registry[weight][hi] = t
}

// TableFor returns the registered table for the given weight index and pixel
// height, or nil if the combination was not compiled in.
func TableFor(weight, height int) *Table {
	if weight < 0 || weight >= numWeights {
		return nil
	}
	hi := heightIndex(height)
	if hi < 0 {
		return nil
	}
	return registry[weight][hi]
}

func heightIndex(height int) int {
	for i, h := range Heights {
		if h == height {
			return i
		}
	}
	return -1
}
