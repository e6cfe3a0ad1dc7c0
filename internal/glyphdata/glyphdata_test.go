package glyphdata

import (
	"testing"
	"unicode"
)

var weights = []int{WeightLight, WeightRegular, WeightBold}

func TestRegistryComplete(t *testing.T) {
	// Default build compiles every combination in.
	for _, w := range weights {
		for _, h := range Heights {
			if TableFor(w, h) == nil {
				t.Errorf("TableFor(%d, %d) = nil, want registered table", w, h)
			}
		}
	}
}

func TestTableForUnknown(t *testing.T) {
	if got := TableFor(WeightRegular, 17); got != nil {
		t.Errorf("TableFor(regular, 17) = %v, want nil", got)
	}
	if got := TableFor(-1, 16); got != nil {
		t.Errorf("TableFor(-1, 16) = %v, want nil", got)
	}
	if got := TableFor(numWeights, 16); got != nil {
		t.Errorf("TableFor(%d, 16) = %v, want nil", numWeights, got)
	}
}

func TestTableInvariants(t *testing.T) {
	for _, w := range weights {
		for _, h := range Heights {
			tab := TableFor(w, h)
			if tab == nil {
				t.Fatalf("TableFor(%d, %d) = nil", w, h)
			}
			if tab.Width <= 0 {
				t.Errorf("table %d/%d: Width = %d, want > 0", w, h, tab.Width)
			}
			if tab.Ascent <= 0 || tab.Ascent >= h {
				t.Errorf("table %d/%d: Ascent = %d, want in (0, %d)", w, h, tab.Ascent, h)
			}
			for r := rune(0); r <= MaxCodePoint; r++ {
				grid := tab.Glyph(r)
				if unicode.IsControl(r) {
					if grid != nil {
						t.Errorf("table %d/%d: control %#U has a glyph", w, h, r)
					}
					continue
				}
				if grid == nil {
					t.Fatalf("table %d/%d: %#U has no glyph", w, h, r)
				}
				if len(grid) != h {
					t.Fatalf("table %d/%d: %#U has %d rows, want %d", w, h, r, len(grid), h)
				}
				for y, row := range grid {
					if len(row) != tab.Width {
						t.Fatalf("table %d/%d: %#U row %d has %d cols, want %d", w, h, r, y, len(row), tab.Width)
					}
				}
			}
		}
	}
}

func TestGlyphOutOfRange(t *testing.T) {
	tab := TableFor(WeightRegular, 16)
	if tab == nil {
		t.Fatal("regular/16 not registered")
	}
	for _, r := range []rune{-1, MaxCodePoint + 1, 0x1F600} {
		if g := tab.Glyph(r); g != nil {
			t.Errorf("Glyph(%#x) = non-nil, want nil", r)
		}
	}
}

func TestRegisterUnknownHeightPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register with unsupported height did not panic")
		}
	}()
	Register(WeightRegular, 17, &Table{})
}
