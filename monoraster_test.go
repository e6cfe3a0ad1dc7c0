package monoraster

import (
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
)

var allWeights = []FontWeight{FontWeightLight, FontWeightRegular, FontWeightBold}

var allHeights = []RasterHeight{RasterHeight16, RasterHeight20, RasterHeight24, RasterHeight32}

func TestWidth(t *testing.T) {
	for _, w := range allWeights {
		for _, h := range allHeights {
			got := Width(w, h)
			if got <= 0 {
				t.Errorf("Width(%v, %v) = %d, want > 0", w, h, got)
			}
			if got >= h.Val() {
				t.Errorf("Width(%v, %v) = %d, want < height %d (mono fonts are narrower than tall)", w, h, got, h.Val())
			}
			if again := Width(w, h); again != got {
				t.Errorf("Width(%v, %v) not stable: %d then %d", w, h, got, again)
			}
		}
	}
}

func TestLookupSupportedRange(t *testing.T) {
	for _, w := range allWeights {
		for _, h := range allHeights {
			width := Width(w, h)
			for r := rune(0); r <= 0x17F; r++ {
				if unicode.IsControl(r) {
					continue
				}
				rc, ok := Lookup(r, w, h)
				if !ok {
					t.Fatalf("Lookup(%#U, %v, %v) absent, want present", r, w, h)
				}
				if rc.Height() != h.Val() {
					t.Fatalf("Lookup(%#U, %v, %v).Height() = %d, want %d", r, w, h, rc.Height(), h.Val())
				}
				if rc.Width() != width {
					t.Fatalf("Lookup(%#U, %v, %v).Width() = %d, want %d", r, w, h, rc.Width(), width)
				}
				rows := rc.Raster()
				if len(rows) != h.Val() {
					t.Fatalf("Lookup(%#U, %v, %v): %d rows, want %d", r, w, h, len(rows), h.Val())
				}
				for y, row := range rows {
					if len(row) != width {
						t.Fatalf("Lookup(%#U, %v, %v): row %d has %d cols, want %d", r, w, h, y, len(row), width)
					}
				}
			}
		}
	}
}

func TestLookupUnsupported(t *testing.T) {
	unsupported := []rune{
		0x0001,  // control character
		0x001F,  // control character
		0x007F,  // DEL
		0x009B,  // C1 control
		0x0180,  // first code point past the supported range
		0x0416,  // CYRILLIC CAPITAL LETTER ZHE
		0x1F600, // emoji
		-1,
	}
	for _, w := range allWeights {
		for _, h := range allHeights {
			for _, r := range unsupported {
				if _, ok := Lookup(r, w, h); ok {
					t.Errorf("Lookup(%#x, %v, %v) present, want absent", r, w, h)
				}
			}
		}
	}
}

func TestMonoSpacing(t *testing.T) {
	for _, w := range allWeights {
		for _, h := range allHeights {
			wide, ok := Lookup('A', w, h)
			if !ok {
				t.Fatalf("Lookup('A', %v, %v) absent", w, h)
			}
			narrow, ok := Lookup('i', w, h)
			if !ok {
				t.Fatalf("Lookup('i', %v, %v) absent", w, h)
			}
			if wide.Width() != narrow.Width() {
				t.Errorf("%v/%v: 'A' width %d != 'i' width %d", w, h, wide.Width(), narrow.Width())
			}
		}
	}
}

func TestLookupIdempotent(t *testing.T) {
	first, ok := Lookup('g', FontWeightBold, RasterHeight24)
	if !ok {
		t.Fatal("Lookup('g', Bold, 24px) absent")
	}
	second, ok := Lookup('g', FontWeightBold, RasterHeight24)
	if !ok {
		t.Fatal("Lookup('g', Bold, 24px) absent on second call")
	}
	if diff := cmp.Diff(first.Raster(), second.Raster()); diff != "" {
		t.Errorf("repeated lookups differ (-first +second):\n%s", diff)
	}
}

func TestLookupExample(t *testing.T) {
	rc, ok := Lookup('A', FontWeightRegular, RasterHeight16)
	if !ok {
		t.Fatal("Lookup('A', Regular, 16px) absent, want present")
	}
	if rc.Height() != 16 {
		t.Errorf("Height() = %d, want 16", rc.Height())
	}
	if want := Width(FontWeightRegular, RasterHeight16); rc.Width() != want {
		t.Errorf("Width() = %d, want %d", rc.Width(), want)
	}

	// 'A' must have visible pixels; the grid is not all background.
	visible := false
	for _, row := range rc.Raster() {
		for _, v := range row {
			if v > 0 {
				visible = true
			}
		}
	}
	if !visible {
		t.Error("Lookup('A', Regular, 16px) returned an empty grid")
	}

	if _, ok := Lookup('', FontWeightRegular, RasterHeight16); ok {
		t.Error("Lookup(U+0001, Regular, 16px) present, want absent (control character)")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{FontWeightLight.String(), "Light"},
		{FontWeightRegular.String(), "Regular"},
		{FontWeightBold.String(), "Bold"},
		{FontWeight(42).String(), "Unknown"},
		{RasterHeight16.String(), "16px"},
		{RasterHeight32.String(), "32px"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestRasterHeightVal(t *testing.T) {
	for _, h := range allHeights {
		if h.Val() != int(h) {
			t.Errorf("%v.Val() = %d, want %d", h, h.Val(), int(h))
		}
	}
}

func BenchmarkLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, ok := Lookup('A', FontWeightRegular, RasterHeight16); !ok {
			b.Fatal("lookup failed")
		}
	}
}
