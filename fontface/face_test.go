package fontface

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/monoraster"
)

func TestNew(t *testing.T) {
	f, err := New(monoraster.FontWeightRegular, monoraster.RasterHeight16)
	if err != nil {
		t.Fatalf("New(Regular, 16px) error: %v", err)
	}
	if f.Weight() != monoraster.FontWeightRegular {
		t.Errorf("Weight() = %v, want Regular", f.Weight())
	}
	if f.Height() != monoraster.RasterHeight16 {
		t.Errorf("Height() = %v, want 16px", f.Height())
	}
}

func TestNewUnknownCombination(t *testing.T) {
	_, err := New(monoraster.FontWeightRegular, monoraster.RasterHeight(17))
	if !errors.Is(err, ErrUnknownCombination) {
		t.Errorf("New(Regular, 17) error = %v, want ErrUnknownCombination", err)
	}
}

func TestMetrics(t *testing.T) {
	f, err := New(monoraster.FontWeightBold, monoraster.RasterHeight32)
	if err != nil {
		t.Fatal(err)
	}
	m := f.Metrics()
	if got := m.Ascent + m.Descent; got != fixed.I(32) {
		t.Errorf("Ascent + Descent = %v, want %v", got, fixed.I(32))
	}
	if m.Height != fixed.I(32) {
		t.Errorf("Height = %v, want %v", m.Height, fixed.I(32))
	}
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Ascent = %v, Descent = %v, want both > 0", m.Ascent, m.Descent)
	}
}

func TestGlyph(t *testing.T) {
	f, err := New(monoraster.FontWeightRegular, monoraster.RasterHeight16)
	if err != nil {
		t.Fatal(err)
	}
	w := monoraster.Width(monoraster.FontWeightRegular, monoraster.RasterHeight16)

	dot := fixed.P(10, 20)
	dr, mask, maskp, advance, ok := f.Glyph(dot, 'A')
	if !ok {
		t.Fatal("Glyph('A') not ok")
	}
	if advance != fixed.I(w) {
		t.Errorf("advance = %v, want %v", advance, fixed.I(w))
	}
	if dr.Dx() != w || dr.Dy() != 16 {
		t.Errorf("dr = %v, want %dx%d box", dr, w, 16)
	}
	if dr.Min.X != 10 {
		t.Errorf("dr.Min.X = %d, want 10", dr.Min.X)
	}
	if dr.Max.Y <= 20 || dr.Min.Y >= 20 {
		t.Errorf("dr = %v does not straddle the baseline y=20", dr)
	}
	if maskp != (image.Point{}) {
		t.Errorf("maskp = %v, want origin", maskp)
	}
	alpha, isAlpha := mask.(*image.Alpha)
	if !isAlpha {
		t.Fatalf("mask is %T, want *image.Alpha", mask)
	}
	if got := alpha.Bounds(); got != image.Rect(0, 0, w, 16) {
		t.Errorf("mask bounds = %v, want %v", got, image.Rect(0, 0, w, 16))
	}

	if _, _, _, _, ok := f.Glyph(dot, 'Ж'); ok {
		t.Error("Glyph('Ж') ok, want absent")
	}
}

func TestGlyphAdvanceAndKern(t *testing.T) {
	f, err := New(monoraster.FontWeightLight, monoraster.RasterHeight20)
	if err != nil {
		t.Fatal(err)
	}
	w := monoraster.Width(monoraster.FontWeightLight, monoraster.RasterHeight20)

	for _, r := range []rune{'A', 'i', ' ', 'Ä'} {
		adv, ok := f.GlyphAdvance(r)
		if !ok {
			t.Fatalf("GlyphAdvance(%q) not ok", r)
		}
		if adv != fixed.I(w) {
			t.Errorf("GlyphAdvance(%q) = %v, want %v (mono-spaced)", r, adv, fixed.I(w))
		}
	}
	if _, ok := f.GlyphAdvance(0x1F600); ok {
		t.Error("GlyphAdvance(emoji) ok, want absent")
	}
	if k := f.Kern('A', 'V'); k != 0 {
		t.Errorf("Kern('A', 'V') = %v, want 0", k)
	}
}

func TestDrawString(t *testing.T) {
	f, err := New(monoraster.FontWeightRegular, monoraster.RasterHeight16)
	if err != nil {
		t.Fatal(err)
	}
	w := monoraster.Width(monoraster.FontWeightRegular, monoraster.RasterHeight16)

	const s = "Hello"
	dst := image.NewGray(image.Rect(0, 0, w*len(s)+4, 20))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: f,
		Dot:  fixed.P(2, 14),
	}
	if adv := d.MeasureString(s); adv != fixed.I(w*len(s)) {
		t.Errorf("MeasureString(%q) = %v, want %v", s, adv, fixed.I(w*len(s)))
	}
	d.DrawString(s)
	if d.Dot.X != fixed.I(2+w*len(s)) {
		t.Errorf("Dot.X after draw = %v, want %v", d.Dot.X, fixed.I(2+w*len(s)))
	}

	drawn := false
	for _, v := range dst.Pix {
		if v > 0 {
			drawn = true
			break
		}
	}
	if !drawn {
		t.Error("DrawString produced no visible pixels")
	}
}
