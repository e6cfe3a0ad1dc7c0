package gen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/gogpu/monoraster/cmd/fontgen/internal/raster"
)

func testSheet() *raster.Sheet {
	return &raster.Sheet{
		Height: 2,
		Width:  2,
		Ascent: 1,
		Glyphs: map[rune][][]uint8{
			' ': {{0, 0}, {0, 0}},
			'A': {{255, 0}, {0, 128}},
		},
	}
}

func TestFile(t *testing.T) {
	src, err := File(Params{
		Package:   "glyphdata",
		TagPrefix: "monoraster",
		Weight:    "bold",
		FontName:  "Test Mono",
		Sheet:     testSheet(),
	})
	if err != nil {
		t.Fatalf("File error: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		`// Code generated by fontgen from "Test Mono"; DO NOT EDIT.`,
		"//go:build !monoraster_nobold && !monoraster_nosize2",
		"package glyphdata",
		"var bold2 = Table{",
		"Width:  2,",
		"Ascent: 1,",
		"// U+0041 LATIN CAPITAL LETTER A",
		"0x41: {",
		"{255, 0},",
		"func init() { Register(WeightBold, 2, &bold2) }",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q\n%s", want, out)
		}
	}

	// The output must be valid Go.
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "bold_2.go", src, parser.ParseComments); err != nil {
		t.Errorf("generated source does not parse: %v", err)
	}
}

func TestFileName(t *testing.T) {
	p := Params{Weight: "light", Sheet: testSheet()}
	if got, want := p.FileName(), "light_2.go"; got != want {
		t.Errorf("FileName() = %q, want %q", got, want)
	}
}

func TestFileUnknownWeight(t *testing.T) {
	_, err := File(Params{Weight: "heavy", Sheet: testSheet()})
	if err == nil {
		t.Error("File with unknown weight succeeded, want error")
	}
}

func TestFileEmptySheet(t *testing.T) {
	_, err := File(Params{Weight: "bold", Sheet: &raster.Sheet{Height: 2}})
	if err == nil {
		t.Error("File with empty sheet succeeded, want error")
	}
}
