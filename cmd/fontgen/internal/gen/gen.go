// Package gen turns rasterized glyph sheets into the Go source files of the
// glyphdata package.
package gen

import (
	"fmt"
	"go/format"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/monoraster/cmd/fontgen/internal/raster"
)

// Params describes one table file to generate.
type Params struct {
	// Package is the target package name, normally "glyphdata".
	Package string

	// TagPrefix is the build tag prefix, normally "monoraster". The emitted
	// file carries the constraint
	// !<prefix>_no<weight> && !<prefix>_nosize<height>.
	TagPrefix string

	// Weight is the lower-case weight name: "light", "regular" or "bold".
	// It selects the variable name (e.g. bold16), the Weight* registry
	// constant, and the build tag.
	Weight string

	// FontName names the source font in the generated header, e.g.
	// "DejaVu Sans Mono".
	FontName string

	// Sheet holds the rasterized glyphs.
	Sheet *raster.Sheet
}

// FileName returns the name of the generated file for p, e.g. "bold_16.go".
func (p Params) FileName() string {
	return fmt.Sprintf("%s_%d.go", p.Weight, p.Sheet.Height)
}

// File renders the generated Go source for p, formatted with go/format.
func File(p Params) ([]byte, error) {
	weightConst, ok := weightConsts[p.Weight]
	if !ok {
		return nil, fmt.Errorf("gen: unknown weight %q", p.Weight)
	}
	if p.Sheet == nil || len(p.Sheet.Glyphs) == 0 {
		return nil, fmt.Errorf("gen: empty sheet for %s/%d", p.Weight, heightOf(p))
	}

	s := p.Sheet
	varName := fmt.Sprintf("%s%d", p.Weight, s.Height)

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by fontgen from %q; DO NOT EDIT.\n\n", p.FontName)
	fmt.Fprintf(&b, "//go:build !%s_no%s && !%s_nosize%d\n\n", p.TagPrefix, p.Weight, p.TagPrefix, s.Height)
	fmt.Fprintf(&b, "package %s\n\n", p.Package)
	fmt.Fprintf(&b, "// %s holds the %s weight at a %dpx raster height.\n", varName, p.Weight, s.Height)
	fmt.Fprintf(&b, "// Width: %dpx, baseline at %dpx from the top of the box.\n", s.Width, s.Ascent)
	fmt.Fprintf(&b, "var %s = Table{\n", varName)
	fmt.Fprintf(&b, "\tWidth:  %d,\n", s.Width)
	fmt.Fprintf(&b, "\tAscent: %d,\n", s.Ascent)
	b.WriteString("\tGlyphs: &[numSlots][][]uint8{\n")

	for r := rune(0); r <= raster.MaxCodePoint; r++ {
		grid, ok := s.Glyphs[r]
		if !ok {
			continue
		}
		name := runenames.Name(r)
		if name == "" {
			name = fmt.Sprintf("%#U", r)
		}
		fmt.Fprintf(&b, "\t\t// %s %s\n", fmt.Sprintf("U+%04X", r), name)
		fmt.Fprintf(&b, "\t\t%#x: {\n", r)
		for _, row := range grid {
			b.WriteString("\t\t\t{")
			for i, v := range row {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%d", v)
			}
			b.WriteString("},\n")
		}
		b.WriteString("\t\t},\n")
	}

	b.WriteString("\t},\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "func init() { Register(%s, %d, &%s) }\n", weightConst, s.Height, varName)

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("gen: formatting %s: %w", p.FileName(), err)
	}
	return src, nil
}

var weightConsts = map[string]string{
	"light":   "WeightLight",
	"regular": "WeightRegular",
	"bold":    "WeightBold",
}

func heightOf(p Params) int {
	if p.Sheet == nil {
		return 0
	}
	return p.Sheet.Height
}
