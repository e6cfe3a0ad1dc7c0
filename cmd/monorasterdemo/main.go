// Command monorasterdemo renders a sample line of text at every compiled-in
// (weight, height) combination into a single PNG, as a quick visual check of
// the glyph tables.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/monoraster"
	"github.com/gogpu/monoraster/fontface"
)

var weights = []monoraster.FontWeight{
	monoraster.FontWeightLight,
	monoraster.FontWeightRegular,
	monoraster.FontWeightBold,
}

var heights = []monoraster.RasterHeight{
	monoraster.RasterHeight16,
	monoraster.RasterHeight20,
	monoraster.RasterHeight24,
	monoraster.RasterHeight32,
}

func main() {
	var (
		output = flag.String("output", "monoraster.png", "output file")
		sample = flag.String("sample", "Sphinx of black quartz, judge my vow! ÄÖÜ æß 0123", "sample text")
	)
	flag.Parse()

	const margin = 8
	width := 0
	height := margin
	for _, w := range weights {
		for _, h := range heights {
			cw := monoraster.Width(w, h)
			if cw == 0 {
				continue // stripped from this build
			}
			if lw := cw*len([]rune(*sample)) + 2*margin; lw > width {
				width = lw
			}
			height += h.Val() + margin
		}
	}
	if width == 0 {
		log.Fatal("no glyph tables compiled in")
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Gray{Y: 255}), image.Point{}, draw.Src)

	y := margin
	for _, w := range weights {
		for _, h := range heights {
			face, err := fontface.New(w, h)
			if err != nil {
				continue
			}
			d := font.Drawer{
				Dst:  dst,
				Src:  image.Black,
				Face: face,
				Dot:  fixed.P(margin, y+face.Metrics().Ascent.Round()),
			}
			d.DrawString(*sample)
			log.Printf("drew %v at %v (width %dpx per char)", w, h, monoraster.Width(w, h))
			y += h.Val() + margin
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)", *output, width, height)
}
