// fontgen regenerates the glyph tables in internal/glyphdata from
// mono-spaced TTF files.
//
// It rasterizes every supported code point (Unicode 0x00-0x17F excluding
// control characters) at each requested raster height and weight, and writes
// one Go source file per (weight, height) combination:
//
//	fontgen -ttf DejaVuSansMono.ttf -ttf-bold DejaVuSansMono-Bold.ttf \
//	    -synth-light -out internal/glyphdata
//
// Families without a light cut can pass -synth-light to derive the light
// weight from the regular rasters.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/monoraster/cmd/fontgen/internal/gen"
	"github.com/gogpu/monoraster/cmd/fontgen/internal/raster"
)

var (
	ttfRegular = flag.String("ttf", "", "regular-weight TTF file (required)")
	ttfBold    = flag.String("ttf-bold", "", "bold-weight TTF file")
	ttfLight   = flag.String("ttf-light", "", "light-weight TTF file")
	synthLight = flag.Bool("synth-light", false, "derive the light weight from the regular rasters")
	heights    = flag.String("heights", "16,20,24,32", "comma-separated raster heights in pixels")
	outDir     = flag.String("out", "internal/glyphdata", "output directory for generated files")
	fontName   = flag.String("font-name", "DejaVu Sans Mono", "font family name for generated file headers")
	pkgName    = flag.String("pkg", "glyphdata", "package name for generated files")
	tagPrefix  = flag.String("tag-prefix", "monoraster", "build tag prefix for generated files")
	verbose    = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log); err != nil {
		log.Error("fontgen failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	if *ttfRegular == "" {
		flag.Usage()
		return fmt.Errorf("-ttf is required")
	}
	if *ttfLight != "" && *synthLight {
		return fmt.Errorf("-ttf-light and -synth-light are mutually exclusive")
	}

	hs, err := parseHeights(*heights)
	if err != nil {
		return err
	}

	regular, err := os.ReadFile(*ttfRegular)
	if err != nil {
		return err
	}

	type source struct {
		weight string
		data   []byte
		synth  bool // derive from the regular rasters instead of own data
	}
	sources := []source{{weight: "regular", data: regular}}
	if *ttfBold != "" {
		bold, err := os.ReadFile(*ttfBold)
		if err != nil {
			return err
		}
		sources = append(sources, source{weight: "bold", data: bold})
	}
	if *ttfLight != "" {
		light, err := os.ReadFile(*ttfLight)
		if err != nil {
			return err
		}
		sources = append(sources, source{weight: "light", data: light})
	} else if *synthLight {
		sources = append(sources, source{weight: "light", data: regular, synth: true})
	}

	for _, src := range sources {
		for _, h := range hs {
			sheet, err := raster.Rasterize(src.data, raster.Config{Height: h, Logger: log})
			if err != nil {
				return fmt.Errorf("rasterizing %s/%d: %w", src.weight, h, err)
			}
			if src.synth {
				sheet = raster.LightenSheet(sheet)
			}

			p := gen.Params{
				Package:   *pkgName,
				TagPrefix: *tagPrefix,
				Weight:    src.weight,
				FontName:  *fontName,
				Sheet:     sheet,
			}
			out, err := gen.File(p)
			if err != nil {
				return err
			}
			path := filepath.Join(*outDir, p.FileName())
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return err
			}
			log.Info("wrote table",
				"file", path, "weight", src.weight, "height", h,
				"width", sheet.Width, "glyphs", len(sheet.Glyphs))
		}
	}
	return nil
}

func parseHeights(s string) ([]int, error) {
	var hs []int
	for _, part := range strings.Split(s, ",") {
		h, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || h <= 0 {
			return nil, fmt.Errorf("invalid height %q", part)
		}
		hs = append(hs, h)
	}
	if len(hs) == 0 {
		return nil, fmt.Errorf("no heights given")
	}
	return hs, nil
}
