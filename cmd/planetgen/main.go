package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"planetgen/internal/config"
	"planetgen/internal/profiling"
	"planetgen/pkg/planet"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	seed := flag.Int("seed", 0, "planet seed (overrides config)")
	scale := flag.Float64("scale", 0, "height scale (overrides config)")
	radius := flag.Float64("radius", 0, "base radius (overrides config)")
	size := flag.Int("size", 0, "heightmap size in pixels (overrides config)")
	out := flag.String("out", "", "output PNG path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Planet.Seed = int32(*seed)
		case "scale":
			cfg.Planet.Scale = *scale
		case "radius":
			cfg.Planet.Radius = *radius
		case "size":
			cfg.Export.Size = *size
		case "out":
			cfg.Export.Output = *out
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("planetgen: %v", err)
	}
}

func run(cfg *config.Config) error {
	g := planet.New(cfg.Planet.Seed, cfg.Planet.Scale, cfg.Planet.Radius)
	p := g.Params()
	log.Printf("seed %d: macro f=%.3f o=%d a=%.2f, micro f=%.2f o=%d a=%.2f, ridge f=%.2f o=%d a=%.2f, lac=%.2f gain=%.2f",
		g.Seed(),
		p.MacroFreq, p.MacroOctaves, p.MacroAmp,
		p.MicroFreq, p.MicroOctaves, p.MicroAmp,
		p.RidgeFreq, p.RidgeOctaves, p.RidgeAmp,
		p.Lacunarity, p.Gain)

	hm := g.Heightmap(cfg.Export.Size)

	f, err := os.Create(cfg.Export.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, hm.Gray()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	log.Printf("wrote %s (%dx%d). Timings: %s", cfg.Export.Output, hm.Size, hm.Size, profiling.TopN(3))
	return nil
}
