package main

import (
	"flag"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/xlab/closer"

	"planetgen/internal/config"
	"planetgen/pkg/planet"
)

// planetserve renders heightmap previews over HTTP:
//
//	GET /heightmap.png?seed=42&size=512
//	GET /thumb.png?seed=42
func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	srv := &http.Server{
		Addr:    cfg.Serve.Listen,
		Handler: newHandler(cfg),
	}
	closer.Bind(func() {
		srv.Close()
	})

	go func() {
		log.Printf("serving previews on %s", cfg.Serve.Listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("serve: %v", err)
			closer.Close()
		}
	}()

	closer.Hold()
}

func newHandler(cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/heightmap.png", func(w http.ResponseWriter, r *http.Request) {
		g, size, ok := generatorFromQuery(w, r, cfg, cfg.Export.Size)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, g.Heightmap(size).Gray()); err != nil {
			log.Printf("heightmap encode: %v", err)
		}
	})

	mux.HandleFunc("/thumb.png", func(w http.ResponseWriter, r *http.Request) {
		g, size, ok := generatorFromQuery(w, r, cfg, 256)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, g.Heightmap(size).Thumbnail(64)); err != nil {
			log.Printf("thumb encode: %v", err)
		}
	})

	return mux
}

func generatorFromQuery(w http.ResponseWriter, r *http.Request, cfg *config.Config, defaultSize int) (*planet.Generator, int, bool) {
	seed := int64(cfg.Planet.Seed)
	if s := r.URL.Query().Get("seed"); s != "" {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			http.Error(w, "bad seed", http.StatusBadRequest)
			return nil, 0, false
		}
		seed = v
	}

	size := defaultSize
	if s := r.URL.Query().Get("size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			http.Error(w, "bad size", http.StatusBadRequest)
			return nil, 0, false
		}
		size = v
	}
	if size > cfg.Serve.MaxSize {
		http.Error(w, "size exceeds limit", http.StatusBadRequest)
		return nil, 0, false
	}

	return planet.New(int32(seed), cfg.Planet.Scale, cfg.Planet.Radius), size, true
}
