package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"termraster/internal/batch"
	"termraster/internal/config"
	"termraster/internal/logging"
	"termraster/internal/raster"
	"termraster/internal/scene"
	"termraster/internal/snapshot"
	"termraster/internal/surface"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene JSON file (default: built-in scene)")
	builtin := flag.String("builtin", "triangles", "Built-in scene when -scene is not set: "+strings.Join(scene.BuiltinNames(), ", "))
	width := flag.Int("width", 0, "Frame width in cells (default: terminal width)")
	height := flag.Int("height", 0, "Frame height in cells (default: terminal height)")
	mode := flag.String("mode", "", "filled or wireframe (default: filled)")
	glyph := flag.String("glyph", "", "Glyph for triangles and quads: flat or shaded (default: flat)")
	snap := flag.String("snapshot", "", "Also save the frame as an image (.webp or .tga)")
	batchDir := flag.String("batch", "", "Render every scene file under this directory to images")
	outputDir := flag.String("output", "", "Batch output directory (default: <batch>/renders)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		Mode:      *mode,
		Glyph:     *glyph,
		Snapshot:  *snap,
		BatchDir:  *batchDir,
		OutputDir: *outputDir,
		Workers:   *workers,
	})

	opts, err := cfg.DrawOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.BatchDir != "" {
		os.Exit(runBatch(cfg, opts))
	}

	// Load scene
	var s *scene.Scene
	if *sceneFile != "" {
		s, err = scene.Load(*sceneFile)
	} else {
		s, err = scene.Builtin(*builtin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	term := surface.NewTerminal(os.Stdout)
	fb := newFramebuffer(cfg, term)
	s.Draw(fb, opts)

	if err := fb.Render(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Snapshot != "" {
		if err := snapshot.WriteFile(cfg.Snapshot, fb, cfg.SnapshotScale); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
			os.Exit(1)
		}
		logging.Logger().Info("snapshot saved", "path", cfg.Snapshot)
	}
}

// newFramebuffer sizes the frame from the config, falling back to the
// terminal and then to 80x24.
func newFramebuffer(cfg config.Config, s raster.Surface) *raster.Framebuffer {
	if cfg.Width > 0 && cfg.Height > 0 {
		return raster.NewFramebuffer(cfg.Width, cfg.Height)
	}

	fb, err := raster.FromSurface(s)
	if err != nil {
		w, h := orDefault(cfg.Width, fallbackWidth), orDefault(cfg.Height, fallbackHeight)
		logging.Logger().Warn("terminal size unavailable, using fallback", "width", w, "height", h, "err", err)
		return raster.NewFramebuffer(w, h)
	}
	if cfg.Width > 0 || cfg.Height > 0 {
		return raster.NewFramebuffer(orDefault(cfg.Width, fb.Width), orDefault(cfg.Height, fb.Height))
	}
	logging.Logger().Debug("terminal size", "width", fb.Width, "height", fb.Height)
	return fb
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func runBatch(cfg config.Config, opts scene.Options) int {
	paths, err := batch.FindScenes(cfg.BatchDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if len(paths) == 0 {
		fmt.Println("No scenes to render.")
		return 0
	}

	format := snapshot.WebP
	if cfg.Snapshot != "" {
		format, err = snapshot.FormatFromPath(cfg.Snapshot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	batchCfg := batch.Config{
		SceneDir:  cfg.BatchDir,
		OutputDir: cfg.OutputDir,
		Width:     orDefault(cfg.Width, fallbackWidth),
		Height:    orDefault(cfg.Height, fallbackHeight),
		Options:   opts,
		Scale:     cfg.SnapshotScale,
		Format:    format,
		Workers:   cfg.Workers,
	}

	fmt.Printf("termraster batch → %s\n", strings.ToUpper(string(format)))
	fmt.Printf("Scenes: %d, Workers: %d, Frame: %dx%d\n", len(paths), cfg.Workers, batchCfg.Width, batchCfg.Height)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batchCfg, paths)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, r := range failed[:min(len(failed), 20)] {
			fmt.Printf("  %s: %s\n", r.Name, r.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, batch.ManifestName)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		return 1
	}
	return 0
}
