package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"termraster/internal/raster"
	"termraster/internal/scene"
)

// Config holds render settings and output paths.
type Config struct {
	// Surface
	Width      int     `json:"width"`  // 0 means ask the terminal
	Height     int     `json:"height"` // 0 means ask the terminal
	Mode       string  `json:"mode"`
	Glyph      string  `json:"glyph"`
	CellAspect float64 `json:"cell_aspect"`

	// Snapshots
	Snapshot      string `json:"snapshot"`
	SnapshotScale int    `json:"snapshot_scale"`

	// Batch
	BatchDir  string `json:"batch_dir"`
	OutputDir string `json:"output_dir"`
	Workers   int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Glyph != "" {
		c.Glyph = flags.Glyph
	}
	if flags.Snapshot != "" {
		c.Snapshot = flags.Snapshot
	}
	if flags.BatchDir != "" {
		c.BatchDir = flags.BatchDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Mode == "" {
		c.Mode = raster.ModeFilled.String()
	}
	if c.Glyph == "" {
		c.Glyph = raster.Flat.String()
	}
	if c.CellAspect <= 0 {
		c.CellAspect = 0.5
	}
	if c.SnapshotScale <= 0 {
		c.SnapshotScale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	// Output dir lives next to the scenes unless given absolute
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.BatchDir != "" && !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(c.BatchDir, c.OutputDir)
	}
}

// DrawOptions parses the mode and glyph names.
func (c Config) DrawOptions() (scene.Options, error) {
	mode, err := raster.ParseMode(c.Mode)
	if err != nil {
		return scene.Options{}, fmt.Errorf("config: %w", err)
	}
	glyph, err := raster.ParseCharacterType(c.Glyph)
	if err != nil {
		return scene.Options{}, fmt.Errorf("config: %w", err)
	}
	return scene.Options{Mode: mode, Glyph: glyph, CellAspect: c.CellAspect}, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	Mode      string
	Glyph     string
	Snapshot  string
	BatchDir  string
	OutputDir string
	Workers   int
}
