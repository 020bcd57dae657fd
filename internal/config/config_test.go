package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"termraster/internal/raster"
	"termraster/internal/scene"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.json")
	body := `{"width": 100, "mode": "wireframe", "cell_aspect": 0.45, "snapshot_scale": 2}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Width: 100, Mode: "wireframe", CellAspect: 0.45, SnapshotScale: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{width"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed file accepted")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		flags Flags
		want  Config
	}{
		{
			name: "defaults",
			want: Config{Mode: "filled", Glyph: "flat", CellAspect: 0.5, SnapshotScale: 1, OutputDir: "renders", Workers: runtime.NumCPU()},
		},
		{
			name:  "flags override file",
			cfg:   Config{Width: 40, Height: 10, Mode: "filled", Workers: 2},
			flags: Flags{Width: 120, Mode: "wireframe", Glyph: "shaded", Workers: 8},
			want:  Config{Width: 120, Height: 10, Mode: "wireframe", Glyph: "shaded", CellAspect: 0.5, SnapshotScale: 1, OutputDir: "renders", Workers: 8},
		},
		{
			name:  "output under batch dir",
			flags: Flags{BatchDir: "scenes", Workers: 1},
			want:  Config{Mode: "filled", Glyph: "flat", CellAspect: 0.5, SnapshotScale: 1, BatchDir: "scenes", OutputDir: filepath.Join("scenes", "renders"), Workers: 1},
		},
		{
			name:  "absolute output kept",
			cfg:   Config{OutputDir: "/tmp/out"},
			flags: Flags{BatchDir: "scenes", Workers: 1},
			want:  Config{Mode: "filled", Glyph: "flat", CellAspect: 0.5, SnapshotScale: 1, BatchDir: "scenes", OutputDir: "/tmp/out", Workers: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Resolve(tt.flags)
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Errorf("Resolve (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawOptions(t *testing.T) {
	cfg := Config{Mode: "wireframe", Glyph: "shaded", CellAspect: 0.5}
	got, err := cfg.DrawOptions()
	if err != nil {
		t.Fatal(err)
	}
	want := scene.Options{Mode: raster.ModeWireframe, Glyph: raster.LightlyShaded, CellAspect: 0.5}
	if got != want {
		t.Errorf("DrawOptions = %+v, want %+v", got, want)
	}

	for _, bad := range []Config{{Mode: "dotted"}, {Glyph: "neon"}} {
		if _, err := bad.DrawOptions(); err == nil {
			t.Errorf("%+v accepted", bad)
		}
	}
}
