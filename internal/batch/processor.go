package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"termraster/internal/logging"
	"termraster/internal/raster"
	"termraster/internal/scene"
	"termraster/internal/snapshot"
)

// Config holds the shared settings for a batch run.
type Config struct {
	SceneDir  string
	OutputDir string
	Width     int
	Height    int
	Options   scene.Options
	Scale     int
	Format    snapshot.Format
	Workers   int
}

// Result holds the outcome of rendering one scene file.
type Result struct {
	Name    string // scene path relative to SceneDir, without extension
	Scene   string
	Image   string // snapshot path relative to OutputDir
	Cells   int    // non-blank cells drawn
	Success bool
	Error   string
}

// FindScenes returns every .json scene file under dir in lexical order.
// Files named manifest.json are skipped.
func FindScenes(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") || d.Name() == ManifestName {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Run renders all scenes using a worker pool. Results are in the order of
// paths.
func Run(cfg Config, paths []string) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Format == "" {
		cfg.Format = snapshot.WebP
	}

	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64
	log := logging.Logger()

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("batch progress", "done", p, "total", total, "scenes_per_sec", float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processScene(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range paths {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	log.Info("batch finished", "total", total, "elapsed", time.Since(start).Round(time.Millisecond))
	return results
}

func processScene(cfg Config, path string) Result {
	name := sceneName(cfg.SceneDir, path)
	res := Result{
		Name:  name,
		Scene: path,
		Image: filepath.ToSlash(name) + "." + string(cfg.Format),
	}

	s, err := scene.Load(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	fb := raster.NewFramebuffer(cfg.Width, cfg.Height)
	s.Draw(fb, cfg.Options)
	for _, c := range fb.Cells {
		if c != raster.Blank {
			res.Cells++
		}
	}

	out := filepath.Join(cfg.OutputDir, filepath.FromSlash(res.Image))
	if err := snapshot.WriteFile(out, fb, cfg.Scale); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

func sceneName(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(path)
	}
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}
