package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for default/run files.
type Paths struct {
	BaseDir string // base directory, e.g., /opt/app/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "runs", "default.yaml")
}
func (p Paths) RunPath(run string) string {
	return filepath.Join(p.BaseDir, "runs", run+".yaml")
}
func (p Paths) RunsGlob() string {
	return filepath.Join(p.BaseDir, "runs", "*.yaml")
}

// Loader reads YAML run settings and merges default → run.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawRun // key: run name or "$default"
}

// NewLoader creates a settings loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawRun),
	}
}

// LoadMerged loads and merges default → run (run optional; empty means the
// defaults alone). It returns the merged RawRun without normalization.
func (l *Loader) LoadMerged(run string) (RawRun, error) {
	key := run
	if key == "" {
		key = "$default"
	}
	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	// Read files from disk
	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawRun{}, fmt.Errorf("read default: %w", err)
	}
	var runCfg RawRun
	if run != "" {
		runCfg, err = readYAML(l.paths.RunPath(run))
		if err != nil {
			return RawRun{}, fmt.Errorf("read run %q: %w", run, err)
		}
	}

	// Merge: default <- run
	merged := mergeRaw(defCfg, runCfg)

	// Cache
	l.mu.Lock()
	l.cache[key] = merged
	l.cache["$default"] = defCfg
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears the loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawRun)
}

// readYAML loads a YAML file into RawRun. A missing run file returns a zero
// cfg and no error; the defaults file must exist.
func readYAML(path string) (RawRun, error) {
	var cfg RawRun
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && filepath.Base(path) != "default.yaml" {
			return RawRun{}, nil
		}
		return RawRun{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawRun{}, err
	}
	return cfg, nil
}

// mergeRaw performs a deep merge: 'b' overrides 'a' where set. Pointer fields
// distinguish "absent" from an explicit zero, so a run file can set a value
// to 0 and still win over the default. Nested blocks are cloned before they
// are written so neither input is mutated; 'a' stays cached as the pristine
// defaults.
func mergeRaw(a, b RawRun) RawRun {
	out := a

	// top-level scalars
	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// weight
	if b.Weight.Cutoff != nil {
		out.Weight.Cutoff = b.Weight.Cutoff
	}
	if b.Weight.Survive != nil {
		out.Weight.Survive = b.Weight.Survive
	}

	// source
	switch {
	case out.Source == nil && b.Source != nil:
		c := *b.Source
		out.Source = &c
	case out.Source != nil && b.Source != nil:
		c := *out.Source
		if b.Source.Histories != nil {
			c.Histories = b.Source.Histories
		}
		if b.Source.Batches != nil {
			c.Batches = b.Source.Batches
		}
		if b.Source.Seed != nil {
			c.Seed = b.Source.Seed
		}
		out.Source = &c
	}

	// slab
	switch {
	case out.Slab == nil && b.Slab != nil:
		c := *b.Slab
		out.Slab = &c
	case out.Slab != nil && b.Slab != nil:
		c := *out.Slab
		if b.Slab.Thickness != nil {
			c.Thickness = b.Slab.Thickness
		}
		if b.Slab.SigmaTotal != nil {
			c.SigmaTotal = b.Slab.SigmaTotal
		}
		if b.Slab.SigmaScatter != nil {
			c.SigmaScatter = b.Slab.SigmaScatter
		}
		out.Slab = &c
	}

	// workers
	if b.Workers != nil {
		out.Workers = b.Workers
	}

	return out
}
