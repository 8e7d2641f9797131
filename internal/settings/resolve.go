// resolve.go
package settings

import (
	"fmt"
	"strings"
)

// Overrides carries per-request values that win over the merged run file,
// like a caller-chosen seed or history count.
type Overrides struct {
	Histories *int64
	Batches   *int
	Seed      *uint64
	Workers   *int
}

type Resolver interface {
	// Returns merged RawRun and normalized RunParams
	Resolve(run string, o Overrides) (RawRun, RunParams, error)
}

// Resolve merges default → run → overrides, validates the result, and
// normalizes it into engine params. Loader satisfies Resolver.
func (l *Loader) Resolve(run string, o Overrides) (RawRun, RunParams, error) {
	cfg, err := l.LoadMerged(run)
	if err != nil {
		return RawRun{}, RunParams{}, err
	}

	// Clone the nested blocks before applying overrides so cached settings
	// stay untouched.
	if cfg.Source != nil {
		c := *cfg.Source
		cfg.Source = &c
	}
	if cfg.Slab != nil {
		c := *cfg.Slab
		cfg.Slab = &c
	}
	if o.Histories != nil || o.Batches != nil || o.Seed != nil {
		if cfg.Source == nil {
			cfg.Source = &SourceCfg{}
		}
		if o.Histories != nil {
			cfg.Source.Histories = o.Histories
		}
		if o.Batches != nil {
			cfg.Source.Batches = o.Batches
		}
		if o.Seed != nil {
			cfg.Source.Seed = o.Seed
		}
	}
	if o.Workers != nil {
		cfg.Workers = o.Workers
	}

	if err := ValidateRaw(cfg); err != nil {
		return RawRun{}, RunParams{}, err
	}
	params, err := normalize(cfg)
	if err != nil {
		return RawRun{}, RunParams{}, err
	}
	return cfg, params, nil
}

// normalize flattens a merged RawRun into RunParams, rejecting settings that
// are still missing required fields after the merge.
func normalize(cfg RawRun) (RunParams, error) {
	var missing []string
	if cfg.Weight.Cutoff == nil {
		missing = append(missing, "weight.cutoff")
	}
	if cfg.Weight.Survive == nil {
		missing = append(missing, "weight.survive")
	}
	if cfg.Source == nil || cfg.Source.Histories == nil {
		missing = append(missing, "source.histories")
	}
	if cfg.Slab == nil || cfg.Slab.Thickness == nil {
		missing = append(missing, "slab.thickness")
	}
	if cfg.Slab == nil || cfg.Slab.SigmaTotal == nil {
		missing = append(missing, "slab.sigma_total")
	}
	if cfg.Slab == nil || cfg.Slab.SigmaScatter == nil {
		missing = append(missing, "slab.sigma_scatter")
	}
	if len(missing) > 0 {
		return RunParams{}, fmt.Errorf("run settings missing required fields: %s", strings.Join(missing, ", "))
	}

	p := RunParams{
		WeightCutoff:  *cfg.Weight.Cutoff,
		WeightSurvive: *cfg.Weight.Survive,
		Histories:     *cfg.Source.Histories,
		Batches:       1,
		Thickness:     *cfg.Slab.Thickness,
		SigmaTotal:    *cfg.Slab.SigmaTotal,
		SigmaScatter:  *cfg.Slab.SigmaScatter,
		Version:       cfg.Version,
	}
	if cfg.Source.Batches != nil {
		p.Batches = *cfg.Source.Batches
	}
	if cfg.Source.Seed != nil {
		p.Seed = *cfg.Source.Seed
		p.HasSeed = true
	}
	if cfg.Workers != nil {
		p.Workers = *cfg.Workers
	}
	return p, nil
}
