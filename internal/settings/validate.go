package settings

import (
	"fmt"
	"math"
	"strings"
)

// ValidateRaw checks semantic constraints of a RawRun. The weight block is
// checked hardest: transport assumes weight.survive is a positive finite
// number, so a bad value must be rejected here, before any history runs.
func ValidateRaw(cfg RawRun) error {
	var errs []string

	// weight.survive
	if cfg.Weight.Survive != nil {
		s := *cfg.Weight.Survive
		if math.IsNaN(s) || math.IsInf(s, 0) {
			errs = append(errs, "weight.survive must be finite")
		} else if s <= 0 {
			errs = append(errs, "weight.survive must be > 0")
		}
	}
	// weight.cutoff
	if cfg.Weight.Cutoff != nil {
		c := *cfg.Weight.Cutoff
		if math.IsNaN(c) || math.IsInf(c, 0) {
			errs = append(errs, "weight.cutoff must be finite")
		} else if c < 0 {
			errs = append(errs, "weight.cutoff must be >= 0")
		}
	}
	if cfg.Weight.Cutoff != nil && cfg.Weight.Survive != nil {
		if *cfg.Weight.Cutoff > *cfg.Weight.Survive {
			errs = append(errs, "weight.cutoff must not exceed weight.survive")
		}
	}

	// source
	if cfg.Source != nil {
		if cfg.Source.Histories != nil && *cfg.Source.Histories < 1 {
			errs = append(errs, "source.histories must be >= 1")
		}
		if cfg.Source.Batches != nil && *cfg.Source.Batches < 1 {
			errs = append(errs, "source.batches must be >= 1")
		}
		if cfg.Source.Histories != nil && cfg.Source.Batches != nil {
			if int64(*cfg.Source.Batches) > *cfg.Source.Histories {
				errs = append(errs, "source.batches must not exceed source.histories")
			}
		}
	}

	// slab
	if cfg.Slab != nil {
		if cfg.Slab.Thickness != nil && *cfg.Slab.Thickness <= 0 {
			errs = append(errs, "slab.thickness must be > 0")
		}
		if cfg.Slab.SigmaTotal != nil && *cfg.Slab.SigmaTotal <= 0 {
			errs = append(errs, "slab.sigma_total must be > 0")
		}
		if cfg.Slab.SigmaScatter != nil && *cfg.Slab.SigmaScatter < 0 {
			errs = append(errs, "slab.sigma_scatter must be >= 0")
		}
		if cfg.Slab.SigmaScatter != nil && cfg.Slab.SigmaTotal != nil {
			if *cfg.Slab.SigmaScatter > *cfg.Slab.SigmaTotal {
				errs = append(errs, "slab.sigma_scatter must not exceed slab.sigma_total")
			}
		}
	}

	// workers (optional; 0 means one worker per CPU)
	if cfg.Workers != nil && *cfg.Workers < 0 {
		errs = append(errs, "workers must be >= 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("settings validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
