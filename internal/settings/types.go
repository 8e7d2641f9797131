// types.go
package settings

// Raw run settings loaded from YAML; mirrors the runs/ schema.
type RawRun struct {
	Version string     `yaml:"version"`
	Weight  WeightCfg  `yaml:"weight"`
	Source  *SourceCfg `yaml:"source,omitempty"`
	Slab    *SlabCfg   `yaml:"slab,omitempty"`
	Workers *int       `yaml:"workers,omitempty"`
	Notes   string     `yaml:"notes,omitempty"`
}

type WeightCfg struct {
	Cutoff  *float64 `yaml:"cutoff"`  // roulette triggers below this
	Survive *float64 `yaml:"survive"` // weight granted to survivors
}
type SourceCfg struct {
	Histories *int64  `yaml:"histories"`
	Batches   *int    `yaml:"batches,omitempty"`
	Seed      *uint64 `yaml:"seed,omitempty"`
}
type SlabCfg struct {
	Thickness    *float64 `yaml:"thickness"`
	SigmaTotal   *float64 `yaml:"sigma_total"`
	SigmaScatter *float64 `yaml:"sigma_scatter"`
}

// Normalized engine params used by internal/track.
type RunParams struct {
	WeightCutoff  float64
	WeightSurvive float64
	Histories     int64
	Batches       int
	Seed          uint64
	HasSeed       bool
	Thickness     float64
	SigmaTotal    float64
	SigmaScatter  float64
	Workers       int
	Version       string // effective config version for tracing
}
