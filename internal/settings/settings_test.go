package settings

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }
func u64(v uint64) *uint64   { return &v }
func iv(v int) *int          { return &v }

func validRaw() RawRun {
	return RawRun{
		Version: "v1",
		Weight:  WeightCfg{Cutoff: f64(0.25), Survive: f64(1.0)},
		Source:  &SourceCfg{Histories: i64(20000), Batches: iv(10), Seed: u64(42)},
		Slab:    &SlabCfg{Thickness: f64(5.0), SigmaTotal: f64(1.0), SigmaScatter: f64(0.5)},
		Workers: iv(2),
	}
}

func TestValidateAcceptsTypicalRun(t *testing.T) {
	if err := ValidateRaw(validRaw()); err != nil {
		t.Fatalf("ValidateRaw() = %v, want nil", err)
	}
}

func TestValidateRejectsNonPositiveSurviveWeight(t *testing.T) {
	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		cfg := validRaw()
		cfg.Weight.Survive = f64(bad)
		err := ValidateRaw(cfg)
		if err == nil {
			t.Fatalf("weight.survive = %v accepted, want error", bad)
		}
		if !strings.Contains(err.Error(), "weight.survive") {
			t.Fatalf("error %q does not name weight.survive", err)
		}
	}
}

func TestValidateRejectsCutoffAboveSurvive(t *testing.T) {
	cfg := validRaw()
	cfg.Weight.Cutoff = f64(2.0)
	cfg.Weight.Survive = f64(1.0)
	if err := ValidateRaw(cfg); err == nil {
		t.Fatal("cutoff above survive accepted, want error")
	}
}

func TestValidateRejectsScatterAboveTotal(t *testing.T) {
	cfg := validRaw()
	cfg.Slab.SigmaScatter = f64(2.0)
	cfg.Slab.SigmaTotal = f64(1.0)
	if err := ValidateRaw(cfg); err == nil {
		t.Fatal("sigma_scatter above sigma_total accepted, want error")
	}
}

func TestValidateRejectsBatchesAboveHistories(t *testing.T) {
	cfg := validRaw()
	cfg.Source.Histories = i64(5)
	cfg.Source.Batches = iv(10)
	if err := ValidateRaw(cfg); err == nil {
		t.Fatal("batches above histories accepted, want error")
	}
}

func writeRuns(t *testing.T, files map[string]string) string {
	t.Helper()
	base := t.TempDir()
	dir := filepath.Join(base, "runs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return base
}

const defaultYAML = `version: "v1"
weight:
  cutoff: 0.25
  survive: 1.0
source:
  histories: 20000
  batches: 10
  seed: 42
slab:
  thickness: 5.0
  sigma_total: 1.0
  sigma_scatter: 0.5
workers: 2
`

func TestLoadMergedRunOverridesDefault(t *testing.T) {
	base := writeRuns(t, map[string]string{
		"default.yaml": defaultYAML,
		"deep.yaml": `version: "v2"
slab:
  thickness: 10.0
`,
	})
	l := NewLoader(base)
	cfg, err := l.LoadMerged("deep")
	if err != nil {
		t.Fatalf("LoadMerged() error: %v", err)
	}
	if cfg.Version != "v2" {
		t.Fatalf("Version = %q, want v2", cfg.Version)
	}
	if got := *cfg.Slab.Thickness; got != 10.0 {
		t.Fatalf("Thickness = %v, want run override 10.0", got)
	}
	if got := *cfg.Slab.SigmaTotal; got != 1.0 {
		t.Fatalf("SigmaTotal = %v, want inherited 1.0", got)
	}
	if got := *cfg.Weight.Cutoff; got != 0.25 {
		t.Fatalf("Cutoff = %v, want inherited 0.25", got)
	}
}

func TestLoadMergedRunDoesNotPolluteDefaults(t *testing.T) {
	base := writeRuns(t, map[string]string{
		"default.yaml": defaultYAML,
		"deep.yaml": `slab:
  thickness: 10.0
source:
  seed: 99
`,
	})
	l := NewLoader(base)
	if _, err := l.LoadMerged("deep"); err != nil {
		t.Fatalf("LoadMerged() error: %v", err)
	}
	cfg, err := l.LoadMerged("")
	if err != nil {
		t.Fatalf("LoadMerged() error: %v", err)
	}
	if got := *cfg.Slab.Thickness; got != 5.0 {
		t.Fatalf("defaults thickness after a run load = %v, want 5.0", got)
	}
	if got := *cfg.Source.Seed; got != 42 {
		t.Fatalf("defaults seed after a run load = %d, want 42", got)
	}
}

func TestMergeRawLeavesInputsUntouched(t *testing.T) {
	a := validRaw()
	b := RawRun{
		Source: &SourceCfg{Seed: u64(99)},
		Slab:   &SlabCfg{Thickness: f64(10.0)},
	}
	merged := mergeRaw(a, b)
	if got := *a.Slab.Thickness; got != 5.0 {
		t.Fatalf("merge wrote through to its input: thickness %v, want 5.0", got)
	}
	if got := *a.Source.Seed; got != 42 {
		t.Fatalf("merge wrote through to its input: seed %d, want 42", got)
	}
	if got := *merged.Slab.Thickness; got != 10.0 {
		t.Fatalf("merged thickness = %v, want override 10.0", got)
	}
	if got := *merged.Slab.SigmaTotal; got != 1.0 {
		t.Fatalf("merged sigma_total = %v, want inherited 1.0", got)
	}
}

func TestLoadMergedUnknownRunFallsBackToDefault(t *testing.T) {
	base := writeRuns(t, map[string]string{"default.yaml": defaultYAML})
	l := NewLoader(base)
	cfg, err := l.LoadMerged("nope")
	if err != nil {
		t.Fatalf("LoadMerged() error: %v", err)
	}
	if got := *cfg.Slab.Thickness; got != 5.0 {
		t.Fatalf("Thickness = %v, want default 5.0", got)
	}
}

func TestLoadMergedMissingDefault(t *testing.T) {
	l := NewLoader(t.TempDir())
	if _, err := l.LoadMerged(""); err == nil {
		t.Fatal("missing defaults file accepted, want error")
	}
}

func TestInvalidateDropsCache(t *testing.T) {
	base := writeRuns(t, map[string]string{"default.yaml": defaultYAML})
	l := NewLoader(base)
	if _, err := l.LoadMerged(""); err != nil {
		t.Fatalf("LoadMerged() error: %v", err)
	}

	edited := strings.Replace(defaultYAML, "thickness: 5.0", "thickness: 7.5", 1)
	if err := os.WriteFile(filepath.Join(base, "runs", "default.yaml"), []byte(edited), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _ := l.LoadMerged("")
	if got := *cfg.Slab.Thickness; got != 5.0 {
		t.Fatalf("Thickness before Invalidate = %v, want cached 5.0", got)
	}
	l.Invalidate()
	cfg, _ = l.LoadMerged("")
	if got := *cfg.Slab.Thickness; got != 7.5 {
		t.Fatalf("Thickness after Invalidate = %v, want reloaded 7.5", got)
	}
}

func TestResolveAppliesOverrides(t *testing.T) {
	base := writeRuns(t, map[string]string{"default.yaml": defaultYAML})
	l := NewLoader(base)
	_, params, err := l.Resolve("", Overrides{Histories: i64(500), Seed: u64(7), Workers: iv(4)})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if params.Histories != 500 {
		t.Fatalf("Histories = %d, want override 500", params.Histories)
	}
	if !params.HasSeed || params.Seed != 7 {
		t.Fatalf("Seed = %d (has %v), want override 7", params.Seed, params.HasSeed)
	}
	if params.Workers != 4 {
		t.Fatalf("Workers = %d, want override 4", params.Workers)
	}
	if params.WeightSurvive != 1.0 || params.WeightCutoff != 0.25 {
		t.Fatalf("weight params = %v/%v, want 0.25/1.0", params.WeightCutoff, params.WeightSurvive)
	}
}

func TestResolveOverrideDoesNotPoisonCache(t *testing.T) {
	base := writeRuns(t, map[string]string{"default.yaml": defaultYAML})
	l := NewLoader(base)
	if _, _, err := l.Resolve("", Overrides{Histories: i64(500)}); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	_, params, err := l.Resolve("", Overrides{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if params.Histories != 20000 {
		t.Fatalf("Histories = %d, want file value 20000 after override-free resolve", params.Histories)
	}
}

func TestResolveRejectsIncompleteSettings(t *testing.T) {
	base := writeRuns(t, map[string]string{"default.yaml": `weight:
  cutoff: 0.25
  survive: 1.0
`})
	l := NewLoader(base)
	_, _, err := l.Resolve("", Overrides{})
	if err == nil {
		t.Fatal("incomplete settings accepted, want error")
	}
	if !strings.Contains(err.Error(), "slab.sigma_total") {
		t.Fatalf("error %q does not name the missing field", err)
	}
}

func TestResolveRejectsInvalidOverride(t *testing.T) {
	base := writeRuns(t, map[string]string{"default.yaml": defaultYAML})
	l := NewLoader(base)
	if _, _, err := l.Resolve("", Overrides{Histories: i64(0)}); err == nil {
		t.Fatal("histories override of 0 accepted, want error")
	}
}

// testWatcher primes a watcher over base without starting the poll loop;
// tests drive scanAll directly so no timing is involved.
func testWatcher(base string, changed *[]string) *FileWatcher {
	w := NewRunsWatcher(base, time.Minute, func(p string) {
		*changed = append(*changed, p)
	})
	w.scanAll(true)
	return w
}

func TestWatcherReportsModifiedFile(t *testing.T) {
	base := writeRuns(t, map[string]string{"default.yaml": defaultYAML})
	var changed []string
	w := testWatcher(base, &changed)

	path := filepath.Join(base, "runs", "default.yaml")
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}
	w.scanAll(false)
	if len(changed) != 1 || changed[0] != path {
		t.Fatalf("changes = %v, want exactly [%s]", changed, path)
	}

	changed = nil
	w.scanAll(false)
	if len(changed) != 0 {
		t.Fatalf("unchanged rescan reported %v, want nothing", changed)
	}
}

func TestWatcherReportsNewAndDeletedFiles(t *testing.T) {
	base := writeRuns(t, map[string]string{"default.yaml": defaultYAML})
	var changed []string
	w := testWatcher(base, &changed)

	fresh := filepath.Join(base, "runs", "fresh.yaml")
	if err := os.WriteFile(fresh, []byte("version: \"v2\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w.scanAll(false)
	if len(changed) != 1 || changed[0] != fresh {
		t.Fatalf("changes after create = %v, want exactly [%s]", changed, fresh)
	}

	changed = nil
	if err := os.Remove(fresh); err != nil {
		t.Fatal(err)
	}
	w.scanAll(false)
	if len(changed) != 1 || changed[0] != fresh {
		t.Fatalf("changes after delete = %v, want exactly [%s]", changed, fresh)
	}
}

func TestWatcherPrimingScanStaysQuiet(t *testing.T) {
	base := writeRuns(t, map[string]string{"default.yaml": defaultYAML, "deep.yaml": "version: \"v2\"\n"})
	var changed []string
	testWatcher(base, &changed)
	if len(changed) != 0 {
		t.Fatalf("priming scan reported %v, want nothing", changed)
	}
}
