package rng

import "testing"

func TestUniformRange(t *testing.T) {
	s := New(42)
	for i := 0; i < 10000; i++ {
		u := s.Uniform()
		if u < 0 || u >= 1 {
			t.Fatalf("draw %d: got %v, want value in [0, 1)", i, u)
		}
	}
}

func TestUniformDeterministic(t *testing.T) {
	a := New(987654321)
	b := New(987654321)
	for i := 0; i < 1000; i++ {
		ua, ub := a.Uniform(), b.Uniform()
		if ua != ub {
			t.Fatalf("draw %d: streams diverged, %v vs %v", i, ua, ub)
		}
	}
}

func TestSkipMatchesSequentialDraws(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 7, 152917, 1000003} {
		seq := New(42)
		for i := uint64(0); i < n; i++ {
			seq.Uniform()
		}
		jmp := New(42)
		jmp.Skip(n)
		if seq.State() != jmp.State() {
			t.Fatalf("skip %d: state %#x, want %#x", n, jmp.State(), seq.State())
		}
		if seq.Uniform() != jmp.Uniform() {
			t.Fatalf("skip %d: next draw differs from sequential stream", n)
		}
	}
}

func TestSkipDoesNotCountDraws(t *testing.T) {
	s := New(42)
	s.Skip(1 << 20)
	if got := s.Draws(); got != 0 {
		t.Fatalf("draws after skip = %d, want 0", got)
	}
	s.Uniform()
	if got := s.Draws(); got != 1 {
		t.Fatalf("draws after one uniform = %d, want 1", got)
	}
}

func TestForParticleSpacing(t *testing.T) {
	// The stream for history id must equal the master stream advanced by
	// id*stride steps.
	const master = 42
	byID := ForParticle(master, 3)
	manual := New(master)
	manual.Skip(3 * prnStride)
	if byID.State() != manual.State() {
		t.Fatalf("stream state %#x, want %#x", byID.State(), manual.State())
	}
}

func TestForParticleStreamsDiffer(t *testing.T) {
	const master = 42
	seen := make(map[uint64]int64)
	for id := int64(0); id < 200; id++ {
		s := ForParticle(master, id)
		st := s.State()
		if prev, ok := seen[st]; ok {
			t.Fatalf("histories %d and %d share initial state %#x", prev, id, st)
		}
		seen[st] = id
	}
}

func TestForParticleIndependentOfOrder(t *testing.T) {
	const master = 7
	forward := make([]float64, 0, 50)
	for id := int64(0); id < 50; id++ {
		forward = append(forward, ForParticle(master, id).Uniform())
	}
	for id := int64(49); id >= 0; id-- {
		if got := ForParticle(master, id).Uniform(); got != forward[id] {
			t.Fatalf("history %d: first draw %v, want %v", id, got, forward[id])
		}
	}
}

func TestUniformMean(t *testing.T) {
	// Crude moment check. The mean of n uniform draws concentrates around
	// 1/2 with standard error 1/sqrt(12n).
	const n = 100000
	s := New(42)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += s.Uniform()
	}
	mean := sum / n
	if mean < 0.49 || mean > 0.51 {
		t.Fatalf("mean of %d draws = %v, want within 0.01 of 0.5", n, mean)
	}
}

func TestRandomSeedInRange(t *testing.T) {
	seed, err := RandomSeed()
	if err != nil {
		t.Fatalf("RandomSeed() error: %v", err)
	}
	if seed > prnMask {
		t.Fatalf("seed %#x exceeds 63 bits", seed)
	}
}
