package control

import "testing"

func TestMapThresholdEndpoints(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.MapThreshold(0); got != 50 {
		t.Fatalf("MapThreshold(0)=%d mm, want 50 (5.0 cm)", got)
	}
	if got := cfg.MapThreshold(0xFFFF); got != 920 {
		t.Fatalf("MapThreshold(65535)=%d mm, want 920 (92.0 cm)", got)
	}
}

func TestMapThresholdMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	prev := cfg.MapThreshold(0)
	for raw := 1; raw <= 0xFFFF; raw += 257 {
		mm := cfg.MapThreshold(uint16(raw))
		if mm < prev {
			t.Fatalf("MapThreshold not monotonic at raw=%d: %d < %d", raw, mm, prev)
		}
		prev = mm
	}
}

func TestDisplayInchesCoarsening(t *testing.T) {
	cfg := DefaultConfig()
	// 50 mm -> 2 in, 920 mm -> 36 in with the coarse 25 mm/in divisor.
	if got := cfg.DisplayInches(50); got != 2 {
		t.Fatalf("DisplayInches(50)=%d, want 2", got)
	}
	if got := cfg.DisplayInches(920); got != 36 {
		t.Fatalf("DisplayInches(920)=%d, want 36", got)
	}
	// Values within one divisor of each other land on the same inch:
	// this is the anti-jitter property.
	if cfg.DisplayInches(50) != cfg.DisplayInches(74) {
		t.Fatal("adjacent mm values should coarsen to the same inch")
	}
}

func TestPotGate(t *testing.T) {
	g := NewPotGate(1000)

	// First reading always reports.
	if !g.Changed(30000) {
		t.Fatal("first reading should fire")
	}
	// Within tolerance: silent.
	if g.Changed(30500) || g.Changed(29500) || g.Changed(31000) {
		t.Fatal("within-tolerance reading fired")
	}
	// Beyond tolerance: fires and rebases.
	if !g.Changed(31001) {
		t.Fatal("beyond-tolerance reading did not fire")
	}
	// Rebased on the reported value, not the skipped ones.
	if g.Changed(31500) {
		t.Fatal("gate did not rebase on report")
	}
}

func TestPotGateDoesNotCreepWithinTolerance(t *testing.T) {
	g := NewPotGate(1000)
	g.Changed(0)
	// Many small steps that individually stay inside the band must still
	// fire once the distance from the last *report* exceeds it.
	fired := false
	for raw := uint16(0); raw < 3000; raw += 300 {
		if g.Changed(raw) {
			fired = true
			break
		}
	}
	if !fired {
		t.Fatal("gate never fired despite total drift beyond tolerance")
	}
}
