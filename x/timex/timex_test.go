package timex

import "testing"

func TestPeriodFromHz(t *testing.T) {
	if got := PeriodFromHz(4000); got != 250_000 {
		t.Fatalf("PeriodFromHz(4000)=%d, want 250000", got)
	}
	if got := PeriodFromHz(1); got != 1_000_000_000 {
		t.Fatalf("PeriodFromHz(1)=%d", got)
	}
	if got := PeriodFromHz(0); got != 1_000_000_000 {
		t.Fatalf("PeriodFromHz(0)=%d", got)
	}
}
