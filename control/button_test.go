package control

import "testing"

func TestResetButtonFiresOnceWhileHeld(t *testing.T) {
	var b ResetButton
	fires := 0
	for i := 0; i < 5; i++ {
		if b.Fired(true) {
			fires++
		}
	}
	if fires != 1 {
		t.Fatalf("held across 5 iterations fired %d times, want 1", fires)
	}
}

func TestResetButtonRefiresAfterRelease(t *testing.T) {
	var b ResetButton
	if !b.Fired(true) {
		t.Fatal("first press did not fire")
	}
	if b.Fired(false) {
		t.Fatal("release fired")
	}
	if !b.Fired(true) {
		t.Fatal("second press did not fire")
	}
}

func TestResetButtonIdleNeverFires(t *testing.T) {
	var b ResetButton
	for i := 0; i < 10; i++ {
		if b.Fired(false) {
			t.Fatal("idle button fired")
		}
	}
}
