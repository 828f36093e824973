package control

import "testing"

func TestDetectCountsOncePerEntry(t *testing.T) {
	const threshold = 500
	s := Outside
	counts := 0
	// Object stays inside the zone for many consecutive ticks: one rep.
	for i := 0; i < 20; i++ {
		var counted bool
		s, counted = Next(s, 300, threshold)
		if counted {
			counts++
		}
	}
	if counts != 1 {
		t.Fatalf("20 inside ticks counted %d reps, want 1", counts)
	}
	if s != Inside {
		t.Fatalf("state=%v, want Inside", s)
	}
}

func TestDetectAlternatingCountsEach(t *testing.T) {
	const threshold = 500
	s := Outside
	counts := 0
	for k := 0; k < 7; k++ {
		var counted bool
		s, counted = Next(s, 300, threshold) // enter
		if counted {
			counts++
		}
		s, counted = Next(s, 900, threshold) // leave
		if counted {
			counts++
		}
	}
	if counts != 7 {
		t.Fatalf("7 in/out cycles counted %d reps, want 7", counts)
	}
	if s != Outside {
		t.Fatalf("state=%v, want Outside", s)
	}
}

func TestDetectBoundaryIsInside(t *testing.T) {
	// distance == threshold detects.
	s, counted := Next(Outside, 500, 500)
	if s != Inside || !counted {
		t.Fatalf("Next(Outside,500,500)=(%v,%v)", s, counted)
	}
}

func TestDetectOutsideStaysOutside(t *testing.T) {
	s, counted := Next(Outside, 900, 500)
	if s != Outside || counted {
		t.Fatalf("Next(Outside,900,500)=(%v,%v)", s, counted)
	}
}

func TestDetectString(t *testing.T) {
	if Outside.String() != "outside" || Inside.String() != "inside" {
		t.Fatal("DetectState.String failed")
	}
}
