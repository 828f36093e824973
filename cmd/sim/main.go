//go:build !rp2040

// Command sim runs the controller against the in-memory board with a
// scripted workout: a few repetitions, a transient sensor dropout, a pot
// adjustment, and a reset. It prints the display contents after each
// sensor tick so loop behaviour can be eyeballed without hardware.
package main

import (
	"fmt"
	"os"
	"time"

	"repcounter-go/control"
	"repcounter-go/display"
	"repcounter-go/platform"
	"repcounter-go/status"
)

func main() {
	sim := platform.NewSim()
	c := control.New(control.DefaultConfig(), sim.Hardware(), status.New(os.Stdout))
	c.Init()

	now := time.Unix(0, 0)
	tick := func() {
		now = now.Add(100 * time.Millisecond)
		c.Step(now)
		fmt.Printf("t=%4dms display=%s count=%d state=%s\n",
			now.UnixMilli(), render(c.Digits()), c.Count(), c.State())
	}

	// Three reps in and out of the zone.
	for i := 0; i < 3; i++ {
		sim.DistanceMm = 120
		tick()
		sim.DistanceMm = 1500
		tick()
	}

	// The ranging sensor drops a reading; nothing changes.
	sim.Failing = true
	tick()
	sim.Failing = false

	// Turn the pot up and do one more rep at the wider threshold.
	sim.Raw = 0xF000
	tick()
	sim.DistanceMm = 700
	tick()
	sim.DistanceMm = 1500
	tick()

	// Reset, held across two iterations: fires once.
	sim.Pressed = true
	tick()
	tick()
	sim.Pressed = false
	tick()
}

func render(d display.Digits) string {
	out := make([]byte, 0, 5)
	for i, v := range d {
		if i == 2 {
			out = append(out, ' ')
		}
		if v == display.Blank {
			out = append(out, '_')
		} else {
			out = append(out, byte('0'+v))
		}
	}
	return string(out)
}
