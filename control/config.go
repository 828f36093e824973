// Package control implements the repetition counter's cooperative control
// loop: threshold mapping, zone detection with hysteresis, reset handling,
// the non-blocking beep, and the scheduler that dispatches the display and
// sensor at their fixed cadences from a single execution context.
package control

import (
	"time"

	"repcounter-go/hw"
)

// Config carries every interval and calibration constant so the loop's
// deadlines are auditable in one place.
type Config struct {
	// DisplayInterval is the per-digit multiplex cadence: 2 ms per digit is
	// ~125 Hz full refresh. This is a deadline, not a suggestion.
	DisplayInterval time.Duration
	// SensorInterval paces ranging and threshold sampling (10 Hz).
	SensorInterval time.Duration

	// BeepDuration is how long a repetition tone sounds.
	BeepDuration time.Duration
	// BeepFrequencyHz is the tone pitch.
	BeepFrequencyHz uint32
	// BeepDuty is the tone level while sounding (0..hw.ToneTop).
	BeepDuty uint16

	// MinDistanceMm/MaxDistanceMm calibrate the linear pot-to-threshold map:
	// raw 0 maps to the minimum, full scale to the maximum.
	MinDistanceMm uint16
	MaxDistanceMm uint16

	// MmPerDisplayInch converts the mm threshold to display inches. The true
	// constant is 25.4; 25 is deliberately coarse so adjacent pot readings
	// cannot make the displayed tens/ones jitter by one.
	MmPerDisplayInch int32

	// PotTolerance is the raw-count dead band for the status-channel change
	// gate. It only throttles reporting; control and display always use the
	// latest reading.
	PotTolerance uint16
}

func DefaultConfig() Config {
	return Config{
		DisplayInterval:  2 * time.Millisecond,
		SensorInterval:   100 * time.Millisecond,
		BeepDuration:     300 * time.Millisecond,
		BeepFrequencyHz:  4000,
		BeepDuty:         hw.ToneTop / 2,
		MinDistanceMm:    50,  // 5.0 cm
		MaxDistanceMm:    920, // 92.0 cm
		MmPerDisplayInch: 25,
		PotTolerance:     1000,
	}
}
