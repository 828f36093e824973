package control

import (
	"time"

	"repcounter-go/hw"
)

// Beeper drives a fixed-duration repetition tone without ever blocking the
// loop. Start while a tone is sounding is a no-op: no overlap, no extension.
type Beeper struct {
	tone     hw.ToneOutput
	freqHz   uint32
	duty     uint16
	duration time.Duration

	active  bool
	started time.Time
}

func NewBeeper(tone hw.ToneOutput, cfg Config) *Beeper {
	return &Beeper{
		tone:     tone,
		freqHz:   cfg.BeepFrequencyHz,
		duty:     cfg.BeepDuty,
		duration: cfg.BeepDuration,
	}
}

// Start begins the tone if none is sounding.
func (b *Beeper) Start(now time.Time) {
	if b.active {
		return
	}
	b.tone.SetFrequency(b.freqHz)
	b.tone.SetDuty(b.duty)
	b.started = now
	b.active = true
}

// Tick silences the tone once its duration has elapsed. It runs every loop
// iteration, independent of the display and sensor cadences, so tone-off
// lands close to its deadline regardless of what else ran this iteration.
func (b *Beeper) Tick(now time.Time) {
	if b.active && now.Sub(b.started) >= b.duration {
		b.tone.SetDuty(0)
		b.active = false
	}
}

func (b *Beeper) Active() bool { return b.active }
