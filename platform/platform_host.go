//go:build !rp2040

package platform

import (
	"io"
	"os"

	"repcounter-go/control"
	"repcounter-go/errcode"
	"repcounter-go/hw"
)

// Open on host builds returns a fresh simulation wired to stdout. The
// Descriptor is accepted for signature parity with the board build; the
// simulation has no pins to assign.
func Open(_ Descriptor) (control.Hardware, io.Writer) {
	return NewSim().Hardware(), os.Stdout
}

// Sim is an in-memory stand-in for the board wiring: tests and the host
// harness poke its inputs and inspect the recorded output levels.
type Sim struct {
	// Inputs.
	DistanceMm int32
	Failing    bool // next Measure returns errcode.SensorTimeout
	Raw        uint16
	Pressed    bool

	// Recorded outputs (logical levels).
	DigitLevel   [4]bool
	SegmentLevel [7]bool
	ToneHz       uint32
	ToneDuty     uint16
}

func NewSim() *Sim {
	return &Sim{DistanceMm: 2000, Raw: 0x8000}
}

// Hardware wraps the simulation in the controller's capability interfaces.
func (s *Sim) Hardware() control.Hardware {
	var digits [4]hw.DigitalOut
	for i := range digits {
		digits[i] = &simOut{level: &s.DigitLevel[i]}
	}
	var segments [7]hw.DigitalOut
	for i := range segments {
		segments[i] = &simOut{level: &s.SegmentLevel[i]}
	}
	return control.Hardware{
		Sensor:   (*simSensor)(s),
		Pot:      (*simPot)(s),
		Reset:    (*simButton)(s),
		Digits:   digits,
		Segments: segments,
		Tone:     (*simTone)(s),
	}
}

type simSensor Sim

func (s *simSensor) Measure() (int32, error) {
	if s.Failing {
		return 0, errcode.SensorTimeout
	}
	return s.DistanceMm, nil
}

type simPot Sim

func (s *simPot) ReadRaw() uint16 { return s.Raw }

type simButton Sim

func (s *simButton) Get() bool { return s.Pressed }

type simOut struct{ level *bool }

func (o *simOut) Set(on bool) { *o.level = on }

type simTone Sim

func (s *simTone) SetFrequency(hz uint32) { s.ToneHz = hz }
func (s *simTone) SetDuty(level uint16)   { s.ToneDuty = level }
