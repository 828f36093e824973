// Package hw declares the capability interfaces the control loop is wired
// against. Implementations live in platform bindings (machine pins on the
// rp2040 build, an in-memory simulation on host builds); the core never
// touches hardware registers directly.
package hw

// ToneTop is the full-scale logical duty level for a ToneOutput.
// Implementations scale it to whatever resolution the hardware carries.
const ToneTop = 65535

// DistanceSensor returns a range measurement in millimetres.
// A transient ranging failure (no echo) is reported as errcode.SensorTimeout;
// callers are expected to skip the reading and retry on their next tick.
type DistanceSensor interface {
	Measure() (mm int32, err error)
}

// AnalogIn reads a full-scale analog value (0..65535). Never fails.
type AnalogIn interface {
	ReadRaw() uint16
}

// DigitalIn reads a logical input level. Electrical polarity (pull-up
// inversion) is resolved by the binding, so true always means "asserted".
type DigitalIn interface {
	Get() bool
}

// DigitalOut drives a logical output level. Set(true) energises the line;
// active-low wiring (common-anode display lines) is inverted in the binding.
type DigitalOut interface {
	Set(on bool)
}

// ToneOutput is a square-wave output with independently settable frequency
// and duty. Duty 0 is silent; ToneTop/2 is a full-volume tone.
type ToneOutput interface {
	SetFrequency(hz uint32)
	SetDuty(level uint16)
}
