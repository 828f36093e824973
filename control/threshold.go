package control

import "repcounter-go/x/mathx"

// MapThreshold converts a raw potentiometer reading (full scale 0..65535)
// to a threshold distance in millimetres, linear between the calibration
// endpoints. Raw 0 yields exactly MinDistanceMm, full scale MaxDistanceMm.
func (cfg Config) MapThreshold(raw uint16) int32 {
	return int32(mathx.MapU16(raw, 0, 0xFFFF, cfg.MinDistanceMm, cfg.MaxDistanceMm))
}

// DisplayInches coarsens a mm threshold to whole display inches. Integer
// division by the coarse MmPerDisplayInch divisor is what keeps adjacent
// raw readings from flipping the displayed value back and forth.
func (cfg Config) DisplayInches(mm int32) int {
	return int(mm / cfg.MmPerDisplayInch)
}

// PotGate throttles threshold status reporting: it fires only when the raw
// reading has moved more than the tolerance since the last report. It never
// gates control logic or the display.
type PotGate struct {
	tolerance int32
	last      int32 // last reported raw; -1 until the first report
}

func NewPotGate(tolerance uint16) PotGate {
	return PotGate{tolerance: int32(tolerance), last: -1}
}

// Changed reports whether raw differs enough from the last reported value,
// and records it as reported when it does. The first reading always fires.
func (g *PotGate) Changed(raw uint16) bool {
	if g.last >= 0 && mathx.Abs(int32(raw)-g.last) <= g.tolerance {
		return false
	}
	g.last = int32(raw)
	return true
}
