package display

import "repcounter-go/hw"

// Mux time-multiplexes one of the four digit positions per refresh.
// It must be refreshed at a fixed cadence (the scheduler's display interval,
// ~2 ms): slower produces visible flicker and uneven brightness, faster
// steals cycles from sensor I/O.
type Mux struct {
	digits   [4]hw.DigitalOut
	segments [7]hw.DigitalOut
	pos      int
}

func NewMux(digits [4]hw.DigitalOut, segments [7]hw.DigitalOut) *Mux {
	return &Mux{digits: digits, segments: segments}
}

// Refresh drives the digit at the current position and advances to the next.
// A Blank position leaves everything dark for its slot.
func (m *Mux) Refresh(d Digits) {
	for _, p := range m.digits {
		p.Set(false)
	}
	for _, p := range m.segments {
		p.Set(false)
	}
	if v := d[m.pos]; v != Blank {
		pat := segmentPatterns[v]
		for i := range pat {
			m.segments[i].Set(pat[i])
		}
		m.digits[m.pos].Set(true)
	}
	m.pos = (m.pos + 1) % 4
}
