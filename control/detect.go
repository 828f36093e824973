package control

// DetectState tracks whether the measured object is inside the threshold
// zone. The Outside→Inside edge is the only counting event: staying Inside
// across many samples is one physical repetition, not many.
type DetectState uint8

const (
	Outside DetectState = iota
	Inside
)

func (s DetectState) String() string {
	if s == Inside {
		return "inside"
	}
	return "outside"
}

// Next is the pure transition function, invoked once per sensor tick with a
// valid reading. It returns the successor state and whether this transition
// counts a repetition. Ticks with a failed reading must not call it at all.
func Next(s DetectState, distanceMm, thresholdMm int32) (DetectState, bool) {
	detected := distanceMm <= thresholdMm
	switch {
	case detected && s == Outside:
		return Inside, true
	case !detected && s == Inside:
		return Outside, false
	default:
		return s, false
	}
}
