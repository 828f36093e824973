// Package display encodes integer values into multiplexed 4-digit 7-segment
// output for a 3461BS-style common-anode module.
package display

import "repcounter-go/x/mathx"

// Digit is one display position: 0..9, or Blank for an unlit position.
type Digit int8

// Blank leaves a position completely dark.
const Blank Digit = -1

// Digits holds the four multiplexed positions, most significant first.
type Digits [4]Digit

// Encode splits v into four display digits with leading-zero blanking.
// v is taken modulo 10000 first, so it wraps silently rather than erroring.
// Value 0 still shows the ones digit.
func Encode(v int) Digits {
	v %= 10000
	if v < 0 {
		v += 10000
	}
	th := Digit(v / 1000)
	h := Digit(v % 1000 / 100)
	te := Digit(v % 100 / 10)
	o := Digit(v % 10)

	switch {
	case v < 10:
		return Digits{Blank, Blank, Blank, o}
	case v < 100:
		return Digits{Blank, Blank, te, o}
	case v < 1000:
		return Digits{Blank, h, te, o}
	default:
		return Digits{th, h, te, o}
	}
}

// Pack lays out the live view: threshold inches on the left pair, repetition
// count on the right pair. Each field is clamped to [0,99] independently and
// always shown as two digits, never blanked.
func Pack(thresholdIn, count int) Digits {
	t := mathx.Clamp(thresholdIn, 0, 99)
	c := mathx.Clamp(count, 0, 99)
	return Digits{Digit(t / 10), Digit(t % 10), Digit(c / 10), Digit(c % 10)}
}

// segmentPatterns maps digit value to lit segments in a..g order.
// true = segment lit (logical; electrical polarity lives in the pin binding).
var segmentPatterns = [10][7]bool{
	//  a      b      c      d      e      f      g
	0: {true, true, true, true, true, true, false},
	1: {false, true, true, false, false, false, false},
	2: {true, true, false, true, true, false, true},
	3: {true, true, true, true, false, false, true},
	4: {false, true, true, false, false, true, true},
	5: {true, false, true, true, false, true, true},
	6: {true, false, true, true, true, true, true},
	7: {true, true, true, false, false, false, false},
	8: {true, true, true, true, true, true, true},
	9: {true, true, true, true, false, true, true},
}
