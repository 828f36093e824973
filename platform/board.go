// Package platform binds the controller's capability interfaces to real
// hardware on rp2040 builds and to an in-memory simulation everywhere else.
package platform

// Descriptor names the board wiring for one counter build.
// Pin numbers are GP numbers on the Pico.
type Descriptor struct {
	Name string

	SonarTrigger int
	SonarEcho    int
	Buzzer       int
	ResetButton  int // pull-up, pressed reads low
	Pot          int // must be ADC-capable (GP26..GP29)

	DigitPins   [4]int // digit selects, most significant first; active-low
	SegmentPins [7]int // segments a..g; active-low

	UARTTx int
	UARTRx int
}

// Pico is the reference wiring for the repetition counter prototype.
var Pico = Descriptor{
	Name:         "pico_repcounter",
	SonarTrigger: 2,
	SonarEcho:    3,
	Buzzer:       5,
	ResetButton:  22,
	Pot:          26,
	DigitPins:    [4]int{4, 6, 7, 21},
	SegmentPins:  [7]int{8, 9, 10, 11, 12, 13, 14},
	UARTTx:       0,
	UARTRx:       1,
}
