//go:build rp2040

package platform

import (
	"io"
	"machine"

	"github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/hcsr04"

	"repcounter-go/control"
	"repcounter-go/errcode"
	"repcounter-go/hw"
	"repcounter-go/x/timex"
)

// Open configures the wiring in d and returns the capability set plus the
// status channel writer (UART0).
func Open(d Descriptor) (control.Hardware, io.Writer) {
	machine.InitADC()

	var digits [4]hw.DigitalOut
	for i, n := range d.DigitPins {
		digits[i] = newActiveLowOut(machine.Pin(n))
	}
	var segments [7]hw.DigitalOut
	for i, n := range d.SegmentPins {
		segments[i] = newActiveLowOut(machine.Pin(n))
	}

	btn := machine.Pin(d.ResetButton)
	btn.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	adc := machine.ADC{Pin: machine.Pin(d.Pot)}
	adc.Configure(machine.ADCConfig{})

	dev := hcsr04.New(machine.Pin(d.SonarTrigger), machine.Pin(d.SonarEcho))
	dev.Configure()

	h := control.Hardware{
		Sensor:   &sonar{dev: dev},
		Pot:      picoADC{adc: adc},
		Reset:    pullUpButton{p: btn},
		Digits:   digits,
		Segments: segments,
		Tone:     newBuzzer(d.Buzzer),
	}

	uart := uartx.UART0
	uart.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.Pin(d.UARTTx),
		RX:       machine.Pin(d.UARTRx),
	})
	return h, uart
}

// activeLowOut drives a common-anode display line: logical true asserts the
// electrical low level.
type activeLowOut struct{ p machine.Pin }

func newActiveLowOut(p machine.Pin) activeLowOut {
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.High() // deasserted
	return activeLowOut{p: p}
}

func (o activeLowOut) Set(on bool) { o.p.Set(!on) }

// pullUpButton inverts the pull-up wiring so the core sees logical pressed.
type pullUpButton struct{ p machine.Pin }

func (b pullUpButton) Get() bool { return !b.p.Get() }

type picoADC struct{ adc machine.ADC }

func (a picoADC) ReadRaw() uint16 { return a.adc.Get() }

// sonar adapts the HC-SR04 driver: a zero reading means the echo window
// expired, which surfaces as the transient errcode.SensorTimeout.
type sonar struct{ dev hcsr04.Device }

func (s *sonar) Measure() (int32, error) {
	mm := s.dev.ReadDistance()
	if mm <= 0 {
		return 0, errcode.SensorTimeout
	}
	return mm, nil
}

// -----------------------------------------------------------------------------
// Buzzer PWM
// -----------------------------------------------------------------------------

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Top() uint32
	Set(channel uint8, value uint32)
}

// pwmGroupForPin selects the controller for a pin's slice (RP2040: slice =
// (gpio >> 1) & 7, channel = gpio & 1).
func pwmGroupForPin(pin int) (pwmCtrl, uint8) {
	ch := uint8(pin & 1)
	switch (pin >> 1) & 7 {
	case 0:
		return machine.PWM0, ch
	case 1:
		return machine.PWM1, ch
	case 2:
		return machine.PWM2, ch
	case 3:
		return machine.PWM3, ch
	case 4:
		return machine.PWM4, ch
	case 5:
		return machine.PWM5, ch
	case 6:
		return machine.PWM6, ch
	default:
		return machine.PWM7, ch
	}
}

// buzzer owns one PWM channel. SetFrequency reconfigures the slice period;
// SetDuty scales the logical 0..hw.ToneTop level to the hardware top.
type buzzer struct {
	ctrl  pwmCtrl
	chIdx uint8
	pin   machine.Pin
	duty  uint16
}

func newBuzzer(pin int) *buzzer {
	ctrl, ch := pwmGroupForPin(pin)
	b := &buzzer{ctrl: ctrl, chIdx: ch, pin: machine.Pin(pin)}
	b.SetFrequency(440)
	return b
}

func (b *buzzer) SetFrequency(hz uint32) {
	_ = b.ctrl.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(hz)})
	b.pin.Configure(machine.PinConfig{Mode: machine.PinPWM})
	b.apply()
}

func (b *buzzer) SetDuty(level uint16) {
	b.duty = level
	b.apply()
}

func (b *buzzer) apply() {
	top := b.ctrl.Top()
	b.ctrl.Set(b.chIdx, uint32(b.duty)*top/hw.ToneTop)
}
