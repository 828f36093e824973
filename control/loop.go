package control

import (
	"context"
	"time"

	"repcounter-go/display"
	"repcounter-go/hw"
	"repcounter-go/status"
)

// Hardware bundles the injected capabilities the controller drives.
type Hardware struct {
	Sensor   hw.DistanceSensor
	Pot      hw.AnalogIn
	Reset    hw.DigitalIn // logical: true = pressed
	Digits   [4]hw.DigitalOut
	Segments [7]hw.DigitalOut
	Tone     hw.ToneOutput
}

// Controller owns all mutable loop state. There is exactly one execution
// context: subsystems run to completion one at a time, so mutual exclusion
// is structural and nothing here needs a lock.
type Controller struct {
	cfg Config

	sensor hw.DistanceSensor
	pot    hw.AnalogIn
	reset  hw.DigitalIn
	mux    *display.Mux
	beeper *Beeper
	rep    *status.Reporter

	count       int
	state       DetectState
	thresholdMm int32
	digits      display.Digits

	gate PotGate
	btn  ResetButton

	lastDisplay time.Time
	lastSensor  time.Time
}

func New(cfg Config, h Hardware, rep *status.Reporter) *Controller {
	if rep == nil {
		rep = status.Nop()
	}
	return &Controller{
		cfg:    cfg,
		sensor: h.Sensor,
		pot:    h.Pot,
		reset:  h.Reset,
		mux:    display.NewMux(h.Digits, h.Segments),
		beeper: NewBeeper(h.Tone, cfg),
		rep:    rep,
		gate:   NewPotGate(cfg.PotTolerance),
	}
}

// Init samples the pot once so the display shows a threshold before the
// first sensor tick, and announces startup on the status channel.
func (c *Controller) Init() {
	raw := c.pot.ReadRaw()
	c.thresholdMm = c.cfg.MapThreshold(raw)
	c.digits = display.Pack(c.cfg.DisplayInches(c.thresholdMm), c.count)
	c.rep.Startup()
}

// Run busy-polls the monotonic clock and steps the loop until ctx is
// cancelled. On hardware it never returns.
func (c *Controller) Run(ctx context.Context) {
	for ctx.Err() == nil {
		c.Step(time.Now())
	}
}

// Step is one scheduler iteration. The beep timeout and reset edge are
// checked unconditionally (cheap, latency-sensitive); display and sensor
// run only when their intervals have elapsed. Every call must return
// promptly: nothing in here may block.
func (c *Controller) Step(now time.Time) {
	c.beeper.Tick(now)

	if now.Sub(c.lastDisplay) >= c.cfg.DisplayInterval {
		c.mux.Refresh(c.digits)
		c.lastDisplay = now
	}

	if c.btn.Fired(c.reset.Get()) {
		c.count = 0
		c.digits = display.Pack(c.cfg.DisplayInches(c.thresholdMm), c.count)
		c.rep.CounterReset()
	}

	if now.Sub(c.lastSensor) >= c.cfg.SensorInterval {
		c.sensorTick(now)
		c.lastSensor = now
	}
}

// sensorTick ranges, remaps the threshold, and runs the detection edge.
// A transient ranging failure skips the whole tick: state, count, and the
// display stay exactly as they were, and we try again next interval.
func (c *Controller) sensorTick(now time.Time) {
	mm, err := c.sensor.Measure()
	if err != nil {
		return
	}

	raw := c.pot.ReadRaw()
	c.thresholdMm = c.cfg.MapThreshold(raw)
	if c.gate.Changed(raw) {
		c.rep.Threshold(c.thresholdMm, c.cfg.MmPerDisplayInch)
	}

	next, counted := Next(c.state, mm, c.thresholdMm)
	c.state = next
	if counted {
		c.count++
		c.rep.Repetition(c.count)
		c.beeper.Start(now)
	}

	c.digits = display.Pack(c.cfg.DisplayInches(c.thresholdMm), c.count)
}

// Count returns the current repetition count.
func (c *Controller) Count() int { return c.count }

// Digits returns the currently displayed digits.
func (c *Controller) Digits() display.Digits { return c.digits }

// State returns the detection state.
func (c *Controller) State() DetectState { return c.state }
