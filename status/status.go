// Package status emits human-readable lines on an optional channel (UART on
// the board, stdout on host). It is purely observational: the control loop
// never reads anything back, and a nil writer drops every line.
package status

import (
	"io"

	"repcounter-go/x/conv"
)

type Reporter struct {
	w io.Writer
}

func New(w io.Writer) *Reporter { return &Reporter{w: w} }

// Nop returns a reporter that discards everything.
func Nop() *Reporter { return &Reporter{} }

// Startup announces the counter is running.
func (r *Reporter) Startup() { r.line("Starting Counter") }

// CounterReset announces a reset-button zeroing.
func (r *Reporter) CounterReset() { r.line("Counter Reset") }

// Threshold reports a threshold change in display inches with one decimal,
// e.g. "Threshold: 12.3 in". mmPerInch is the loop's coarsened divisor so
// the reported figure matches what the display derives from.
func (r *Reporter) Threshold(mm, mmPerInch int32) {
	if r.w == nil || mmPerInch == 0 {
		return
	}
	tenths := mm * 10 / mmPerInch
	var num [20]byte
	buf := make([]byte, 0, 32)
	buf = append(buf, "Threshold: "...)
	buf = append(buf, conv.Itoa(num[:], int64(tenths/10))...)
	buf = append(buf, '.')
	buf = append(buf, conv.Itoa(num[:], int64(tenths%10))...)
	buf = append(buf, " in\n"...)
	r.w.Write(buf)
}

// Repetition reports one detected repetition, e.g. "Rep #3 detected".
func (r *Reporter) Repetition(n int) {
	if r.w == nil {
		return
	}
	var num [20]byte
	buf := make([]byte, 0, 32)
	buf = append(buf, "Rep #"...)
	buf = append(buf, conv.Itoa(num[:], int64(n))...)
	buf = append(buf, " detected\n"...)
	r.w.Write(buf)
}

func (r *Reporter) line(s string) {
	if r.w == nil {
		return
	}
	buf := make([]byte, 0, len(s)+1)
	buf = append(buf, s...)
	buf = append(buf, '\n')
	r.w.Write(buf)
}
