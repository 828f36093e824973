package control

// ResetButton fires once on the released→pressed edge; holding the button
// does not re-fire. Edge detection against the previous sample is the only
// debounce: the physical interval between loop iterations already exceeds
// this button's contact-bounce duration, which the wiring relies on.
type ResetButton struct {
	lastPressed bool
}

// Fired consumes one logical sample (true = pressed) and reports whether a
// reset should happen now.
func (b *ResetButton) Fired(pressed bool) bool {
	fired := pressed && !b.lastPressed
	b.lastPressed = pressed
	return fired
}
