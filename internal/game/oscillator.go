package game

import "github.com/mlevkov/stacktower/internal/core"

// Oscillator moves the live platform one column at a time, bouncing off
// the grid edges. Steps are paced by accumulating elapsed time against the
// current interval, which shrinks geometrically with every landing.
type Oscillator struct {
	span     core.Span
	right    bool
	timer    float64
	interval float64
}

// NewOscillator creates an oscillator over the given span, moving right.
func NewOscillator(span core.Span, interval float64) *Oscillator {
	return &Oscillator{span: span, right: true, interval: interval}
}

// Span returns the current platform columns.
func (o *Oscillator) Span() core.Span {
	return o.span
}

// Interval returns the current seconds-per-step period.
func (o *Oscillator) Interval() float64 {
	return o.interval
}

// Place repositions the oscillator after a landing. Direction and the
// partially elapsed step timer carry over between rows.
func (o *Oscillator) Place(span core.Span) {
	o.span = span
}

// Accelerate multiplies the step interval. Factors below one speed the
// platform up; no floor is enforced, so the interval can shrink toward
// zero at high levels.
func (o *Oscillator) Accelerate(factor float64) {
	o.interval *= factor
}

// Update accumulates dt and, when a full interval has elapsed, advances
// the platform one column within the row: the trailing cell deactivates
// and the new leading cell activates. When the next step would leave
// [0, gridWidth) the direction flips instead and the platform stays put
// for that step, so it never visits an out-of-range column. Returns
// whether the row's occupancy changed.
func (o *Oscillator) Update(dt float64, row []Block, gridWidth int) bool {
	o.timer += dt
	if o.timer < o.interval {
		return false
	}
	o.timer = 0

	if row == nil {
		return false
	}

	if o.right {
		if o.span.End() < gridWidth {
			if o.span.Pos >= 0 && o.span.Pos < len(row) {
				row[o.span.Pos].Active = false
			}
			o.span.Pos++
			if lead := o.span.End() - 1; lead >= 0 && lead < len(row) {
				row[lead].Active = true
			}
			return true
		}
		o.right = false
		return false
	}

	if o.span.Pos > 0 {
		if lead := o.span.End() - 1; lead >= 0 && lead < len(row) {
			row[lead].Active = false
		}
		o.span.Pos--
		if o.span.Pos < len(row) {
			row[o.span.Pos].Active = true
		}
		return true
	}
	o.right = true
	return false
}
