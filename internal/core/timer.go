package core

import "time"

// DefaultTPS is the tick rate used when none is configured: one tick every
// 80ms.
const DefaultTPS = 12.5

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// independent of the caller's frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps float64) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps float64) {
	f.step = TickInterval(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// TickInterval converts a ticks-per-second rate into a tick duration, falling
// back to DefaultTPS for non-positive rates.
func TickInterval(tps float64) time.Duration {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return time.Duration(float64(time.Second) / tps)
}
