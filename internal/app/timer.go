package app

import "time"

// FixedStep paces the headless run loop at a fixed ticks-per-second rate.
// Elapsed real time is banked and each full period grants one tick. A stall
// (terrain regeneration, a scheduler hiccup) is forgiven beyond one extra
// banked period: late ticks are dropped, never replayed as a burst, the same
// policy the session applies to reentrant ticks.
type FixedStep struct {
	period time.Duration
	banked time.Duration
	last   time.Time
}

// NewFixedStep returns a controller targeting the given TPS, primed so the
// first ShouldStep call is granted immediately.
func NewFixedStep(tps int) *FixedStep {
	f := &FixedStep{}
	f.SetTPS(tps)
	f.banked = f.period
	return f
}

// SetTPS changes the tick rate; rates below one fall back to 30.
func (f *FixedStep) SetTPS(tps int) {
	if tps < 1 {
		tps = 30
	}
	f.period = time.Second / time.Duration(tps)
}

// ShouldStep reports whether a tick's worth of time has elapsed, spending
// one banked period when it has.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if !f.last.IsZero() {
		f.banked += now.Sub(f.last)
	}
	f.last = now
	if limit := 2 * f.period; f.banked > limit {
		f.banked = limit
	}
	if f.banked < f.period {
		return false
	}
	f.banked -= f.period
	return true
}
