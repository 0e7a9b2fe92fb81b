package schedule

import (
	"fmt"
	"time"
)

type countdownMode int

const (
	// fixedDuration decrements locally once per tick without re-reading the
	// wall clock. A delayed tick stretches the countdown instead of
	// skipping seconds.
	fixedDuration countdownMode = iota
	// targetInstant recomputes the remainder from the wall clock every
	// tick, so it self-corrects after sleep or clock skew.
	targetInstant
)

// Countdown tracks the remaining time to a completion instant and fires the
// completion signal exactly once.
type Countdown struct {
	mode      countdownMode
	target    time.Time
	remaining int // seconds, never negative
	fired     bool
}

// NewFixedCountdown starts a manually triggered countdown of the given
// duration.
func NewFixedCountdown(minutes int) *Countdown {
	return &Countdown{mode: fixedDuration, remaining: minutes * 60}
}

// NewTargetCountdown starts a countdown to a fixed instant.
func NewTargetCountdown(target, now time.Time) *Countdown {
	return &Countdown{
		mode:      targetInstant,
		target:    target,
		remaining: secondsUntil(target, now),
	}
}

// Tick advances the countdown one second. It returns true exactly once, on
// the tick where the remainder reaches zero; the caller transitions away
// and the signal never repeats.
func (c *Countdown) Tick(now time.Time) bool {
	switch c.mode {
	case fixedDuration:
		if c.remaining > 0 {
			c.remaining--
		}
	case targetInstant:
		if r := secondsUntil(c.target, now); r < c.remaining {
			c.remaining = r
		}
	}

	if c.remaining == 0 && !c.fired {
		c.fired = true
		return true
	}
	return false
}

// Skip short-circuits the countdown on user request. It returns true when
// the completion signal fires now, false if it already fired.
func (c *Countdown) Skip() bool {
	if c.fired {
		return false
	}
	c.remaining = 0
	c.fired = true
	return true
}

func (c *Countdown) Remaining() int { return c.remaining }
func (c *Countdown) Done() bool     { return c.fired }

// Urgent reports the under-one-minute visual state.
func (c *Countdown) Urgent() bool {
	return c.remaining > 0 && c.remaining < 60
}

// Until returns the whole seconds from now to target, rounded up, never
// negative.
func Until(target, now time.Time) int {
	return secondsUntil(target, now)
}

func secondsUntil(target, now time.Time) int {
	d := target.Sub(now)
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

// FormatRemaining renders a remainder for display: day scale as "Dd Hh Mm",
// hour scale as "H:MM:SS", otherwise "M:SS".
func FormatRemaining(secs int) string {
	if secs < 0 {
		secs = 0
	}
	switch {
	case secs >= 86400:
		return fmt.Sprintf("%dd %dh %dm", secs/86400, secs%86400/3600, secs%3600/60)
	case secs >= 3600:
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
	default:
		return fmt.Sprintf("%d:%02d", secs/60, secs%60)
	}
}
