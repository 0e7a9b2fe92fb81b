// Package schedule holds the timing logic that decides what the kiosk
// shows: the next weekly meeting occurrence, the pre-meeting countdown, and
// wall-clock driven slide jumps during the slideshow.
package schedule

import (
	"time"

	"clubkiosk/internal/config"
	"clubkiosk/internal/deck"
)

// NextOccurrence computes the next wall-clock instant of the configured
// weekly auto-start slot. If today is the configured day but the slot has
// already passed, it rolls a full week. The result is never in the past,
// and must be recomputed whenever settings change.
func NextOccurrence(s config.Settings, now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(),
		s.AutoStartHour, s.AutoStartMinute, 0, 0, now.Location())

	daysUntil := (s.AutoStartDay - int(now.Weekday()) + 7) % 7
	if daysUntil == 0 && !candidate.After(now) {
		daysUntil = 7
	}
	return candidate.AddDate(0, 0, daysUntil)
}

// Checker decides whether the slideshow should jump to a scheduled slide.
// Fired triggers are keyed by slide index and minute, so a delayed tick
// still fires within the scheduled minute, and fires at most once.
type Checker struct {
	fired map[int]string
}

func NewChecker() *Checker {
	return &Checker{fired: make(map[int]string)}
}

// JumpTarget returns the index of a slide whose window starts at the
// current minute, if the deck is not already showing it. Evaluated once per
// tick. Deck construction guarantees at most one slide per start minute.
func (c *Checker) JumpTarget(d deck.Deck, current int, now time.Time) (int, bool) {
	minute := now.Format("2006-01-02 15:04")
	for i, sl := range d.Slides {
		w := sl.Window
		if w == nil || w.StartHour != now.Hour() || w.StartMinute != now.Minute() {
			continue
		}
		if c.fired[i] == minute {
			continue
		}
		c.fired[i] = minute
		if i == current {
			continue
		}
		return i, true
	}
	return 0, false
}

// WindowRemaining returns the seconds until the slide's window closes when
// the "time remaining" indicator should show, which is only for a
// remainder in (0, 300] seconds. The end instant stays on today's calendar
// date even if the end hour is numerically earlier than now.
func WindowRemaining(sl deck.Slide, now time.Time) (int, bool) {
	w := sl.Window
	if w == nil || w.OpenEnded() {
		return 0, false
	}
	endMinute := 0
	if w.EndMinute != nil {
		endMinute = *w.EndMinute
	}
	end := time.Date(now.Year(), now.Month(), now.Day(), *w.EndHour, endMinute, 0, 0, now.Location())

	diff := int(end.Sub(now) / time.Second)
	if diff > 0 && diff <= 300 {
		return diff, true
	}
	return 0, false
}
