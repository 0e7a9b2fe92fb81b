package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubkiosk/internal/config"
	"clubkiosk/internal/deck"
)

// All fixed times fall on Wednesday 2026-08-26.
func at(h, m, s int) time.Time {
	return time.Date(2026, time.August, 26, h, m, s, 0, time.UTC)
}

func settingsAt(day, hour, minute int) config.Settings {
	s := config.DefaultSettings()
	s.AutoStartDay = day
	s.AutoStartHour = hour
	s.AutoStartMinute = minute
	return s
}

func TestNextOccurrenceLaterToday(t *testing.T) {
	now := at(17, 59, 0)
	got := NextOccurrence(settingsAt(3, 18, 0), now)
	assert.Equal(t, at(18, 0, 0), got)
}

func TestNextOccurrenceSlotJustPassed(t *testing.T) {
	now := at(18, 0, 1)
	got := NextOccurrence(settingsAt(3, 18, 0), now)
	assert.Equal(t, at(18, 0, 0).AddDate(0, 0, 7), got)
}

func TestNextOccurrenceExactlyAtSlot(t *testing.T) {
	// candidate == now counts as passed, roll a full week
	now := at(18, 0, 0)
	got := NextOccurrence(settingsAt(3, 18, 0), now)
	assert.Equal(t, at(18, 0, 0).AddDate(0, 0, 7), got)
}

func TestNextOccurrenceOtherDay(t *testing.T) {
	now := at(12, 0, 0) // Wednesday noon
	got := NextOccurrence(settingsAt(5, 9, 30), now)
	// Friday is two days out
	want := time.Date(2026, time.August, 28, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, want, got)
	assert.Equal(t, time.Friday, got.Weekday())
}

func TestNextOccurrenceDayBefore(t *testing.T) {
	now := at(12, 0, 0) // Wednesday
	got := NextOccurrence(settingsAt(2, 19, 0), now)
	// Tuesday already passed this week
	assert.Equal(t, time.Tuesday, got.Weekday())
	assert.Equal(t, now.AddDate(0, 0, 6).Day(), got.Day())
}

func TestNextOccurrenceNeverPast(t *testing.T) {
	for day := 0; day <= 6; day++ {
		for hour := 0; hour < 24; hour += 5 {
			now := at(13, 37, 21)
			got := NextOccurrence(settingsAt(day, hour, 15), now)
			assert.True(t, got.After(now), "day=%d hour=%d: %v not after %v", day, hour, got, now)
			assert.Equal(t, time.Weekday(day), got.Weekday())
			assert.Equal(t, hour, got.Hour())
			assert.Equal(t, 15, got.Minute())
		}
	}
}

// ============================================================
// Checker
// ============================================================

func gamesDeck(t *testing.T) deck.Deck {
	t.Helper()
	d, err := deck.BuildWith(config.DefaultSettings(), deck.DefaultGames())
	require.NoError(t, err)
	return d
}

func slideIndexByID(t *testing.T, d deck.Deck, id int) int {
	t.Helper()
	for i, sl := range d.Slides {
		if sl.ID == id {
			return i
		}
	}
	t.Fatalf("slide %d not in deck", id)
	return -1
}

func TestCheckerJumpsExactlyAtWindowBoundary(t *testing.T) {
	d := gamesDeck(t)
	c := NewChecker()
	idx1001 := slideIndexByID(t, d, 1001)
	idx1002 := slideIndexByID(t, d, 1002)

	// 18:29:59: still inside the first window, no jump.
	_, ok := c.JumpTarget(d, idx1001, at(18, 29, 59))
	assert.False(t, ok)

	// 18:30:00: second window opens.
	got, ok := c.JumpTarget(d, idx1001, at(18, 30, 0))
	require.True(t, ok)
	assert.Equal(t, idx1002, got)

	// 18:30:01: already fired this minute.
	_, ok = c.JumpTarget(d, idx1002, at(18, 30, 1))
	assert.False(t, ok)

	// 18:31:00: no window starts here.
	_, ok = c.JumpTarget(d, idx1002, at(18, 31, 0))
	assert.False(t, ok)
}

func TestCheckerToleratesDelayedTick(t *testing.T) {
	d := gamesDeck(t)
	c := NewChecker()
	idx1001 := slideIndexByID(t, d, 1001)

	// The first tick inside the trigger minute lands at :03 and still fires.
	got, ok := c.JumpTarget(d, 0, at(18, 10, 3))
	require.True(t, ok)
	assert.Equal(t, idx1001, got)
}

func TestCheckerFiresOncePerMinute(t *testing.T) {
	d := gamesDeck(t)
	c := NewChecker()

	fired := 0
	for sec := 0; sec < 60; sec++ {
		if _, ok := c.JumpTarget(d, 0, at(18, 10, sec)); ok {
			fired++
		}
	}
	assert.Equal(t, 1, fired)
}

func TestCheckerNoJumpWhenAlreadyOnSlide(t *testing.T) {
	d := gamesDeck(t)
	c := NewChecker()
	idx1001 := slideIndexByID(t, d, 1001)

	_, ok := c.JumpTarget(d, idx1001, at(18, 10, 0))
	assert.False(t, ok)

	// Navigating away within the same minute must not pull us back.
	_, ok = c.JumpTarget(d, idx1001+1, at(18, 10, 30))
	assert.False(t, ok)
}

func TestCheckerRefiresNextWeek(t *testing.T) {
	d := gamesDeck(t)
	c := NewChecker()

	_, ok := c.JumpTarget(d, 0, at(18, 10, 0))
	require.True(t, ok)

	nextWeek := at(18, 10, 0).AddDate(0, 0, 7)
	_, ok = c.JumpTarget(d, 0, nextWeek)
	assert.True(t, ok)
}

// ============================================================
// WindowRemaining
// ============================================================

func windowSlide(endHour, endMinute int) deck.Slide {
	return deck.Slide{
		ID:     1001,
		Window: &deck.Window{StartHour: 18, StartMinute: 10, EndHour: &endHour, EndMinute: &endMinute},
	}
}

func TestWindowRemainingBoundaries(t *testing.T) {
	sl := windowSlide(18, 30)
	tests := []struct {
		name   string
		now    time.Time
		want   int
		wantOK bool
	}{
		{"301s out", at(18, 24, 59), 0, false},
		{"300s out", at(18, 25, 0), 300, true},
		{"1s out", at(18, 29, 59), 1, true},
		{"at end", at(18, 30, 0), 0, false},
		{"past end", at(18, 30, 1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WindowRemaining(sl, tt.now)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowRemainingOpenEnded(t *testing.T) {
	sl := deck.Slide{ID: 1004, Window: &deck.Window{StartHour: 19, StartMinute: 15}}
	_, ok := WindowRemaining(sl, at(19, 20, 0))
	assert.False(t, ok)
}

func TestWindowRemainingUnscheduled(t *testing.T) {
	_, ok := WindowRemaining(deck.Slide{ID: 1}, at(18, 0, 0))
	assert.False(t, ok)
}

func TestWindowRemainingStaysOnSameDate(t *testing.T) {
	// End hour numerically earlier than now: the end stays on today's date
	// and is therefore in the past, so no indicator.
	sl := windowSlide(1, 0)
	_, ok := WindowRemaining(sl, at(23, 58, 0))
	assert.False(t, ok)
}
