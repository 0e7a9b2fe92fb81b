package tui

import (
	"fmt"
	"time"

	"clubkiosk/internal/config"
)

// mode is the top-level presentation state. Exactly one mode is active at a
// time, owned by the root App model.
type mode int

const (
	modeStandby mode = iota
	modeCountdown
	modeSlideshow
	modeSettings
)

var modeNames = []string{"Standby", "Countdown", "Slideshow", "Settings"}

func (m mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// --- Messages ---

type tickMsg time.Time

// startCountdownMsg asks the app to enter Countdown mode. auto is set when
// the weekly schedule fired rather than the operator.
type startCountdownMsg struct {
	auto bool
}

type countdownDoneMsg struct{}
type countdownCancelledMsg struct{}

type openSettingsMsg struct{}

type settingsSavedMsg struct {
	settings config.Settings
}

type settingsCancelledMsg struct{}

type slideshowExitedMsg struct{}

// --- Helpers ---

func formatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

func formatClockSeconds(t time.Time) string {
	return t.Format("3:04:05 PM")
}

func formatDate(t time.Time) string {
	return t.Format("Monday, January 2")
}

// formatTrigger renders the configured weekly slot, e.g. "Wednesday 6:00 PM".
func formatTrigger(s config.Settings) string {
	t := time.Date(0, time.January, 1, s.AutoStartHour, s.AutoStartMinute, 0, 0, time.UTC)
	return fmt.Sprintf("%s %s", time.Weekday(s.AutoStartDay), t.Format("3:04 PM"))
}
