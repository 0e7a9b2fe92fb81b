package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"clubkiosk/internal/config"
	"clubkiosk/internal/schedule"
)

// standbyModel shows the idle clock and waits for either a manual start or
// the weekly auto-start occurrence.
type standbyModel struct {
	clock  clockwork.Clock
	width  int
	height int

	settings config.Settings
	next     time.Time // next auto-start occurrence
}

func newStandbyModel(clk clockwork.Clock, s config.Settings) standbyModel {
	now := clk.Now()
	next := schedule.NextOccurrence(s, now)
	log.Debug().Time("next", next).Msg("standby armed")
	return standbyModel{clock: clk, settings: s, next: next}
}

func (m *standbyModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m standbyModel) update(msg tea.Msg) (standbyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Trigger on "now has reached the occurrence" rather than an exact
		// second match, so a delayed tick cannot skip the slot.
		now := m.clock.Now()
		if !now.Before(m.next) {
			log.Info().Time("occurrence", m.next).Msg("weekly auto-start triggered")
			m.next = schedule.NextOccurrence(m.settings, now)
			return m, func() tea.Msg { return startCountdownMsg{auto: true} }
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			return m, func() tea.Msg { return startCountdownMsg{} }
		case key.Matches(msg, keys.Settings):
			return m, func() tea.Msg { return openSettingsMsg{} }
		}
	}
	return m, nil
}

func (m standbyModel) view() string {
	now := m.clock.Now()

	date := dateStyle.Render(formatDate(now))
	clock := clockStyle.Render(formatClock(now))

	scheduled := mutedStyle.Render(
		fmt.Sprintf("Automatic countdown scheduled for %s", formatTrigger(m.settings)),
	)
	untilNext := mutedStyle.Render(
		fmt.Sprintf("Next meeting in %s", schedule.FormatRemaining(schedule.Until(m.next, now))),
	)
	startHint := accentStyle.Render(
		fmt.Sprintf("Press s to start the %d-minute timer now", m.settings.CountdownMinutes),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		date,
		"",
		clock,
		"",
		"",
		scheduled,
		untilNext,
		"",
		startHint,
	)
}
