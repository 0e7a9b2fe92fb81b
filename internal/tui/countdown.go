package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"clubkiosk/internal/config"
	"clubkiosk/internal/schedule"
)

// countdownModel runs the pre-meeting countdown. A manual start counts a
// fixed duration down tick by tick; an auto start counts toward the fixed
// instant "occurrence + duration", so it stays correct across sleep.
type countdownModel struct {
	clock  clockwork.Clock
	width  int
	height int

	engine *schedule.Countdown
	auto   bool
}

func newCountdownModel(clk clockwork.Clock, s config.Settings, auto bool) countdownModel {
	m := countdownModel{clock: clk, auto: auto}
	if auto {
		now := clk.Now()
		target := now.Add(time.Duration(s.CountdownMinutes) * time.Minute)
		m.engine = schedule.NewTargetCountdown(target, now)
	} else {
		m.engine = schedule.NewFixedCountdown(s.CountdownMinutes)
	}
	return m
}

func (m *countdownModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m countdownModel) update(msg tea.Msg) (countdownModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.engine.Tick(m.clock.Now()) {
			log.Info().Msg("countdown complete")
			return m, func() tea.Msg { return countdownDoneMsg{} }
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Advance):
			return m.skip()
		case key.Matches(msg, keys.Cancel):
			log.Info().Msg("countdown cancelled")
			return m, func() tea.Msg { return countdownCancelledMsg{} }
		}

	case tea.MouseMsg:
		// Clicking the time display skips the rest of the countdown.
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.skip()
		}
	}
	return m, nil
}

func (m countdownModel) skip() (countdownModel, tea.Cmd) {
	if m.engine.Skip() {
		log.Info().Msg("countdown skipped")
		return m, func() tea.Msg { return countdownDoneMsg{} }
	}
	return m, nil
}

func (m countdownModel) view() string {
	heading := headingStyle.Render("CLUB STARTS IN")

	style := countdownStyle
	if m.engine.Urgent() {
		style = urgentStyle
	}
	remaining := style.Render(schedule.FormatRemaining(m.engine.Remaining()))

	hint := mutedStyle.Render("space or click: skip   esc: cancel")

	return lipgloss.JoinVertical(lipgloss.Center,
		heading,
		"",
		remaining,
		"",
		"",
		hint,
	)
}
