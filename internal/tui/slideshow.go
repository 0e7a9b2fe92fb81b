package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"clubkiosk/internal/deck"
	"clubkiosk/internal/schedule"
)

// transitionGuard blocks duplicate slide-change triggers while a change is
// settling.
const transitionGuard = 500 * time.Millisecond

// slideshowModel walks the deck. Navigation is manual (keys, mouse) plus
// two automatic paths: wall-clock scheduled jumps and per-slide
// auto-advance durations.
type slideshowModel struct {
	clock  clockwork.Clock
	width  int
	height int

	deck    deck.Deck
	index   int
	checker *schedule.Checker

	secondsOnSlide  int
	transitionUntil time.Time
	confirmingExit  bool
}

func newSlideshowModel(clk clockwork.Clock, d deck.Deck) slideshowModel {
	return slideshowModel{
		clock:   clk,
		deck:    d,
		checker: schedule.NewChecker(),
	}
}

func (m *slideshowModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m slideshowModel) current() deck.Slide {
	return m.deck.Slides[m.index]
}

func (m slideshowModel) inTransition() bool {
	return m.clock.Now().Before(m.transitionUntil)
}

func (m slideshowModel) update(msg tea.Msg) (slideshowModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.tick(), nil

	case tea.KeyMsg:
		if m.confirmingExit {
			switch {
			case key.Matches(msg, keys.Confirm):
				log.Info().Msg("slideshow exited")
				return m, func() tea.Msg { return slideshowExitedMsg{} }
			default:
				m.confirmingExit = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Advance):
			return m.next(), nil
		case key.Matches(msg, keys.Back):
			return m.prev(), nil
		case key.Matches(msg, keys.Cancel):
			m.confirmingExit = true
			return m, nil
		}

	case tea.MouseMsg:
		if m.confirmingExit {
			return m, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			// Left third retreats, right third advances.
			switch {
			case msg.X > m.width*2/3:
				return m.next(), nil
			case msg.X < m.width/3:
				return m.prev(), nil
			}
		}
	}
	return m, nil
}

// tick runs the once-per-second schedule check and the per-slide
// auto-advance.
func (m slideshowModel) tick() slideshowModel {
	now := m.clock.Now()
	m.secondsOnSlide++

	if target, ok := m.checker.JumpTarget(m.deck, m.index, now); ok {
		log.Info().Int("slide", m.deck.Slides[target].ID).Msg("scheduled slide jump")
		return m.changeSlide(target)
	}

	sl := m.current()
	if sl.Duration > 0 && !sl.Scheduled() && m.index < m.deck.LastIndex() && m.secondsOnSlide >= sl.Duration {
		return m.changeSlide(m.index + 1)
	}
	return m
}

func (m slideshowModel) next() slideshowModel {
	if m.index < m.deck.LastIndex() && !m.inTransition() {
		return m.changeSlide(m.index + 1)
	}
	return m
}

func (m slideshowModel) prev() slideshowModel {
	if m.index > 0 && !m.inTransition() {
		return m.changeSlide(m.index - 1)
	}
	return m
}

func (m slideshowModel) changeSlide(i int) slideshowModel {
	m.index = i
	m.secondsOnSlide = 0
	m.transitionUntil = m.clock.Now().Add(transitionGuard)
	return m
}

func (m slideshowModel) view() string {
	if m.confirmingExit {
		return m.renderExitPrompt()
	}

	sl := m.current()
	now := m.clock.Now()
	accent := lipgloss.NewStyle()
	if sl.Accent != "" {
		accent = accent.Foreground(lipgloss.Color(sl.Accent))
	}

	var rows []string

	if sl.Title != "" {
		rows = append(rows, slideTitleStyle.Inherit(accent).Render(sl.Title))
	}
	if sl.Subtitle != "" {
		rows = append(rows, "", mutedStyle.Render(sl.Subtitle))
	}

	switch {
	case sl.ImageRef != "":
		rows = append(rows, "", imageFrameStyle.Render(deck.ImageLabel(sl.ImageRef)))
	case sl.Body != "":
		body := slideBodyStyle.Inherit(accent)
		if len(sl.Body) > 60 {
			body = body.Width(min(m.width-8, 80))
		}
		rows = append(rows, "", body.Render(sl.Body))
	}

	if remaining, ok := schedule.WindowRemaining(sl, now); ok {
		rows = append(rows,
			"",
			urgentStyle.Render("TIME REMAINING"),
			urgentStyle.Render(schedule.FormatRemaining(remaining)),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, rows...)

	var footer []string
	if sl.ShowClock {
		footer = append(footer, slideClockStyle.Render(formatClockSeconds(now)))
	}
	if sl.Footer != "" {
		footer = append(footer, footerNoticeStyle.Render(sl.Footer))
	}
	footer = append(footer, footerStyle.Render(
		fmt.Sprintf("%d/%d   space/→: next  ←: back  esc: exit", m.index+1, m.deck.Len()),
	))

	return lipgloss.JoinVertical(lipgloss.Center,
		content,
		"",
		"",
		lipgloss.JoinVertical(lipgloss.Center, footer...),
	)
}

func (m slideshowModel) renderExitPrompt() string {
	prompt := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Exit Presentation Mode?"),
		"",
		mutedStyle.Render("enter/y: exit   any other key: stay"),
	)
	return activePanelStyle.Render(prompt)
}
