package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"clubkiosk/internal/config"
	"clubkiosk/internal/deck"
)

// App is the root Bubble Tea model. It owns the live settings and the
// top-level mode. Views get read-only snapshots on entry and report back
// through messages; a mode transition tears the old view model down, so
// only the active view ever sees the 1 Hz tick.
type App struct {
	clock  clockwork.Clock
	width  int
	height int

	mode     mode
	settings config.Settings
	games    []deck.Slide

	standby      standbyModel
	countdown    countdownModel
	slideshow    slideshowModel
	settingsView settingsModel

	help     help.Model
	showHelp bool
}

func NewApp(conf *config.Config, games []deck.Slide, clk clockwork.Clock) App {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	if len(games) == 0 {
		games = deck.DefaultGames()
	}

	h := help.New()
	h.ShowAll = false

	return App{
		clock:    clk,
		mode:     modeStandby,
		settings: conf.Settings,
		games:    games,
		standby:  newStandbyModel(clk, conf.Settings),
		help:     h,
	}
}

func (a App) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.setViewSizes()
		return a, nil

	case tickMsg:
		// Re-arm the 1 Hz tick and route it to the active view only, so a
		// torn-down view never keeps a schedule checker running.
		var cmd tea.Cmd
		switch a.mode {
		case modeStandby:
			a.standby, cmd = a.standby.update(msg)
		case modeCountdown:
			a.countdown, cmd = a.countdown.update(msg)
		case modeSlideshow:
			a.slideshow, cmd = a.slideshow.update(msg)
		}
		return a, tea.Batch(tickCmd(), cmd)

	case tea.KeyMsg:
		// The settings form captures all input.
		if a.mode == modeSettings {
			var cmd tea.Cmd
			a.settingsView, cmd = a.settingsView.update(msg)
			return a, cmd
		}

		if a.mode == modeStandby {
			switch {
			case key.Matches(msg, keys.Quit):
				return a, tea.Quit
			case key.Matches(msg, keys.Help):
				a.showHelp = !a.showHelp
				a.help.ShowAll = a.showHelp
				return a, nil
			}
		}
		return a.updateActiveView(msg)

	case tea.MouseMsg:
		return a.updateActiveView(msg)

	case startCountdownMsg:
		return a.enterCountdown(msg.auto)

	case countdownDoneMsg:
		return a.enterSlideshow()

	case countdownCancelledMsg, slideshowExitedMsg:
		return a.enterStandby()

	case openSettingsMsg:
		return a.enterSettings()

	case settingsSavedMsg:
		a.settings = msg.settings
		return a.enterStandby()

	case settingsCancelledMsg:
		return a.enterStandby()
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.mode {
	case modeStandby:
		a.standby, cmd = a.standby.update(msg)
	case modeCountdown:
		a.countdown, cmd = a.countdown.update(msg)
	case modeSlideshow:
		a.slideshow, cmd = a.slideshow.update(msg)
	case modeSettings:
		a.settingsView, cmd = a.settingsView.update(msg)
	}
	return a, cmd
}

// --- Transitions. Entering a mode builds a fresh view model. ---

func (a App) enterStandby() (tea.Model, tea.Cmd) {
	a.logTransition(modeStandby)
	a.mode = modeStandby
	a.standby = newStandbyModel(a.clock, a.settings)
	a.setViewSizes()
	return a, nil
}

func (a App) enterCountdown(auto bool) (tea.Model, tea.Cmd) {
	a.logTransition(modeCountdown)
	a.mode = modeCountdown
	a.countdown = newCountdownModel(a.clock, a.settings, auto)
	a.setViewSizes()
	return a, nil
}

func (a App) enterSlideshow() (tea.Model, tea.Cmd) {
	d, err := deck.BuildWith(a.settings, a.games)
	if err != nil {
		log.Error().Err(err).Msg("custom deck rejected, using default games")
		d = deck.Build(a.settings)
	}
	a.logTransition(modeSlideshow)
	a.mode = modeSlideshow
	a.slideshow = newSlideshowModel(a.clock, d)
	a.setViewSizes()
	return a, nil
}

func (a App) enterSettings() (tea.Model, tea.Cmd) {
	a.logTransition(modeSettings)
	a.mode = modeSettings
	a.settingsView = newSettingsModel(a.settings)
	a.setViewSizes()
	return a, a.settingsView.Init()
}

func (a *App) logTransition(to mode) {
	log.Info().Stringer("from", a.mode).Stringer("to", to).Msg("mode transition")
}

func (a *App) setViewSizes() {
	a.standby.setSize(a.width, a.height)
	a.countdown.setSize(a.width, a.height)
	a.slideshow.setSize(a.width, a.height)
	a.settingsView.setSize(a.width, a.height)
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var content string
	switch a.mode {
	case modeStandby:
		content = a.standby.view()
	case modeCountdown:
		content = a.countdown.view()
	case modeSlideshow:
		content = a.slideshow.view()
	case modeSettings:
		content = a.settingsView.view()
	}

	if a.mode == modeStandby {
		footer := footerStyle.Render(a.help.View(keys))
		body := lipgloss.Place(a.width, a.height-lipgloss.Height(footer),
			lipgloss.Center, lipgloss.Center, content)
		return lipgloss.JoinVertical(lipgloss.Left, body, footer)
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}
