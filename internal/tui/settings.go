package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"clubkiosk/internal/config"
	"clubkiosk/internal/deck"
)

// settingsModel edits a copy of the live settings through a huh form. Save
// replaces the configuration wholesale; Esc discards every edit.
type settingsModel struct {
	width  int
	height int

	form    *huh.Form
	initial config.Settings

	// Form values as pointers (survive value copies)
	day       *int
	hour      *string
	minute    *string
	duration  *string
	finalType *string
	finalText *string
	imagePath *string
}

func newSettingsModel(s config.Settings) settingsModel {
	day := s.AutoStartDay
	hour := strconv.Itoa(s.AutoStartHour)
	minute := strconv.Itoa(s.AutoStartMinute)
	duration := strconv.Itoa(s.CountdownMinutes)
	finalType := string(s.FinalSlideType)
	finalText := ""
	if s.FinalSlideType == config.FinalSlideText {
		finalText = s.FinalSlideContent
	}
	imagePath := ""

	m := settingsModel{
		initial:   s,
		day:       &day,
		hour:      &hour,
		minute:    &minute,
		duration:  &duration,
		finalType: &finalType,
		finalText: &finalText,
		imagePath: &imagePath,
	}
	m.form = m.buildForm()
	return m
}

func (m settingsModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Countdown duration (minutes)").
				Validate(validateRange(1, 60)).
				Value(m.duration),
			huh.NewSelect[int]().
				Title("Auto-start day").
				Options(
					huh.NewOption("Sunday", 0),
					huh.NewOption("Monday", 1),
					huh.NewOption("Tuesday", 2),
					huh.NewOption("Wednesday", 3),
					huh.NewOption("Thursday", 4),
					huh.NewOption("Friday", 5),
					huh.NewOption("Saturday", 6),
				).
				Value(m.day),
			huh.NewInput().
				Title("Auto-start hour (0-23)").
				Description("17 = 5 PM").
				Validate(validateRange(0, 23)).
				Value(m.hour),
			huh.NewInput().
				Title("Auto-start minute (0-59)").
				Validate(validateRange(0, 59)).
				Value(m.minute),
		).Title("Schedule"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Final slide").
				Options(
					huh.NewOption("Black screen (default)", "black"),
					huh.NewOption("Custom text", "text"),
					huh.NewOption("Custom image", "image"),
				).
				Value(m.finalType),
			huh.NewInput().
				Title("Text content").
				Description("Used for the text slide; empty shows \"Thank You!\"").
				Value(m.finalText),
			huh.NewFilePicker().
				Title("Image file").
				Description("Used for the image slide").
				AllowedTypes([]string{".png", ".jpg", ".jpeg", ".gif", ".webp"}).
				Value(m.imagePath),
		).Title("Final Slide"),
	).WithShowHelp(true).WithShowErrors(true)
}

func (m *settingsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m settingsModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			return m, func() tea.Msg { return settingsCancelledMsg{} }
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		saved := m.collect()
		log.Info().
			Int("day", saved.AutoStartDay).
			Int("hour", saved.AutoStartHour).
			Int("minute", saved.AutoStartMinute).
			Int("countdown_minutes", saved.CountdownMinutes).
			Str("final_slide", string(saved.FinalSlideType)).
			Msg("settings saved")
		return m, func() tea.Msg { return settingsSavedMsg{settings: saved} }
	}

	return m, cmd
}

// collect builds the new Settings from the form values, clamping every
// numeric field before acceptance.
func (m settingsModel) collect() config.Settings {
	s := config.Settings{
		AutoStartDay:     *m.day,
		AutoStartHour:    atoiOr(*m.hour, m.initial.AutoStartHour),
		AutoStartMinute:  atoiOr(*m.minute, m.initial.AutoStartMinute),
		CountdownMinutes: atoiOr(*m.duration, m.initial.CountdownMinutes),
		FinalSlideType:   config.FinalSlideType(*m.finalType),
	}

	switch s.FinalSlideType {
	case config.FinalSlideText:
		s.FinalSlideContent = *m.finalText
	case config.FinalSlideImage:
		if *m.imagePath != "" {
			ref, err := deck.EncodeImageRef(*m.imagePath)
			if err != nil {
				log.Warn().Err(err).Str("path", *m.imagePath).Msg("image not embeddable, keeping previous content")
				ref = m.initial.FinalSlideContent
			}
			s.FinalSlideContent = ref
		} else {
			s.FinalSlideContent = m.initial.FinalSlideContent
		}
	}

	s.Clamp()
	return s
}

func (m settingsModel) view() string {
	title := titleStyle.Render("Presentation Settings")
	hint := mutedStyle.Render("esc: discard changes")
	return panelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View(), "", hint),
	)
}

func validateRange(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func atoiOr(s string, fallback int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return fallback
}
