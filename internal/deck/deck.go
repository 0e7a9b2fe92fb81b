// Package deck models the slides shown during a club night and assembles
// the ordered deck for a slideshow session.
package deck

import (
	"fmt"

	"clubkiosk/internal/config"
)

// Well-known slide IDs. IDs above 1000 are game slides.
const (
	WelcomeID = 1
	FinalID   = 999
)

// Window is the wall-clock range during which a scheduled slide is the
// intended active slide. A nil end means the slide runs until the end of
// the program.
type Window struct {
	StartHour   int  `json:"start_hour"`
	StartMinute int  `json:"start_minute"`
	EndHour     *int `json:"end_hour,omitempty"`
	EndMinute   *int `json:"end_minute,omitempty"`
}

func (w Window) OpenEnded() bool { return w.EndHour == nil }

// Slide is immutable once the deck is built for a session.
type Slide struct {
	ID        int     `json:"id"`
	Title     string  `json:"title,omitempty"`
	Subtitle  string  `json:"subtitle,omitempty"`
	Body      string  `json:"body,omitempty"`
	ImageRef  string  `json:"image_ref,omitempty"` // data reference or path
	Accent    string  `json:"accent,omitempty"`    // hex color for title/body
	Footer    string  `json:"footer,omitempty"`
	Window    *Window `json:"window,omitempty"`
	ShowClock bool    `json:"show_clock,omitempty"`
	Duration  int     `json:"duration,omitempty"` // seconds before auto-advance; 0 = manual
}

func (s Slide) Scheduled() bool { return s.Window != nil }

func intp(n int) *int { return &n }

// Deck is the full ordered slide list for one slideshow session.
// Navigation is by index, so order is significant.
type Deck struct {
	Slides []Slide
}

func (d Deck) Len() int       { return len(d.Slides) }
func (d Deck) LastIndex() int { return len(d.Slides) - 1 }

const (
	usPledgeText = `I pledge allegiance to the Flag of the United States of America, and to the Republic for which it stands, one Nation under God, indivisible, with liberty and justice for all.`

	clubPledgeText = `I pledge allegiance to the Awana flag, which stands for the Awana clubs, whose goal is to reach boys and girls with the gospel of Christ, and train them to serve Him.`
)

const (
	accentYellow = "#FACC15"
	accentWhite  = "#FFFFFF"
	accentGreen  = "#22C55E"
	accentRed    = "#EF4444"
	accentBlue   = "#3B82F6"
)

func introSlides() []Slide {
	return []Slide{
		{
			ID:       WelcomeID,
			Title:    "Welcome!",
			Subtitle: "We're glad you're here!",
			Accent:   accentYellow,
			Duration: 10,
		},
		{
			ID:     2,
			Title:  "Pledge of Allegiance",
			Body:   usPledgeText,
			Accent: accentWhite,
		},
		{
			ID:     3,
			Title:  "Awana Pledge",
			Body:   clubPledgeText,
			Accent: accentWhite,
		},
	}
}

// DefaultGames is the standard game rotation: adjacent windows through the
// evening, with the last slide open-ended and carrying the shutdown notice.
func DefaultGames() []Slide {
	return []Slide{
		{
			ID:        1001,
			Body:      "T&T Games",
			Accent:    accentGreen,
			ShowClock: true,
			Window:    &Window{StartHour: 18, StartMinute: 10, EndHour: intp(18), EndMinute: intp(30)},
		},
		{
			ID:        1002,
			Body:      "Sparks Games",
			Accent:    accentRed,
			ShowClock: true,
			Window:    &Window{StartHour: 18, StartMinute: 30, EndHour: intp(19), EndMinute: intp(0)},
		},
		{
			ID:        1003,
			Body:      "Cubbies & Puggles Games",
			Accent:    accentBlue,
			ShowClock: true,
			Window:    &Window{StartHour: 19, StartMinute: 0, EndHour: intp(19), EndMinute: intp(15)},
		},
		{
			ID:        1004,
			Body:      "Cubbies & Puggles Games",
			Accent:    accentBlue,
			ShowClock: true,
			Footer:    "Please Power Off Projector",
			Window:    &Window{StartHour: 19, StartMinute: 15},
		},
	}
}

// Build assembles a deck from the fixed intro slides, the settings-derived
// final slide, and the default game slides. It must be called again whenever
// settings change, since the final slide depends on them.
func Build(s config.Settings) Deck {
	d, err := BuildWith(s, DefaultGames())
	if err != nil {
		// The fixed slide set is valid by construction.
		panic(err)
	}
	return d
}

// BuildWith assembles a deck using a custom game slide list, validating it
// against the deck invariants: unique IDs and at most one slide per start
// minute.
func BuildWith(s config.Settings, games []Slide) (Deck, error) {
	slides := introSlides()
	slides = append(slides, finalSlide(s))
	slides = append(slides, games...)

	if err := validateSlides(slides); err != nil {
		return Deck{}, err
	}
	return Deck{Slides: slides}, nil
}

// finalSlide synthesizes slide 999 from the settings. A "black" slide has
// no body at all; empty text falls back to a generic thank-you.
func finalSlide(s config.Settings) Slide {
	sl := Slide{ID: FinalID, Accent: accentWhite}
	switch s.FinalSlideType {
	case config.FinalSlideText:
		sl.Body = s.FinalSlideContent
		if sl.Body == "" {
			sl.Body = "Thank You!"
		}
	case config.FinalSlideImage:
		sl.ImageRef = s.FinalSlideContent
	}
	return sl
}

func validateSlides(slides []Slide) error {
	ids := make(map[int]bool, len(slides))
	starts := make(map[int]int, len(slides))
	for _, sl := range slides {
		if ids[sl.ID] {
			return fmt.Errorf("duplicate slide id %d", sl.ID)
		}
		ids[sl.ID] = true

		if sl.Window == nil {
			continue
		}
		w := *sl.Window
		if w.StartHour < 0 || w.StartHour > 23 || w.StartMinute < 0 || w.StartMinute > 59 {
			return fmt.Errorf("slide %d: start time %02d:%02d out of range", sl.ID, w.StartHour, w.StartMinute)
		}
		if !w.OpenEnded() {
			if w.EndMinute == nil {
				return fmt.Errorf("slide %d: end hour without end minute", sl.ID)
			}
			if *w.EndHour < 0 || *w.EndHour > 23 || *w.EndMinute < 0 || *w.EndMinute > 59 {
				return fmt.Errorf("slide %d: end time %02d:%02d out of range", sl.ID, *w.EndHour, *w.EndMinute)
			}
		}

		key := w.StartHour*60 + w.StartMinute
		if other, dup := starts[key]; dup {
			return fmt.Errorf("slides %d and %d share start time %02d:%02d", other, sl.ID, w.StartHour, w.StartMinute)
		}
		starts[key] = sl.ID
	}
	return nil
}
