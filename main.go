package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"clubkiosk/internal/config"
	"clubkiosk/internal/deck"
	"clubkiosk/internal/logging"
	"clubkiosk/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ~/.config/clubkiosk/config.yaml)")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := logging.Setup(conf.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var games []deck.Slide
	if conf.DeckPath != "" {
		games, err = deck.LoadGames(conf.DeckPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading deck: %v\n", err)
			os.Exit(1)
		}
		// Fail fast on invalid custom decks instead of discovering it when
		// the slideshow starts.
		if _, err := deck.BuildWith(conf.Settings, games); err != nil {
			fmt.Fprintf(os.Stderr, "error: invalid deck: %v\n", err)
			os.Exit(1)
		}
		log.Info().Str("path", conf.DeckPath).Int("games", len(games)).Msg("custom deck loaded")
	}

	app := tui.NewApp(conf, games, nil)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	log.Info().Msg("clubkiosk starting")
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("fatal")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
