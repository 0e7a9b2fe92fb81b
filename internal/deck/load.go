package deck

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

type deckFile struct {
	Games []Slide `json:"games"`
}

// LoadGames reads a custom game-slide list from a JSON file. The result is
// validated when the deck is built, not here, so a load error always means
// the file itself is unreadable or malformed.
func LoadGames(path string) ([]Slide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}

	var df deckFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck file %s: %w", path, err)
	}
	if len(df.Games) == 0 {
		return nil, fmt.Errorf("deck file %s: no game slides", path)
	}

	for i := range df.Games {
		if df.Games[i].ID == 0 {
			return nil, fmt.Errorf("deck file %s: slide %d has no id", path, i)
		}
	}
	return df.Games, nil
}
