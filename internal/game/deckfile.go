package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile is the top-level shape of a decks YAML document: a named
// list of decks, each a list of card entries with a count.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry names one deck and its card list.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry names a catalog card and how many copies to include.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ParseDeckFile reads and parses a YAML deck list, resolving each
// entry against Catalog and expanding counts into individual *Card
// instances. The returned map is keyed by deck name.
func ParseDeckFile(path string) (map[string][]*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	df, err := parseDeckFileYAML(data)
	if err != nil {
		return nil, err
	}
	decks := make(map[string][]*Card, len(df.Decks))
	for _, entry := range df.Decks {
		cards, err := buildDeck(entry)
		if err != nil {
			return nil, fmt.Errorf("deck %q: %w", entry.Name, err)
		}
		decks[entry.Name] = cards
	}
	return decks, nil
}

// DeckByNumber loads the n-th deck (1-indexed) from a deck file,
// returning its name and cards.
func DeckByNumber(path string, n int) (string, []*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read deck file: %w", err)
	}
	df, err := parseDeckFileYAML(data)
	if err != nil {
		return "", nil, err
	}
	if n < 1 || n > len(df.Decks) {
		return "", nil, fmt.Errorf("deck number %d out of range (1-%d)", n, len(df.Decks))
	}
	entry := df.Decks[n-1]
	cards, err := buildDeck(entry)
	if err != nil {
		return "", nil, fmt.Errorf("deck %q: %w", entry.Name, err)
	}
	return entry.Name, cards, nil
}

func parseDeckFileYAML(data []byte) (*DeckFile, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck file: %w", err)
	}
	return &df, nil
}

func buildDeck(entry DeckEntry) ([]*Card, error) {
	var cards []*Card
	for _, ce := range entry.Cards {
		if _, ok := Catalog[ce.Name]; !ok {
			return nil, fmt.Errorf("unknown card %q", ce.Name)
		}
		for i := 0; i < ce.Count; i++ {
			cards = append(cards, LookupCard(ce.Name))
		}
	}
	return cards, nil
}
