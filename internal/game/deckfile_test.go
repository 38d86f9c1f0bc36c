package game

import "testing"

func TestBuildDeckExpandsCounts(t *testing.T) {
	entry := DeckEntry{
		Name: "Aggro",
		Cards: []CardEntry{
			{Name: "Footsoldier", Count: 2},
			{Name: "Raider", Count: 1},
		},
	}
	cards, err := buildDeck(entry)
	if err != nil {
		t.Fatalf("buildDeck: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("len(cards) = %d, want 3", len(cards))
	}
}

func TestBuildDeckRejectsUnknownCard(t *testing.T) {
	entry := DeckEntry{Cards: []CardEntry{{Name: "Nonexistent", Count: 1}}}
	if _, err := buildDeck(entry); err == nil {
		t.Fatal("expected an error for an unknown catalog card")
	}
}

func TestParseDeckFileYAML(t *testing.T) {
	data := []byte(`
decks:
  - name: Aggro
    cards:
      - name: Footsoldier
        count: 2
      - name: Firebolt
        count: 1
`)
	df, err := parseDeckFileYAML(data)
	if err != nil {
		t.Fatalf("parseDeckFileYAML: %v", err)
	}
	if len(df.Decks) != 1 || df.Decks[0].Name != "Aggro" {
		t.Fatalf("unexpected parse result: %+v", df)
	}
	cards, err := buildDeck(df.Decks[0])
	if err != nil {
		t.Fatalf("buildDeck: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("len(cards) = %d, want 3", len(cards))
	}
}
