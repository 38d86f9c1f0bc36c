package game

import (
	"math/rand"
	"testing"
)

// vanillaUnit builds a no-ability unit with the given cost/damage/health.
func vanillaUnit(cost, damage, health int) *Card {
	return NewCard("Vanilla", cost, KindUnit, Ability{Kind: AbilityNone}, damage, health)
}

// chargeUnit builds a unit that can attack the turn it is played.
func chargeUnit(cost, damage, health int) *Card {
	return NewCard("Charger", cost, KindUnit, Ability{Kind: AbilityCharge}, damage, health)
}

// spellCard builds a spell carrying the given ability.
func spellCard(cost int, ability Ability) *Card {
	return NewCard("Spell", cost, KindSpell, ability, 0, 0)
}

// makeDeck returns a deck of n cheap vanilla units, useful padding so a
// test's deck never runs out mid-scenario.
func makeDeck(n int) []*Card {
	cards := make([]*Card, n)
	for i := range cards {
		cards[i] = vanillaUnit(1, 1, 1)
	}
	return cards
}

// newTestGame builds a two-player game from the given decks with a
// deterministic rng, leaving Start uncalled.
func newTestGame(t *testing.T, deck0, deck1 []*Card) *Game {
	g, err := NewGame(GameConfig{
		Player0Name: "Alice",
		Player1Name: "Bob",
		Deck0:       deck0,
		Deck1:       deck1,
		Rng:         rand.New(rand.NewSource(42)),
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}
