package game

import "math/rand"

// Deck is a player's draw pile: a slice of cards with the front being
// the next one dealt. EmptyDraws accumulates every card a Deal call
// could not satisfy, which Player.TakeCards turns into fatigue damage.
type Deck struct {
	Cards      []*Card
	EmptyDraws int
}

// NewDeck wraps the given cards as a fresh, unshuffled deck.
func NewDeck(cards []*Card) *Deck {
	return &Deck{Cards: cards}
}

// Shuffle randomizes draw order in place.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal removes up to n cards from the front of the deck. If the deck
// has fewer than n cards, it returns everything it has and reports an
// EmptyDeckError carrying the deck's cumulative shortfall so far
// (not just this call's deficit), which is what lets fatigue damage
// climb 1, 2, 3, ... across successive empty draws.
func (d *Deck) Deal(n int) ([]*Card, error) {
	if n <= len(d.Cards) {
		drawn := d.Cards[:n]
		d.Cards = d.Cards[n:]
		return drawn, nil
	}
	drawn := d.Cards
	deficit := n - len(d.Cards)
	d.Cards = nil
	d.EmptyDraws += deficit
	return drawn, &EmptyDeckError{Shortfall: d.EmptyDraws}
}

func (d *Deck) clone() *Deck {
	nd := &Deck{EmptyDraws: d.EmptyDraws, Cards: make([]*Card, len(d.Cards))}
	for i, c := range d.Cards {
		nd.Cards[i] = c.Clone()
	}
	return nd
}
