package game

import "github.com/cardforge/duelcore/internal/ids"

const (
	MaxHealth = 20
	MaxMana   = 10
)

// Player is one side of a duel: a hero with health and mana, a hand, a
// deck, and a graveyard of everything it has played. Board is a shared
// reference, not something the player owns.
type Player struct {
	ID          ids.ID
	Name        string
	Health      int
	CurrentMana int
	UsedMana    int
	Hand        map[ids.ID]*Card
	Graveyard   []*Card
	Deck        *Deck
}

// NewPlayer constructs a player at full health with an empty hand and
// the given deck, ready for Game to deal its starting hand.
func NewPlayer(name string, deck *Deck) *Player {
	return &Player{
		ID:     ids.New(),
		Name:   name,
		Health: MaxHealth,
		Hand:   map[ids.ID]*Card{},
		Deck:   deck,
	}
}

// EffectiveMana is how much mana remains to spend this turn.
func (p *Player) EffectiveMana() int {
	return p.CurrentMana - p.UsedMana
}

// SetHealth clamps to [0, MaxHealth]. Reaching 0 or below latches health
// at 0 and returns a DeadPlayerError naming this player as the loser.
func (p *Player) SetHealth(h int) error {
	if h <= 0 {
		p.Health = 0
		return &DeadPlayerError{Loser: p.ID}
	}
	if h > MaxHealth {
		h = MaxHealth
	}
	p.Health = h
	return nil
}

// Damage reduces health by n and reports death the same way SetHealth does.
func (p *Player) Damage(n int) error {
	return p.SetHealth(p.Health - n)
}

// TakeCards draws n cards into the hand. An empty-deck shortfall is
// converted to fatigue damage on this player and never leaks past this
// method as an EmptyDeckError.
func (p *Player) TakeCards(n int) error {
	cards, err := p.Deck.Deal(n)
	for _, c := range cards {
		p.Hand[c.ID] = c
	}
	if empty, ok := err.(*EmptyDeckError); ok {
		return p.Damage(empty.Shortfall)
	}
	return nil
}

// Play resolves playing cardID from hand, targeting targetID (ids.Nil
// for no target). See resolvePlay for the shared cost/ability logic.
func (p *Player) Play(board *Board, cardID, targetID ids.ID) error {
	card, ok := p.Hand[cardID]
	if !ok {
		return ErrMissingCard
	}
	if err := p.resolvePlay(board, card, targetID); err != nil {
		return err
	}
	delete(p.Hand, cardID)
	return nil
}

// playFromDeck resolves a ProbablePlay action: the card named was never
// actually known to be in hand, only inferred from the unknown-card
// universe the generator builds for a hidden hand. The card must still
// be physically present in the deck's remaining cards.
func (p *Player) playFromDeck(board *Board, cardID, targetID ids.ID) error {
	idx := -1
	for i, c := range p.Deck.Cards {
		if c.ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrMissingCard
	}
	card := p.Deck.Cards[idx]
	if err := p.resolvePlay(board, card, targetID); err != nil {
		return err
	}
	p.Deck.Cards = append(p.Deck.Cards[:idx], p.Deck.Cards[idx+1:]...)
	return nil
}

// resolvePlay is the shared core of Play and playFromDeck: check cost,
// place units on the board before resolving their ability (so effects
// like IncreaseAlliesHealth see the newly played unit), roll the
// placement back if the ability rejects its target, then charge mana
// and move the card to the graveyard.
func (p *Player) resolvePlay(board *Board, card *Card, targetID ids.ID) error {
	if card.Cost > p.EffectiveMana() {
		return ErrNotEnoughMana
	}

	if card.Kind == KindUnit {
		if err := board.PlayCard(p, card); err != nil {
			return err
		}
		if err := card.Ability.Play(board, p, card, targetID); err != nil {
			board.RemoveUnit(card.ID)
			return err
		}
	} else {
		if err := card.Ability.Play(board, p, card, targetID); err != nil {
			return err
		}
	}

	p.UsedMana += card.Cost
	card.WasPlayed = true
	p.Graveyard = append(p.Graveyard, card)
	return nil
}

// clone returns an independent copy relinked to the already-cloned
// board. cardMap records every card this clone creates so that a later
// caller (none currently) could relink other structures by card id.
func (p *Player) clone(board *Board, cardMap map[ids.ID]*Card) *Player {
	np := &Player{
		ID:          p.ID,
		Name:        p.Name,
		Health:      p.Health,
		CurrentMana: p.CurrentMana,
		UsedMana:    p.UsedMana,
		Hand:        make(map[ids.ID]*Card, len(p.Hand)),
		Deck:        p.Deck.clone(),
	}
	for id, c := range p.Hand {
		nc := c.Clone()
		np.Hand[id] = nc
		cardMap[id] = nc
	}
	for _, c := range p.Graveyard {
		np.Graveyard = append(np.Graveyard, c.Clone())
	}
	return np
}
