package game

import "github.com/cardforge/duelcore/internal/ids"

// Kind distinguishes the two card shapes the kernel knows about.
type Kind int

const (
	KindUnit Kind = iota
	KindSpell
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindSpell:
		return "spell"
	default:
		return "unknown"
	}
}

// Card is both the immutable descriptor a deck list names and the
// mutable runtime instance that moves between deck, hand, board, and
// graveyard. The two are never split apart: a card keeps the same ID
// and the same struct for its whole life in a game, which is what lets
// IncreaseAlliesHealth, SetUnitStats, and friends mutate a unit already
// resting on the board.
type Card struct {
	ID      ids.ID
	Name    string
	Cost    int
	Kind    Kind
	Ability Ability

	// Runtime-only fields. Units carry live combat stats; spells carry
	// a Damage value set once by a DealDamage ability's init phase.
	Damage    int
	Health    int
	CanAttack bool
	WasPlayed bool
}

// NewCard builds a fresh card instance and runs its ability's init
// phase immediately, matching the lifecycle note that a card's init
// dispatch happens once, at construction, not at play time.
func NewCard(name string, cost int, kind Kind, ability Ability, damage, health int) *Card {
	c := &Card{
		ID:     ids.New(),
		Name:   name,
		Cost:   cost,
		Kind:   kind,
		Ability: ability,
		Damage: damage,
		Health: health,
	}
	ability.Init(c)
	return c
}

// Clone returns an independent copy carrying the same ID. Card has no
// nested pointers or slices, so a value copy is already a deep copy.
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

// Alive reports whether a unit still has positive health. Spells have
// no health axis and are never asked this question.
func (c *Card) Alive() bool {
	return c.Health > 0
}
