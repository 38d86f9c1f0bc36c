package game

import "github.com/cardforge/duelcore/internal/ids"

// MaxUnitsPerPlayer bounds how many units one player may have on the
// board at once; PlayCard raises ErrTooManyCards past this limit.
const MaxUnitsPerPlayer = 7

// Board is the shared battlefield: a mapping from player id to the set
// of unit ids it controls, plus a mapping from unit id to the unit
// itself. Both players' Player structs hold a reference to the same
// Board rather than owning their own copy of it.
type Board struct {
	playerIDs [2]ids.ID
	byPlayer  map[ids.ID][]ids.ID
	units     map[ids.ID]*Card
}

// NewBoard creates an empty board for the two given player ids.
func NewBoard(p0, p1 ids.ID) *Board {
	return &Board{
		playerIDs: [2]ids.ID{p0, p1},
		byPlayer:  map[ids.ID][]ids.ID{p0: nil, p1: nil},
		units:     map[ids.ID]*Card{},
	}
}

func (b *Board) otherPlayer(p ids.ID) ids.ID {
	if b.playerIDs[0] == p {
		return b.playerIDs[1]
	}
	return b.playerIDs[0]
}

// UnitsOf returns the unit ids a player currently controls, in the
// order they were placed. The caller must not mutate the result.
func (b *Board) UnitsOf(player ids.ID) []ids.ID {
	return b.byPlayer[player]
}

// Unit looks up a unit by id.
func (b *Board) Unit(id ids.ID) (*Card, bool) {
	c, ok := b.units[id]
	return c, ok
}

// Owner reports which player controls the named unit.
func (b *Board) Owner(unit ids.ID) (ids.ID, bool) {
	for _, pid := range b.playerIDs {
		for _, uid := range b.byPlayer[pid] {
			if uid == unit {
				return pid, true
			}
		}
	}
	return ids.Nil, false
}

// PlayCard places a unit on the board under player's control. Spells
// never reach this method; only Player.resolvePlay calls it, and only
// for KindUnit cards.
func (b *Board) PlayCard(player *Player, card *Card) error {
	if len(b.byPlayer[player.ID]) >= MaxUnitsPerPlayer {
		return ErrTooManyCards
	}
	b.byPlayer[player.ID] = append(b.byPlayer[player.ID], card.ID)
	b.units[card.ID] = card
	return nil
}

// RemoveUnit takes a unit off the board without regard to its health,
// used both for death cleanup and to roll back a unit placement whose
// ability failed to resolve.
func (b *Board) RemoveUnit(id ids.ID) {
	owner, ok := b.Owner(id)
	if !ok {
		return
	}
	units := b.byPlayer[owner]
	for i, uid := range units {
		if uid == id {
			b.byPlayer[owner] = append(units[:i], units[i+1:]...)
			break
		}
	}
	delete(b.units, id)
}

// ResetCards clears the attacked-this-turn restriction for a player's
// units at the start of their turn, letting every surviving unit attack
// again. Units with Charge already entered play able to attack; this is
// what lets units that have survived a prior turn attack on later ones.
func (b *Board) ResetCards(player ids.ID) {
	for _, id := range b.byPlayer[player] {
		b.units[id].CanAttack = true
	}
}

// ResolveDamage applies dmg to victim's health and removes it from the
// board if that kills it.
func (b *Board) ResolveDamage(victim *Card, dmg int) {
	victim.Health -= dmg
	if victim.Health <= 0 {
		b.RemoveUnit(victim.ID)
	}
}

// AttackTarget names either an enemy unit or the enemy hero directly.
type AttackTarget struct {
	Hero *Player
	Unit ids.ID
}

// Attack resolves one unit attacking either another unit or a hero.
// Attacking consumes the attacker's turn (CanAttack flips false) even
// if the attack kills the attacker via retaliation. Unit-vs-unit combat
// is mutual: both sides take the other's damage. Hero attacks are
// one-sided.
func (b *Board) Attack(attackerID ids.ID, target AttackTarget) error {
	attacker, ok := b.units[attackerID]
	if !ok {
		return ErrMissingCard
	}
	if !attacker.CanAttack {
		return ErrCardCannotAttack
	}
	attacker.CanAttack = false

	if target.Hero != nil {
		return target.Hero.Damage(attacker.Damage)
	}

	victim, ok := b.units[target.Unit]
	if !ok {
		return ErrMissingCard
	}
	b.ResolveDamage(victim, attacker.Damage)
	b.ResolveDamage(attacker, victim.Damage)
	return nil
}

// clone returns a deep, independent copy of the board plus a mapping
// from card id to the corresponding new *Card. Player's clone adds its
// cloned hand cards to that mapping; it does not relink anything
// through it, so a graveyard card and the board unit it shares identity
// with become separate copies in the clone.
func (b *Board) clone() (*Board, map[ids.ID]*Card) {
	nb := &Board{
		playerIDs: b.playerIDs,
		byPlayer:  make(map[ids.ID][]ids.ID, len(b.byPlayer)),
		units:     make(map[ids.ID]*Card, len(b.units)),
	}
	for pid, units := range b.byPlayer {
		cp := make([]ids.ID, len(units))
		copy(cp, units)
		nb.byPlayer[pid] = cp
	}
	cardMap := make(map[ids.ID]*Card, len(b.units))
	for id, c := range b.units {
		nc := c.Clone()
		nb.units[id] = nc
		cardMap[id] = nc
	}
	return nb, cardMap
}
