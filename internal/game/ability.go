package game

import "github.com/cardforge/duelcore/internal/ids"

// AbilityKind is a closed set of ability archetypes. New abilities are
// new variants of this enum dispatched over in Init/Play, not new types
// implementing some effect interface: the set is small and fixed, so a
// tagged variant with a switch statement is the right tool, the same
// way Board, Game and Action stay tagged structs instead of growing a
// class hierarchy.
type AbilityKind int

const (
	AbilityNone AbilityKind = iota
	AbilityCharge
	AbilityIncreaseDamage
	AbilityIncreaseAlliesHealth
	AbilitySetUnitStats
	AbilityDealDamage
)

func (k AbilityKind) String() string {
	switch k {
	case AbilityNone:
		return "none"
	case AbilityCharge:
		return "charge"
	case AbilityIncreaseDamage:
		return "increase_damage"
	case AbilityIncreaseAlliesHealth:
		return "increase_allies_health"
	case AbilitySetUnitStats:
		return "set_unit_stats"
	case AbilityDealDamage:
		return "deal_damage"
	default:
		return "unknown"
	}
}

// Ability is a value type: a kind tag plus the parameters that kind
// needs. CanTarget only means anything for AbilityDealDamage, where it
// switches between a single-target and a board-wide resolution.
type Ability struct {
	Kind      AbilityKind
	Value     int
	CanTarget bool
}

// Init runs once, when the owning card is instantiated. Only Charge and
// DealDamage do anything at this phase; everything else is a no-op.
func (a Ability) Init(card *Card) {
	switch a.Kind {
	case AbilityCharge:
		card.CanAttack = true
	case AbilityDealDamage:
		card.Damage = a.Value
	}
}

// Play runs when the owning card is played from hand, after the unit
// (if any) has already been placed on the board. target is ids.Nil when
// no target was supplied.
func (a Ability) Play(board *Board, player *Player, card *Card, target ids.ID) error {
	switch a.Kind {
	case AbilityNone:
		return rejectTarget(target)

	case AbilityCharge:
		// Charge only acts at init; playing the card has no further effect.
		return rejectTarget(target)

	case AbilityIncreaseDamage:
		if err := rejectTarget(target); err != nil {
			return err
		}
		card.Damage += a.Value
		return nil

	case AbilityIncreaseAlliesHealth:
		if err := rejectTarget(target); err != nil {
			return err
		}
		for _, id := range board.UnitsOf(player.ID) {
			board.units[id].Health += a.Value
		}
		return nil

	case AbilitySetUnitStats:
		if target.IsNil() {
			return ErrTargetNotDefined
		}
		unit, ok := board.units[target]
		if !ok {
			return ErrTargetNotDefined
		}
		owner, _ := board.Owner(target)
		if owner != player.ID {
			return ErrInvalidTarget
		}
		unit.Health = a.Value
		unit.Damage = a.Value
		return nil

	case AbilityDealDamage:
		if !a.CanTarget {
			if err := rejectTarget(target); err != nil {
				return err
			}
			return dealDamageAOE(board, player, card)
		}
		return dealDamageHybrid(board, player, card, target)
	}
	return nil
}

// rejectTarget enforces that a non-targeting ability was not given a
// target: spec calls for InvalidTarget here, not silent acceptance.
func rejectTarget(target ids.ID) error {
	if !target.IsNil() {
		return ErrInvalidTarget
	}
	return nil
}

// dealDamageHybrid implements DealDamage(can_target=true): a supplied
// id naming an enemy unit hits only that unit; a supplied id naming a
// friendly unit is rejected; a missing or unresolvable id falls back to
// the board-wide resolution, matching the documented fallback behavior
// for a target id that doesn't resolve to anything on the board.
func dealDamageHybrid(board *Board, player *Player, card *Card, target ids.ID) error {
	if !target.IsNil() {
		if unit, ok := board.units[target]; ok {
			owner, _ := board.Owner(target)
			if owner == player.ID {
				return ErrInvalidTarget
			}
			board.ResolveDamage(unit, card.Damage)
			return nil
		}
	}
	return dealDamageAOE(board, player, card)
}

// dealDamageAOE deals card.Damage to every enemy unit. Spells resolving
// damage this way never take retaliation: there is no attacker on the
// board to strike back at.
func dealDamageAOE(board *Board, player *Player, card *Card) error {
	opponent := board.otherPlayer(player.ID)
	// ResolveDamage can remove a unit from board.units mid-loop, which
	// shifts the backing array UnitsOf returns; range over a snapshot so
	// a kill doesn't skip the next unit or read a stale id.
	targets := append([]ids.ID(nil), board.UnitsOf(opponent)...)
	for _, id := range targets {
		if unit, ok := board.units[id]; ok {
			board.ResolveDamage(unit, card.Damage)
		}
	}
	return nil
}
