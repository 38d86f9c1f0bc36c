package game

import (
	"errors"
	"testing"

	"github.com/cardforge/duelcore/internal/ids"
)

func newPlayerOnBoard() (*Player, *Board) {
	p := NewPlayer("P", NewDeck(nil))
	board := NewBoard(p.ID, ids.New())
	p.CurrentMana = 10
	return p, board
}

func TestChargeSetsCanAttackAtInit(t *testing.T) {
	c := NewCard("Raider", 2, KindUnit, Ability{Kind: AbilityCharge}, 2, 2)
	if !c.CanAttack {
		t.Fatal("Charge should set CanAttack true at construction")
	}
}

func TestVanillaCannotAttackAtInit(t *testing.T) {
	c := vanillaUnit(1, 1, 1)
	if c.CanAttack {
		t.Fatal("a plain unit should not be able to attack before its first turn")
	}
}

func TestNoneRejectsTarget(t *testing.T) {
	p, board := newPlayerOnBoard()
	card := vanillaUnit(1, 1, 1)
	if err := board.PlayCard(p, card); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	err := card.Ability.Play(board, p, card, ids.New())
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("got %v, want ErrInvalidTarget", err)
	}
}

func TestIncreaseDamageBuffsOwnCard(t *testing.T) {
	p, board := newPlayerOnBoard()
	card := NewCard("Warhorn", 2, KindUnit, Ability{Kind: AbilityIncreaseDamage, Value: 3}, 1, 3)
	if err := board.PlayCard(p, card); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if err := card.Ability.Play(board, p, card, ids.Nil); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if card.Damage != 4 {
		t.Fatalf("Damage = %d, want 4", card.Damage)
	}
}

func TestIncreaseAlliesHealthAppliesToAllControlledUnits(t *testing.T) {
	p, board := newPlayerOnBoard()
	ally := vanillaUnit(1, 1, 1)
	if err := board.PlayCard(p, ally); err != nil {
		t.Fatalf("PlayCard ally: %v", err)
	}

	buffer := NewCard("Battle Chaplain", 3, KindUnit, Ability{Kind: AbilityIncreaseAlliesHealth, Value: 2}, 2, 2)
	if err := board.PlayCard(p, buffer); err != nil {
		t.Fatalf("PlayCard buffer: %v", err)
	}
	if err := buffer.Ability.Play(board, p, buffer, ids.Nil); err != nil {
		t.Fatalf("Play: %v", err)
	}

	if ally.Health != 3 {
		t.Fatalf("ally health = %d, want 3", ally.Health)
	}
	if buffer.Health != 4 {
		t.Fatalf("buffer should buff itself too: health = %d, want 4", buffer.Health)
	}
}

func TestSetUnitStatsRequiresTarget(t *testing.T) {
	p, board := newPlayerOnBoard()
	spell := spellCard(2, Ability{Kind: AbilitySetUnitStats, Value: 4})
	err := spell.Ability.Play(board, p, spell, ids.Nil)
	if !errors.Is(err, ErrTargetNotDefined) {
		t.Fatalf("got %v, want ErrTargetNotDefined", err)
	}
}

func TestSetUnitStatsRejectsEnemyTarget(t *testing.T) {
	p, board := newPlayerOnBoard()
	enemy := board.playerIDs[1]
	enemyUnit := vanillaUnit(1, 1, 1)
	board.byPlayer[enemy] = append(board.byPlayer[enemy], enemyUnit.ID)
	board.units[enemyUnit.ID] = enemyUnit

	spell := spellCard(2, Ability{Kind: AbilitySetUnitStats, Value: 4})
	err := spell.Ability.Play(board, p, spell, enemyUnit.ID)
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("got %v, want ErrInvalidTarget", err)
	}
}

func TestSetUnitStatsOverwritesStats(t *testing.T) {
	p, board := newPlayerOnBoard()
	ally := vanillaUnit(1, 1, 1)
	if err := board.PlayCard(p, ally); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	spell := spellCard(2, Ability{Kind: AbilitySetUnitStats, Value: 4})
	if err := spell.Ability.Play(board, p, spell, ally.ID); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if ally.Damage != 4 || ally.Health != 4 {
		t.Fatalf("ally = %d/%d, want 4/4", ally.Damage, ally.Health)
	}
}

func TestDealDamageInitSetsCardDamage(t *testing.T) {
	c := NewCard("Firebolt", 1, KindSpell, Ability{Kind: AbilityDealDamage, Value: 3, CanTarget: true}, 0, 0)
	if c.Damage != 3 {
		t.Fatalf("Damage = %d, want 3 set at init", c.Damage)
	}
}

func TestDealDamageTargetedHitsOnlyThatEnemy(t *testing.T) {
	p, board := newPlayerOnBoard()
	enemy := board.playerIDs[1]
	victim := vanillaUnit(1, 1, 5)
	bystander := vanillaUnit(1, 1, 5)
	board.byPlayer[enemy] = append(board.byPlayer[enemy], victim.ID, bystander.ID)
	board.units[victim.ID] = victim
	board.units[bystander.ID] = bystander

	spell := spellCard(1, Ability{Kind: AbilityDealDamage, Value: 3, CanTarget: true})
	if err := spell.Ability.Play(board, p, spell, victim.ID); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if victim.Health != 2 {
		t.Fatalf("victim health = %d, want 2", victim.Health)
	}
	if bystander.Health != 5 {
		t.Fatalf("bystander should be untouched, health = %d", bystander.Health)
	}
}

func TestDealDamageTargetedRejectsFriendly(t *testing.T) {
	p, board := newPlayerOnBoard()
	ally := vanillaUnit(1, 1, 1)
	if err := board.PlayCard(p, ally); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	spell := spellCard(1, Ability{Kind: AbilityDealDamage, Value: 3, CanTarget: true})
	err := spell.Ability.Play(board, p, spell, ally.ID)
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("got %v, want ErrInvalidTarget", err)
	}
}

func TestDealDamageTargetedFallsBackToAOEOnMissingTarget(t *testing.T) {
	p, board := newPlayerOnBoard()
	enemy := board.playerIDs[1]
	foe1 := vanillaUnit(1, 1, 5)
	foe2 := vanillaUnit(1, 1, 5)
	board.byPlayer[enemy] = append(board.byPlayer[enemy], foe1.ID, foe2.ID)
	board.units[foe1.ID] = foe1
	board.units[foe2.ID] = foe2

	spell := spellCard(1, Ability{Kind: AbilityDealDamage, Value: 2, CanTarget: true})
	if err := spell.Ability.Play(board, p, spell, ids.New()); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if foe1.Health != 3 || foe2.Health != 3 {
		t.Fatalf("expected AOE fallback to hit both enemies, got %d and %d", foe1.Health, foe2.Health)
	}
}

func TestDealDamageAOEHitsAllEnemiesNoRetaliation(t *testing.T) {
	p, board := newPlayerOnBoard()
	enemy := board.playerIDs[1]
	foe := vanillaUnit(5, 5, 3)
	board.byPlayer[enemy] = append(board.byPlayer[enemy], foe.ID)
	board.units[foe.ID] = foe

	spell := spellCard(4, Ability{Kind: AbilityDealDamage, Value: 2, CanTarget: false})
	if err := spell.Ability.Play(board, p, spell, ids.Nil); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if foe.Health != 1 {
		t.Fatalf("foe health = %d, want 1", foe.Health)
	}
}

func TestDealDamageAOERejectsExplicitTarget(t *testing.T) {
	p, board := newPlayerOnBoard()
	spell := spellCard(4, Ability{Kind: AbilityDealDamage, Value: 2, CanTarget: false})
	err := spell.Ability.Play(board, p, spell, ids.New())
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("got %v, want ErrInvalidTarget", err)
	}
}
