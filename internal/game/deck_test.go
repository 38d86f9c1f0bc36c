package game

import (
	"errors"
	"testing"
)

func TestDealExact(t *testing.T) {
	d := NewDeck(makeDeck(3))
	drawn, err := d.Deal(2)
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}
	if len(drawn) != 2 || len(d.Cards) != 1 {
		t.Fatalf("got %d drawn, %d remaining", len(drawn), len(d.Cards))
	}
}

func TestDealShortfallIsCumulative(t *testing.T) {
	d := NewDeck(nil)

	_, err := d.Deal(1)
	var empty *EmptyDeckError
	if !errors.As(err, &empty) || empty.Shortfall != 1 {
		t.Fatalf("1st empty draw: got %v, want shortfall 1", err)
	}

	_, err = d.Deal(1)
	if !errors.As(err, &empty) || empty.Shortfall != 2 {
		t.Fatalf("2nd empty draw: got %v, want shortfall 2", err)
	}

	_, err = d.Deal(1)
	if !errors.As(err, &empty) || empty.Shortfall != 3 {
		t.Fatalf("3rd empty draw: got %v, want shortfall 3", err)
	}
}

// TestFatigueKillsAcrossEmptyDraws exercises the "n-th empty draw deals n
// damage, cumulative" rule end to end against a player at low health.
func TestFatigueKillsAcrossEmptyDraws(t *testing.T) {
	p := NewPlayer("Solo", NewDeck(nil))
	if err := p.SetHealth(5); err != nil {
		t.Fatalf("SetHealth: %v", err)
	}

	if err := p.TakeCards(1); err != nil {
		t.Fatalf("1st fatigue draw returned error: %v", err)
	}
	if p.Health != 4 {
		t.Fatalf("after 1st empty draw, health = %d, want 4", p.Health)
	}

	if err := p.TakeCards(1); err != nil {
		t.Fatalf("2nd fatigue draw returned error: %v", err)
	}
	if p.Health != 2 {
		t.Fatalf("after 2nd empty draw, health = %d, want 2", p.Health)
	}

	err := p.TakeCards(1)
	var dead *DeadPlayerError
	if !errors.As(err, &dead) {
		t.Fatalf("3rd empty draw: got %v, want DeadPlayerError", err)
	}
	if dead.Loser != p.ID {
		t.Fatalf("DeadPlayerError.Loser = %s, want %s", dead.Loser, p.ID)
	}
	if p.Health != 0 {
		t.Fatalf("health after death = %d, want latched at 0", p.Health)
	}
}

func TestDeckCloneIsIndependent(t *testing.T) {
	d := NewDeck(makeDeck(2))
	clone := d.clone()
	clone.Cards[0].Health = 99
	if d.Cards[0].Health == 99 {
		t.Fatal("mutating the clone's card mutated the original")
	}
	if clone.Cards[0].ID != d.Cards[0].ID {
		t.Fatal("clone should preserve card identity")
	}
}
