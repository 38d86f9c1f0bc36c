package game

import (
	"fmt"
	"strings"
)

// Result summarizes a finished game, distinct from the raw event log:
// who won, who lost, how long it took, and each hero's final health.
type Result struct {
	WinnerID     string
	LoserID      string
	Turns        int
	Player0Health int
	Player1Health int
}

// Result builds a Result once the game is over. If the game has not
// ended, WinnerID and LoserID are empty; Turns and both health fields
// still report the current values.
func (g *Game) Result() Result {
	r := Result{
		Turns:         g.Turn,
		Player0Health: g.Players[0].Health,
		Player1Health: g.Players[1].Health,
	}
	switch {
	case g.Players[0].Health <= 0 && g.Players[1].Health <= 0:
		// Simultaneous death (e.g. mutual combat damage): no winner.
		r.LoserID = g.Players[0].ID.String() + "," + g.Players[1].ID.String()
	case g.Players[0].Health <= 0:
		r.WinnerID = g.Players[1].ID.String()
		r.LoserID = g.Players[0].ID.String()
	case g.Players[1].Health <= 0:
		r.WinnerID = g.Players[0].ID.String()
		r.LoserID = g.Players[1].ID.String()
	}
	return r
}

// String renders a turn-by-turn board snapshot: both heroes' HP/mana,
// each player's board units with their stats, and hand sizes. The exact
// format is implementer-defined, as the operation's spec allows.
func (g *Game) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "turn %d\n", g.Turn)
	for _, p := range g.Players {
		marker := " "
		if g.Started && g.CurrentPlayer().ID == p.ID {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s%s  hp=%d mana=%d/%d hand=%d deck=%d\n",
			marker, p.Name, p.Health, p.EffectiveMana(), p.CurrentMana, len(p.Hand), len(p.Deck.Cards))
		for _, uid := range g.Board.UnitsOf(p.ID) {
			u := g.Board.units[uid]
			attackMark := ""
			if u.CanAttack {
				attackMark = "*"
			}
			fmt.Fprintf(&b, "    %s %d/%d%s\n", u.Name, u.Damage, u.Health, attackMark)
		}
	}
	return b.String()
}
