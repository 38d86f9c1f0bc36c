// Package planner implements the action generator and Monte Carlo Tree
// Search planner that play duelcore's game kernel.
package planner

import (
	"errors"
	"math/rand"

	"github.com/cardforge/duelcore/internal/game"
	"github.com/cardforge/duelcore/internal/ids"
)

// ErrNoLegalActions is returned by Apply when a state somehow has no
// legal moves at all. EndTurn is always a candidate once the game has
// started, so this should not occur in practice; it exists as a
// defensive signal rather than a documented game-ending condition.
var ErrNoLegalActions = errors.New("planner: no legal actions available")

// Candidate is one validated, ready-to-apply action.
type Candidate struct {
	Action     game.Action
	IsTerminal bool
	Loser      ids.ID
}

// Generator produces the legal actions available in a game state. It
// models the hand of whichever player is NOT the searching player as
// hidden: instead of enumerating their real hand, it enumerates over
// the unknown-card universe (their remaining deck) and tags the result
// as a ProbablePlay weighted by the chance that card is actually in
// hand. Passing ids.Nil as the searching player disables this and
// treats both hands as fully known, which is what a real duel (not a
// planner search) wants.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator builds a generator backed by rng, which is used both to
// shuffle the returned candidate order and, in Apply, to pick one.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Candidates returns every legal action in g for the player whose turn
// it is, validated against a throwaway clone, in an arbitrary order (an
// interleaving of plays, attacks, and the end-turn action).
func (gen *Generator) Candidates(g *game.Game, searchingPlayer ids.ID) []Candidate {
	cur := g.CurrentPlayer()
	opp := g.OpponentOf(cur.ID)

	var cands []Candidate

	if searchingPlayer.IsNil() || cur.ID == searchingPlayer {
		for cardID, card := range cur.Hand {
			for _, targetID := range playTargets(g, cur, card) {
				a := game.Action{Kind: game.ActionPlay, PlayerID: cur.ID, CardID: cardID, TargetID: targetID}
				gen.tryAdd(&cands, g, a)
			}
		}
	} else {
		unknown := len(cur.Deck.Cards)
		if unknown > 0 {
			chance := float64(len(cur.Hand)) / float64(unknown)
			for _, card := range cur.Deck.Cards {
				for _, targetID := range playTargets(g, cur, card) {
					a := game.Action{
						Kind: game.ActionProbablePlay, PlayerID: cur.ID,
						CardID: card.ID, TargetID: targetID, Chance: chance,
					}
					gen.tryAdd(&cands, g, a)
				}
			}
		}
	}

	victims := append(append([]ids.ID{}, g.Board.UnitsOf(opp.ID)...), opp.ID)
	for _, atk := range g.Board.UnitsOf(cur.ID) {
		for _, vid := range victims {
			a := game.Action{Kind: game.ActionAttack, PlayerID: cur.ID, AttackerID: atk, VictimID: vid}
			gen.tryAdd(&cands, g, a)
		}
	}

	gen.tryAdd(&cands, g, game.Action{Kind: game.ActionEndTurn, PlayerID: cur.ID})

	gen.rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
	return cands
}

// playTargets is the Cartesian product partner for a play action: the
// null target plus every unit the player currently controls.
func playTargets(g *game.Game, p *game.Player, card *game.Card) []ids.ID {
	_ = card
	targets := make([]ids.ID, 0, len(g.Board.UnitsOf(p.ID))+1)
	targets = append(targets, ids.Nil)
	targets = append(targets, g.Board.UnitsOf(p.ID)...)
	return targets
}

// tryAdd validates a against a throwaway clone of g and appends it to
// *cands if it is legal. DeadPlayer outcomes are legal and terminal;
// InvalidAction rejections are filtered out silently, same as any other
// illegal candidate in the Cartesian product.
func (gen *Generator) tryAdd(cands *[]Candidate, g *game.Game, a game.Action) {
	clone := g.Copy()
	err := clone.ApplyAction(a)
	if err == nil {
		*cands = append(*cands, Candidate{Action: a})
		return
	}
	var dead *game.DeadPlayerError
	if errors.As(err, &dead) {
		*cands = append(*cands, Candidate{Action: a, IsTerminal: true, Loser: dead.Loser})
	}
}

// Apply picks one candidate uniformly at random and applies it for real
// against g, mutating it in place. It returns the chosen action and the
// error ApplyAction produced (nil, or a *game.DeadPlayerError once the
// game has ended).
func (gen *Generator) Apply(g *game.Game, searchingPlayer ids.ID) (game.Action, error) {
	cands := gen.Candidates(g, searchingPlayer)
	if len(cands) == 0 {
		return game.Action{}, ErrNoLegalActions
	}
	c := cands[gen.rng.Intn(len(cands))]
	err := g.ApplyAction(c.Action)
	return c.Action, err
}
