// Package duel orchestrates a full game between two controllers, using
// duelcore's flatter turn model: draw, then any number of plays and
// attacks in either order, then end turn.
package duel

import (
	"context"
	"errors"
	"math/rand"

	"github.com/cardforge/duelcore/internal/game"
	"github.com/cardforge/duelcore/internal/ids"
	"github.com/cardforge/duelcore/internal/log"
	"github.com/cardforge/duelcore/internal/planner"
)

// DefaultMaxTurns is the safety-valve turn cap: a game that somehow
// never produces a DeadPlayerError is called a draw rather than run
// forever.
const DefaultMaxTurns = 200

// Controller is implemented by whatever picks a current player's move:
// a human over a network/web connection, an MCP-backed planner agent,
// or a scripted test double.
type Controller interface {
	ChooseAction(ctx context.Context, g *game.Game, actions []game.Action) (game.Action, error)
	Notify(ctx context.Context, event log.GameEvent) error
}

// DuelConfig builds a Duel.
type DuelConfig struct {
	Player0Name string
	Player1Name string
	Deck0       []*game.Card
	Deck1       []*game.Card
	Logger      log.EventLogger
	Rng         *rand.Rand
	MaxTurns    int // 0 uses DefaultMaxTurns
}

// Duel owns the game state and drives it to completion by repeatedly
// asking the current player's controller to choose among the legal
// actions the generator reports.
type Duel struct {
	Game        *game.Game
	Controllers [2]Controller
	Logger      log.EventLogger

	gen      *planner.Generator
	maxTurns int
	ctx      context.Context
}

// NewDuel builds a duel's game state (shuffling decks and dealing
// starting hands) and pairs it with p0/p1. The returned error is
// non-nil only if a starting hand itself triggered fatigue damage or a
// fatigue death (the tiny demonstration decks used in tests can do
// this); the Duel is still usable in that case, same as game.NewGame.
func NewDuel(cfg DuelConfig, p0, p1 Controller) (*Duel, error) {
	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = DefaultMaxTurns
	}

	g, err := game.NewGame(game.GameConfig{
		Player0Name: cfg.Player0Name,
		Player1Name: cfg.Player1Name,
		Deck0:       cfg.Deck0,
		Deck1:       cfg.Deck1,
		Rng:         rng,
	})

	d := &Duel{
		Game:        g,
		Controllers: [2]Controller{p0, p1},
		Logger:      logger,
		gen:         planner.NewGenerator(rng),
		maxTurns:    maxTurns,
	}
	return d, err
}

// Run drives the duel to completion and returns the winner's index (0
// or 1), or -1 on a turn-cap draw. It returns a non-nil error only for
// a controller failure or ctx cancellation; a player simply losing the
// game is reported via the returned index, not an error.
func (d *Duel) Run(ctx context.Context) (int, error) {
	d.ctx = ctx

	if err := d.Game.Start(); err != nil {
		if winner, ok := d.terminalWinner(err); ok {
			d.announceGameOver(winner)
			return winner, nil
		}
		return -1, err
	}
	d.logAndNotify(log.NewTurnStartedEvent(d.Game.Turn, d.Game.CurrentPlayer().Name))

	for !d.Game.Over() {
		if d.Game.Turn > d.maxTurns {
			return -1, nil
		}

		cur := d.Game.CurrentPlayer()
		idx := d.indexOf(cur.ID)

		cands := d.gen.Candidates(d.Game, ids.Nil)
		actions := make([]game.Action, len(cands))
		for i, c := range cands {
			actions[i] = c.Action
		}

		action, err := d.Controllers[idx].ChooseAction(ctx, d.Game, actions)
		if err != nil {
			return -1, err
		}

		turnBefore := d.Game.Turn
		if err := d.Game.ApplyAction(action); err != nil {
			if winner, ok := d.terminalWinner(err); ok {
				d.announceGameOver(winner)
				return winner, nil
			}
			return -1, err
		}
		d.logAction(turnBefore, action)

		if d.Game.Turn != turnBefore {
			d.logAndNotify(log.NewTurnStartedEvent(d.Game.Turn, d.Game.CurrentPlayer().Name))
		}
		if err := ctx.Err(); err != nil {
			return -1, err
		}
	}

	return d.winnerByHealth(), nil
}

// terminalWinner reports whether err is a DeadPlayerError and, if so,
// which player index won.
func (d *Duel) terminalWinner(err error) (int, bool) {
	var dead *game.DeadPlayerError
	if !errors.As(err, &dead) {
		return -1, false
	}
	loser := d.indexOf(dead.Loser)
	return 1 - loser, true
}

// winnerByHealth is the fallback used if Over() ever becomes true
// without a DeadPlayerError having been observed (it should not, since
// every health-reducing path in the game package raises one, but this
// keeps Run total rather than panicking on an index it can't resolve).
func (d *Duel) winnerByHealth() int {
	p0, p1 := d.Game.Players[0], d.Game.Players[1]
	switch {
	case p0.Health <= 0 && p1.Health <= 0:
		return -1
	case p0.Health <= 0:
		return 1
	case p1.Health <= 0:
		return 0
	default:
		return -1
	}
}

func (d *Duel) indexOf(playerID ids.ID) int {
	if d.Game.Players[0].ID == playerID {
		return 0
	}
	return 1
}

func (d *Duel) announceGameOver(winner int) {
	d.logAndNotify(log.NewGameOverEvent(d.Game.Turn, d.Game.Players[winner].Name))
}

// logAction records the action-specific event for a just-applied
// action. ActionEndTurn produces no event of its own; the turn-started
// event logged right after it in Run covers the transition.
func (d *Duel) logAction(turn int, a game.Action) {
	switch a.Kind {
	case game.ActionPlay, game.ActionProbablePlay:
		d.logAndNotify(log.NewCardPlayedEvent(turn, a.PlayerID.Short(), a.CardID.Short()))
	case game.ActionAttack:
		d.logAndNotify(log.NewUnitAttackedEvent(turn, a.PlayerID.Short(), a.AttackerID.Short(), a.VictimID.Short()))
	}
}

func (d *Duel) logAndNotify(event log.GameEvent) {
	d.Logger.Log(event)
	for _, c := range d.Controllers {
		_ = c.Notify(d.ctx, event)
	}
}
