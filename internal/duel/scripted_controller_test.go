package duel

import (
	"context"
	"errors"

	"github.com/cardforge/duelcore/internal/game"
	"github.com/cardforge/duelcore/internal/log"
)

// Picker tries to find its preferred move among the actions currently
// on offer; returning false defers to the next queued picker, or to
// ScriptedController's end-turn default once the queue is empty.
type Picker func(g *game.Game, actions []game.Action) (game.Action, bool)

// PlayAnyCard picks the first available hand-card play.
func PlayAnyCard() Picker {
	return func(_ *game.Game, actions []game.Action) (game.Action, bool) {
		for _, a := range actions {
			if a.Kind == game.ActionPlay {
				return a, true
			}
		}
		return game.Action{}, false
	}
}

// AttackHero picks an attack targeting the opponent's hero directly.
func AttackHero() Picker {
	return func(g *game.Game, actions []game.Action) (game.Action, bool) {
		cur := g.CurrentPlayer()
		opp := g.OpponentOf(cur.ID)
		for _, a := range actions {
			if a.Kind == game.ActionAttack && a.VictimID == opp.ID {
				return a, true
			}
		}
		return game.Action{}, false
	}
}

// ScriptedController replays a queue of Pickers, falling back to
// ending the turn once the queue is drained.
type ScriptedController struct {
	Name     string
	Queue    []Picker
	Notified []log.GameEvent
}

// NewScriptedController builds a named, empty-queue controller.
func NewScriptedController(name string) *ScriptedController {
	return &ScriptedController{Name: name}
}

// Script appends a picker to the queue.
func (c *ScriptedController) Script(p Picker) {
	c.Queue = append(c.Queue, p)
}

func (c *ScriptedController) ChooseAction(_ context.Context, g *game.Game, actions []game.Action) (game.Action, error) {
	for len(c.Queue) > 0 {
		p := c.Queue[0]
		c.Queue = c.Queue[1:]
		if a, ok := p(g, actions); ok {
			return a, nil
		}
	}
	for _, a := range actions {
		if a.Kind == game.ActionEndTurn {
			return a, nil
		}
	}
	return game.Action{}, errors.New("scripted controller: no end turn action available")
}

func (c *ScriptedController) Notify(_ context.Context, event log.GameEvent) error {
	c.Notified = append(c.Notified, event)
	return nil
}
