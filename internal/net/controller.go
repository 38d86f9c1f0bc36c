package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/cardforge/duelcore/internal/duel"
	"github.com/cardforge/duelcore/internal/game"
	"github.com/cardforge/duelcore/internal/log"
)

// NetworkController implements duel.Controller over a TCP (or in-memory
// net.Pipe) connection, one per player.
type NetworkController struct {
	conn      net.Conn
	enc       *json.Encoder
	dec       *json.Decoder
	playerIdx int
	mu        sync.Mutex
}

// NewNetworkController wraps conn for the given player index (0 or 1).
func NewNetworkController(conn net.Conn, playerIdx int) *NetworkController {
	return &NetworkController{
		conn:      conn,
		enc:       json.NewEncoder(conn),
		dec:       json.NewDecoder(conn),
		playerIdx: playerIdx,
	}
}

// BuildStateView renders g from playerIdx's point of view.
func BuildStateView(g *game.Game, playerIdx int) *StateView {
	me := g.Players[playerIdx]
	opp := g.Players[1-playerIdx]

	sv := &StateView{
		Turn:       g.Turn,
		IsYourTurn: g.CurrentPlayer().ID == me.ID,
		You:        playerView(g, me, true),
		Opponent:   playerView(g, opp, false),
	}
	return sv
}

func playerView(g *game.Game, p *game.Player, revealHand bool) PlayerView {
	pv := PlayerView{
		Name:      p.Name,
		Health:    p.Health,
		Mana:      p.EffectiveMana(),
		HandCount: len(p.Hand),
		DeckCount: len(p.Deck.Cards),
	}
	if revealHand {
		for _, c := range p.Hand {
			pv.Hand = append(pv.Hand, c.Name)
		}
	}
	for _, id := range g.Board.UnitsOf(p.ID) {
		unit, ok := g.Board.Unit(id)
		if !ok {
			continue
		}
		pv.Board = append(pv.Board, UnitView{
			Name: unit.Name, Damage: unit.Damage, Health: unit.Health, CanAttack: unit.CanAttack,
		})
	}
	return pv
}

func (nc *NetworkController) send(msg ServerMessage) error {
	return nc.enc.Encode(msg)
}

func (nc *NetworkController) recv() (ClientMessage, error) {
	var msg ClientMessage
	err := nc.dec.Decode(&msg)
	return msg, err
}

// ChooseAction implements duel.Controller.
func (nc *NetworkController) ChooseAction(ctx context.Context, g *game.Game, actions []game.Action) (game.Action, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	views := make([]ActionView, len(actions))
	for i, a := range actions {
		views[i] = ActionView{Index: i, Desc: a.String()}
	}

	msg := ServerMessage{Type: "choose_action", Actions: views, State: BuildStateView(g, nc.playerIdx)}
	if err := nc.send(msg); err != nil {
		return game.Action{}, fmt.Errorf("send choose_action: %w", err)
	}

	resp, err := nc.recv()
	if err != nil {
		return game.Action{}, fmt.Errorf("recv action: %w", err)
	}
	if resp.Index < 0 || resp.Index >= len(actions) {
		return actions[0], nil
	}
	return actions[resp.Index], nil
}

// Notify implements duel.Controller.
func (nc *NetworkController) Notify(ctx context.Context, event log.GameEvent) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	return nc.send(ServerMessage{
		Type: "notify",
		Event: &EventView{
			Turn:    event.Turn,
			Player:  event.PlayerID,
			Type:    event.Type.String(),
			Card:    event.Card,
			Details: event.Details,
		},
	})
}

// SendGameOver sends the terminal message once the duel finishes.
func (nc *NetworkController) SendGameOver(winner int, result string) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: "game_over", Winner: winner, Result: result})
}

var _ duel.Controller = (*NetworkController)(nil)
