package game

import (
	"fmt"

	"github.com/cardforge/duelcore/internal/ids"
)

// ActionKind is the closed set of moves a player (or the planner
// speculating about one) can make.
type ActionKind int

const (
	// ActionInitial marks a tree root before any move has been chosen.
	// It is never applied to a Game.
	ActionInitial ActionKind = iota
	ActionEndTurn
	ActionAttack
	ActionPlay
	// ActionProbablePlay is a Play the generator believes the opponent
	// might make, inferred from the unknown-card universe rather than
	// a known hand. Chance carries the weight it should receive during
	// MCTS backup.
	ActionProbablePlay
)

func (k ActionKind) String() string {
	switch k {
	case ActionInitial:
		return "initial"
	case ActionEndTurn:
		return "end_turn"
	case ActionAttack:
		return "attack"
	case ActionPlay:
		return "play"
	case ActionProbablePlay:
		return "probable_play"
	default:
		return "unknown"
	}
}

// Action is a single tagged move. Which fields are meaningful depends
// on Kind: EndTurn only reads PlayerID; Attack reads AttackerID and
// VictimID; Play and ProbablePlay read CardID and TargetID.
type Action struct {
	Kind       ActionKind
	PlayerID   ids.ID
	AttackerID ids.ID
	VictimID   ids.ID
	CardID     ids.ID
	TargetID   ids.ID
	Chance     float64
}

// Equal compares two actions structurally, ignoring Chance: a
// ProbablePlay and a later re-estimate of its probability name the same
// move and must be treated as the same tree-node action, not a
// duplicate.
func (a Action) Equal(other Action) bool {
	return a.Kind == other.Kind &&
		a.PlayerID == other.PlayerID &&
		a.AttackerID == other.AttackerID &&
		a.VictimID == other.VictimID &&
		a.CardID == other.CardID &&
		a.TargetID == other.TargetID
}

// String renders a human-readable description for logging.
func (a Action) String() string {
	switch a.Kind {
	case ActionEndTurn:
		return fmt.Sprintf("end_turn(%s)", a.PlayerID.Short())
	case ActionAttack:
		return fmt.Sprintf("attack(%s, %s -> %s)", a.PlayerID.Short(), a.AttackerID.Short(), a.VictimID.Short())
	case ActionPlay:
		return fmt.Sprintf("play(%s, %s -> %s)", a.PlayerID.Short(), a.CardID.Short(), a.TargetID.Short())
	case ActionProbablePlay:
		return fmt.Sprintf("probable_play(%s, %s -> %s, %.2f)", a.PlayerID.Short(), a.CardID.Short(), a.TargetID.Short(), a.Chance)
	default:
		return "initial"
	}
}

// ApplyAction dispatches a to the matching Game operation.
func (g *Game) ApplyAction(a Action) error {
	switch a.Kind {
	case ActionInitial:
		return nil
	case ActionEndTurn:
		return g.EndTurn(a.PlayerID)
	case ActionPlay:
		return g.Play(a.PlayerID, a.CardID, a.TargetID)
	case ActionProbablePlay:
		return g.playFromUnknown(a.PlayerID, a.CardID, a.TargetID)
	case ActionAttack:
		return g.Attack(a.PlayerID, a.AttackerID, a.VictimID)
	default:
		return fmt.Errorf("unknown action kind %v: %w", a.Kind, ErrInvalidAction)
	}
}
