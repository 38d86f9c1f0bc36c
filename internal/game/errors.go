package game

import (
	"errors"
	"fmt"

	"github.com/cardforge/duelcore/internal/ids"
)

// ErrInvalidAction is the supertype sentinel for every recoverable,
// player-caused rejection. Callers that only care whether an action was
// illegal (as opposed to the game having ended) can test against this
// one value with errors.Is instead of enumerating every member.
var ErrInvalidAction = errors.New("invalid action")

var (
	ErrMissingCard      = wrap("card not found")
	ErrNotEnoughMana    = wrap("not enough mana")
	ErrTooManyCards     = wrap("board is full")
	ErrCardCannotAttack = wrap("card cannot attack")
	ErrTargetNotDefined = wrap("ability requires a target")
	ErrInvalidTarget    = wrap("invalid target for ability")
	ErrInvalidPlayerTurn = wrap("not this player's turn")
	ErrGameNotStarted   = wrap("game has not started")
)

func wrap(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidAction)
}

// DeadPlayerError is terminal: once raised, the game is over and no
// further action may be applied. It is never itself wrapped under
// ErrInvalidAction since it is not a rejection, it is an outcome.
type DeadPlayerError struct {
	Loser ids.ID
}

func (e *DeadPlayerError) Error() string {
	return fmt.Sprintf("player %s has died", e.Loser.Short())
}

// EmptyDeckError carries the cumulative number of empty draws a deck has
// reported, which Player.TakeCards converts into fatigue damage. It is
// consumed at that boundary and never propagated to callers of the
// public Game operations.
type EmptyDeckError struct {
	Shortfall int
}

func (e *EmptyDeckError) Error() string {
	return fmt.Sprintf("deck is empty, cumulative shortfall %d", e.Shortfall)
}
