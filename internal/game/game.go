package game

import (
	"math/rand"

	"github.com/cardforge/duelcore/internal/ids"
)

// Default starting hand sizes: the player who goes first draws fewer
// cards to offset the advantage of acting first.
const (
	FirstPlayerHand  = 3
	SecondPlayerHand = 4
)

// GameConfig builds a new Game. Rng is owned by the caller: a seeded
// source makes shuffling and any later MCTS search deterministic,
// an unseeded one does not. There is no Seed/NoShuffle toggle here
// because the caller already controls that by how it constructs Rng.
type GameConfig struct {
	Player0Name string
	Player1Name string
	Deck0       []*Card
	Deck1       []*Card
	Rng         *rand.Rand
	HandSizes   [2]int // zero value triggers the FirstPlayerHand/SecondPlayerHand defaults
}

// Game is the authoritative two-player match state: a shared Board and
// the two Players, a turn counter, and whether play has begun.
type Game struct {
	ID      ids.ID
	Board   *Board
	Players [2]*Player
	Turn    int
	Started bool
	rng     *rand.Rand
}

// NewGame builds a fresh game: it creates the board and the two
// players, shuffles each deck, and deals each player's starting hand.
// The game is not yet started; call Start to begin turn 1. An error is
// only possible if a starting hand is larger than its deck, which would
// surface as fatigue damage (and possibly an immediate DeadPlayerError)
// before the first move is ever made.
func NewGame(cfg GameConfig) (*Game, error) {
	p0 := NewPlayer(cfg.Player0Name, NewDeck(cfg.Deck0))
	p1 := NewPlayer(cfg.Player1Name, NewDeck(cfg.Deck1))

	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	p0.Deck.Shuffle(rng)
	p1.Deck.Shuffle(rng)

	hands := cfg.HandSizes
	if hands == [2]int{} {
		hands = [2]int{FirstPlayerHand, SecondPlayerHand}
	}

	g := &Game{
		ID:      ids.New(),
		Board:   NewBoard(p0.ID, p1.ID),
		Players: [2]*Player{p0, p1},
		rng:     rng,
	}

	if err := p0.TakeCards(hands[0]); err != nil {
		return g, err
	}
	if err := p1.TakeCards(hands[1]); err != nil {
		return g, err
	}
	return g, nil
}

// CurrentPlayer returns the player whose turn it is. Valid once Start
// has been called.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[(g.Turn-1)%2]
}

// OpponentOf returns the player other than the one named.
func (g *Game) OpponentOf(playerID ids.ID) *Player {
	if g.Players[0].ID == playerID {
		return g.Players[1]
	}
	return g.Players[0]
}

// Over reports whether either player has died.
func (g *Game) Over() bool {
	return g.Players[0].Health <= 0 || g.Players[1].Health <= 0
}

// Start is idempotent: it flips Started, advances into turn 1 for
// Players[0], and runs that player's begin-turn setup, which is exactly
// what EndTurn runs for every subsequent turn transition.
func (g *Game) Start() error {
	if g.Started {
		return nil
	}
	g.Started = true
	g.Turn = 1
	return g.beginTurn(g.CurrentPlayer())
}

// beginTurn resets the incoming player's units to be able to attack,
// bumps their mana (capped at MaxMana), resets used mana, and draws
// them one card (fatigue applies if their deck is empty).
func (g *Game) beginTurn(p *Player) error {
	g.Board.ResetCards(p.ID)
	p.CurrentMana = min(p.CurrentMana+1, MaxMana)
	p.UsedMana = 0
	return p.TakeCards(1)
}

// EndTurn advances the turn counter and runs begin-turn setup for the
// player coming in next.
func (g *Game) EndTurn(playerID ids.ID) error {
	if !g.Started {
		return ErrGameNotStarted
	}
	if g.CurrentPlayer().ID != playerID {
		return ErrInvalidPlayerTurn
	}
	g.Turn++
	return g.beginTurn(g.CurrentPlayer())
}

// Play resolves a hand card from playerID, who must be the current player.
func (g *Game) Play(playerID, cardID, targetID ids.ID) error {
	if !g.Started {
		return ErrGameNotStarted
	}
	cur := g.CurrentPlayer()
	if cur.ID != playerID {
		return ErrInvalidPlayerTurn
	}
	return cur.Play(g.Board, cardID, targetID)
}

// playFromUnknown resolves a ProbablePlay, bypassing the hand-membership
// check since the card was only ever inferred to exist in hand.
func (g *Game) playFromUnknown(playerID, cardID, targetID ids.ID) error {
	if !g.Started {
		return ErrGameNotStarted
	}
	cur := g.CurrentPlayer()
	if cur.ID != playerID {
		return ErrInvalidPlayerTurn
	}
	return cur.playFromDeck(g.Board, cardID, targetID)
}

// Attack resolves playerID's unit attacking either an enemy unit or the
// enemy hero (victimID equal to the opponent's player id).
func (g *Game) Attack(playerID, attackerID, victimID ids.ID) error {
	if !g.Started {
		return ErrGameNotStarted
	}
	cur := g.CurrentPlayer()
	if cur.ID != playerID {
		return ErrInvalidPlayerTurn
	}
	owner, ok := g.Board.Owner(attackerID)
	if !ok || owner != playerID {
		return ErrMissingCard
	}
	opp := g.OpponentOf(playerID)
	target := AttackTarget{}
	if victimID == opp.ID {
		target.Hero = opp
	} else {
		target.Unit = victimID
	}
	return g.Board.Attack(attackerID, target)
}

// Copy returns a fully independent deep clone: cloned board, cloned
// players, cloned decks and hands, all preserving original IDs so that
// pointers from the clone never alias the source and vice versa. The
// random source is shared, which is safe since clones are always driven
// sequentially, never concurrently.
func (g *Game) Copy() *Game {
	newBoard, cardMap := g.Board.clone()
	newPlayers := [2]*Player{}
	for i, p := range g.Players {
		newPlayers[i] = p.clone(newBoard, cardMap)
	}
	return &Game{
		ID:      g.ID,
		Board:   newBoard,
		Players: newPlayers,
		Turn:    g.Turn,
		Started: g.Started,
		rng:     g.rng,
	}
}
