// Package mcpagent exposes the MCTS planner (internal/planner) as an
// MCP session. There is no human on either side of a decision here —
// the session backs directly onto a planner.Tree, so "the next
// decision" is just another tree.Run call rather than something to
// block and wait for.
package mcpagent

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/cardforge/duelcore/internal/game"
	netview "github.com/cardforge/duelcore/internal/net"
	"github.com/cardforge/duelcore/internal/planner"
)

// DefaultIterations is how many rollouts best_move runs per call when
// the caller does not specify a count.
const DefaultIterations = 500

// Session holds one duel under planner advisement: a single shared
// game, searched every time from the same committed player's point of
// view (SearchingPlayer), regardless of whose turn it actually is.
// Off-turn searches still work: the tree models the opponent's hidden
// hand as a probability distribution over their remaining deck, so the
// same tree can advise on "what will they probably do" as readily as
// "what should I do".
type Session struct {
	mu       sync.Mutex
	tree     *planner.Tree
	rng      *rand.Rand
	gameOver bool
}

// NewSession loads deck0Number and deck1Number from decksFile (1-indexed,
// per game.DeckByNumber), starts a game, and roots a search tree at it
// from searchingPlayer's (0 or 1) point of view.
func NewSession(decksFile string, deck0Number, deck1Number, searchingPlayer int, seed int64) (*Session, error) {
	if searchingPlayer != 0 && searchingPlayer != 1 {
		return nil, fmt.Errorf("searching player must be 0 or 1, got %d", searchingPlayer)
	}

	_, deck0, err := game.DeckByNumber(decksFile, deck0Number)
	if err != nil {
		return nil, fmt.Errorf("load deck %d: %w", deck0Number, err)
	}
	_, deck1, err := game.DeckByNumber(decksFile, deck1Number)
	if err != nil {
		return nil, fmt.Errorf("load deck %d: %w", deck1Number, err)
	}

	rng := rand.New(rand.NewSource(seed))
	g, err := game.NewGame(game.GameConfig{
		Player0Name: "Player 0",
		Player1Name: "Player 1",
		Deck0:       deck0,
		Deck1:       deck1,
		Rng:         rng,
	})
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if err := g.Start(); err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}

	return &Session{
		tree: planner.NewTree(g, g.Players[searchingPlayer].ID, rng),
		rng:  rng,
	}, nil
}

// BestMove runs iterations additional rollouts and returns the root
// child with the greatest accumulated win total. If it is not
// currently the searching player's turn, the returned action is the
// tree's prediction of the opponent's move rather than an instruction
// to act on.
func (s *Session) BestMove(iterations int) (game.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gameOver {
		return game.Action{}, fmt.Errorf("duel is already over")
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return s.tree.Run(iterations)
}

// ApplyMove commits action as the duel's next real move and reroots the
// tree onto it (building a fresh subtree if the action was never
// explored), recording whether the game ended.
func (s *Session) ApplyMove(action game.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gameOver {
		return fmt.Errorf("duel is already over")
	}
	if err := s.tree.Play(action); err != nil {
		return fmt.Errorf("apply move: %w", err)
	}
	if s.tree.Game().Over() {
		s.gameOver = true
	}
	return nil
}

// StateView renders the current state from perspective's (0 or 1) point
// of view, redacting the opposing player's hand.
func (s *Session) StateView(perspective int) (*netview.StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if perspective != 0 && perspective != 1 {
		return nil, fmt.Errorf("perspective must be 0 or 1, got %d", perspective)
	}
	return netview.BuildStateView(s.tree.Game(), perspective), nil
}

// Over reports whether the duel has ended.
func (s *Session) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver
}

// Result returns the finished game's summary. Callers should check Over
// first; an in-progress game returns a Result with empty WinnerID and
// LoserID.
func (s *Session) Result() game.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Game().Result()
}

// SearchingPlayer returns the player index (0 or 1) the session's tree
// searches from.
func (s *Session) SearchingPlayer() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.tree.Game()
	if g.Players[0].ID == s.tree.SearchingPlayer() {
		return 0
	}
	return 1
}

// CurrentPlayer returns the player index (0 or 1) whose turn it is.
func (s *Session) CurrentPlayer() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.tree.Game()
	if g.Players[0].ID == g.CurrentPlayer().ID {
		return 0
	}
	return 1
}

// Iterations returns how many rollouts the tree's current root has
// accumulated.
func (s *Session) Iterations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Iterations()
}
