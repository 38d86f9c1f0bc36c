package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/cardforge/duelcore/internal/duel"
	"github.com/cardforge/duelcore/internal/game"
	"github.com/cardforge/duelcore/internal/planner"
)

// benchRecord is the per-move JSON record documented as the duel
// driver's external interface: one line per move, game_over/loser only
// populated on the move that ends the duel.
type benchRecord struct {
	GameOver        bool    `json:"game_over"`
	GameTurn        int     `json:"game_turn"`
	PlayerName      string  `json:"player_name"`
	TreeHeight      int     `json:"tree_height,omitempty"`
	TreeExploration float64 `json:"tree_exploration,omitempty"`
	TreeNodes       int     `json:"tree_nodes,omitempty"`
	Loser           string  `json:"loser,omitempty"`
}

// runBenchmark plays the planner against itself: every move, a fresh
// tree is rooted at the current player's point of view and searched
// for iterations rollouts before committing the action with the
// greatest accumulated win total.
func runBenchmark(decksFile string, deck0Number, deck1Number, iterations int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	_, cards0, err := game.DeckByNumber(decksFile, deck0Number)
	if err != nil {
		return fmt.Errorf("load deck %d: %w", deck0Number, err)
	}
	_, cards1, err := game.DeckByNumber(decksFile, deck1Number)
	if err != nil {
		return fmt.Errorf("load deck %d: %w", deck1Number, err)
	}

	g, err := game.NewGame(game.GameConfig{
		Player0Name: "Player 0",
		Player1Name: "Player 1",
		Deck0:       cards0,
		Deck1:       cards1,
		Rng:         rng,
	})
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	if err := g.Start(); err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	for move := 0; move < duel.DefaultMaxTurns*8; move++ {
		cur := g.CurrentPlayer()
		tree := planner.NewTree(g, cur.ID, rng)
		action, err := tree.Run(iterations)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}

		rec := benchRecord{
			GameTurn:        g.Turn,
			PlayerName:      cur.Name,
			TreeHeight:      tree.Height(),
			TreeExploration: tree.Exploration(),
			TreeNodes:       tree.NodeCount(),
		}

		applyErr := g.ApplyAction(action)
		var dead *game.DeadPlayerError
		if errors.As(applyErr, &dead) {
			rec.GameOver = true
			rec.Loser = dead.Loser.String()
			return enc.Encode(rec)
		}
		if applyErr != nil {
			return fmt.Errorf("apply action %s: %w", action, applyErr)
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}

	fmt.Fprintln(os.Stderr, "bench: reached the move cap without a winner")
	return nil
}
