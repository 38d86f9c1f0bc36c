package planner

import (
	"sync"

	"github.com/cardforge/duelcore/internal/game"
	"github.com/cardforge/duelcore/internal/ids"
)

// nodePool recycles tree nodes across searches, the same pattern the
// card-evolution simulator uses for its game states: acquire, reset,
// release back to the pool instead of letting the GC reclaim a fresh
// node for every one of a search's thousands of iterations.
var nodePool = sync.Pool{
	New: func() any {
		return &Node{Children: make([]*Node, 0, 8)}
	},
}

// getNode acquires a zeroed node from the pool.
func getNode() *Node {
	n := nodePool.Get().(*Node)
	n.reset()
	return n
}

// putNode releases n and, recursively, its whole subtree back to the
// pool. Callers must not touch n or any of its descendants afterward.
func putNode(n *Node) {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		putNode(c)
	}
	nodePool.Put(n)
}

// Node is one position in the search tree. The action stored on a node
// is the move that was taken to REACH it from its parent; the root
// node's Action is the zero value and is never applied.
type Node struct {
	Parent   *Node
	Children []*Node

	Action     game.Action
	Player     ids.ID // whose turn it was when Action was chosen
	IsTerminal bool
	Loser      ids.ID // valid only when IsTerminal

	Visits int
	Wins   float64

	Untried []Candidate
}

func (n *Node) reset() {
	n.Parent = nil
	n.Children = n.Children[:0]
	n.Action = game.Action{}
	n.Player = ids.Nil
	n.IsTerminal = false
	n.Loser = ids.Nil
	n.Visits = 0
	n.Wins = 0
	n.Untried = nil
}

// IsFullyExpanded reports whether every candidate at n has already been
// turned into a child node.
func (n *Node) IsFullyExpanded() bool {
	return len(n.Untried) == 0
}

// WinRate is n's empirical win rate for the player who made the move
// leading into n, 0 when unvisited.
func (n *Node) WinRate() float64 {
	if n.Visits == 0 {
		return 0
	}
	return n.Wins / float64(n.Visits)
}

// BestChild returns n's child with the greatest win total, ties broken
// by insertion order (the first child seen keeps the lead). This is
// the criterion used to pick a final action once search is done, as
// opposed to UCT, which also weighs unvisited exploration and is only
// appropriate mid-search.
func (n *Node) BestChild() *Node {
	var best *Node
	for _, c := range n.Children {
		if best == nil || c.Wins > best.Wins {
			best = c
		}
	}
	return best
}
