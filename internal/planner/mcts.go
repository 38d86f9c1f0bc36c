package planner

import (
	"errors"
	"math"
	"math/rand"

	"github.com/cardforge/duelcore/internal/game"
	"github.com/cardforge/duelcore/internal/ids"
)

// ExplorationConstant is the default UCT exploration weight, the
// textbook sqrt(2) value.
const ExplorationConstant = 1.41421356

// MaxRolloutTurns bounds a random playout so a pathological state that
// never reaches a dead player (both decks replenished forever is not
// possible here, but a turn-cap is still cheap insurance against a
// runaway simulation) cannot hang a search iteration.
const MaxRolloutTurns = 200

// Tree is a Monte Carlo Tree Search planner rooted at one game state,
// searching from the point of view of searchingPlayer. Because
// duelcore is a hidden-information game, candidates for the opponent's
// turn are drawn from their deck rather than their hand (see
// Generator), and descent through opponent-owned nodes is random
// rather than UCT-guided: there is no opponent policy to exploit, only
// an unknown hand to sample.
type Tree struct {
	root            *Node
	rootGame        *game.Game
	searchingPlayer ids.ID
	gen             *Generator
	rng             *rand.Rand
	exploration     float64
}

// NewTree builds a search tree rooted at g (which is cloned, never
// mutated) for searchingPlayer.
func NewTree(g *game.Game, searchingPlayer ids.ID, rng *rand.Rand) *Tree {
	t := &Tree{
		rootGame:        g.Copy(),
		searchingPlayer: searchingPlayer,
		gen:             NewGenerator(rng),
		rng:             rng,
		exploration:     ExplorationConstant,
	}
	t.root = getNode()
	t.root.Player = g.CurrentPlayer().ID
	t.root.Untried = t.gen.Candidates(t.rootGame, searchingPlayer)
	return t
}

// Run performs iterations rounds of select/expand/rollout/backup and
// returns the root child with the greatest accumulated win total.
func (t *Tree) Run(iterations int) (game.Action, error) {
	for i := 0; i < iterations; i++ {
		t.iterate()
	}
	return t.BestAction()
}

// Game returns the tree's current root state. Callers must not mutate
// it; use Play to advance the tree instead.
func (t *Tree) Game() *game.Game {
	return t.rootGame
}

// SearchingPlayer returns the player ID this tree is searching for.
func (t *Tree) SearchingPlayer() ids.ID {
	return t.searchingPlayer
}

// Exploration returns the UCT exploration constant this tree searches
// with.
func (t *Tree) Exploration() float64 {
	return t.exploration
}

// Iterations returns how many rollouts the root has accumulated so far.
func (t *Tree) Iterations() int {
	return t.root.Visits
}

// Height returns the depth of the tree's longest explored path, and
// NodeCount the number of nodes in it, both by direct traversal from
// the root. Reserved for diagnostics (a bench command's per-move
// record); a search loop itself never needs either.
func (t *Tree) Height() int {
	return nodeHeight(t.root)
}

func nodeHeight(n *Node) int {
	if n == nil || len(n.Children) == 0 {
		return 0
	}
	max := 0
	for _, c := range n.Children {
		if h := nodeHeight(c); h > max {
			max = h
		}
	}
	return max + 1
}

// NodeCount returns the number of nodes currently in the tree.
func (t *Tree) NodeCount() int {
	return nodeCount(t.root)
}

func nodeCount(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += nodeCount(c)
	}
	return total
}

// BestAction returns the root child with the greatest win total, ties
// broken by insertion order.
func (t *Tree) BestAction() (game.Action, error) {
	best := t.root.BestChild()
	if best == nil {
		return game.Action{}, errors.New("planner: tree has no explored actions")
	}
	return best.Action, nil
}

// iterate runs one selection/expansion/rollout/backup round.
func (t *Tree) iterate() {
	g := t.rootGame.Copy()
	node := t.root
	path := []*Node{node}

	for !node.IsTerminal && node.IsFullyExpanded() && len(node.Children) > 0 {
		node = t.selectChild(node)
		// Every child's action was validated against the same state it
		// is now being replayed from, so this cannot fail.
		_ = g.ApplyAction(node.Action)
		path = append(path, node)
	}

	if !node.IsTerminal && len(node.Untried) > 0 {
		idx := t.rng.Intn(len(node.Untried))
		cand := node.Untried[idx]
		node.Untried[idx] = node.Untried[len(node.Untried)-1]
		node.Untried = node.Untried[:len(node.Untried)-1]

		mover := g.CurrentPlayer().ID
		err := g.ApplyAction(cand.Action)

		child := getNode()
		child.Parent = node
		child.Action = cand.Action
		child.Player = mover
		if err != nil {
			var dead *game.DeadPlayerError
			if errors.As(err, &dead) {
				child.IsTerminal = true
				child.Loser = dead.Loser
			}
		}
		if !child.IsTerminal {
			child.Untried = t.gen.Candidates(g, t.searchingPlayer)
		}
		node.Children = append(node.Children, child)
		node = child
		path = append(path, node)
	}

	loser := t.rollout(g, node)
	t.backup(path, loser)
}

// selectChild picks the child to descend into. When the node whose
// turn it is belongs to the searching player, it maximizes UCT; when
// it belongs to the opponent, it descends randomly, since the opponent
// branch is a sample over an unknown hand rather than a policy to
// exploit.
func (t *Tree) selectChild(node *Node) *Node {
	if len(node.Children) == 0 {
		return nil
	}
	if node.Children[0].Player == t.searchingPlayer {
		return t.bestUCTChild(node)
	}
	return node.Children[t.rng.Intn(len(node.Children))]
}

func (t *Tree) bestUCTChild(node *Node) *Node {
	var best *Node
	bestScore := math.Inf(-1)
	for _, c := range node.Children {
		var score float64
		if c.Visits == 0 {
			score = math.Inf(1)
		} else {
			exploit := c.WinRate()
			explore := t.exploration * math.Sqrt(math.Log(float64(node.Visits))/float64(c.Visits))
			score = exploit + explore
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// rollout plays uniformly random actions, for both sides, from g until
// a player dies or the turn cap is hit, and returns the loser (ids.Nil
// on a draw-by-cap).
func (t *Tree) rollout(g *game.Game, node *Node) ids.ID {
	if node.IsTerminal {
		return node.Loser
	}
	rolloutGen := NewGenerator(t.rng)
	startTurn := g.Turn
	for g.Turn-startTurn < MaxRolloutTurns {
		_, err := rolloutGen.Apply(g, ids.Nil)
		var dead *game.DeadPlayerError
		if errors.As(err, &dead) {
			return dead.Loser
		}
		if errors.Is(err, ErrNoLegalActions) {
			return ids.Nil
		}
	}
	return ids.Nil
}

// backup propagates the rollout's result up path. A ProbablePlay node
// is weighted by the chance its underlying card was actually the one
// drawn, so a long-shot guess contributes less evidence than a move
// that was nearly certain to have been available.
func (t *Tree) backup(path []*Node, loser ids.ID) {
	for _, n := range path {
		weight := 1.0
		if n.Action.Kind == game.ActionProbablePlay && n.Action.Chance > 0 {
			weight = n.Action.Chance
		}
		n.Visits++
		n.Wins += weight * rewardFor(n.Player, loser)
	}
}

// rewardFor is 1 when player won, 0 when they lost, 0.5 on a draw.
func rewardFor(player, loser ids.ID) float64 {
	if loser.IsNil() {
		return 0.5
	}
	if player == loser {
		return 0
	}
	return 1
}

// Play commits action as the tree's next real move: it rewires the
// root to the already-explored child for that action (releasing every
// sibling subtree back to the node pool), or starts a fresh subtree
// rooted at the resulting state if action was never explored.
func (t *Tree) Play(action game.Action) error {
	for _, c := range t.root.Children {
		if !c.Action.Equal(action) {
			continue
		}
		for _, sibling := range t.root.Children {
			if sibling != c {
				putNode(sibling)
			}
		}
		if err := t.rootGame.ApplyAction(action); err != nil {
			var dead *game.DeadPlayerError
			if !errors.As(err, &dead) {
				return err
			}
		}
		c.Parent = nil
		putNodeShallow(t.root)
		t.root = c
		return nil
	}

	if err := t.rootGame.ApplyAction(action); err != nil {
		var dead *game.DeadPlayerError
		if !errors.As(err, &dead) {
			return err
		}
	}
	putNode(t.root)
	t.root = getNode()
	t.root.Player = t.rootGame.CurrentPlayer().ID
	if !t.rootGame.Over() {
		t.root.Untried = t.gen.Candidates(t.rootGame, t.searchingPlayer)
	}
	return nil
}

// putNodeShallow releases n to the pool without touching its children,
// used when a child has already been detached for reuse as the new
// root.
func putNodeShallow(n *Node) {
	if n == nil {
		return
	}
	n.Children = nil
	nodePool.Put(n)
}
