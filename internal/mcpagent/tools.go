package mcpagent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// activeSession is the singleton duel under advisement (one per stdio
// process).
var activeSession *Session

// decksFile is the path to the decks YAML file, set by main.
var decksFile string

// SetDecksFile sets the path to the decks YAML file tools resolve deck
// numbers against.
func SetDecksFile(path string) {
	decksFile = path
}

// RegisterTools adds the planner's MCP surface to s.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startDuelTool(), handleStartDuel)
	s.AddTool(bestMoveTool(), handleBestMove)
	s.AddTool(applyMoveTool(), handleApplyMove)
	s.AddTool(getStateTool(), handleGetState)
}

// --- Tool definitions ---

func startDuelTool() mcp.Tool {
	return mcp.NewTool("start_duel",
		mcp.WithDescription("Start a new duelcore duel between two decks loaded from the configured decks file. "+
			"Returns the initial state. Only one duel runs per session."),
		mcp.WithNumber("deck0", mcp.Required(), mcp.Description("Deck number for player 0 (1-indexed from decks.yaml)")),
		mcp.WithNumber("deck1", mcp.Required(), mcp.Description("Deck number for player 1 (1-indexed from decks.yaml)")),
		mcp.WithNumber("searching_player", mcp.Description("Which player (0 or 1) the planner searches for; defaults to 0")),
		mcp.WithNumber("seed", mcp.Description("Random seed for shuffling and search; defaults to 1")),
	)
}

func bestMoveTool() mcp.Tool {
	return mcp.NewTool("best_move",
		mcp.WithDescription("Run the Monte Carlo tree search planner for N additional iterations and return the "+
			"root action with the greatest accumulated win total, as JSON. If it is not the searching player's turn, "+
			"this is the planner's prediction of the opponent's move rather than an action to take."),
		mcp.WithNumber("iterations", mcp.Description("Rollouts to run before picking an action; defaults to 500")),
	)
}

func applyMoveTool() mcp.Tool {
	return mcp.NewTool("apply_move",
		mcp.WithDescription("Commit an action (as returned by best_move, or hand-built with the same JSON shape) "+
			"as the duel's next real move, and reroot the search tree onto it."),
		mcp.WithString("action", mcp.Required(), mcp.Description("JSON object with kind/player_id/attacker_id/victim_id/card_id/target_id")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current duel state from one player's point of view. The opposing player's "+
			"hand is always redacted. Read-only."),
		mcp.WithNumber("perspective", mcp.Description("Which player's (0 or 1) view to render; defaults to the searching player")),
	)
}

// --- Tool handlers ---

func handleStartDuel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A duel is already running. Only one duel at a time is supported."), nil
	}

	deck0 := request.GetInt("deck0", 0)
	deck1 := request.GetInt("deck1", 0)
	searchingPlayer := request.GetInt("searching_player", 0)
	seed := request.GetInt("seed", 1)

	if deck0 < 1 || deck1 < 1 {
		return mcp.NewToolResultError("deck0 and deck1 must be >= 1"), nil
	}

	sess, err := NewSession(decksFile, deck0, deck1, searchingPlayer, int64(seed))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start duel: %v", err), nil
	}
	activeSession = sess

	view, err := sess.StateView(sess.SearchingPlayer())
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to build state: %v", err), nil
	}
	return mcp.NewToolResultText(mustJSON(view)), nil
}

func handleBestMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No duel is running. Use start_duel first."), nil
	}
	sess := activeSession

	iterations := request.GetInt("iterations", DefaultIterations)
	action, err := sess.BestMove(iterations)
	if err != nil {
		return mcp.NewToolResultErrorf("Search failed: %v", err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		`{"action": %s, "for_player": %d, "iterations": %d}`,
		marshalAction(action), sess.CurrentPlayer(), sess.Iterations(),
	)), nil
}

func handleApplyMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No duel is running. Use start_duel first."), nil
	}
	sess := activeSession

	raw := request.GetString("action", "")
	if raw == "" {
		return mcp.NewToolResultError("action is required"), nil
	}
	action, err := unmarshalAction(raw)
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid action: %v", err), nil
	}

	if err := sess.ApplyMove(action); err != nil {
		return mcp.NewToolResultErrorf("Could not apply move: %v", err), nil
	}

	if sess.Over() {
		result := sess.Result()
		activeSession = nil
		return mcp.NewToolResultText(fmt.Sprintf(
			`{"game_over": true, "winner_id": %q, "loser_id": %q, "turns": %d}`,
			result.WinnerID, result.LoserID, result.Turns,
		)), nil
	}

	view, err := sess.StateView(sess.SearchingPlayer())
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to build state: %v", err), nil
	}
	return mcp.NewToolResultText(mustJSON(view)), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No duel is running. Use start_duel first."), nil
	}
	sess := activeSession

	perspective := request.GetInt("perspective", -1)
	if perspective != 0 && perspective != 1 {
		perspective = sess.SearchingPlayer()
	}

	view, err := sess.StateView(perspective)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to build state: %v", err), nil
	}
	return mcp.NewToolResultText(mustJSON(view)), nil
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}
