package mcpagent

import (
	"testing"

	"github.com/cardforge/duelcore/internal/game"
)

const testDecksFile = "testdata/decks.yaml"

func newTestSession(t *testing.T) *Session {
	t.Helper()
	sess, err := NewSession(testDecksFile, 1, 2, 0, 1)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return sess
}

func TestNewSessionRejectsBadSearchingPlayer(t *testing.T) {
	if _, err := NewSession(testDecksFile, 1, 2, 2, 1); err == nil {
		t.Fatal("expected an error for an out-of-range searching player")
	}
}

func TestNewSessionRejectsUnknownDeck(t *testing.T) {
	if _, err := NewSession(testDecksFile, 99, 2, 0, 1); err == nil {
		t.Fatal("expected an error for an out-of-range deck number")
	}
}

func TestBestMoveReturnsALegalAction(t *testing.T) {
	sess := newTestSession(t)

	action, err := sess.BestMove(32)
	if err != nil {
		t.Fatalf("BestMove: %v", err)
	}
	if action.Kind == game.ActionInitial {
		t.Fatalf("BestMove returned the uninitialized action %+v", action)
	}
}

func TestApplyMoveAdvancesTheDuel(t *testing.T) {
	sess := newTestSession(t)

	action, err := sess.BestMove(16)
	if err != nil {
		t.Fatalf("BestMove: %v", err)
	}
	turnBefore := sess.tree.Game().Turn

	if err := sess.ApplyMove(action); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if sess.tree.Game().Turn < turnBefore {
		t.Fatalf("turn went backwards: %d -> %d", turnBefore, sess.tree.Game().Turn)
	}
}

func TestApplyMoveOnAFinishedDuelErrors(t *testing.T) {
	sess := newTestSession(t)
	sess.gameOver = true

	err := sess.ApplyMove(game.Action{Kind: game.ActionEndTurn})
	if err == nil {
		t.Fatal("expected an error applying a move to a finished duel")
	}
}

func TestStateViewRedactsOpponentHand(t *testing.T) {
	sess := newTestSession(t)

	view, err := sess.StateView(0)
	if err != nil {
		t.Fatalf("StateView: %v", err)
	}
	if len(view.You.Hand) == 0 {
		t.Fatal("StateView(0) should reveal player 0's own hand")
	}
	if view.Opponent.Hand != nil {
		t.Fatalf("StateView(0) leaked the opponent's hand: %v", view.Opponent.Hand)
	}
}

func TestStateViewRejectsBadPerspective(t *testing.T) {
	sess := newTestSession(t)
	if _, err := sess.StateView(2); err == nil {
		t.Fatal("expected an error for an out-of-range perspective")
	}
}

func TestSearchingPlayerMatchesConstructorArgument(t *testing.T) {
	sess, err := NewSession(testDecksFile, 1, 2, 1, 1)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if sess.SearchingPlayer() != 1 {
		t.Fatalf("SearchingPlayer() = %d, want 1", sess.SearchingPlayer())
	}
}
