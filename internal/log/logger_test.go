package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestMemoryLoggerAssignsSequence(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnStartedEvent(1, "Alice"))
	l.Log(NewCardDrawnEvent(1, "Alice", "Footsoldier"))

	events := l.Events()
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].Seq != 1 || events[1].Seq != 2 {
		t.Fatalf("sequence numbers = %d, %d, want 1, 2", events[0].Seq, events[1].Seq)
	}
}

func TestEventsOfTypeFilters(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnStartedEvent(1, "Alice"))
	l.Log(NewFatigueDamageEvent(1, "Alice", 2))
	l.Log(NewFatigueDamageEvent(2, "Alice", 3))

	fatigue := l.EventsOfType(EventFatigueDamage)
	if len(fatigue) != 2 {
		t.Fatalf("len(fatigue) = %d, want 2", len(fatigue))
	}
}

func TestLastEventOnEmptyLoggerIsZeroValue(t *testing.T) {
	l := NewMemoryLogger()
	if last := l.LastEvent(); last != (GameEvent{}) {
		t.Fatalf("LastEvent() on empty logger = %+v, want zero value", last)
	}
}

func TestTextLoggerWritesFormattedLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)
	l.Log(NewGameOverEvent(5, "Alice"))

	out := buf.String()
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "game_over") {
		t.Fatalf("unexpected text logger output: %q", out)
	}
	if len(l.Events()) != 1 {
		t.Fatal("TextLogger should also record into its embedded MemoryLogger")
	}
}
