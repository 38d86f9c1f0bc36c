package ids

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewIsNotNil(t *testing.T) {
	id := New()
	if id.IsNil() {
		t.Fatal("New() returned the nil id")
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id minted: %s", id)
		}
		seen[id] = true
	}
}

func TestShortIsPrefixOfString(t *testing.T) {
	id := New()
	full := id.String()
	short := id.Short()
	if len(short) != 8 {
		t.Fatalf("Short() length = %d, want 8", len(short))
	}
	if full[:8] != short {
		t.Fatalf("Short() = %q, want prefix of %q", short, full)
	}
}

func TestNilIsNil(t *testing.T) {
	if !Nil.IsNil() {
		t.Fatal("Nil.IsNil() = false")
	}
	var zero ID
	if !zero.IsNil() {
		t.Fatal("zero value ID is not nil")
	}
}

func TestMarshalTextRoundTripsThroughJSON(t *testing.T) {
	type wrapper struct {
		ID ID `json:"id"`
	}
	id := New()
	data, err := json.Marshal(wrapper{ID: id})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), id.String()) {
		t.Fatalf("marshaled JSON %q does not contain canonical string %q", data, id.String())
	}

	var out wrapper
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.ID != id {
		t.Fatalf("round trip = %s, want %s", out.ID, id)
	}
}

func TestUnmarshalTextRejectsGarbage(t *testing.T) {
	var id ID
	if err := id.UnmarshalText([]byte("not-a-uuid")); err == nil {
		t.Fatal("UnmarshalText accepted garbage input")
	}
}
