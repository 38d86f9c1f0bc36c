package mcpagent

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"

	"github.com/cardforge/duelcore/internal/game"
	"github.com/cardforge/duelcore/internal/ids"
)

// actionPayload is the JSON shape of a game.Action crossing the MCP
// boundary. Ids round-trip as their canonical string form (ids.ID's
// MarshalText/UnmarshalText), and Kind rounds-trips as its name rather
// than its underlying int so a tool response reads without a lookup
// table.
type actionPayload struct {
	Kind       string  `json:"kind"`
	PlayerID   ids.ID  `json:"player_id"`
	AttackerID ids.ID  `json:"attacker_id"`
	VictimID   ids.ID  `json:"victim_id"`
	CardID     ids.ID  `json:"card_id"`
	TargetID   ids.ID  `json:"target_id"`
	Chance     float64 `json:"chance,omitempty"`
	Desc       string  `json:"desc"`
}

var actionKindByName = map[string]game.ActionKind{
	game.ActionInitial.String():      game.ActionInitial,
	game.ActionEndTurn.String():      game.ActionEndTurn,
	game.ActionAttack.String():       game.ActionAttack,
	game.ActionPlay.String():         game.ActionPlay,
	game.ActionProbablePlay.String(): game.ActionProbablePlay,
}

func actionToPayload(a game.Action) actionPayload {
	return actionPayload{
		Kind:       a.Kind.String(),
		PlayerID:   a.PlayerID,
		AttackerID: a.AttackerID,
		VictimID:   a.VictimID,
		CardID:     a.CardID,
		TargetID:   a.TargetID,
		Chance:     a.Chance,
		Desc:       a.String(),
	}
}

// marshalAction renders a as the JSON string returned by best_move.
func marshalAction(a game.Action) string {
	data, err := json.Marshal(actionToPayload(a))
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}

// unmarshalAction parses the JSON produced by marshalAction, or an
// equivalent object a caller hand-built by hand, back into a
// game.Action. It decodes loosely (a generic map, coerced field by
// field with cast) rather than straight into actionPayload, since a
// hand-typed MCP call is as likely to send "0.5" for chance as 0.5.
func unmarshalAction(raw string) (game.Action, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return game.Action{}, fmt.Errorf("parse action: %w", err)
	}

	kindName, err := cast.ToStringE(fields["kind"])
	if err != nil {
		return game.Action{}, fmt.Errorf("action kind: %w", err)
	}
	kind, ok := actionKindByName[kindName]
	if !ok {
		return game.Action{}, fmt.Errorf("unknown action kind %q", kindName)
	}

	idField := func(name string) (ids.ID, error) {
		v, ok := fields[name]
		if !ok {
			return ids.Nil, nil
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return ids.Nil, fmt.Errorf("%s: %w", name, err)
		}
		if s == "" {
			return ids.Nil, nil
		}
		var id ids.ID
		if err := id.UnmarshalText([]byte(s)); err != nil {
			return ids.Nil, fmt.Errorf("%s: %w", name, err)
		}
		return id, nil
	}

	a := game.Action{Kind: kind}
	for name, dst := range map[string]*ids.ID{
		"player_id": &a.PlayerID, "attacker_id": &a.AttackerID,
		"victim_id": &a.VictimID, "card_id": &a.CardID, "target_id": &a.TargetID,
	} {
		id, err := idField(name)
		if err != nil {
			return game.Action{}, err
		}
		*dst = id
	}

	if v, ok := fields["chance"]; ok {
		chance, err := cast.ToFloat64E(v)
		if err != nil {
			return game.Action{}, fmt.Errorf("chance: %w", err)
		}
		a.Chance = chance
	}

	return a, nil
}
