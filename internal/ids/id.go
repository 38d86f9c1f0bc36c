// Package ids mints the opaque identifiers shared by every duelcore
// component: cards, players, and games all carry one.
package ids

import "github.com/google/uuid"

// ID is a 128-bit, version-4 identifier. The zero value (Nil) never
// collides with a minted ID, so it doubles as "no id" in optional fields
// like an ability's target or an attack's victim.
type ID uuid.UUID

// Nil is the empty identifier.
var Nil = ID(uuid.Nil)

// New mints a fresh random ID. Collisions are not checked for; at 122
// bits of crypto/rand-backed entropy the birthday bound makes that a
// non-concern for a single process's lifetime.
func New() ID {
	return ID(uuid.New())
}

// String renders the canonical hyphenated form.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first 8 hex characters, for compact log lines.
func (id ID) Short() string {
	s := uuid.UUID(id).String()
	return s[:8]
}

// IsNil reports whether id is the zero value.
func (id ID) IsNil() bool {
	return id == Nil
}

// MarshalText renders the canonical hyphenated form, so an ID embedded
// in a JSON struct reads as a normal string instead of a byte array.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the canonical hyphenated form.
func (id *ID) UnmarshalText(text []byte) error {
	u, err := uuid.Parse(string(text))
	if err != nil {
		return err
	}
	*id = ID(u)
	return nil
}
