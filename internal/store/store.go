// Package store persists player characters between sessions. A save is a
// complete JSON snapshot of the character, including the random stream
// state, keyed by player name. Redis is the production backend; Memory
// stands in when no Redis is configured.
package store

import "context"

// Store saves and loads player records by character name. Names are
// case-insensitive: "Aria" and "aria" are the same save.
type Store interface {
	// Save writes the record, overwriting any previous save for the name.
	Save(ctx context.Context, rec *PlayerRecord) error

	// Load reads the record for a name. Returns a NotFound error when no
	// save exists.
	Load(ctx context.Context, name string) (*PlayerRecord, error)
}
