// Package seed supplies raw quantum seed material to the entropy
// engine. A Source resolves an opaque identifier (file path, vault
// record name) to an octet buffer; the engine imposes no format beyond
// that. Reference sources decode hex-encoded capture files and read
// from a SQLite-backed vault.
package seed

import (
	"errors"
	"fmt"
)

// Source resolves seed identifiers to raw seed bytes.
type Source interface {
	// Load returns the seed material for id. A missing seed fails
	// with ErrNotFound; unusable material fails with ErrInvalidSeed.
	Load(id string) ([]byte, error)
}

var (
	ErrNotFound    = errors.New("seed: not found")
	ErrInvalidSeed = errors.New("seed: invalid seed material")
)

// Static is an in-memory Source, used for composition and tests.
type Static map[string][]byte

func (s Static) Load(id string) ([]byte, error) {
	material, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	out := make([]byte, len(material))
	copy(out, material)
	return out, nil
}
