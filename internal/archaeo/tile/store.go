package tile

import (
	"fmt"
	"os"
)

// Store resolves and loads tiles from a root directory laid out in the
// TOP/MID/ECO directory convention, preferring the finest resolution
// available for a given tile name.
type Store struct {
	Root string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Root: dir}
}

// Resolve finds the finest available resolution for tile name, trying
// TOP, then MID, then ECO.
func (s *Store) Resolve(name string) (Resolution, bool) {
	for _, r := range []Resolution{TOP, MID, ECO} {
		if _, err := os.Stat(Name(s.Root, name, r)); err == nil {
			return r, true
		}
	}
	return 0, false
}

// Load opens and fully loads the finest available tile for name.
func (s *Store) Load(name string) (*Tile, error) {
	r, ok := s.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("no tile named %q under %s", name, s.Root)
	}
	f, err := os.Open(Name(s.Root, name, r))
	if err != nil {
		return nil, fmt.Errorf("opening tile %q: %w", name, err)
	}
	defer f.Close()
	t, err := Load(f, true)
	if err != nil {
		return nil, fmt.Errorf("loading tile %q: %w", name, err)
	}
	return t, nil
}
