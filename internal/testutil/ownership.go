package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/nfl-pool-service/internal/ownership"
)

// StaticOwnership returns a fixed ownership document and counts loads.
type StaticOwnership struct {
	mu    sync.Mutex
	Cfg   ownership.Config
	Err   error
	loads int
}

// Load returns Cfg or Err.
func (s *StaticOwnership) Load(ctx context.Context) (ownership.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.Err != nil {
		return ownership.Config{}, s.Err
	}
	return s.Cfg, nil
}

// Loads reports how many times Load ran.
func (s *StaticOwnership) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

// AliceRavens is the two-team pool used across tests: Alice owns the Ravens, the
// Bears are unowned.
func AliceRavens() ownership.Config {
	return ownership.Config{
		Season:  2024,
		Owners:  ownership.Owners{{Owner: "Alice", Teams: []string{"Ravens"}}},
		Unowned: []string{"Bears"},
	}
}
