package profile

import (
	"context"
	"errors"
	"sync"
)

// InMemoryStore records applied patches, used by the wizard tests.
type InMemoryStore struct {
	mu      sync.Mutex
	Patches map[string][]Patch

	// Fail makes every Apply return an error.
	Fail bool
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		Patches: make(map[string][]Patch),
	}
}

func (s *InMemoryStore) Apply(ctx context.Context, userID string, patch Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Fail {
		return errors.New("patch failed")
	}

	s.Patches[userID] = append(s.Patches[userID], patch)
	return nil
}

// Last returns the most recent patch applied for userID, if any.
func (s *InMemoryStore) Last(userID string) (Patch, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patches := s.Patches[userID]
	if len(patches) == 0 {
		return Patch{}, false
	}
	return patches[len(patches)-1], true
}
