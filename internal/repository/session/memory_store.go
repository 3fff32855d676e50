package session

import (
	"context"
	"sync"
	"time"

	"talentai-backend/internal/domain"
)

type memoryEntry struct {
	state     *domain.WizardState
	expiresAt time.Time
}

// MemoryStore is an in-process wizard session repository with a background
// expiry sweep. Close stops the sweep; sessions themselves expire lazily on
// Get regardless.
type MemoryStore struct {
	mu       sync.Mutex
	entries  map[string]*memoryEntry
	ttl      time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates an in-process wizard session repository. Intended
// as the fallback when Redis is not configured; a single mutex is enough
// since each request touches exactly one entry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: map[string]*memoryEntry{},
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

func (s *MemoryStore) Get(_ context.Context, userID string) (*domain.WizardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.entries, userID)
		return nil, domain.ErrNotFound
	}
	// Copy so callers cannot mutate the stored state without Save
	return cloneState(entry.state), nil
}

func (s *MemoryStore) Save(_ context.Context, state *domain.WizardState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[state.UserID] = &memoryEntry{
		state:     cloneState(state),
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func cloneState(state *domain.WizardState) *domain.WizardState {
	copied := *state
	copied.SelectedSkills = append([]string(nil), state.SelectedSkills...)
	copied.RequiredSkills = append([]string(nil), state.RequiredSkills...)
	copied.QuizAnswers = make(map[string]int, len(state.QuizAnswers))
	for k, v := range state.QuizAnswers {
		copied.QuizAnswers[k] = v
	}
	copied.Proficiency = make(map[string]int, len(state.Proficiency))
	for k, v := range state.Proficiency {
		copied.Proficiency[k] = v
	}
	return &copied
}

func (s *MemoryStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}

// Close stops the expiry sweep. Safe to call more than once; the store
// stays usable afterwards.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for key, entry := range s.entries {
				if now.After(entry.expiresAt) {
					delete(s.entries, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
