package sessions

import (
	"context"
	"sync"

	"github.com/samsmithnz/CardGames-sub000/internal/ports"
)

// MemoryRepo keeps sessions in process memory.
type MemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]*ports.Session
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		sessions: make(map[string]*ports.Session),
	}
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (*ports.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	return s, ok, nil
}

func (r *MemoryRepo) Save(ctx context.Context, s *ports.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID] = s
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
