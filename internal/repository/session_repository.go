package repository

import (
	"context"
	"sync"

	"studyplanner/internal/model"
)

// SessionRepository keeps study sessions for the lifetime of the process.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	List(ctx context.Context) ([]model.Session, error)
}

type memorySessionRepository struct {
	mu       sync.Mutex
	lastID   int64
	sessions []model.Session
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{}
}

// Create assigns the next id under the lock, so concurrent creates never share an id.
func (r *memorySessionRepository) Create(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	session.ID = r.lastID
	r.sessions = append(r.sessions, *session)

	return nil
}

func (r *memorySessionRepository) List(_ context.Context) ([]model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Session, len(r.sessions))
	copy(out, r.sessions)
	return out, nil
}
