package memory

import (
	"context"
	"sync"

	"github.com/yoockh/sessionnotes/internal/models"
	"github.com/yoockh/sessionnotes/internal/utils"
)

type SessionRepository interface {
	Prepend(ctx context.Context, s *models.Session) error
	List(ctx context.Context) ([]*models.Session, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
}

// sessionRepo keeps sessions newest first for the life of the process.
type sessionRepo struct {
	mu       sync.RWMutex
	sessions []*models.Session
}

func NewSessionRepo() SessionRepository {
	return &sessionRepo{}
}

func (r *sessionRepo) Prepend(_ context.Context, s *models.Session) error {
	c := s.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append([]*models.Session{c}, r.sessions...)
	return nil
}

func (r *sessionRepo) List(_ context.Context) ([]*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Session, len(r.sessions))
	for i, s := range r.sessions {
		out[i] = s.Clone()
	}
	return out, nil
}

func (r *sessionRepo) GetByID(_ context.Context, id string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.ID == id {
			return s.Clone(), nil
		}
	}
	return nil, utils.ErrNotFound
}
