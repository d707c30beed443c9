package store

import (
	"context"
	"sort"
	"sync"

	"smartqueue/internal/models"
)

// MemoryStore — хранилище в памяти с той же CAS-семантикой, что и у
// GormStore. Используется в тестах сервиса допуска, где поднимать базу
// не нужно.
type MemoryStore struct {
	mu     sync.RWMutex
	queues map[string]*models.Queue
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{queues: make(map[string]*models.Queue)}
}

func (s *MemoryStore) Create(_ context.Context, q *models.Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[q.ID] = q.Clone()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Queue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.queues[id]
	if !ok {
		return nil, ErrNotFound
	}
	return q.Clone(), nil
}

func (s *MemoryStore) CompareAndSwap(_ context.Context, expectedVersion int64, q *models.Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.queues[q.ID]
	if !ok {
		return ErrNotFound
	}
	if current.Version != expectedVersion {
		return ErrVersionMismatch
	}
	s.queues[q.ID] = q.Clone()
	return nil
}

func (s *MemoryStore) ListActive(_ context.Context) ([]models.Queue, error) {
	return s.list(func(q *models.Queue) bool { return q.IsActive })
}

func (s *MemoryStore) ListByOwner(_ context.Context, ownerID string) ([]models.Queue, error) {
	return s.list(func(q *models.Queue) bool { return q.OwnerID == ownerID })
}

func (s *MemoryStore) ListContainingMember(_ context.Context, userID string) ([]models.Queue, error) {
	return s.list(func(q *models.Queue) bool { return q.HasMember(userID) })
}

func (s *MemoryStore) list(keep func(*models.Queue) bool) ([]models.Queue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Queue, 0)
	for _, q := range s.queues {
		if keep(q) {
			result = append(result, *q.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}
