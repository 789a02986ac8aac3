package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/evently-hq/evently/internal/models"
	"github.com/google/uuid"
)

// In-memory store implementations, used by the test suite and handy for
// running the server without a database.

type memoryUserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func NewMemoryUserStore() UserStore {
	return &memoryUserStore{users: make(map[uuid.UUID]models.User)}
}

func (s *memoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		user := u
		return &user, nil
	}
	return nil, ErrNotFound
}

func (s *memoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memoryUserStore) Update(_ context.Context, id uuid.UUID, patch UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Email != nil {
		for otherID, u := range s.users {
			if otherID != id && u.Email == *patch.Email {
				return nil, ErrDuplicateEmail
			}
		}
		user.Email = *patch.Email
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	s.users[id] = user
	return &user, nil
}

type memoryEventStore struct {
	mu     sync.RWMutex
	events map[uuid.UUID]models.Event
}

func NewMemoryEventStore() EventStore {
	return &memoryEventStore{events: make(map[uuid.UUID]models.Event)}
}

func (s *memoryEventStore) FindByID(_ context.Context, id uuid.UUID) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.events[id]; ok {
		event := e
		return &event, nil
	}
	return nil, ErrNotFound
}

func (s *memoryEventStore) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := []models.Event{}
	for _, e := range s.events {
		if e.UserID == ownerID {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events, nil
}

func (s *memoryEventStore) Create(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	s.events[event.ID] = *event
	return nil
}

func (s *memoryEventStore) Update(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[event.ID]; !ok {
		return ErrNotFound
	}
	s.events[event.ID] = *event
	return nil
}

func (s *memoryEventStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return ErrNotFound
	}
	delete(s.events, id)
	return nil
}
