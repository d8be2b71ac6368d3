package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

// Ensure UserStore implements the user interfaces.
var (
	_ driven.UserReader = (*UserStore)(nil)
	_ driven.UserWriter = (*UserStore)(nil)
	_ driven.UserLister = (*UserStore)(nil)
)

// UserStore is an in-memory user store.
type UserStore struct {
	mu    sync.RWMutex
	users map[int]domain.User
}

// NewUserStore creates a store seeded with the given users.
func NewUserStore(seed ...domain.User) *UserStore {
	s := &UserStore{
		users: make(map[int]domain.User, len(seed)),
	}
	for _, u := range seed {
		s.users[u.ID] = u
	}
	return s
}

// GetByID retrieves a user by id.
func (s *UserStore) GetByID(_ context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return &user, nil
}

// Create adds a user. The id must be free.
func (s *UserStore) Create(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.ID]; exists {
		return fmt.Errorf("user %d: %w", user.ID, domain.ErrAlreadyExists)
	}
	s.users[user.ID] = user
	return nil
}

// Update replaces an existing user.
func (s *UserStore) Update(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.ID]; !exists {
		return fmt.Errorf("user %d: %w", user.ID, domain.ErrNotFound)
	}
	s.users[user.ID] = user
	return nil
}

// Delete removes a user. Deleting a missing user is not an error.
func (s *UserStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

// List returns all users ordered by id.
func (s *UserStore) List(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
