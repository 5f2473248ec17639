// Package memory provides the transient in-process repository backend.
// Stores hold copies of entities so callers never alias repository state.
package memory

import (
	"context"
	"strings"
	"sync"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/port"
)

type UserRepository struct {
	mu    sync.RWMutex
	store map[string]domain.User
}

func NewUserRepository() port.UserRepository {
	return &UserRepository{store: make(map[string]domain.User)}
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[user.ID] = *user

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[id]

	if !ok {
		return nil, nil
	}

	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.store {
		if user.Email == normalized {
			u := user
			return &u, nil
		}
	}

	return nil, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.store))

	for _, user := range r.store {
		u := user
		users = append(users, &u)
	}

	return users, nil
}
