package memory

import (
	"context"
	"sync"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/port"
)

type TodoRepository struct {
	mu    sync.RWMutex
	store map[string]domain.Todo
}

func NewTodoRepository() port.TodoRepository {
	return &TodoRepository{store: make(map[string]domain.Todo)}
}

func (r *TodoRepository) Save(ctx context.Context, todo *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[todo.ID] = *todo

	return nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.store[id]

	if !ok {
		return nil, nil
	}

	return &todo, nil
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID *string) ([]*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]*domain.Todo, 0)

	for _, todo := range r.store {
		if sameOwner(todo.OwnerID, ownerID) {
			t := todo
			todos = append(todos, &t)
		}
	}

	return todos, nil
}

func (r *TodoRepository) ListAll(ctx context.Context) ([]*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]*domain.Todo, 0, len(r.store))

	for _, todo := range r.store {
		t := todo
		todos = append(todos, &t)
	}

	return todos, nil
}

// sameOwner matches exact owner ids; two absent owners match each other.
func sameOwner(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}
