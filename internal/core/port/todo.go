package port

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/model/request"
	"taskboard/internal/core/model/response"
)

// TodoRepository is the storage contract consumed by the todo use cases.
// Save is an upsert keyed by id. FindByID returns (nil, nil) when the todo
// is absent. ListByOwner filters on exact owner match; a nil ownerID
// matches todos without an owner.
type TodoRepository interface {
	Save(ctx context.Context, todo *domain.Todo) error
	FindByID(ctx context.Context, id string) (*domain.Todo, error)
	ListByOwner(ctx context.Context, ownerID *string) ([]*domain.Todo, error)
	ListAll(ctx context.Context) ([]*domain.Todo, error)
}

type TodoService interface {
	Create(ctx context.Context, input request.CreateTodoRequest) (*response.TodoCreatedResponse, error)
	List(ctx context.Context, ownerID *string) ([]response.TodoListItemResponse, error)
	Complete(ctx context.Context, id string) (*response.TodoCompletedResponse, error)
}
