package service

import (
	"context"
	"log/slog"
	"time"

	"taskboard/internal/core/apperr"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/model/request"
	"taskboard/internal/core/model/response"
	"taskboard/internal/core/port"
)

type TodoService struct {
	todos port.TodoRepository
	users port.UserRepository
	newID domain.IDFactory
}

func NewTodoService(todos port.TodoRepository, users port.UserRepository, newID domain.IDFactory) *TodoService {
	return &TodoService{todos: todos, users: users, newID: newID}
}

// Create builds and persists a new todo. When an owner reference is given,
// the referenced user must exist at creation time; the reference is not
// re-checked afterwards.
func (s *TodoService) Create(ctx context.Context, input request.CreateTodoRequest) (*response.TodoCreatedResponse, error) {
	if input.OwnerID != nil {
		owner, err := s.users.FindByID(ctx, *input.OwnerID)

		if err != nil {
			slog.Error("Error looking up owner", "error", err, "owner_id", *input.OwnerID)
			return nil, err
		}

		if owner == nil {
			return nil, apperr.NotFound("Owner user not found")
		}
	}

	todo, err := domain.CreateTodo(domain.CreateTodoParams{
		Title:       input.Title,
		Description: input.Description,
		OwnerID:     input.OwnerID,
	}, s.newID)

	if err != nil {
		return nil, apperr.Validation(err.Error())
	}

	if err := s.todos.Save(ctx, todo); err != nil {
		slog.Error("Error saving todo", "error", err, "todo_id", todo.ID)
		return nil, err
	}

	return &response.TodoCreatedResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		OwnerID:     todo.OwnerID,
		IsCompleted: todo.IsCompleted,
		CreatedAt:   formatTime(todo.CreatedAt),
	}, nil
}

// List returns todos for the given owner, or every todo when ownerID is
// nil. Ordering is whatever the repository returns.
func (s *TodoService) List(ctx context.Context, ownerID *string) ([]response.TodoListItemResponse, error) {
	var (
		todos []*domain.Todo
		err   error
	)

	if ownerID != nil {
		todos, err = s.todos.ListByOwner(ctx, ownerID)
	} else {
		todos, err = s.todos.ListAll(ctx)
	}

	if err != nil {
		slog.Error("Error listing todos", "error", err)
		return nil, err
	}

	items := make([]response.TodoListItemResponse, 0, len(todos))

	for _, todo := range todos {
		items = append(items, response.TodoListItemResponse{
			ID:          todo.ID,
			Title:       todo.Title,
			Description: todo.Description,
			OwnerID:     todo.OwnerID,
			IsCompleted: todo.IsCompleted,
			CreatedAt:   formatTime(todo.CreatedAt),
			CompletedAt: formatTimePtr(todo.CompletedAt),
		})
	}

	return items, nil
}

// Complete marks the todo as completed and persists the transition.
func (s *TodoService) Complete(ctx context.Context, id string) (*response.TodoCompletedResponse, error) {
	todo, err := s.todos.FindByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if todo == nil {
		return nil, apperr.NotFound("Todo not found")
	}

	if err := todo.Complete(); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	if err := s.todos.Save(ctx, todo); err != nil {
		slog.Error("Error saving completed todo", "error", err, "todo_id", todo.ID)
		return nil, err
	}

	return &response.TodoCompletedResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		OwnerID:     todo.OwnerID,
		IsCompleted: todo.IsCompleted,
		CompletedAt: formatTimePtr(todo.CompletedAt),
	}, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := formatTime(*t)

	return &s
}
