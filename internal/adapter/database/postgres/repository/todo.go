package repository

import (
	"context"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"taskboard/internal/adapter/database/postgres"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/port"
	"taskboard/pkg/tracing"
)

const todoColumns = "id, title, description, owner_id, is_completed, created_at, completed_at"

type TodoRepository struct {
	db *postgres.DB
}

func NewTodoRepository(db *postgres.DB) port.TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Save(ctx context.Context, todo *domain.Todo) error {
	ctx, span := tracing.CreateChildSpan(ctx, "db.todo.Save", []attribute.KeyValue{
		attribute.String("db.table", "todos"),
		attribute.String("db.operation", "UPSERT"),
		attribute.String("todo.id", todo.ID),
	})

	defer span.End()

	query := r.db.QueryBuilder.Insert("todos").
		Columns("id", "title", "description", "owner_id", "is_completed", "created_at", "completed_at").
		Values(todo.ID, todo.Title, todo.Description, todo.OwnerID, todo.IsCompleted,
			todo.CreatedAt, todo.CompletedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"title = excluded.title, description = excluded.description, " +
			"owner_id = excluded.owner_id, is_completed = excluded.is_completed, " +
			"created_at = excluded.created_at, completed_at = excluded.completed_at")

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, stmt, args...)

	if err != nil {
		tracing.AddSpanError(span, err)
		slog.Error("Error saving todo", "error", err, "todo_id", todo.ID)

		return err
	}

	return nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	query := r.db.QueryBuilder.Select(todoColumns).
		From("todos").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	var todo domain.Todo

	err = r.db.QueryRow(ctx, stmt, args...).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.OwnerID,
		&todo.IsCompleted,
		&todo.CreatedAt,
		&todo.CompletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		slog.Error("Error fetching todo", "error", err)
		return nil, err
	}

	return &todo, nil
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID *string) ([]*domain.Todo, error) {
	// sq.Eq renders IS NULL for nil, so an absent owner matches unowned rows.
	query := r.db.QueryBuilder.Select(todoColumns).
		From("todos").
		Where(sq.Eq{"owner_id": ownerID})

	return r.queryTodos(ctx, query)
}

func (r *TodoRepository) ListAll(ctx context.Context) ([]*domain.Todo, error) {
	query := r.db.QueryBuilder.Select(todoColumns).From("todos")

	return r.queryTodos(ctx, query)
}

func (r *TodoRepository) queryTodos(ctx context.Context, query sq.SelectBuilder) ([]*domain.Todo, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error fetching todos", "error", err)
		return nil, err
	}

	defer rows.Close()

	todos := make([]*domain.Todo, 0)

	for rows.Next() {
		var todo domain.Todo

		err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Description,
			&todo.OwnerID,
			&todo.IsCompleted,
			&todo.CreatedAt,
			&todo.CompletedAt,
		)

		if err != nil {
			return nil, err
		}

		todos = append(todos, &todo)
	}

	return todos, rows.Err()
}
