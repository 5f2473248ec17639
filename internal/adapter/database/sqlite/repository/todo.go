package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.opentelemetry.io/otel/attribute"

	"taskboard/internal/adapter/database/sqlite"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/port"
	"taskboard/pkg/tracing"
)

const timeLayout = time.RFC3339

type TodoRepository struct {
	db      *sqlite.DB
	scanner *sqlite.Scanner
}

func NewTodoRepository(db *sqlite.DB) port.TodoRepository {
	return &TodoRepository{db: db, scanner: sqlite.NewScanner()}
}

func (r *TodoRepository) Save(ctx context.Context, todo *domain.Todo) error {
	ctx, span := tracing.CreateChildSpan(ctx, "db.todo.Save", []attribute.KeyValue{
		attribute.String("db.table", "todos"),
		attribute.String("db.operation", "UPSERT"),
		attribute.String("todo.id", todo.ID),
	})

	defer span.End()

	var completedAt interface{}

	if todo.CompletedAt != nil {
		completedAt = todo.CompletedAt.UTC().Format(timeLayout)
	}

	query := r.db.QueryBuilder.Insert("todos").
		Columns("id", "title", "description", "owner_id", "is_completed", "created_at", "completed_at").
		Values(todo.ID, todo.Title, todo.Description, todo.OwnerID, todo.IsCompleted,
			todo.CreatedAt.UTC().Format(timeLayout), completedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET " +
			"title = excluded.title, description = excluded.description, " +
			"owner_id = excluded.owner_id, is_completed = excluded.is_completed, " +
			"created_at = excluded.created_at, completed_at = excluded.completed_at")

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		tracing.AddSpanError(span, err)
		slog.Error("Error saving todo", "error", err, "todo_id", todo.ID)

		return err
	}

	return nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	query := r.db.QueryBuilder.Select("*").
		From("todos").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var todo domain.Todo

	err = r.scanner.ScanRowToStruct(rows, &todo)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		slog.Error("Error scanning todo", "error", err)
		return nil, err
	}

	return &todo, nil
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID *string) ([]*domain.Todo, error) {
	ctx, span := tracing.CreateChildSpan(ctx, "db.todo.ListByOwner", []attribute.KeyValue{
		attribute.String("db.table", "todos"),
		attribute.String("db.operation", "SELECT"),
	})

	defer span.End()

	// sq.Eq renders IS NULL for nil, so an absent owner matches unowned rows.
	query := r.db.QueryBuilder.Select("*").
		From("todos").
		Where(sq.Eq{"owner_id": ownerID})

	return r.queryTodos(ctx, query)
}

func (r *TodoRepository) ListAll(ctx context.Context) ([]*domain.Todo, error) {
	query := r.db.QueryBuilder.Select("*").From("todos")

	return r.queryTodos(ctx, query)
}

func (r *TodoRepository) queryTodos(ctx context.Context, query sq.SelectBuilder) ([]*domain.Todo, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error fetching todos", "error", err)
		return nil, err
	}

	defer rows.Close()

	todos := make([]*domain.Todo, 0)

	if err := r.scanner.ScanRowsToSlice(rows, &todos); err != nil {
		return nil, err
	}

	return todos, nil
}
