package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"taskboard/internal/adapter/database/sqlite"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/port"
)

type UserRepository struct {
	db      *sqlite.DB
	scanner *sqlite.Scanner
}

func NewUserRepository(db *sqlite.DB) port.UserRepository {
	return &UserRepository{db: db, scanner: sqlite.NewScanner()}
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	query := r.db.QueryBuilder.Insert("users").
		Columns("id", "name", "email").
		Values(user.ID, user.Name, user.Email).
		Suffix("ON CONFLICT(id) DO UPDATE SET name = excluded.name, email = excluded.email")

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error saving user", "error", err, "user_id", user.ID)
		return err
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	return r.findOne(ctx, sq.Eq{"email": normalized})
}

func (r *UserRepository) findOne(ctx context.Context, pred sq.Eq) (*domain.User, error) {
	query := r.db.QueryBuilder.Select("id", "name", "email").
		From("users").
		Where(pred).
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

	var user domain.User

	err = r.scanner.ScanRowToStruct(rows, &user)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		slog.Error("Error scanning user", "error", err)
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := r.db.QueryBuilder.Select("id", "name", "email").From("users")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	users := make([]*domain.User, 0)

	if err := r.scanner.ScanRowsToSlice(rows, &users); err != nil {
		slog.Error("Error listing users", "error", err)
		return nil, err
	}

	return users, nil
}
