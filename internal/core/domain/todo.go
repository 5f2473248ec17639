package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrShortTitle       = errors.New("Title must be at least 3 characters")
	ErrAlreadyCompleted = errors.New("Todo is already completed")
)

type Todo struct {
	ID          string
	Title       string
	Description *string
	OwnerID     *string
	IsCompleted bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// NewTodo normalizes the title and rejects titles shorter than 3 runes
// after trimming.
func NewTodo(id, title string, description, ownerID *string, createdAt time.Time) (*Todo, error) {
	t := &Todo{
		ID:          id,
		Title:       strings.TrimSpace(title),
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
	}

	if utf8.RuneCountInString(t.Title) < 3 {
		return nil, ErrShortTitle
	}

	return t, nil
}

type CreateTodoParams struct {
	Title       string
	Description *string
	OwnerID     *string
}

// CreateTodo builds a new open Todo stamped with the current time and an
// identity taken from newID.
func CreateTodo(params CreateTodoParams, newID IDFactory) (*Todo, error) {
	return NewTodo(newID(), params.Title, params.Description, params.OwnerID, time.Now())
}

// Complete transitions the todo from open to completed. The transition
// happens exactly once; completing a completed todo fails.
func (t *Todo) Complete() error {
	if t.IsCompleted {
		return ErrAlreadyCompleted
	}

	now := time.Now()
	t.IsCompleted = true
	t.CompletedAt = &now

	return nil
}

// AssignTo reassigns the owner reference. Owner existence is checked by the
// caller at creation time, not here.
func (t *Todo) AssignTo(ownerID *string) {
	t.OwnerID = ownerID
}
