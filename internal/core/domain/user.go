package domain

import (
	"errors"
	"strings"
)

// IDFactory produces a new opaque unique identifier. Entities never choose
// their own id scheme; callers inject one.
type IDFactory func() string

var (
	ErrEmptyName    = errors.New("Name cannot be empty")
	ErrInvalidEmail = errors.New("Email appears invalid")
)

type User struct {
	ID    string
	Name  string
	Email string
}

// NewUser normalizes name and email and rejects invalid values, so an
// invalid User is never constructed.
func NewUser(id, name, email string) (*User, error) {
	u := &User{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(strings.TrimSpace(email)),
	}

	if u.Name == "" {
		return nil, ErrEmptyName
	}

	if !strings.Contains(u.Email, "@") {
		return nil, ErrInvalidEmail
	}

	return u, nil
}

// CreateUser builds a new User with an identity taken from newID.
func CreateUser(name, email string, newID IDFactory) (*User, error) {
	return NewUser(newID(), name, email)
}
