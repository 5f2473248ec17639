package service

import (
	"context"
	"log/slog"
	"strings"

	"taskboard/internal/core/apperr"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/model/request"
	"taskboard/internal/core/model/response"
	"taskboard/internal/core/port"
)

type UserService struct {
	users port.UserRepository
	newID domain.IDFactory
}

func NewUserService(users port.UserRepository, newID domain.IDFactory) *UserService {
	return &UserService{users: users, newID: newID}
}

// Create registers a new user. Emails are unique on their normalized form;
// repeated calls with the same email fail after the first.
func (s *UserService) Create(ctx context.Context, input request.CreateUserRequest) (*response.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.users.FindByEmail(ctx, email)

	if err != nil {
		slog.Error("Error looking up user by email", "error", err, "email", email)
		return nil, err
	}

	if existing != nil {
		return nil, apperr.Validation("Email already in use")
	}

	user, err := domain.CreateUser(input.Name, input.Email, s.newID)

	if err != nil {
		return nil, apperr.Validation(err.Error())
	}

	if err := s.users.Save(ctx, user); err != nil {
		slog.Error("Error saving user", "error", err, "user_id", user.ID)
		return nil, err
	}

	return &response.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*response.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	return &response.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
