package port

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/model/request"
	"taskboard/internal/core/model/response"
)

// UserRepository is the storage contract consumed by the user use cases.
// Save is an upsert keyed by id. Lookups return (nil, nil) when the user
// is absent.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type UserService interface {
	Create(ctx context.Context, input request.CreateUserRequest) (*response.UserResponse, error)
	GetByID(ctx context.Context, id string) (*response.UserResponse, error)
}
