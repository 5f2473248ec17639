package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"taskboard/internal/adapter/database/memory"
	"taskboard/internal/core/apperr"
	"taskboard/internal/core/model/request"
	"taskboard/internal/core/port"
	"taskboard/internal/core/service"
)

type TodoServiceSuite struct {
	suite.Suite

	ctx   context.Context
	todos port.TodoRepository
	users port.UserRepository
	svc   *service.TodoService
}

func (s *TodoServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.todos = memory.NewTodoRepository()
	s.users = memory.NewUserRepository()
	s.svc = service.NewTodoService(s.todos, s.users, sequentialID())
}

func (s *TodoServiceSuite) createOwner(name, email string) string {
	userSvc := service.NewUserService(s.users, sequentialID())

	resp, err := userSvc.Create(s.ctx, request.CreateUserRequest{Name: name, Email: email})
	s.Require().NoError(err)

	return resp.ID
}

func (s *TodoServiceSuite) TestCreateWithoutOwner() {
	desc := "weekly groceries"
	resp, err := s.svc.Create(s.ctx, request.CreateTodoRequest{
		Title:       "  Buy milk  ",
		Description: &desc,
	})

	s.Require().NoError(err)
	s.Equal("fixed-id-1", resp.ID)
	s.Equal("Buy milk", resp.Title)
	s.Require().NotNil(resp.Description)
	s.Equal("weekly groceries", *resp.Description)
	s.Nil(resp.OwnerID)
	s.False(resp.IsCompleted)

	createdAt, err := time.Parse(time.RFC3339, resp.CreatedAt)
	s.Require().NoError(err)
	s.WithinDuration(time.Now(), createdAt, 5*time.Second)
}

func (s *TodoServiceSuite) TestCreateWithExistingOwner() {
	ownerID := s.createOwner("Alice", "alice@example.com")

	resp, err := s.svc.Create(s.ctx, request.CreateTodoRequest{
		Title:   "Buy milk",
		OwnerID: &ownerID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(resp.OwnerID)
	s.Equal(ownerID, *resp.OwnerID)
}

func (s *TodoServiceSuite) TestCreateWithUnknownOwner() {
	ownerID := "missing"

	_, err := s.svc.Create(s.ctx, request.CreateTodoRequest{
		Title:   "Buy milk",
		OwnerID: &ownerID,
	})

	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
	s.Equal("Owner user not found", err.Error())

	all, err := s.todos.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *TodoServiceSuite) TestCreateRejectsShortTitle() {
	_, err := s.svc.Create(s.ctx, request.CreateTodoRequest{Title: "  ab  "})

	s.Require().Error(err)
	s.True(apperr.IsValidation(err))
	s.Equal("Title must be at least 3 characters", err.Error())

	all, err := s.todos.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *TodoServiceSuite) TestListAll() {
	_, err := s.svc.Create(s.ctx, request.CreateTodoRequest{Title: "Buy milk"})
	s.Require().NoError(err)
	_, err = s.svc.Create(s.ctx, request.CreateTodoRequest{Title: "Walk dog"})
	s.Require().NoError(err)

	items, err := s.svc.List(s.ctx, nil)

	s.Require().NoError(err)
	s.Len(items, 2)

	for _, item := range items {
		s.False(item.IsCompleted)
		s.Nil(item.CompletedAt)

		_, err := time.Parse(time.RFC3339, item.CreatedAt)
		s.NoError(err)
	}
}

func (s *TodoServiceSuite) TestListFiltersByOwner() {
	ownerID := s.createOwner("Alice", "alice@example.com")

	_, err := s.svc.Create(s.ctx, request.CreateTodoRequest{Title: "Buy milk", OwnerID: &ownerID})
	s.Require().NoError(err)
	_, err = s.svc.Create(s.ctx, request.CreateTodoRequest{Title: "Walk dog"})
	s.Require().NoError(err)

	items, err := s.svc.List(s.ctx, &ownerID)

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("Buy milk", items[0].Title)
	s.Require().NotNil(items[0].OwnerID)
	s.Equal(ownerID, *items[0].OwnerID)
}

func (s *TodoServiceSuite) TestListEmpty() {
	items, err := s.svc.List(s.ctx, nil)

	s.Require().NoError(err)
	s.NotNil(items)
	s.Empty(items)
}

func (s *TodoServiceSuite) TestComplete() {
	created, err := s.svc.Create(s.ctx, request.CreateTodoRequest{Title: "Buy milk"})
	s.Require().NoError(err)

	resp, err := s.svc.Complete(s.ctx, created.ID)

	s.Require().NoError(err)
	s.True(resp.IsCompleted)
	s.Require().NotNil(resp.CompletedAt)

	completedAt, err := time.Parse(time.RFC3339, *resp.CompletedAt)
	s.Require().NoError(err)
	s.WithinDuration(time.Now(), completedAt, 5*time.Second)

	saved, err := s.todos.FindByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.True(saved.IsCompleted)
}

func (s *TodoServiceSuite) TestCompleteTwice() {
	created, err := s.svc.Create(s.ctx, request.CreateTodoRequest{Title: "Buy milk"})
	s.Require().NoError(err)

	_, err = s.svc.Complete(s.ctx, created.ID)
	s.Require().NoError(err)

	_, err = s.svc.Complete(s.ctx, created.ID)

	s.Require().Error(err)
	s.True(apperr.IsValidation(err))
	s.Equal("Todo is already completed", err.Error())
}

func (s *TodoServiceSuite) TestCompleteUnknown() {
	_, err := s.svc.Complete(s.ctx, "missing")

	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
	s.Equal("Todo not found", err.Error())
}

func TestTodoServiceSuite(t *testing.T) {
	suite.Run(t, new(TodoServiceSuite))
}
