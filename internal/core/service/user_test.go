package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"taskboard/internal/adapter/database/memory"
	"taskboard/internal/core/apperr"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/model/request"
	"taskboard/internal/core/port"
	"taskboard/internal/core/service"
)

// sequentialID returns "fixed-id-1", "fixed-id-2", ... so tests can assert
// on generated identities.
func sequentialID() domain.IDFactory {
	n := 0

	return func() string {
		n++
		return fmt.Sprintf("fixed-id-%d", n)
	}
}

type UserServiceSuite struct {
	suite.Suite

	ctx   context.Context
	users port.UserRepository
	svc   *service.UserService
}

func (s *UserServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.users = memory.NewUserRepository()
	s.svc = service.NewUserService(s.users, sequentialID())
}

func (s *UserServiceSuite) TestCreateNormalizesAndAssignsID() {
	resp, err := s.svc.Create(s.ctx, request.CreateUserRequest{
		Name:  "  Alice  ",
		Email: " Alice@EXAMPLE.com ",
	})

	s.Require().NoError(err)
	s.Equal("fixed-id-1", resp.ID)
	s.Equal("Alice", resp.Name)
	s.Equal("alice@example.com", resp.Email)

	saved, err := s.users.FindByID(s.ctx, "fixed-id-1")
	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.Equal("alice@example.com", saved.Email)
}

func (s *UserServiceSuite) TestCreateRejectsDuplicateEmail() {
	_, err := s.svc.Create(s.ctx, request.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	s.Require().NoError(err)

	_, err = s.svc.Create(s.ctx, request.CreateUserRequest{Name: "Alice Again", Email: "ALICE@example.com"})

	s.Require().Error(err)
	s.True(apperr.IsValidation(err))
	s.Equal("Email already in use", err.Error())

	all, err := s.users.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *UserServiceSuite) TestCreateRejectsEmptyName() {
	_, err := s.svc.Create(s.ctx, request.CreateUserRequest{Name: "   ", Email: "alice@example.com"})

	s.Require().Error(err)
	s.True(apperr.IsValidation(err))
	s.Equal("Name cannot be empty", err.Error())

	all, err := s.users.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *UserServiceSuite) TestCreateRejectsInvalidEmail() {
	_, err := s.svc.Create(s.ctx, request.CreateUserRequest{Name: "Alice", Email: "not-an-email"})

	s.Require().Error(err)
	s.True(apperr.IsValidation(err))
	s.Equal("Email appears invalid", err.Error())
}

func (s *UserServiceSuite) TestGetByIDReturnsUser() {
	created, err := s.svc.Create(s.ctx, request.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	s.Require().NoError(err)

	resp, err := s.svc.GetByID(s.ctx, created.ID)

	s.Require().NoError(err)
	s.Equal(created.ID, resp.ID)
	s.Equal("Alice", resp.Name)
	s.Equal("alice@example.com", resp.Email)
}

func (s *UserServiceSuite) TestGetByIDUnknown() {
	_, err := s.svc.GetByID(s.ctx, "missing")

	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
	s.Equal("User not found", err.Error())
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}
