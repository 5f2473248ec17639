package http

import (
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"taskboard/internal/adapter/database/memory"
	"taskboard/internal/adapter/database/postgres"
	pgrepo "taskboard/internal/adapter/database/postgres/repository"
	"taskboard/internal/adapter/database/sqlite"
	sqliterepo "taskboard/internal/adapter/database/sqlite/repository"
	"taskboard/internal/adapter/http/handler"
	"taskboard/internal/adapter/http/routes"
	"taskboard/internal/core/port"
	"taskboard/internal/core/service"
)

type Container struct {
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository

	UserService port.UserService
	TodoService port.TodoService

	UserHandler *handler.UserHandler
	TodoHandler *handler.TodoHandler
}

// NewMemoryContainer wires the transient in-process backend.
func NewMemoryContainer(logger *otelzap.Logger) *Container {
	return newContainer(memory.NewUserRepository(), memory.NewTodoRepository(), logger)
}

// NewSQLiteContainer wires the sqlite-backed durable backend.
func NewSQLiteContainer(db *sqlite.DB, logger *otelzap.Logger) *Container {
	return newContainer(sqliterepo.NewUserRepository(db), sqliterepo.NewTodoRepository(db), logger)
}

// NewPostgresContainer wires the postgres-backed durable backend.
func NewPostgresContainer(db *postgres.DB, logger *otelzap.Logger) *Container {
	return newContainer(pgrepo.NewUserRepository(db), pgrepo.NewTodoRepository(db), logger)
}

func newContainer(userRepo port.UserRepository, todoRepo port.TodoRepository, logger *otelzap.Logger) *Container {
	userSvc := service.NewUserService(userRepo, uuid.NewString)
	todoSvc := service.NewTodoService(todoRepo, userRepo, uuid.NewString)

	return &Container{
		UserRepo: userRepo,
		TodoRepo: todoRepo,

		UserService: userSvc,
		TodoService: todoSvc,

		UserHandler: handler.NewUserHandler(userSvc),
		TodoHandler: handler.NewTodoHandler(todoSvc, logger),
	}
}

func (c *Container) Handlers() routes.HandlersConfig {
	return routes.HandlersConfig{
		UserHandler: c.UserHandler,
		TodoHandler: c.TodoHandler,
	}
}
