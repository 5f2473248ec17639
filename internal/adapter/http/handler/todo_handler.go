package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	. "taskboard/internal/adapter/http/helper"
	. "taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/model/request"
	"taskboard/internal/core/port"
	. "taskboard/pkg/tracing"
)

type TodoHandler struct {
	svc    port.TodoService
	logger *otelzap.Logger
}

func NewTodoHandler(svc port.TodoService, logger *otelzap.Logger) *TodoHandler {
	return &TodoHandler{
		svc:    svc,
		logger: logger,
	}
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateTodoRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, "Validation failed", FormatValidationErrors(err))
		return
	}

	out, err := h.svc.Create(ctx, params)

	if err != nil {
		if h.logger != nil {
			h.logger.Ctx(ctx).Error("Failed to create todo",
				zap.Error(err),
				zap.String("title", params.Title),
			)
		}

		RenderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, out)
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.todo.ListTodos", []attribute.KeyValue{
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})

	defer span.End()

	var ownerID *string

	if owner := c.Query("ownerId"); owner != "" {
		ownerID = &owner
	}

	out, err := h.svc.List(ctx, ownerID)

	if err != nil {
		AddSpanError(span, err)

		if h.logger != nil {
			h.logger.Ctx(ctx).Error("Failed to list todos", zap.Error(err))
		}

		RenderError(c, err)
		return
	}

	span.SetAttributes(attribute.Int("todo.count", len(out)))

	c.JSON(http.StatusOK, out)
}

func (h *TodoHandler) CompleteTodo(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.svc.Complete(ctx, c.Param("id"))

	if err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}
