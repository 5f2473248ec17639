package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	. "taskboard/internal/adapter/http/helper"
	. "taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/model/request"
	"taskboard/internal/core/port"
)

type UserHandler struct {
	svc port.UserService
}

func NewUserHandler(svc port.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateUserRequest

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
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, out)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.svc.GetByID(ctx, c.Param("id"))

	if err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}
