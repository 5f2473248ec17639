package helper

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/core/apperr"
	"taskboard/internal/core/model/response"
)

// RenderError maps application errors onto their status classification.
// Anything outside the taxonomy renders as an opaque 500 so internal
// detail never leaks to the caller.
func RenderError(c *gin.Context, err error) {
	if ae, ok := apperr.From(err); ok {
		c.JSON(ae.Status, response.ErrorResponse{Error: ae.Message})
		return
	}

	slog.Error("Unhandled error", "error", err, "path", c.FullPath())

	c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Internal Server Error"})
}

func SendBadRequestError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: message})
}

func SendValidationError(c *gin.Context, message string, fields []response.ValidationError) {
	c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
		Error:  message,
		Fields: fields,
	})
}
