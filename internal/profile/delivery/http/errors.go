package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"maatricare/internal/profile"
	"maatricare/pkg/response"
)

// respondError translates usecase errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, profile.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, profile.ErrAlreadyExists),
		errors.Is(err, profile.ErrValidation):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
