package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"maatricare/internal/conversation"
	"maatricare/internal/scheduler"
	"maatricare/pkg/response"
)

// respondError translates usecase errors into HTTP responses. Anything not
// recognized is a 500 with the detail kept server-side.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, conversation.ErrCannotStartSession):
		response.NotFound(c, err)
	case errors.Is(err, conversation.ErrNoActiveEmergency),
		errors.Is(err, conversation.ErrUnknownAppointment),
		errors.Is(err, scheduler.ErrNotProposed):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
