package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"maatricare/internal/model"
)

var errUserIDRequired = errors.New("userID is required")

// scopeFromPath builds the request scope from the userID path param.
func scopeFromPath(c *gin.Context) (model.Scope, error) {
	userID := c.Param("userID")
	if userID == "" {
		return model.Scope{}, errUserIDRequired
	}
	return model.Scope{UserID: userID}, nil
}

// processMessageReq binds and validates the chat message body.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAppointmentActionReq binds and validates a confirm/reject body.
func (h *handler) processAppointmentActionReq(c *gin.Context) (appointmentActionReq, error) {
	var req appointmentActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
