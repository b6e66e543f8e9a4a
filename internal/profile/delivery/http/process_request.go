package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"maatricare/internal/model"
)

var errUserIDRequired = errors.New("userID is required")

func scopeFromPath(c *gin.Context) (model.Scope, error) {
	userID := c.Param("userID")
	if userID == "" {
		return model.Scope{}, errUserIDRequired
	}
	return model.Scope{UserID: userID}, nil
}

// processCreateReq binds and validates the create profile request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update profile request body.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
