package http

import (
	"github.com/gin-gonic/gin"

	"maatricare/pkg/response"
)

// Create godoc
// @Summary     Create a profile
// @Description Creates the user's profile at onboarding. Fails if one already exists.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       userID path string    true "User ID"
// @Param       body   body createReq true "Profile data"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request - invalid data or profile exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profiles/{userID} [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromPath(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newProfileResp(created))
}

// Detail godoc
// @Summary     Get a profile
// @Description Returns the user's profile including the derived due date.
// @Tags        Profile
// @Produce     json
// @Param       userID path string true "User ID"
// @Success     200 {object} profileResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profiles/{userID} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromPath(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	prof, err := h.uc.Get(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newProfileResp(prof))
}

// Update godoc
// @Summary     Update a profile
// @Description Applies a partial update. Omitted fields are left unchanged; medical history entries are appended.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       userID path string    true "User ID"
// @Param       body   body updateReq true "Fields to update"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profiles/{userID} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromPath(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newProfileResp(updated))
}

// Archive godoc
// @Summary     Archive a profile
// @Description Marks the profile archived on account closure. The record is retained, never purged.
// @Tags        Profile
// @Produce     json
// @Param       userID path string true "User ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profiles/{userID} [DELETE]
func (h *handler) Archive(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromPath(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Archive(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Archive: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
