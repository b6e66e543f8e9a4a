package http

import (
	"github.com/gin-gonic/gin"

	"maatricare/pkg/response"
)

// Message godoc
// @Summary     Send a chat message
// @Description Processes one conversation turn and returns the structured reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       userID path string     true "User ID"
// @Param       body   body messageReq true "User message"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - no profile for user"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/{userID}/message [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromPath(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.HandleMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newReplyResp(reply))
}

// State godoc
// @Summary     Get conversation state
// @Description Returns the user's stage, risk level, appointment and recent turns.
// @Tags        Chat
// @Produce     json
// @Param       userID path string true "User ID"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/{userID}/state [GET]
func (h *handler) State(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromPath(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	state, err := h.uc.State(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.State: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newStateResp(state))
}

// AcknowledgeRisk godoc
// @Summary     Acknowledge an emergency
// @Description Clears a pinned emergency risk level back to watch.
// @Tags        Chat
// @Produce     json
// @Param       userID path string true "User ID"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request - no active emergency"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/{userID}/risk/acknowledge [POST]
func (h *handler) AcknowledgeRisk(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromPath(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.AcknowledgeRisk(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.AcknowledgeRisk: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newReplyResp(reply))
}

// ConfirmAppointment godoc
// @Summary     Confirm a proposed visit
// @Description Confirms the user's proposed appointment request.
// @Tags        Appointments
// @Accept      json
// @Produce     json
// @Param       userID path string               true "User ID"
// @Param       body   body appointmentActionReq true "Request to confirm"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request - unknown or non-proposed request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/{userID}/appointments/confirm [POST]
func (h *handler) ConfirmAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromPath(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processAppointmentActionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.ConfirmAppointment(ctx, sc, req.RequestID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ConfirmAppointment: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newReplyResp(reply))
}

// RejectAppointment godoc
// @Summary     Reject a proposed visit
// @Description Rejects the user's proposed appointment request. No new proposal is made automatically.
// @Tags        Appointments
// @Accept      json
// @Produce     json
// @Param       userID path string               true "User ID"
// @Param       body   body appointmentActionReq true "Request to reject"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request - unknown request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/{userID}/appointments/reject [POST]
func (h *handler) RejectAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromPath(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processAppointmentActionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.RejectAppointment(ctx, sc, req.RequestID)
	if err != nil {
		h.l.Errorf(ctx, "uc.RejectAppointment: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newReplyResp(reply))
}
