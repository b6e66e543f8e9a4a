package http

import (
	"github.com/gin-gonic/gin"

	"maatricare/internal/middleware"
)

// RegisterRoutes maps the chat endpoints. Every route is rate limited per
// user so one chatty client cannot starve the renderer quota.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat/:userID")
	{
		chat.POST("/message", mw.RateLimit(), h.Message)
		chat.GET("/state", mw.RateLimit(), h.State)
		chat.POST("/risk/acknowledge", mw.RateLimit(), h.AcknowledgeRisk)
		chat.POST("/appointments/confirm", mw.RateLimit(), h.ConfirmAppointment)
		chat.POST("/appointments/reject", mw.RateLimit(), h.RejectAppointment)
	}
}
