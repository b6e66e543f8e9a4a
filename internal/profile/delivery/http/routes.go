package http

import (
	"github.com/gin-gonic/gin"

	"maatricare/internal/middleware"
)

// RegisterRoutes maps the profile endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	profiles := rg.Group("/profiles")
	{
		profiles.POST("/:userID", mw.RateLimit(), h.Create)
		profiles.GET("/:userID", mw.RateLimit(), h.Detail)
		profiles.PUT("/:userID", mw.RateLimit(), h.Update)
		profiles.DELETE("/:userID", mw.RateLimit(), h.Archive)
	}
}
