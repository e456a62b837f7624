package http

import (
	"github.com/gin-gonic/gin"

	"cicd-telegram-notifier/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Login is public; profile and password change require authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.GET("/profile", mw.Auth(), h.Profile)
		authGroup.PUT("/password", mw.Auth(), h.ChangePassword)
	}
}
