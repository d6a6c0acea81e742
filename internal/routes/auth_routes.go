package routes

import (
	"github.com/gin-gonic/gin"

	"logitrack/internal/controllers"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", controllers.SignupUser)
	}

	// JWT issuance, mirrored under /api like the rest of the surface
	r.POST("/api/token", controllers.ObtainToken)
	r.POST("/api/token/refresh", controllers.RefreshToken)
}
