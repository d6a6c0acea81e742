package routes

import (
	"github.com/gin-gonic/gin"

	"logitrack/internal/controllers"
	"logitrack/internal/middleware"
)

func DashboardRoutes(r *gin.Engine) {
	dash := r.Group("/api/dashboard")
	dash.Use(middleware.RequireAuth())
	{
		dash.GET("", controllers.Dashboard)
	}
}
