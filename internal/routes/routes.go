package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"logitrack/internal/middleware"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Middleware must precede route registration
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())
	r.Use(middleware.RequestID())

	AuthRoutes(r)
	EntityRoutes(r)
	DispatchRoutes(r)
	DashboardRoutes(r)

	return r
}
