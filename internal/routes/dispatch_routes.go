package routes

import (
	"github.com/gin-gonic/gin"

	"logitrack/internal/controllers"
	"logitrack/internal/middleware"
)

// DispatchRoutes mounts /api/dispatches. Create is open to any authenticated
// user (they become the creator); update/delete enforce creator-or-staff in
// the controller; bulk transitions are staff actions.
func DispatchRoutes(r *gin.Engine) {
	d := r.Group("/api/dispatches")
	d.Use(middleware.RequireAuth())
	{
		d.GET("", controllers.ListDispatches)
		d.GET("/:id", controllers.GetDispatch)
		d.POST("", controllers.CreateDispatch)
		d.PUT("/:id", controllers.UpdateDispatch)
		d.DELETE("/:id", controllers.DeleteDispatch)
	}

	bulk := r.Group("/api/dispatches")
	bulk.Use(middleware.RequireStaff())
	{
		bulk.POST("/mark-en-route", controllers.MarkDispatchesEnRoute)
		bulk.POST("/mark-delivered", controllers.MarkDispatchesDelivered)
	}
}
