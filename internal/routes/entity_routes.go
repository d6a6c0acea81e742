package routes

import (
	"github.com/gin-gonic/gin"

	"logitrack/internal/controllers"
	"logitrack/internal/middleware"
)

// EntityRoutes mounts the reference entities. Reads need an authenticated
// principal; writes need staff.
func EntityRoutes(r *gin.Engine) {
	mountCRUD(r, "/api/clients", controllers.Clients)
	mountCRUD(r, "/api/cargoes", controllers.Cargoes)
	mountCRUD(r, "/api/vehicles", controllers.Vehicles)
	mountCRUD(r, "/api/aircraft", controllers.AircraftAPI)
	mountCRUD(r, "/api/drivers", controllers.Drivers)
	mountCRUD(r, "/api/pilots", controllers.Pilots)
	mountCRUD(r, "/api/routes", controllers.Routes)
}

type crudHandlers interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func mountCRUD(r *gin.Engine, path string, h crudHandlers) {
	read := r.Group(path)
	read.Use(middleware.RequireAuth())
	{
		read.GET("", h.List)
		read.GET("/:id", h.Get)
	}

	write := r.Group(path)
	write.Use(middleware.RequireStaff())
	{
		write.POST("", h.Create)
		write.PUT("/:id", h.Update)
		write.DELETE("/:id", h.Delete)
	}
}
