package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"logitrack/internal/models"
	"logitrack/internal/store"
)

// Routes handles /api/routes, protect-on-delete: a route with dispatches
// cannot be removed.
var Routes = &CRUD[models.Route]{
	Name: "route",
	Options: store.ListOptions{
		SearchColumns: []string{"code", "name", "origin", "destination"},
		OrderColumns:  []string{"code", "name", "distance_km", "created_at"},
		DefaultOrder:  "created_at DESC",
	},
	Stats: routeStats,
	Remove: func(db *gorm.DB, id uint) error {
		return store.DeleteProtected[models.Route](db, id, "route_id")
	},
}

func routeStats(db *gorm.DB) (gin.H, error) {
	total, err := store.Count(db, &models.Route{})
	if err != nil {
		return nil, err
	}
	ground, err := store.Count(db, &models.Route{}, "transport_type = ?", models.TransportGround)
	if err != nil {
		return nil, err
	}
	air, err := store.Count(db, &models.Route{}, "transport_type = ?", models.TransportAir)
	if err != nil {
		return nil, err
	}
	active, err := store.Count(db, &models.Route{}, "active = ?", true)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"total_routes":  total,
		"ground_routes": ground,
		"air_routes":    air,
		"active_routes": active,
	}, nil
}
