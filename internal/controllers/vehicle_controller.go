package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"logitrack/internal/models"
	"logitrack/internal/store"
)

// Vehicles handles /api/vehicles. Deleting one clears the reference on any
// dispatch it was assigned to.
var Vehicles = &CRUD[models.Vehicle]{
	Name: "vehicle",
	Options: store.ListOptions{
		SearchColumns: []string{"plate", "make", "vehicle_model"},
		OrderColumns:  []string{"plate", "year", "created_at"},
		DefaultOrder:  "created_at DESC",
		StatusColumn:  "status",
	},
	Stats: vehicleStats,
	Remove: func(db *gorm.DB, id uint) error {
		return store.DeleteClearing[models.Vehicle](db, id, "vehicle_id")
	},
}

func vehicleStats(db *gorm.DB) (gin.H, error) {
	total, err := store.Count(db, &models.Vehicle{})
	if err != nil {
		return nil, err
	}
	available, err := store.Count(db, &models.Vehicle{}, "status = ?", models.VehicleAvailable)
	if err != nil {
		return nil, err
	}
	maintenance, err := store.Count(db, &models.Vehicle{}, "status = ?", models.VehicleMaintenance)
	if err != nil {
		return nil, err
	}

	// Maintenance falling due within the next 7 days, active fleet only.
	deadline := now.BeginningOfDay().AddDate(0, 0, 7)
	due, err := store.Count(db, &models.Vehicle{},
		"next_maintenance <= ? AND active = ?", deadline, true)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"total_vehicles":     total,
		"available_vehicles": available,
		"in_maintenance":     maintenance,
		"maintenance_due_7d": due,
	}, nil
}
