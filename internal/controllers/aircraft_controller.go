package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"logitrack/internal/models"
	"logitrack/internal/store"
)

// AircraftAPI handles /api/aircraft, set-null on delete like vehicles.
var AircraftAPI = &CRUD[models.Aircraft]{
	Name: "aircraft",
	Options: store.ListOptions{
		SearchColumns: []string{"registration", "aircraft_model"},
		OrderColumns:  []string{"registration", "total_flight_hours", "created_at"},
		DefaultOrder:  "created_at DESC",
		StatusColumn:  "status",
	},
	Stats: aircraftStats,
	Remove: func(db *gorm.DB, id uint) error {
		return store.DeleteClearing[models.Aircraft](db, id, "aircraft_id")
	},
}

func aircraftStats(db *gorm.DB) (gin.H, error) {
	total, err := store.Count(db, &models.Aircraft{})
	if err != nil {
		return nil, err
	}
	available, err := store.Count(db, &models.Aircraft{}, "status = ?", models.AircraftAvailable)
	if err != nil {
		return nil, err
	}
	flying, err := store.Count(db, &models.Aircraft{}, "status = ?", models.AircraftFlying)
	if err != nil {
		return nil, err
	}
	flightHours, err := store.SumFloat(db, &models.Aircraft{}, "total_flight_hours")
	if err != nil {
		return nil, err
	}
	return gin.H{
		"total_aircraft":     total,
		"available_aircraft": available,
		"flying_aircraft":    flying,
		"total_flight_hours": flightHours,
	}, nil
}
