package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"logitrack/internal/models"
	"logitrack/internal/store"
)

// Pilots handles /api/pilots, set-null on delete.
var Pilots = &CRUD[models.Pilot]{
	Name: "pilot",
	Options: store.ListOptions{
		SearchColumns: []string{"code", "name", "license_number"},
		OrderColumns:  []string{"code", "name", "total_flight_hours", "created_at"},
		DefaultOrder:  "created_at DESC",
	},
	Stats: pilotStats,
	Remove: func(db *gorm.DB, id uint) error {
		return store.DeleteClearing[models.Pilot](db, id, "pilot_id")
	},
}

func pilotStats(db *gorm.DB) (gin.H, error) {
	total, err := store.Count(db, &models.Pilot{})
	if err != nil {
		return nil, err
	}
	active, err := store.Count(db, &models.Pilot{}, "active = ?", true)
	if err != nil {
		return nil, err
	}
	expired, err := store.Count(db, &models.Pilot{}, "license_expiry < ?", now.BeginningOfDay())
	if err != nil {
		return nil, err
	}
	flightHours, err := store.SumFloat(db, &models.Pilot{}, "total_flight_hours")
	if err != nil {
		return nil, err
	}
	return gin.H{
		"total_pilots":       total,
		"active_pilots":      active,
		"expired_licenses":   expired,
		"total_flight_hours": flightHours,
	}, nil
}
