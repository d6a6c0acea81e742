package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"logitrack/internal/models"
	"logitrack/internal/store"
)

// Drivers handles /api/drivers, set-null on delete.
var Drivers = &CRUD[models.Driver]{
	Name: "driver",
	Options: store.ListOptions{
		SearchColumns: []string{"code", "name", "license_number"},
		OrderColumns:  []string{"code", "name", "license_expiry", "created_at"},
		DefaultOrder:  "created_at DESC",
	},
	Stats: driverStats,
	Remove: func(db *gorm.DB, id uint) error {
		return store.DeleteClearing[models.Driver](db, id, "driver_id")
	},
}

func driverStats(db *gorm.DB) (gin.H, error) {
	total, err := store.Count(db, &models.Driver{})
	if err != nil {
		return nil, err
	}
	active, err := store.Count(db, &models.Driver{}, "active = ?", true)
	if err != nil {
		return nil, err
	}

	today := now.BeginningOfDay()
	expired, err := store.Count(db, &models.Driver{}, "license_expiry < ?", today)
	if err != nil {
		return nil, err
	}
	expiring, err := store.Count(db, &models.Driver{},
		"license_expiry >= ? AND license_expiry <= ?", today, today.AddDate(0, 0, 30))
	if err != nil {
		return nil, err
	}

	return gin.H{
		"total_drivers":         total,
		"active_drivers":        active,
		"expired_licenses":      expired,
		"licenses_expiring_30d": expiring,
	}, nil
}
