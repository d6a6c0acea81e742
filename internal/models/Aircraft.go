package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AircraftCargoPlane = "cargo_plane"
	AircraftHelicopter = "helicopter"
	AircraftCombi      = "combi"
)

const (
	AircraftAvailable   = "available"
	AircraftMaintenance = "maintenance"
	AircraftFlying      = "flying"
	AircraftInactive    = "inactive"
)

type Aircraft struct {
	gorm.Model
	Registration     string     `json:"registration" gorm:"size:10;uniqueIndex" binding:"required"`
	AircraftModel    string     `json:"aircraft_model" gorm:"column:aircraft_model" binding:"required"`
	Type             string     `json:"type" gorm:"size:20;default:cargo_plane" binding:"omitempty,oneof=cargo_plane helicopter combi"`
	CapacityKg       float64    `json:"capacity_kg" binding:"required,gt=0"`
	CapacityVolumeM3 float64    `json:"capacity_volume_m3" binding:"required,gt=0"`
	AutonomyHours    float64    `json:"autonomy_hours" binding:"required,gt=0"`
	Status           string     `json:"status" gorm:"size:15;default:available;index" binding:"omitempty,oneof=available maintenance flying inactive"`
	TotalFlightHours float64    `json:"total_flight_hours"`
	LastMaintenance  *time.Time `json:"last_maintenance"`
	NextMaintenance  *time.Time `json:"next_maintenance"`
	Active           *bool      `json:"active" gorm:"default:true"`
}
