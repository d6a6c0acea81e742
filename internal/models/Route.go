package models

import "gorm.io/gorm"

const (
	TransportGround = "ground"
	TransportAir    = "air"
)

// Route is a named origin/destination pair. Its transport type decides which
// resource pair (vehicle+driver or aircraft+pilot) a dispatch is expected to
// carry, though the data layer does not enforce the pairing.
type Route struct {
	gorm.Model
	Code              string   `json:"code" gorm:"size:30;uniqueIndex" binding:"required"`
	Name              string   `json:"name" binding:"required"`
	Origin            string   `json:"origin" binding:"required"`
	Destination       string   `json:"destination" binding:"required"`
	DistanceKm        *float64 `json:"distance_km"`
	EstimatedHours    *float64 `json:"estimated_hours"`
	TransportType     string   `json:"transport_type" gorm:"size:12;default:ground;index" binding:"omitempty,oneof=ground air"`
	EstimatedFuelCost *float64 `json:"estimated_fuel_cost"`
	EstimatedTolls    *float64 `json:"estimated_tolls"`
	Description       string   `json:"description"`
	Active            *bool    `json:"active" gorm:"default:true"`
}
