package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	VehicleTruck   = "truck"
	VehicleVan     = "van"
	VehiclePickup  = "pickup"
	VehicleTractor = "tractor"
	VehicleTrailer = "trailer"
)

const (
	VehicleAvailable   = "available"
	VehicleMaintenance = "maintenance"
	VehicleRepair      = "repair"
	VehicleInactive    = "inactive"
)

type Vehicle struct {
	gorm.Model
	Plate            string     `json:"plate" gorm:"size:10;uniqueIndex" binding:"required"`
	Make             string     `json:"make" binding:"required"`
	VehicleModel     string     `json:"vehicle_model" gorm:"column:vehicle_model" binding:"required"`
	Year             int        `json:"year" binding:"required,gte=1990,lte=2030"`
	Color            string     `json:"color" gorm:"size:30"`
	Type             string     `json:"type" gorm:"size:15;default:truck" binding:"omitempty,oneof=truck van pickup tractor trailer"`
	CapacityKg       float64    `json:"capacity_kg" binding:"required,gt=0"`
	CapacityVolumeM3 float64    `json:"capacity_volume_m3" binding:"required,gt=0"`
	Status           string     `json:"status" gorm:"size:15;default:available;index" binding:"omitempty,oneof=available maintenance repair inactive"`
	MileageKm        float64    `json:"mileage_km"`
	LastMaintenance  *time.Time `json:"last_maintenance"`
	NextMaintenance  *time.Time `json:"next_maintenance"`
	Active           *bool      `json:"active" gorm:"default:true"`
}
