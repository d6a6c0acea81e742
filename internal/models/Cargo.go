package models

import "gorm.io/gorm"

const (
	CargoGeneral      = "general"
	CargoHazardous    = "hazardous"
	CargoRefrigerated = "refrigerated"
	CargoFragile      = "fragile"
	CargoLive         = "live"
	CargoPerishable   = "perishable"
)

// Cargo describes one shipment payload. Temperature bounds are kept
// independent of the refrigeration flag; either may be set without the other.
type Cargo struct {
	gorm.Model
	Code                  string   `json:"code" gorm:"size:30;uniqueIndex" binding:"required"`
	Description           string   `json:"description" binding:"required"`
	Type                  string   `json:"type" gorm:"size:15;default:general" binding:"omitempty,oneof=general hazardous refrigerated fragile live perishable"`
	WeightKg              float64  `json:"weight_kg" binding:"required,gt=0"`
	VolumeM3              float64  `json:"volume_m3" binding:"required,gt=0"`
	DeclaredValue         *float64 `json:"declared_value"`
	SpecialInstructions   string   `json:"special_instructions"`
	RequiresRefrigeration bool     `json:"requires_refrigeration"`
	TempMin               *float64 `json:"temp_min"`
	TempMax               *float64 `json:"temp_max"`
}
