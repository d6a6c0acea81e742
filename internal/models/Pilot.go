package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PilotPPL  = "PPL"
	PilotCPL  = "CPL"
	PilotATPL = "ATPL"
)

type Pilot struct {
	gorm.Model
	Code             string     `json:"code" gorm:"size:30;uniqueIndex" binding:"required"`
	Name             string     `json:"name" binding:"required"`
	LicenseType      string     `json:"license_type" gorm:"size:5;default:CPL" binding:"omitempty,oneof=PPL CPL ATPL"`
	LicenseNumber    string     `json:"license_number" gorm:"size:20;uniqueIndex" binding:"required"`
	LicenseExpiry    time.Time  `json:"license_expiry" binding:"required"`
	MedicalExpiry    time.Time  `json:"medical_expiry" binding:"required"`
	TotalFlightHours float64    `json:"total_flight_hours"`
	Phone            string     `json:"phone" gorm:"size:20"`
	Email            string     `json:"email" binding:"omitempty,email"`
	Address          string     `json:"address"`
	BirthDate        *time.Time `json:"birth_date"`
	Active           *bool      `json:"active" gorm:"default:true"`
}
