package models

import (
	"time"

	"gorm.io/gorm"
)

// Driver license classes A through E, A being motorcycles and E heavy machinery.
type Driver struct {
	gorm.Model
	Code          string     `json:"code" gorm:"size:30;uniqueIndex" binding:"required"`
	Name          string     `json:"name" binding:"required"`
	LicenseType   string     `json:"license_type" gorm:"size:5;default:C" binding:"omitempty,oneof=A B C D E"`
	LicenseNumber string     `json:"license_number" gorm:"size:20;uniqueIndex" binding:"required"`
	LicenseExpiry time.Time  `json:"license_expiry" binding:"required"`
	Phone         string     `json:"phone" gorm:"size:20"`
	Email         string     `json:"email" binding:"omitempty,email"`
	Address       string     `json:"address"`
	BirthDate     *time.Time `json:"birth_date"`
	Active        *bool      `json:"active" gorm:"default:true"`
}
