package models

import "gorm.io/gorm"

const (
	ClientNatural = "natural"
	ClientLegal   = "legal"
)

type Client struct {
	gorm.Model
	Code    string `json:"code" gorm:"size:30;uniqueIndex" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" gorm:"size:10;default:natural" binding:"omitempty,oneof=natural legal"`
	Address string `json:"address"`
	Phone   string `json:"phone" gorm:"size:20"`
	Email   string `json:"email" binding:"omitempty,email"`
	TaxID   string `json:"tax_id" gorm:"size:20"`
	Active  *bool  `json:"active" gorm:"default:true"`
}
