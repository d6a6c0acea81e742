package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"logitrack/internal/models"
	"logitrack/internal/store"
)

// Cargoes handles /api/cargoes, protect-on-delete like clients.
var Cargoes = &CRUD[models.Cargo]{
	Name: "cargo",
	Options: store.ListOptions{
		SearchColumns: []string{"code", "description"},
		OrderColumns:  []string{"code", "weight_kg", "created_at"},
		DefaultOrder:  "created_at DESC",
	},
	Stats: cargoStats,
	Remove: func(db *gorm.DB, id uint) error {
		return store.DeleteProtected[models.Cargo](db, id, "cargo_id")
	},
}

func cargoStats(db *gorm.DB) (gin.H, error) {
	hazardous, err := store.Count(db, &models.Cargo{}, "type = ?", models.CargoHazardous)
	if err != nil {
		return nil, err
	}
	refrigerated, err := store.Count(db, &models.Cargo{}, "requires_refrigeration = ?", true)
	if err != nil {
		return nil, err
	}
	totalWeight, err := store.SumFloat(db, &models.Cargo{}, "weight_kg")
	if err != nil {
		return nil, err
	}
	return gin.H{
		"hazardous_cargoes":    hazardous,
		"refrigerated_cargoes": refrigerated,
		"total_weight_kg":      totalWeight,
	}, nil
}
