package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"logitrack/internal/models"
	"logitrack/internal/store"
)

// Clients handles /api/clients. Deleting a client referenced by a dispatch is
// rejected (protect semantics).
var Clients = &CRUD[models.Client]{
	Name: "client",
	Options: store.ListOptions{
		SearchColumns: []string{"code", "name", "tax_id", "email"},
		OrderColumns:  []string{"code", "name", "created_at"},
		DefaultOrder:  "created_at DESC",
	},
	Stats: clientStats,
	Remove: func(db *gorm.DB, id uint) error {
		return store.DeleteProtected[models.Client](db, id, "client_id")
	},
}

func clientStats(db *gorm.DB) (gin.H, error) {
	active, err := store.Count(db, &models.Client{}, "active = ?", true)
	if err != nil {
		return nil, err
	}
	return gin.H{"active_clients": active}, nil
}
