package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"logitrack/internal/config"
	"logitrack/internal/models"
	"logitrack/internal/store"
)

// Dashboard serves the landing aggregates: active clients, dispatch totals
// and the five most recent dispatches. Computed from scratch on every call.
func Dashboard(c *gin.Context) {
	db := config.DB

	activeClients, err := store.Count(db, &models.Client{}, "active = ?", true)
	if err != nil {
		handleError(c, err)
		return
	}
	totalDispatches, err := store.Count(db, &models.Dispatch{})
	if err != nil {
		handleError(c, err)
		return
	}
	pending, err := store.Count(db, &models.Dispatch{}, "status = ?", models.DispatchPending)
	if err != nil {
		handleError(c, err)
		return
	}
	enRoute, err := store.Count(db, &models.Dispatch{}, "status = ?", models.DispatchEnRoute)
	if err != nil {
		handleError(c, err)
		return
	}

	var latest []models.Dispatch
	if err := db.Preload("Client").Preload("Route").
		Order("created_at DESC").Limit(5).
		Find(&latest).Error; err != nil {
		handleError(c, err)
		return
	}

	now := time.Now()
	views := make([]dispatchView, len(latest))
	for i := range latest {
		views[i] = newDispatchView(&latest[i], now)
	}

	c.JSON(http.StatusOK, gin.H{
		"active_clients":      activeClients,
		"total_dispatches":    totalDispatches,
		"pending_dispatches":  pending,
		"en_route_dispatches": enRoute,
		"latest_dispatches":   views,
	})
}
