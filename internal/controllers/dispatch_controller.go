package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"logitrack/internal/config"
	"logitrack/internal/models"
	"logitrack/internal/store"
)

var dispatchListOptions = store.ListOptions{
	SearchColumns: []string{"reference", "notes"},
	OrderColumns:  []string{"reference", "requested_at", "scheduled_at", "status"},
	DefaultOrder:  "requested_at DESC",
	StatusColumn:  "status",
	Preloads:      []string{"Route", "Client", "Cargo"},
}

// dispatchView adds the derived read-only fields. Both are recomputed against
// the request clock on every read, never stored.
type dispatchView struct {
	*models.Dispatch
	TransportType string `json:"transport_type"`
	DelayDays     int    `json:"delay_days"`
}

func newDispatchView(d *models.Dispatch, at time.Time) dispatchView {
	return dispatchView{
		Dispatch:      d,
		TransportType: d.TransportType(),
		DelayDays:     d.DelayDays(at),
	}
}

// ListDispatches supports the single optional status filter; without it the
// full set comes back in reverse-chronological request order.
func ListDispatches(c *gin.Context) {
	q := store.ListQuery{
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}
	dispatches, err := store.List[models.Dispatch](config.DB, q, dispatchListOptions)
	if err != nil {
		handleError(c, err)
		return
	}

	now := time.Now()
	views := make([]dispatchView, len(dispatches))
	for i := range dispatches {
		views[i] = newDispatchView(&dispatches[i], now)
	}

	stats, err := dispatchStats(config.DB, now)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": views, "stats": stats})
}

func GetDispatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	d, err := store.Get[models.Dispatch](config.DB, id, store.DispatchPreloads...)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dispatch": newDispatchView(d, time.Now())})
}

// CreateDispatch stamps the acting user as creator. Status defaults to
// pending and the request timestamp is set by the store on first save.
func CreateDispatch(c *gin.Context) {
	var d models.Dispatch
	if err := c.ShouldBindJSON(&d); err != nil {
		bindError(c, err)
		return
	}

	userID := c.MustGet("user_id").(uint)
	d.CreatedByID = &userID
	// The request timestamp is server-set; anything the payload carried is
	// discarded so the store stamps it fresh.
	d.RequestedAt = time.Time{}

	if err := store.Create(config.DB, &d); err != nil {
		handleError(c, err)
		return
	}

	created, err := store.Get[models.Dispatch](config.DB, d.ID, store.DispatchPreloads...)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"dispatch": newDispatchView(created, time.Now())})
}

// UpdateDispatch allows staff or the record's creator. The request timestamp
// and creator survive any update untouched.
func UpdateDispatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	d, err := store.Get[models.Dispatch](config.DB, id)
	if err != nil {
		handleError(c, err)
		return
	}
	if !canEditDispatch(c, d) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only staff or the creator may modify this dispatch"})
		return
	}

	if err := c.ShouldBindJSON(d); err != nil {
		bindError(c, err)
		return
	}
	setID(d, id)

	if err := store.Save(config.DB, d); err != nil {
		handleError(c, err)
		return
	}

	updated, err := store.Get[models.Dispatch](config.DB, id, store.DispatchPreloads...)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dispatch": newDispatchView(updated, time.Now())})
}

// DeleteDispatch is always allowed at the dispatch level (nothing references
// a dispatch), subject to the creator-or-staff rule.
func DeleteDispatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	d, err := store.Get[models.Dispatch](config.DB, id)
	if err != nil {
		handleError(c, err)
		return
	}
	if !canEditDispatch(c, d) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only staff or the creator may modify this dispatch"})
		return
	}
	if err := store.Delete[models.Dispatch](config.DB, id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func canEditDispatch(c *gin.Context, d *models.Dispatch) bool {
	if staff, _ := c.Get("is_staff"); staff == true {
		return true
	}
	userID := c.MustGet("user_id").(uint)
	return d.CreatedByID != nil && *d.CreatedByID == userID
}

type bulkDispatchInput struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// MarkDispatchesEnRoute bulk-transitions the listed dispatches to en_route.
func MarkDispatchesEnRoute(c *gin.Context) {
	var input bulkDispatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	updated, err := store.MarkEnRoute(config.DB, input.IDs)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// MarkDispatchesDelivered bulk-transitions to delivered, stamping the
// delivery time with the operation clock.
func MarkDispatchesDelivered(c *gin.Context) {
	var input bulkDispatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	updated, err := store.MarkDelivered(config.DB, input.IDs, time.Now())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func dispatchStats(db *gorm.DB, at time.Time) (gin.H, error) {
	stats := gin.H{}

	total, err := store.Count(db, &models.Dispatch{})
	if err != nil {
		return nil, err
	}
	stats["total_dispatches"] = total

	byStatus := map[string]string{
		"pending_dispatches":   models.DispatchPending,
		"en_route_dispatches":  models.DispatchEnRoute,
		"delivered_dispatches": models.DispatchDelivered,
		"cancelled_dispatches": models.DispatchCancelled,
	}
	for key, status := range byStatus {
		n, err := store.Count(db, &models.Dispatch{}, "status = ?", status)
		if err != nil {
			return nil, err
		}
		stats[key] = n
	}

	delayed, err := store.CountDelayed(db, at)
	if err != nil {
		return nil, err
	}
	stats["delayed_dispatches"] = delayed

	const routeJoin = "JOIN routes ON routes.id = dispatches.route_id"
	ground, err := store.Count(db.Joins(routeJoin), &models.Dispatch{}, "routes.transport_type = ?", models.TransportGround)
	if err != nil {
		return nil, err
	}
	stats["ground_dispatches"] = ground
	air, err := store.Count(db.Joins(routeJoin), &models.Dispatch{}, "routes.transport_type = ?", models.TransportAir)
	if err != nil {
		return nil, err
	}
	stats["air_dispatches"] = air

	weight, err := store.SumFloat(db, &models.Dispatch{}, "total_weight_kg")
	if err != nil {
		return nil, err
	}
	stats["total_weight_kg"] = weight
	volume, err := store.SumFloat(db, &models.Dispatch{}, "volume_m3")
	if err != nil {
		return nil, err
	}
	stats["total_volume_m3"] = volume

	return stats, nil
}
