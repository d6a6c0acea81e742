package controllers

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"logitrack/internal/config"
	"logitrack/internal/store"
)

// CRUD bundles the generic handler set for one entity. The per-entity
// controllers only supply names, allow-lists, a stats block and a delete
// strategy; the handler mechanics are shared.
type CRUD[T any] struct {
	Name    string // singular JSON key, e.g. "client"
	Options store.ListOptions
	Stats   func(db *gorm.DB) (gin.H, error)
	Remove  func(db *gorm.DB, id uint) error // nil = plain delete
}

func (h *CRUD[T]) List(c *gin.Context) {
	q := store.ListQuery{
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}
	items, err := store.List[T](config.DB, q, h.Options)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := gin.H{"data": items}
	if h.Stats != nil {
		stats, err := h.Stats(config.DB)
		if err != nil {
			handleError(c, err)
			return
		}
		resp["stats"] = stats
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CRUD[T]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := store.Get[T](config.DB, id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{h.Name: m})
}

func (h *CRUD[T]) Create(c *gin.Context) {
	var m T
	if err := c.ShouldBindJSON(&m); err != nil {
		bindError(c, err)
		return
	}
	if err := store.Create(config.DB, &m); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{h.Name: m})
}

func (h *CRUD[T]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := store.Get[T](config.DB, id)
	if err != nil {
		handleError(c, err)
		return
	}

	// Bind over the fetched record: absent fields keep their stored values.
	if err := c.ShouldBindJSON(m); err != nil {
		bindError(c, err)
		return
	}
	setID(m, id)

	if err := store.Save(config.DB, m); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{h.Name: m})
}

func (h *CRUD[T]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	remove := h.Remove
	if remove == nil {
		remove = store.Delete[T]
	}
	if err := remove(config.DB, id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// setID pins the primary key after binding so a payload carrying "id" cannot
// redirect the update.
func setID(m any, id uint) {
	v := reflect.ValueOf(m).Elem().FieldByName("ID")
	if v.IsValid() && v.CanSet() {
		v.SetUint(uint64(id))
	}
}
