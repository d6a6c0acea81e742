package store

import (
	"time"

	"gorm.io/gorm"

	"logitrack/internal/models"
)

// DispatchPreloads are the associations loaded with a dispatch read.
var DispatchPreloads = []string{"Route", "Client", "Cargo", "Vehicle", "Aircraft", "Driver", "Pilot"}

// MarkEnRoute flips every listed dispatch to en_route in a single UPDATE and
// reports the affected count. Deliberately no prior-status check: the original
// bulk action transitions any status, and that behaviour is kept.
func MarkEnRoute(db *gorm.DB, ids []uint) (int64, error) {
	res := db.Model(&models.Dispatch{}).
		Where("id IN ?", ids).
		Update("status", models.DispatchEnRoute)
	return res.RowsAffected, Translate(res.Error)
}

// MarkDelivered flips every listed dispatch to delivered and stamps the
// delivery time, in a single UPDATE. Same permissive semantics as MarkEnRoute.
func MarkDelivered(db *gorm.DB, ids []uint, at time.Time) (int64, error) {
	res := db.Model(&models.Dispatch{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"status":       models.DispatchDelivered,
			"delivered_at": at,
		})
	return res.RowsAffected, Translate(res.Error)
}

// CountDelayed counts dispatches still pending or en route whose scheduled
// date lies strictly before the given instant.
func CountDelayed(db *gorm.DB, at time.Time) (int64, error) {
	return Count(db, &models.Dispatch{},
		"status IN ? AND scheduled_at < ?",
		[]string{models.DispatchPending, models.DispatchEnRoute}, at)
}

// DeleteProtected removes a record only when no dispatch references it through
// refColumn. Count and delete share one transaction so a dispatch created in
// between cannot slip through. Route, client and cargo deletes go through here.
func DeleteProtected[T any](db *gorm.DB, id uint, refColumn string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		n, err := Count(tx, &models.Dispatch{}, refColumn+" = ?", id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrProtected
		}
		return Delete[T](tx, id)
	})
}

// DeleteClearing removes a record and nulls out refColumn on every dispatch
// that referenced it, atomically. Vehicle, aircraft, driver and pilot deletes
// go through here.
func DeleteClearing[T any](db *gorm.DB, id uint, refColumn string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var m T
		if err := tx.First(&m, id).Error; err != nil {
			return Translate(err)
		}
		if err := tx.Model(&models.Dispatch{}).
			Where(refColumn+" = ?", id).
			Update(refColumn, nil).Error; err != nil {
			return Translate(err)
		}
		return Translate(tx.Unscoped().Delete(&m).Error)
	})
}
