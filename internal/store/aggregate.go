package store

import "gorm.io/gorm"

// Count returns the number of rows of model matching the optional condition.
// Recomputed on every call; nothing is cached.
func Count(db *gorm.DB, model any, conds ...any) (int64, error) {
	tx := db.Model(model)
	if len(conds) > 0 {
		tx = tx.Where(conds[0], conds[1:]...)
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, Translate(err)
	}
	return n, nil
}

// SumFloat totals a numeric column over the matching rows. An empty match
// yields 0, never NULL.
func SumFloat(db *gorm.DB, model any, column string, conds ...any) (float64, error) {
	tx := db.Model(model).Select("COALESCE(SUM(" + column + "), 0)")
	if len(conds) > 0 {
		tx = tx.Where(conds[0], conds[1:]...)
	}
	var total float64
	if err := tx.Row().Scan(&total); err != nil {
		return 0, Translate(err)
	}
	return total, nil
}
