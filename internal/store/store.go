package store

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListOptions fixes the filter/search/ordering surface for one entity. The
// column sets are allow-lists; anything outside them is ignored rather than
// passed to SQL.
type ListOptions struct {
	SearchColumns []string
	OrderColumns  []string
	DefaultOrder  string
	StatusColumn  string
	Preloads      []string
}

// ListQuery carries the caller-supplied query parameters.
type ListQuery struct {
	Status   string
	Search   string
	Ordering string
}

// List fetches records applying the optional status filter, free-text search
// and ordering. Absent parameters fall back to the unfiltered default-ordered
// set.
func List[T any](db *gorm.DB, q ListQuery, opt ListOptions) ([]T, error) {
	tx := db.Model(new(T))
	for _, p := range opt.Preloads {
		tx = tx.Preload(p)
	}

	if q.Status != "" && opt.StatusColumn != "" {
		tx = tx.Where(opt.StatusColumn+" = ?", q.Status)
	}

	if q.Search != "" && len(opt.SearchColumns) > 0 {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		clauses := make([]string, len(opt.SearchColumns))
		args := make([]any, len(opt.SearchColumns))
		for i, col := range opt.SearchColumns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		tx = tx.Where(strings.Join(clauses, " OR "), args...)
	}

	tx = tx.Order(orderClause(q.Ordering, opt))

	var out []T
	if err := tx.Find(&out).Error; err != nil {
		return nil, Translate(err)
	}
	return out, nil
}

func orderClause(ordering string, opt ListOptions) string {
	if ordering != "" {
		col, desc := ordering, false
		if strings.HasPrefix(col, "-") {
			col, desc = col[1:], true
		}
		for _, allowed := range opt.OrderColumns {
			if col == allowed {
				if desc {
					return col + " DESC"
				}
				return col
			}
		}
	}
	if opt.DefaultOrder != "" {
		return opt.DefaultOrder
	}
	return "created_at DESC"
}

// Get fetches one record by id, loading the named associations.
func Get[T any](db *gorm.DB, id uint, preloads ...string) (*T, error) {
	tx := db
	for _, p := range preloads {
		tx = tx.Preload(p)
	}
	var m T
	if err := tx.First(&m, id).Error; err != nil {
		return nil, Translate(err)
	}
	return &m, nil
}

// Create inserts a record. Associations ride along as foreign keys only;
// nested objects in a payload cannot create referenced rows.
func Create[T any](db *gorm.DB, m *T) error {
	return Translate(db.Omit(clause.Associations).Create(m).Error)
}

// Save persists every mutable field of an already-loaded record. Write-once
// columns (`<-:create`) are left alone by GORM, and associations are never
// upserted through here.
func Save[T any](db *gorm.DB, m *T) error {
	return Translate(db.Omit(clause.Associations).Save(m).Error)
}

// Delete removes a record by id. Rows go outright rather than soft-deleted so
// a unique code or plate can be reused after its record is removed. Missing
// records report ErrNotFound.
func Delete[T any](db *gorm.DB, id uint) error {
	res := db.Unscoped().Delete(new(T), id)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
