// Package orm is a thin, chainable wrapper over the shared GORM handle.
// Repositories use it instead of touching gorm.DB directly, which keeps the
// query surface small and lets every query report its latency to Prometheus.
package orm

import (
	"time"

	"github.com/shashiranjanraj/vanij/pkg/database"
	"github.com/shashiranjanraj/vanij/pkg/metrics"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

func DB() *Query {
	return &Query{db: database.DB}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value interface{}) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Offset(n int) *Query {
	return &Query{db: q.db.Offset(n)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

// Get runs the query and scans all rows into dest.
func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

// First scans the first matching row into dest.
// Returns gorm.ErrRecordNotFound when nothing matches.
func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

// Count returns the number of matching rows.
func (q *Query) Count() (int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

// Create persists a new record.
func (q *Query) Create(v interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(v).Error
}

// Save persists all fields of an existing record.
func (q *Query) Save(v interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Save(v).Error
}

// Delete hard-deletes the record.
func (q *Query) Delete(v interface{}) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return q.db.Delete(v).Error
}
