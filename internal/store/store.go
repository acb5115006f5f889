// Package store wraps the relational database behind a narrow type.
package store

import (
	"context"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pawlig/pawlig/internal/model"
)

// Store owns the database handle. Business logic reaches rows either
// through its read helpers or through Transact for multi-step writes.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at dsn and migrates the schema.
// The pool is capped at one connection: sqlite serializes writers
// anyway, and a single connection keeps an in-memory DSN addressing
// one database instead of one per connection.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&model.User{},
		&model.Shelter{},
		&model.Vendor{},
		&model.Pet{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Favorite{},
		&model.AdoptionRequest{},
		&model.Announcement{},
	); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB exposes the handle for request-scoped queries.
func (s *Store) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Transact runs fn inside a single transaction. A non-nil error from
// fn rolls everything back; the error is returned unchanged so callers
// can inspect its kind.
func (s *Store) Transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

// Counts returns per-entity row counts for the metrics endpoint.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for name, mdl := range map[string]any{
		"users":         &model.User{},
		"pets":          &model.Pet{},
		"products":      &model.Product{},
		"orders":        &model.Order{},
		"favorites":     &model.Favorite{},
		"adoptions":     &model.AdoptionRequest{},
		"announcements": &model.Announcement{},
	} {
		var n int64
		if err := s.db.WithContext(ctx).Model(mdl).Count(&n).Error; err != nil {
			return nil, err
		}
		out[name] = n
	}
	return out, nil
}
