// Package store is the data-access layer for tasks and their items.
package store

import (
	"errors"
	"fmt"
	"time"

	"dayjob-record/internal/cache"
	"dayjob-record/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a task or item does not exist
var ErrNotFound = errors.New("not found")

// ValidationError reports input that cannot be stored
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Store wraps the database and caches item lists per task
type Store struct {
	db       *gorm.DB
	items    cache.Cache[uint, []models.TaskItem]
	itemsTTL time.Duration
	now      func() time.Time
}

// Options configures a Store
type Options struct {
	// ItemCacheTTL bounds how long an item list is served from memory. Zero or less disables the cache.
	// Writes made by other processes sharing the database file are not seen until an entry expires.
	ItemCacheTTL time.Duration
}

// New creates a Store over db
func New(db *gorm.DB, opts Options) *Store {
	return &Store{
		db:       db,
		items:    cache.NewTTLCache[uint, []models.TaskItem](),
		itemsTTL: opts.ItemCacheTTL,
		now:      time.Now,
	}
}

// invalidateItems drops the cached item list of a task along with any expired lists
func (s *Store) invalidateItems(taskID uint) {
	s.items.Delete(taskID)
	s.items.PurgeExpired()
}

func wrapNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("fetch %s: %w", what, err)
}
