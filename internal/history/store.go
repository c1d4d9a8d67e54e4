// Package history persists answered prompts.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/models"
)

// Store keeps the query log in a gorm database.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on a migrated database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Record saves entry, assigning an ID and timestamp when they are unset.
func (s *Store) Record(ctx context.Context, entry models.QueryLog) (models.QueryLog, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return models.QueryLog{}, fmt.Errorf("failed to record query: %w", err)
	}
	return entry, nil
}

// List returns a page of entries, newest first, and the total count.
func (s *Store) List(ctx context.Context, limit, offset int) ([]models.QueryLog, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.QueryLog{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count queries: %w", err)
	}

	entries := []models.QueryLog{}
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list queries: %w", err)
	}
	return entries, total, nil
}
