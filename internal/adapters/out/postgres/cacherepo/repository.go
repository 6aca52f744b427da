// Package cacherepo stores quote cache entries in postgres.
package cacherepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CachedResultDTO is one cache entry.
type CachedResultDTO struct {
	Key       string    `gorm:"column:cache_key;primaryKey;type:varchar(255)"`
	Value     []byte    `gorm:"type:bytea;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for cache entries.
func (CachedResultDTO) TableName() string {
	return "cached_results"
}

// GormCacheRepository implements ports.CacheBackend and ports.CacheSweeper.
// Writes to the same key resolve as last write wins.
type GormCacheRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormCacheRepository creates a cache backend on db.
func NewGormCacheRepository(db *gorm.DB) *GormCacheRepository {
	return &GormCacheRepository{db: db, now: time.Now}
}

// Get returns the value of a non-expired entry.
func (r *GormCacheRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var dto CachedResultDTO
	err := r.db.WithContext(ctx).
		Where("cache_key = ? AND expires_at > ?", key, r.now()).
		Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return dto.Value, true, nil
}

// Set upserts key with a fresh expiry.
func (r *GormCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := r.now()
	dto := CachedResultDTO{
		Key:       key,
		Value:     value,
		ExpiresAt: now.Add(ttl),
		UpdatedAt: now,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(&dto).Error
}

// Delete removes key.
func (r *GormCacheRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("cache_key = ?", key).Delete(&CachedResultDTO{}).Error
}

// Sweep deletes expired entries.
func (r *GormCacheRepository) Sweep(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", r.now()).Delete(&CachedResultDTO{})
	return result.RowsAffected, result.Error
}
