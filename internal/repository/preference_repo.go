package repository

import (
	"context"

	"gorm.io/gorm"
)

// PreferenceRepository provides data access for one preference table.
// Every table is keyed by user_id.
type PreferenceRepository[T any] struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a repository bound to the given DB connection.
func NewPreferenceRepository[T any](database *gorm.DB) *PreferenceRepository[T] {
	return &PreferenceRepository[T]{db: database}
}

// WithTx returns a copy bound to tx.
func (r *PreferenceRepository[T]) WithTx(tx *gorm.DB) *PreferenceRepository[T] {
	return &PreferenceRepository[T]{db: tx}
}

// Create inserts a new record.
// A second record for the same user fails with gorm.ErrDuplicatedKey.
func (r *PreferenceRepository[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Get loads the record of userID or returns gorm.ErrRecordNotFound.
func (r *PreferenceRepository[T]) Get(ctx context.Context, userID string) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns a window of records ordered by user_id.
func (r *PreferenceRepository[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	var recs []T
	err := r.db.WithContext(ctx).
		Order("user_id ASC").
		Offset(skip).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Update overwrites every flag column of an existing record, false values included.
func (r *PreferenceRepository[T]) Update(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).
		Model(rec).
		Select("*").
		Omit("user_id", "created_at").
		Updates(rec).Error
}

// Delete removes the record of userID. Returns false when there was none.
func (r *PreferenceRepository[T]) Delete(ctx context.Context, userID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(new(T))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Count returns the number of stored records.
func (r *PreferenceRepository[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}
