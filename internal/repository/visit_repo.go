package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/matching-service/internal/db"
	"github.com/oggyb/matching-service/internal/utils/pagination"
)

// VisitRepository provides data access for profile visits.
type VisitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(database *gorm.DB) *VisitRepository {
	return &VisitRepository{db: database}
}

func (r *VisitRepository) WithTx(tx *gorm.DB) *VisitRepository {
	return &VisitRepository{db: tx}
}

// Create inserts a visit. An existing (user_id, visited_user_id) pair fails
// with gorm.ErrDuplicatedKey.
func (r *VisitRepository) Create(ctx context.Context, v *db.Visit) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// Get returns the visit of userID to visitedUserID or gorm.ErrRecordNotFound.
func (r *VisitRepository) Get(ctx context.Context, userID, visitedUserID string) (*db.Visit, error) {
	var v db.Visit
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND visited_user_id = ?", userID, visitedUserID).
		Take(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListVisitors returns who visited visitedUserID, newest first.
//
// Behavior:
//   - Ordered by created_at DESC, user_id DESC.
//   - Supports cursor-based pagination via paginationToken.
//   - Fetches limit+1 rows to decide whether a next token is needed.
func (r *VisitRepository) ListVisitors(
	ctx context.Context,
	visitedUserID string,
	paginationToken string,
	limit int,
) ([]db.Visit, *string, error) {
	var visits []db.Visit

	cursor, err := pagination.Decode(paginationToken)
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Where("visited_user_id = ?", visitedUserID).
		Order("created_at DESC, user_id DESC").
		Limit(limit + 1)

	// apply cursor
	if !cursor.IsZero() {
		ts := cursor.Time()
		query = query.Where(
			"(created_at < ? OR (created_at = ? AND user_id < ?))",
			ts, ts, cursor.ID,
		)
	}

	if err := query.Find(&visits).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(visits) > limit {
		last := visits[limit-1]
		token, _ := pagination.Encode(pagination.After(last.UserID, last.CreatedAt))
		nextToken = &token
		visits = visits[:limit]
	}

	return visits, nextToken, nil
}

// CountVisitors returns how many distinct users visited visitedUserID.
// Used behind the Redis counter (DB is fallback).
func (r *VisitRepository) CountVisitors(ctx context.Context, visitedUserID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Visit{}).
		Where("visited_user_id = ?", visitedUserID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
