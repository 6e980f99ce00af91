package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/matching-service/internal/db"
	"github.com/oggyb/matching-service/internal/matchstate"
)

// MatchRepository provides data access for match relationships.
// Pair lookups are order-independent.
type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

func (r *MatchRepository) WithTx(tx *gorm.DB) *MatchRepository {
	return &MatchRepository{db: tx}
}

func (r *MatchRepository) pair(ctx context.Context, a, b string) *gorm.DB {
	lo, hi := db.CanonicalPair(a, b)
	return r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("pair_low = ? AND pair_high = ?", lo, hi)
}

// FindPair returns the match between a and b in either order,
// or gorm.ErrRecordNotFound.
func (r *MatchRepository) FindPair(ctx context.Context, a, b string) (*db.Match, error) {
	var m db.Match
	if err := r.pair(ctx, a, b).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new relationship. The unique (pair_low, pair_high) index
// rejects the reversed pair with gorm.ErrDuplicatedKey.
func (r *MatchRepository) Create(ctx context.Context, m *db.Match) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// CompareAndSetStatus moves the pair from one status to another in a single
// statement. It reports false when the pair is missing or not in from.
func (r *MatchRepository) CompareAndSetStatus(
	ctx context.Context,
	a, b string,
	from, to matchstate.Status,
) (bool, error) {
	res := r.pair(ctx, a, b).
		Where("match_status = ?", from).
		Update("match_status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListByUser returns every relationship involving userID, newest first,
// optionally filtered by status.
func (r *MatchRepository) ListByUser(
	ctx context.Context,
	userID string,
	status *matchstate.Status,
	limit int,
) ([]db.Match, error) {
	var matches []db.Match

	query := r.db.WithContext(ctx).
		Where("(partner_id_1 = ? OR partner_id_2 = ?)", userID, userID).
		Order("created_at DESC, pair_low ASC, pair_high ASC").
		Limit(limit)
	if status != nil {
		query = query.Where("match_status = ?", *status)
	}

	if err := query.Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}
