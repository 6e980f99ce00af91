package visit

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/oggyb/matching-service/internal/app"
	"github.com/oggyb/matching-service/internal/db"
	svcErr "github.com/oggyb/matching-service/internal/errors"
	"github.com/oggyb/matching-service/internal/events"
	"github.com/oggyb/matching-service/internal/repository"
	"github.com/oggyb/matching-service/internal/utils/pagination"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Service records profile visits and serves "who visited me" lists.
// Visitor counts are cached in Redis when a cache is configured.
type Service struct {
	appCtx    *app.AppContext
	visitRepo *repository.VisitRepository
}

func NewVisitService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:    appCtx,
		visitRepo: repository.NewVisitRepository(appCtx.DB),
	}
}

// Record stores that userID visited visitedUserID.
//
// Behavior:
//   - Both ids required and different.
//   - An existing visit for the pair → AlreadyExists.
//   - Drops the cached visitor count of visitedUserID after commit.
func (s *Service) Record(ctx context.Context, userID, visitedUserID string) (*db.Visit, error) {
	s.appCtx.Logger.Debug("Record visit called", "user_id", userID, "visited_user_id", visitedUserID)

	if err := validate(userID, visitedUserID); err != nil {
		return nil, err
	}

	v := &db.Visit{UserID: userID, VisitedUserID: visitedUserID}
	err := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.visitRepo.WithTx(tx)
		if _, err := repo.Get(ctx, userID, visitedUserID); err == nil {
			return exists(userID, visitedUserID)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return repo.Create(ctx, v)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = exists(userID, visitedUserID)
	}
	if err != nil {
		return nil, s.storage("record", err)
	}

	if s.appCtx.RedisCache != nil {
		if err := s.appCtx.RedisCache.InvalidateVisitorCount(ctx, visitedUserID); err != nil {
			s.appCtx.Logger.Warn("failed to invalidate visitor count", "user_id", visitedUserID, "err", err)
		}
	}
	s.publish(ctx, v)
	return v, nil
}

// Confirm checks that the visit exists. A visit has no mutable fields, so
// this never writes.
func (s *Service) Confirm(ctx context.Context, userID, visitedUserID string) (*db.Visit, error) {
	if err := validate(userID, visitedUserID); err != nil {
		return nil, err
	}
	v, err := s.visitRepo.Get(ctx, userID, visitedUserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.Missing("visit from %s to %s not found", userID, visitedUserID)
	}
	if err != nil {
		return nil, s.storage("confirm", err)
	}
	return v, nil
}

// Visitors lists who visited visitedUserID, newest first, with a cursor token.
func (s *Service) Visitors(ctx context.Context, visitedUserID, token string, limit int) ([]db.Visit, *string, error) {
	if strings.TrimSpace(visitedUserID) == "" {
		return nil, nil, svcErr.Invalid("user_id is required")
	}
	switch {
	case limit <= 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	visits, next, err := s.visitRepo.ListVisitors(ctx, visitedUserID, token, limit)
	if errors.Is(err, pagination.ErrInvalidToken) {
		return nil, nil, svcErr.Invalid("invalid pagination token")
	}
	if err != nil {
		return nil, nil, s.storage("visitors", err)
	}
	return visits, next, nil
}

// CountVisitors returns how many users visited visitedUserID.
// Cache-first strategy:
//  1. Attempts to read from Redis (visits:count:userID).
//  2. On miss or Redis error, falls back to DB.
//  3. On DB fetch, updates Redis with a 1h TTL.
func (s *Service) CountVisitors(ctx context.Context, visitedUserID string) (int64, error) {
	if strings.TrimSpace(visitedUserID) == "" {
		return 0, svcErr.Invalid("user_id is required")
	}

	rc := s.appCtx.RedisCache
	if rc != nil {
		n, ok, err := rc.GetVisitorCount(ctx, visitedUserID)
		if err != nil {
			s.appCtx.Logger.Warn("visitor count cache read failed", "err", err)
		} else if ok {
			return n, nil
		}
	}

	count, err := s.visitRepo.CountVisitors(ctx, visitedUserID)
	if err != nil {
		return 0, s.storage("count", err)
	}

	if rc != nil {
		_ = rc.SetVisitorCount(ctx, visitedUserID, count)
	}
	return count, nil
}

func (s *Service) publish(ctx context.Context, v *db.Visit) {
	e, err := events.New(events.VisitRecorded, v.VisitedUserID, v, s.appCtx.Now())
	if err == nil {
		err = s.appCtx.Events.Publish(ctx, e)
	}
	if err != nil {
		s.appCtx.Logger.Warn("failed to publish visit event", "err", err)
	}
}

func (s *Service) storage(op string, err error) error {
	if svcErr.KindOf(err) != svcErr.StorageFailure {
		return err
	}
	s.appCtx.Logger.Error("visit storage failure", "op", op, "err", err)
	return svcErr.Storage(err)
}

func validate(userID, visitedUserID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(visitedUserID) == "" {
		return svcErr.Invalid("user_id and visited_user_id are required")
	}
	if userID == visitedUserID {
		return svcErr.Invalid("a user cannot visit their own profile")
	}
	return nil
}

func exists(userID, visitedUserID string) error {
	return svcErr.Exists("visit from %s to %s already exists", userID, visitedUserID)
}
