package preferences

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/oggyb/matching-service/internal/app"
	svcErr "github.com/oggyb/matching-service/internal/errors"
	"github.com/oggyb/matching-service/internal/preference"
	"github.com/oggyb/matching-service/internal/repository"
	"github.com/oggyb/matching-service/internal/utils/pagination"
)

// Service implements create/read/update/delete for one preference category.
// Every write runs in its own transaction; input is classified before the
// store is touched, so a rejected value never mutates a record.
type Service[T any] struct {
	appCtx *app.AppContext
	def    preference.Definition[T]
	repo   *repository.PreferenceRepository[T]
}

// NewService binds a category definition to the shared DB/logger.
func NewService[T any](appCtx *app.AppContext, def preference.Definition[T]) *Service[T] {
	return &Service[T]{
		appCtx: appCtx,
		def:    def,
		repo:   repository.NewPreferenceRepository[T](appCtx.DB),
	}
}

// Definition exposes the category this service manages.
func (s *Service[T]) Definition() preference.Definition[T] { return s.def }

// Create stores a new record for userID with exactly the classified buckets raised.
//
// Behavior:
//   - Invalid input → InvalidValue, nothing written.
//   - Record already present (including a concurrent insert) → AlreadyExists.
func (s *Service[T]) Create(ctx context.Context, userID string, in preference.Input) (*T, error) {
	log := s.appCtx.Logger.With("category", s.def.Name(), "user_id", userID)
	log.Debug("create preference called")

	if err := requireUser(userID); err != nil {
		return nil, err
	}

	rec := s.def.New(userID)
	if err := s.def.Apply(rec, in, s.appCtx.Now()); err != nil {
		return nil, err
	}

	err := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.Get(ctx, userID); err == nil {
			return s.exists(userID)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return repo.Create(ctx, rec)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, s.exists(userID)
	}
	if err != nil {
		return nil, s.fail(log, "create", err)
	}

	log.Debug("preference created", "active", s.def.Active(rec))
	return rec, nil
}

// Get returns the record of userID or NotFound.
func (s *Service[T]) Get(ctx context.Context, userID string) (*T, error) {
	rec, err := s.repo.Get(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.missing(userID)
	}
	if err != nil {
		return nil, s.fail(s.appCtx.Logger, "get", err)
	}
	return rec, nil
}

// List returns a window of records ordered by user id. An empty window is not an error.
func (s *Service[T]) List(ctx context.Context, page pagination.Page) ([]T, error) {
	recs, err := s.repo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, s.fail(s.appCtx.Logger, "list", err)
	}
	return recs, nil
}

// Update overwrites every flag of an existing record from fresh input.
func (s *Service[T]) Update(ctx context.Context, userID string, in preference.Input) (*T, error) {
	log := s.appCtx.Logger.With("category", s.def.Name(), "user_id", userID)
	log.Debug("update preference called")

	// classify up front so invalid input is rejected even for unknown users
	buckets, err := s.def.Classify(in, s.appCtx.Now())
	if err != nil {
		return nil, err
	}

	var rec *T
	err = s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if err := s.def.Set(existing, buckets...); err != nil {
			return err
		}
		rec = existing
		return repo.Update(ctx, existing)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.missing(userID)
	}
	if err != nil {
		return nil, s.fail(log, "update", err)
	}
	return rec, nil
}

// Delete removes the record of userID or returns NotFound.
func (s *Service[T]) Delete(ctx context.Context, userID string) error {
	var deleted bool
	err := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = s.repo.WithTx(tx).Delete(ctx, userID)
		return err
	})
	if err != nil {
		return s.fail(s.appCtx.Logger, "delete", err)
	}
	if !deleted {
		return s.missing(userID)
	}
	return nil
}

func (s *Service[T]) exists(userID string) error {
	return svcErr.Exists("%s preference for user %s already exists", s.def.Label, userID)
}

func (s *Service[T]) missing(userID string) error {
	return svcErr.Missing("%s preference for user %s not found", s.def.Label, userID)
}

// fail passes typed errors through and wraps everything else as a storage failure.
func (s *Service[T]) fail(log *slog.Logger, op string, err error) error {
	if svcErr.KindOf(err) != svcErr.StorageFailure {
		return err
	}
	log.Error("preference storage failure", "category", s.def.Name(), "op", op, "err", err)
	return svcErr.Storage(err)
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return svcErr.Invalid("user_id is required")
	}
	return nil
}
