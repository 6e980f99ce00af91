package app

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/matching-service/internal/cache"
	"github.com/oggyb/matching-service/internal/events"
)

// AppContext holds shared dependencies (DB, Redis, Logger, events, clock).
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Events     events.Publisher
	Now        func() time.Time
}

// Option customizes an AppContext.
type Option func(*AppContext)

// WithPublisher sets the event publisher (default events.Noop).
func WithPublisher(p events.Publisher) Option {
	return func(a *AppContext) { a.Events = p }
}

// WithClock overrides time.Now, e.g. to pin "today" for age derivation.
func WithClock(now func() time.Time) Option {
	return func(a *AppContext) { a.Now = now }
}

// New creates a new AppContext
func New(db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger, opts ...Option) *AppContext {
	a := &AppContext{
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Events:     events.Noop{},
		Now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = slog.Default()
	}
	return a
}
