package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/oggyb/matching-service/internal/config"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

type Config struct {
	Level      string
	Format     Format
	Component  string
	WithSource bool
	Output     io.Writer // defaults to os.Stdout
}

var (
	mu      sync.RWMutex
	current *slog.Logger
	active  = Config{Level: "info", Format: FormatText}
)

// InitFromConfig initializes the global logger from the log.* settings.
func InitFromConfig(c *config.Config) {
	if c == nil {
		Init(nil)
		return
	}
	Init(&Config{
		Level:      c.Log.Level,
		Format:     Format(strings.ToLower(strings.TrimSpace(c.Log.Format))),
		Component:  c.Log.Component,
		WithSource: c.Log.Source,
	})
}

// Init replaces the global logger and makes it the slog default, so code
// calling slog.Info directly (db seeding, event publishers) shares the
// same handler.
func Init(c *Config) {
	mu.Lock()
	defer mu.Unlock()

	if c != nil {
		active = *c
	}
	current = build(active)
	slog.SetDefault(current)
}

func build(c Config) *slog.Logger {
	out := c.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(c.Level),
		AddSource: c.WithSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				t := a.Value.Time().UTC()
				if c.Format == FormatJSON {
					return slog.Time(slog.TimeKey, t)
				}
				return slog.String(slog.TimeKey, t.Format(time.DateTime))
			case "latency":
				// durations as milliseconds keep JSON lines numeric
				if a.Value.Kind() == slog.KindDuration {
					return slog.Float64("latency_ms", float64(a.Value.Duration().Microseconds())/1000)
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if c.Format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	base := slog.New(handler)
	if c.Component != "" {
		base = base.With("component", c.Component)
	}
	return base
}

// L returns the global logger, building the default one on first use.
func L() *slog.Logger {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l != nil {
		return l
	}

	Init(nil)
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Named returns a child logger tagged with a sub-component, e.g. "http" or "seed".
func Named(component string) *slog.Logger { return L().With("scope", component) }

// Discard returns a logger that drops everything. Used by tests.
func Discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type ctxKey struct{}

// NewContext stores a request-scoped logger, typically one carrying the
// request id.
func NewContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored by NewContext, or the global one.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return L()
}

func parseLevel(s string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
