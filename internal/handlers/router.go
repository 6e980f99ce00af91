package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/oggyb/matching-service/internal/app"
	svcErr "github.com/oggyb/matching-service/internal/errors"
	"github.com/oggyb/matching-service/internal/middleware"
	"github.com/oggyb/matching-service/internal/preference"
	"github.com/oggyb/matching-service/internal/service/match"
	"github.com/oggyb/matching-service/internal/service/visit"
)

const (
	defaultBasePath = "/api/v1"
	defaultTimeout  = 30 * time.Second
)

type routerConfig struct {
	basePath    string
	corsOrigins []string
	apiKeyHash  string
	timeout     time.Duration
}

// Option customises the router before construction.
type Option func(*routerConfig)

// WithBasePath mounts the API under path instead of /api/v1.
func WithBasePath(path string) Option {
	return func(c *routerConfig) { c.basePath = path }
}

// WithCORSOrigins sets the allowed CORS origins.
func WithCORSOrigins(origins ...string) Option {
	return func(c *routerConfig) { c.corsOrigins = origins }
}

// WithAPIKeyHash guards the API with a bcrypt-hashed X-API-Key.
func WithAPIKeyHash(hash string) Option {
	return func(c *routerConfig) { c.apiKeyHash = hash }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *routerConfig) { c.timeout = d }
}

// NewRouter wires every HTTP route onto a chi router.
//
// Layout:
//   - GET /health (unguarded)
//   - {basePath}/<category> for each preference category
//   - {basePath}/match/... and {basePath}/visited/...
func NewRouter(appCtx *app.AppContext, opts ...Option) chi.Router {
	cfg := routerConfig{
		basePath:    defaultBasePath,
		corsOrigins: []string{"*"},
		timeout:     defaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.basePath == "" || cfg.basePath == "/" {
		cfg.basePath = defaultBasePath
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(appCtx.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.APIKeyHeader, "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, svcErr.Missing("no route for %s", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"detail": fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path),
		})
	})

	hh := &healthHandler{appCtx: appCtx, started: appCtx.Now()}
	r.Get("/health", hh.health)

	r.Route(cfg.basePath, func(api chi.Router) {
		api.Use(middleware.APIKey(cfg.apiKeyHash))

		mountPreference(api, appCtx, preference.AgeRange)
		mountPreference(api, appCtx, preference.PartnerAgeRange)
		mountPreference(api, appCtx, preference.Gender)
		mountPreference(api, appCtx, preference.PartnerHeight)
		mountPreference(api, appCtx, preference.ReligiousLevel)
		mountPreference(api, appCtx, preference.Sects)
		mountPreference(api, appCtx, preference.PrayerFrequency)
		mountPreference(api, appCtx, preference.PartnerMarriageTimeline)
		mountPreference(api, appCtx, preference.PartnerChildrenExpectation)
		mountPreference(api, appCtx, preference.SmokingStatus)
		mountPreference(api, appCtx, preference.PartnerEthnics)
		mountPreference(api, appCtx, preference.PartnerPersonalityTraits)

		mountMatch(api, match.NewMatchService(appCtx))
		mountVisit(api, visit.NewVisitService(appCtx))
	})

	return r
}
