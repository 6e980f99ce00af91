package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/oggyb/matching-service/internal/app"
	"github.com/oggyb/matching-service/internal/db"
)

const healthTimeout = 2 * time.Second

type healthHandler struct {
	appCtx  *app.AppContext
	started time.Time
}

// health reports "ok" when the database answers a ping and "degraded"
// otherwise. It always responds 200 so load balancers can read the body.
func (h *healthHandler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status, database := "ok", "connected"
	if err := db.Ping(ctx, h.appCtx.DB); err != nil {
		h.appCtx.Logger.Warn("health check: database unreachable", "err", err)
		status, database = "degraded", "unreachable"
	}

	now := h.appCtx.Now().UTC()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    status,
		"database":  database,
		"uptime":    now.Sub(h.started).Round(time.Second).String(),
		"timestamp": now.Format(time.RFC3339),
	})
}
