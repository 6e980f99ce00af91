package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/oggyb/matching-service/internal/db"
	svcErr "github.com/oggyb/matching-service/internal/errors"
	"github.com/oggyb/matching-service/internal/service/visit"
)

type visitHandler struct {
	svc *visit.Service
}

func mountVisit(r chi.Router, svc *visit.Service) {
	h := &visitHandler{svc: svc}

	r.Route("/visited", func(r chi.Router) {
		r.Post("/", h.create)
		r.Put("/", h.confirm)
		r.Get("/{user_id}/visitors", h.visitors)
		r.Get("/{user_id}/visitors/count", h.count)
	})
}

func (h *visitHandler) pair(r *http.Request) (string, string, error) {
	fields, err := decodeBody(r)
	if err != nil {
		return "", "", err
	}
	uid, err := requiredUserID(fields, "user_id")
	if err != nil {
		return "", "", err
	}
	visited, err := requiredUserID(fields, "visited_user_id")
	if err != nil {
		return "", "", err
	}
	return uid, visited, nil
}

func (h *visitHandler) create(w http.ResponseWriter, r *http.Request) {
	uid, visited, err := h.pair(r)
	if err == nil {
		_, err = h.svc.Record(r.Context(), uid, visited)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Visit record created successfully")
}

func (h *visitHandler) confirm(w http.ResponseWriter, r *http.Request) {
	uid, visited, err := h.pair(r)
	if err == nil {
		_, err = h.svc.Confirm(r.Context(), uid, visited)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Visit record confirmed successfully")
}

type visitorsPage struct {
	Visitors        []db.Visit `json:"visitors"`
	PaginationToken *string    `json:"pagination_token"`
}

// visitors handles GET /visited/{user_id}/visitors?pagination_token=&limit=
func (h *visitHandler) visitors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, r, svcErr.Invalid("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	visits, next, err := h.svc.Visitors(r.Context(), chi.URLParam(r, "user_id"), q.Get("pagination_token"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if visits == nil {
		visits = []db.Visit{}
	}
	writeJSON(w, http.StatusOK, visitorsPage{Visitors: visits, PaginationToken: next})
}

func (h *visitHandler) count(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "user_id")
	n, err := h.svc.CountVisitors(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user_id": uid, "count": n})
}
