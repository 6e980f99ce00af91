package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/oggyb/matching-service/internal/db"
	svcErr "github.com/oggyb/matching-service/internal/errors"
	"github.com/oggyb/matching-service/internal/matchstate"
	"github.com/oggyb/matching-service/internal/service/match"
)

type matchHandler struct {
	svc *match.Service
}

func mountMatch(r chi.Router, svc *match.Service) {
	h := &matchHandler{svc: svc}

	r.Route("/match", func(r chi.Router) {
		r.Post("/relationship", h.create)
		r.Get("/relationship/{partner_id_1}/{partner_id_2}", h.get)
		r.Put("/relationship/{partner_id_1}/{partner_id_2}/accept", h.accept)
		r.Put("/relationship/{partner_id_1}/{partner_id_2}/decline", h.decline)
		r.Get("/user/{user_id}", h.listForUser)
	})
}

func (h *matchHandler) create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	a, err := requiredUserID(fields, "partner_id_1")
	if err != nil {
		writeError(w, r, err)
		return
	}
	b, err := requiredUserID(fields, "partner_id_2")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var st matchstate.Status
	var status *matchstate.Status
	ok, err := field(fields, "match_status", &st)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if ok {
		status = &st
	}

	if _, err := h.svc.Request(r.Context(), a, b, status); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Match created successfully between %s and %s", a, b)
}

func (h *matchHandler) get(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Get(r.Context(), chi.URLParam(r, "partner_id_1"), chi.URLParam(r, "partner_id_2"))
	h.respond(w, r, m, err)
}

func (h *matchHandler) accept(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Accept(r.Context(), chi.URLParam(r, "partner_id_1"), chi.URLParam(r, "partner_id_2"))
	h.respond(w, r, m, err)
}

func (h *matchHandler) decline(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Decline(r.Context(), chi.URLParam(r, "partner_id_1"), chi.URLParam(r, "partner_id_2"))
	h.respond(w, r, m, err)
}

// listForUser handles GET /match/user/{user_id}?status=&limit=
func (h *matchHandler) listForUser(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var status *matchstate.Status
	if raw := q.Get("status"); raw != "" {
		st, err := matchstate.Parse(raw)
		if err != nil {
			writeError(w, r, err)
			return
		}
		status = &st
	}
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, r, svcErr.Invalid("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	matches, err := h.svc.ListForUser(r.Context(), chi.URLParam(r, "user_id"), status, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if matches == nil {
		matches = []db.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (h *matchHandler) respond(w http.ResponseWriter, r *http.Request, m *db.Match, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}
