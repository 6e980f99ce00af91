package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/oggyb/matching-service/internal/app"
	svcErr "github.com/oggyb/matching-service/internal/errors"
	"github.com/oggyb/matching-service/internal/preference"
	"github.com/oggyb/matching-service/internal/service/preferences"
	"github.com/oggyb/matching-service/internal/utils/pagination"
)

// preferenceHandler serves the CRUD routes of one preference category.
type preferenceHandler[T any] struct {
	svc *preferences.Service[T]
	def preference.Definition[T]
}

func mountPreference[T any](r chi.Router, appCtx *app.AppContext, def preference.Definition[T]) {
	h := &preferenceHandler[T]{svc: preferences.NewService(appCtx, def), def: def}

	r.Route("/"+def.Path, func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		if def.Multi() {
			r.Get("/available", h.available)
		}
		r.Get("/{user_id}", h.get)
		r.Put("/{user_id}", h.update)
		r.Delete("/{user_id}", h.delete)
	})
}

func (h *preferenceHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	uid, err := requiredUserID(fields, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	in, err := h.input(fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.svc.Create(r.Context(), uid, in); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "%s for user %s created successfully", h.title(), uid)
}

func (h *preferenceHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := pagination.ParsePage(q.Get("skip"), q.Get("limit"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	recs, err := h.svc.List(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]map[string]any, 0, len(recs))
	for i := range recs {
		out = append(out, h.def.Render(&recs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *preferenceHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.def.Render(rec))
}

func (h *preferenceHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "user_id")
	fields, err := decodeBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	in, err := h.input(fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.svc.Update(r.Context(), uid, in); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "%s for user %s updated successfully", h.title(), uid)
}

func (h *preferenceHandler[T]) delete(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "user_id")
	if err := h.svc.Delete(r.Context(), uid); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "%s for user %s deleted successfully", h.title(), uid)
}

func (h *preferenceHandler[T]) available(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.def.Vocabulary.Values())
}

// input decodes the category's value field according to its InputKind.
func (h *preferenceHandler[T]) input(fields map[string]json.RawMessage) (preference.Input, error) {
	var in preference.Input
	var err error

	switch h.def.Kind {
	case preference.DateInput, preference.LabelInput:
		err = requiredField(fields, h.def.Field, &in.Text)
	case preference.HeightInput:
		err = requiredField(fields, h.def.Field, &in.Number)
	case preference.LabelsInput:
		err = requiredField(fields, h.def.Field, &in.Texts)
	case preference.BoolInput:
		err = requiredField(fields, h.def.Field, &in.Bool)
	case preference.GenderInput:
		var score int
		var ok bool
		if ok, err = field(fields, "gender_score", &score); ok {
			in.Score = &score
			break
		}
		if err != nil {
			break
		}
		if ok, err = field(fields, h.def.Field, &in.Text); err == nil && !ok {
			err = svcErr.Invalid("gender or gender_score is required")
		}
	}
	return in, err
}

func (h *preferenceHandler[T]) title() string {
	l := h.def.Label
	if l == "" {
		return l
	}
	return strings.ToUpper(l[:1]) + l[1:]
}
