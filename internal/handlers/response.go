package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	svcErr "github.com/oggyb/matching-service/internal/errors"
	"github.com/oggyb/matching-service/internal/logger"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"message": fmt.Sprintf(format, args...)})
}

// writeError renders err as {"detail": ...}. Storage failures keep their
// cause out of the body and are logged with the request id instead.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := svcErr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, map[string]string{"detail": svcErr.Message(err)})
}

// decodeBody reads a JSON object into a field map so each handler can pick
// the keys it understands.
func decodeBody(r *http.Request) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, svcErr.Invalid("failed to read request body")
	}
	var fields map[string]json.RawMessage
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, svcErr.Invalid("request body is required")
	}
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, svcErr.Invalid("request body must be a JSON object")
	}
	return fields, nil
}

// field decodes fields[name] into dst. ok is false when the key is absent
// or null.
func field(fields map[string]json.RawMessage, name string, dst any) (ok bool, err error) {
	raw, found := fields[name]
	if !found || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, svcErr.Invalid("invalid value for %s", name)
	}
	return true, nil
}

func requiredField(fields map[string]json.RawMessage, name string, dst any) error {
	ok, err := field(fields, name, dst)
	if err != nil {
		return err
	}
	if !ok {
		return svcErr.Invalid("%s is required", name)
	}
	return nil
}

// userID accepts ids sent either as JSON strings or integers.
type userID string

func (u *userID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*u = userID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return err
	}
	*u = userID(n.String())
	return nil
}

func requiredUserID(fields map[string]json.RawMessage, name string) (string, error) {
	var id userID
	if err := requiredField(fields, name, &id); err != nil {
		return "", err
	}
	if id == "" {
		return "", svcErr.Invalid("%s is required", name)
	}
	return string(id), nil
}
