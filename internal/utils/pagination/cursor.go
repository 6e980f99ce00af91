package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidToken is returned by Decode for tokens it did not produce.
var ErrInvalidToken = errors.New("invalid pagination token")

// Cursor is the opaque keyset state we encode/decode.
// ID + Unix (millis) of the last row establish a stable position.
type Cursor struct {
	ID   string `json:"id"`
	Unix int64  `json:"ts,omitempty"`
}

// After builds the cursor that resumes after a row.
func After(id string, at time.Time) Cursor {
	return Cursor{ID: id, Unix: at.UnixMilli()}
}

// Time returns the cursor timestamp.
func (c Cursor) Time() time.Time { return time.UnixMilli(c.Unix).UTC() }

// IsZero reports a first-page cursor.
func (c Cursor) IsZero() bool { return c.ID == "" && c.Unix == 0 }

// Encode converts a Cursor into a Base64 string.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Decode parses a Base64 string into a Cursor.
// Empty token → empty cursor (first page).
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidToken
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil || c.ID == "" {
		return Cursor{}, ErrInvalidToken
	}
	return c, nil
}
