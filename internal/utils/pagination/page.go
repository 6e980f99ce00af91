package pagination

import (
	"strconv"
	"strings"

	svcErr "github.com/oggyb/matching-service/internal/errors"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Page is an offset window used by the list endpoints.
type Page struct {
	Skip  int
	Limit int
}

// ParsePage reads skip/limit query values. Empty values take the defaults
// (0, DefaultLimit); limit is capped at MaxLimit.
func ParsePage(skip, limit string) (Page, error) {
	p := Page{Limit: DefaultLimit}

	if s := strings.TrimSpace(skip); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Page{}, svcErr.Invalid("skip must be a non-negative integer")
		}
		p.Skip = n
	}
	if s := strings.TrimSpace(limit); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Page{}, svcErr.Invalid("limit must be a positive integer")
		}
		p.Limit = min(n, MaxLimit)
	}
	return p, nil
}
