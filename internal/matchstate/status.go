// Package matchstate holds the match status lifecycle:
// REQUESTED -> MATCHED | DECLINED, both terminal.
package matchstate

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	svcErr "github.com/oggyb/matching-service/internal/errors"
)

// Status is persisted as its integer value.
type Status int

const (
	Requested Status = 0
	Matched   Status = 1
	Declined  Status = 2
)

var names = map[Status]string{
	Requested: "REQUESTED",
	Matched:   "MATCHED",
	Declined:  "DECLINED",
}

var allowed = map[Status][]Status{
	Requested: {Matched, Declined},
	Matched:   {},
	Declined:  {},
}

func (s Status) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return "UNKNOWN(" + strconv.Itoa(int(s)) + ")"
}

func (s Status) Valid() bool {
	_, ok := names[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool { return len(allowed[s]) == 0 }

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, n := range allowed[s] {
		if n == next {
			return true
		}
	}
	return false
}

// Check returns an InvalidTransition error when s -> next is not allowed.
func (s Status) Check(next Status) error {
	if !s.CanTransitionTo(next) {
		return svcErr.Transition("cannot move match from %s to %s", s, next)
	}
	return nil
}

// Parse accepts a status name (any case) or its integer value.
func Parse(v string) (Status, error) {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		s := Status(n)
		if !s.Valid() {
			return 0, svcErr.Invalid("unknown match status %d", n)
		}
		return s, nil
	}
	for s, name := range names {
		if strings.EqualFold(name, v) {
			return s, nil
		}
	}
	return 0, svcErr.Invalid("unknown match status %q", v)
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var (
		parsed Status
		err    error
	)
	switch v := raw.(type) {
	case string:
		parsed, err = Parse(v)
	case float64:
		parsed, err = Parse(strconv.Itoa(int(v)))
	default:
		err = svcErr.Invalid("match_status must be a name or integer")
	}
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Status) Value() (driver.Value, error) { return int64(s), nil }

func (s *Status) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*s = Status(v)
	case int32:
		*s = Status(v)
	case int:
		*s = Status(v)
	case []byte:
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return err
		}
		*s = Status(n)
	default:
		return fmt.Errorf("matchstate: cannot scan %T into Status", src)
	}
	return nil
}
