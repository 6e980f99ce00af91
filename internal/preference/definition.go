package preference

import (
	"time"

	"github.com/oggyb/matching-service/internal/bucket"
)

// InputKind tells the transport how to decode the category's input field.
type InputKind uint8

const (
	DateInput   InputKind = iota // "YYYY-MM-DD"
	HeightInput                  // number, cm
	LabelInput                   // one vocabulary value
	LabelsInput                  // list of vocabulary values
	BoolInput
	GenderInput // label, or legacy 0/1 score
)

// Input is the decoded request value. Only the member matching the
// definition's InputKind is read.
type Input struct {
	Text   string
	Texts  []string
	Number float64
	Bool   bool
	// Score is set when gender arrives as the numeric gender_score.
	Score *int
}

// Owned is implemented by every record through the embedded db.Owner.
type Owned interface {
	OwnerID() string
	SetOwnerID(id string)
}

// Definition is everything the service and transports need to know about
// one category.
type Definition[T any] struct {
	Category[T]

	Path  string // route segment, e.g. "age-range"
	Field string // input field name in requests
	Label string // human name used in messages
	Kind  InputKind

	// Vocabulary is exposed for LabelsInput categories via /available.
	Vocabulary *bucket.Vocabulary

	classify func(in Input, now time.Time) ([]string, error)
}

// Multi reports whether any number of buckets may be raised at once.
func (d Definition[T]) Multi() bool { return d.Kind == LabelsInput }

// Classify maps raw input onto bucket names without touching a record.
func (d Definition[T]) Classify(in Input, now time.Time) ([]string, error) {
	return d.classify(in, now)
}

// Apply classifies in and overwrites every flag of rec. On error rec is
// left untouched.
func (d Definition[T]) Apply(rec *T, in Input, now time.Time) error {
	buckets, err := d.classify(in, now)
	if err != nil {
		return err
	}
	return d.Set(rec, buckets...)
}

// New returns an empty record owned by userID.
func (d Definition[T]) New(userID string) *T {
	rec := new(T)
	OwnerOf(rec).SetOwnerID(userID)
	return rec
}

// OwnerOf exposes the user id accessors of a record.
func OwnerOf[T any](rec *T) Owned {
	return any(rec).(Owned)
}

// Render builds the API view of rec: every flag for single-choice
// categories, the active list under Field for multi-select ones.
func (d Definition[T]) Render(rec *T) map[string]any {
	out := map[string]any{"user_id": OwnerOf(rec).OwnerID()}
	if d.Multi() {
		out[d.Field] = d.Active(rec)
		return out
	}
	for k, v := range d.Snapshot(rec) {
		out[k] = v
	}
	return out
}
