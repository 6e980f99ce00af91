package bucket

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	svcErr "github.com/oggyb/matching-service/internal/errors"
)

// Term pairs an accepted input value with the bucket it selects. Most terms
// use the same string for both.
type Term struct {
	Value  string
	Bucket string
}

// Vocabulary is the closed set of values accepted for a categorical input.
type Vocabulary struct {
	name  string
	terms []Term
	index map[string]string
}

func NewVocabulary(name string, terms ...Term) Vocabulary {
	idx := make(map[string]string, len(terms))
	for _, t := range terms {
		idx[t.Value] = t.Bucket
	}
	return Vocabulary{name: name, terms: terms, index: idx}
}

// Same builds terms whose value and bucket are identical.
func Same(values ...string) []Term {
	return lo.Map(values, func(v string, _ int) Term { return Term{Value: v, Bucket: v} })
}

func (v Vocabulary) Name() string { return v.name }

// Values returns the accepted input values in declaration order.
func (v Vocabulary) Values() []string {
	return lo.Map(v.terms, func(t Term, _ int) string { return t.Value })
}

// Buckets returns the bucket names in declaration order.
func (v Vocabulary) Buckets() []string {
	return lo.Map(v.terms, func(t Term, _ int) string { return t.Bucket })
}

func (v Vocabulary) Contains(value string) bool {
	_, ok := v.index[value]
	return ok
}

// Lookup is the categorical classify: exact membership, no normalisation.
func (v Vocabulary) Lookup(value string) (string, error) {
	b, ok := v.index[value]
	if !ok {
		return "", svcErr.Invalid("invalid %s %q, must be one of: %s", v.name, value, strings.Join(v.Values(), ", "))
	}
	return b, nil
}

// LookupMany validates every item and returns their buckets, deduplicated.
// A single unknown item rejects the whole list.
func (v Vocabulary) LookupMany(values []string) ([]string, error) {
	unknown := lo.Uniq(lo.Reject(values, func(s string, _ int) bool { return v.Contains(s) }))
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, svcErr.Invalid("invalid %s: %s", v.name, strings.Join(unknown, ", "))
	}
	return lo.Uniq(lo.Map(values, func(s string, _ int) string { return v.index[s] })), nil
}
