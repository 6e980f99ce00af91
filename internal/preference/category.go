// Package preference describes each preference category: which boolean field
// a bucket name selects, how raw input is classified, and how a record is
// rendered back. Field access goes through explicit accessor tables.
package preference

import (
	"fmt"

	svcErr "github.com/oggyb/matching-service/internal/errors"
)

// Flag binds a bucket name to the boolean field it controls on *T.
type Flag[T any] struct {
	Name string
	Ref  func(*T) *bool
}

// Category is the ordered flag table for record type T.
type Category[T any] struct {
	name  string
	flags []Flag[T]
	index map[string]int
}

func NewCategory[T any](name string, flags ...Flag[T]) Category[T] {
	idx := make(map[string]int, len(flags))
	for i, f := range flags {
		if _, dup := idx[f.Name]; dup {
			panic(fmt.Sprintf("preference: duplicate bucket %q in %s", f.Name, name))
		}
		idx[f.Name] = i
	}
	return Category[T]{name: name, flags: flags, index: idx}
}

func (c Category[T]) Name() string { return c.name }

// Buckets returns bucket names in declaration order.
func (c Category[T]) Buckets() []string {
	out := make([]string, len(c.flags))
	for i, f := range c.flags {
		out[i] = f.Name
	}
	return out
}

// Reset clears every flag.
func (c Category[T]) Reset(rec *T) {
	for _, f := range c.flags {
		*f.Ref(rec) = false
	}
}

// Set clears every flag, then raises exactly the named buckets.
// Nothing is modified when a name is unknown.
func (c Category[T]) Set(rec *T, buckets ...string) error {
	for _, b := range buckets {
		if _, ok := c.index[b]; !ok {
			return svcErr.Invalid("unknown %s bucket %q", c.name, b)
		}
	}
	c.Reset(rec)
	for _, b := range buckets {
		*c.flags[c.index[b]].Ref(rec) = true
	}
	return nil
}

// Active lists the raised buckets in declaration order.
func (c Category[T]) Active(rec *T) []string {
	out := []string{}
	for _, f := range c.flags {
		if *f.Ref(rec) {
			out = append(out, f.Name)
		}
	}
	return out
}

// Snapshot returns every flag by bucket name.
func (c Category[T]) Snapshot(rec *T) map[string]bool {
	out := make(map[string]bool, len(c.flags))
	for _, f := range c.flags {
		out[f.Name] = *f.Ref(rec)
	}
	return out
}
