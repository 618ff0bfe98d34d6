// Package generator holds the fixed set of pseudo-random number generators
// that rngspeed measures.
//
// Every generator is reduced to a zero-argument function returning one
// fixed-width unsigned integer. State lives inside the generator and is
// opaque to the harness.
package generator

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownGenerator is returned by Filter for names not in the registry.
var ErrUnknownGenerator = errors.New("unknown generator")

// Entry32 pairs a 32-bit generator with its display name.
type Entry32 struct {
	Name string
	Next func() uint32
}

// Entry64 pairs a 64-bit generator with its display name.
type Entry64 struct {
	Name string
	Next func() uint64
}

// Registry is an ordered, immutable collection of generators per width class.
type Registry struct {
	w32 []Entry32
	w64 []Entry64
}

// NewRegistry creates a Registry from the given entries. Order is kept.
func NewRegistry(w32 []Entry32, w64 []Entry64) *Registry {
	return &Registry{
		w32: slices.Clone(w32),
		w64: slices.Clone(w64),
	}
}

// Width32 returns the 32-bit generators in registration order.
func (r *Registry) Width32() []Entry32 {
	return slices.Clone(r.w32)
}

// Width64 returns the 64-bit generators in registration order.
func (r *Registry) Width64() []Entry64 {
	return slices.Clone(r.w64)
}

// Len returns the total number of generators.
func (r *Registry) Len() int {
	return len(r.w32) + len(r.w64)
}

// Names returns every generator name, 32-bit generators first.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.Len())
	for _, e := range r.w32 {
		names = append(names, e.Name)
	}
	for _, e := range r.w64 {
		names = append(names, e.Name)
	}

	return names
}

// Filter returns a Registry holding only the named generators. The result
// keeps registry order, not the order of names.
func (r *Registry) Filter(names []string) (*Registry, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	out := &Registry{}

	for _, e := range r.w32 {
		if want[e.Name] {
			out.w32 = append(out.w32, e)
			delete(want, e.Name)
		}
	}

	for _, e := range r.w64 {
		if want[e.Name] {
			out.w64 = append(out.w64, e)
			delete(want, e.Name)
		}
	}

	if len(want) > 0 {
		missing := make([]string, 0, len(want))
		for n := range want {
			missing = append(missing, n)
		}
		slices.Sort(missing)

		return nil, fmt.Errorf("%w: %v", ErrUnknownGenerator, missing)
	}

	return out, nil
}
