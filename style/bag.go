// Package style implements the override resolution side of the section
// editor: sparse property bags, the responsive breakpoint cascade, and the
// interaction-state cascade layered on top of it. A property is either
// absent from a bag (inherit) or present with a concrete value (override);
// there is no null sentinel.
package style

import "sort"

// PropertyBag is a sparse map from property name to value. The zero value
// (nil map) is a valid empty bag for reads; writers should use NewBag or
// Set on a non-nil bag.
type PropertyBag map[string]Value

// NewBag returns an empty property bag.
func NewBag() PropertyBag {
	return make(PropertyBag)
}

// Set stores a value under key, replacing any prior value.
func (b PropertyBag) Set(key string, v Value) {
	b[key] = v
}

// Get returns the value for key and whether it is present.
func (b PropertyBag) Get(key string) (Value, bool) {
	v, ok := b[key]
	return v, ok
}

// Has reports whether key carries an override in this bag.
func (b PropertyBag) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// Delete removes key from the bag. No-op if absent.
func (b PropertyBag) Delete(key string) {
	delete(b, key)
}

// Len returns the number of overridden properties.
func (b PropertyBag) Len() int {
	return len(b)
}

// Keys returns the property names in sorted order so that output and
// tests are deterministic.
func (b PropertyBag) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the bag.
func (b PropertyBag) Clone() PropertyBag {
	out := make(PropertyBag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Merge copies every entry of src into b. Only properties explicitly set
// in src override b; everything else is left alone.
func (b PropertyBag) Merge(src PropertyBag) {
	for k, v := range src {
		b[k] = v
	}
}

// Overlay returns a new bag built from base with each layer merged on top
// in order. Nil layers are skipped, so callers can pass optional override
// bags without checking presence first.
func Overlay(base PropertyBag, layers ...PropertyBag) PropertyBag {
	out := base.Clone()
	for _, layer := range layers {
		out.Merge(layer)
	}
	return out
}

// Equal reports whether two bags hold the same keys with equal values.
func (b PropertyBag) Equal(other PropertyBag) bool {
	if len(b) != len(other) {
		return false
	}
	for k, v := range b {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
