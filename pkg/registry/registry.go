package registry

import (
	"fmt"

	"github.com/OCharnyshevich/vanilla125/pkg/vanerr"
)

// Index is a dense, contiguous runtime identifier assigned in insertion
// order. Unlike legacy numeric ids, an Index is only meaningful within the
// Registry that produced it.
type Index uint32

// Registry is a bidirectional static-descriptor <-> runtime-index mapping.
// A descriptor registered once keeps the same index for the registry's
// lifetime; there is no removal. Grounded on the teacher's
// pkg/gamedata.BlockRegistry/BiomeRegistry (ByID/ByName/All) shape,
// generalized from one hand-written interface per kind to a single
// generic type.
type Registry[T Descriptor] struct {
	byIndex []T
	byDesc  map[T]Index
	byName  map[string]Index
}

// NewRegistry creates an empty registry.
func NewRegistry[T Descriptor]() *Registry[T] {
	return &Registry[T]{
		byDesc: make(map[T]Index),
		byName: make(map[string]Index),
	}
}

// Register assigns a runtime index to desc. Calling it again with the same
// descriptor (by pointer identity, since T is a pointer type) returns the
// index already assigned. Registering a different descriptor sharing a
// name with an existing entry fails with vanerr.ErrDuplicateName.
func (r *Registry[T]) Register(desc T) (Index, error) {
	if idx, ok := r.byDesc[desc]; ok {
		return idx, nil
	}
	name := desc.Name()
	if existing, ok := r.byName[name]; ok {
		if r.byIndex[existing] != desc {
			return 0, fmt.Errorf("registry: register %q: %w", name, vanerr.ErrDuplicateName)
		}
	}
	idx := Index(len(r.byIndex))
	r.byIndex = append(r.byIndex, desc)
	r.byDesc[desc] = idx
	r.byName[name] = idx
	return idx, nil
}

// IndexOf returns the index a descriptor was registered under, if any.
func (r *Registry[T]) IndexOf(desc T) (Index, bool) {
	idx, ok := r.byDesc[desc]
	return idx, ok
}

// Get returns the descriptor at idx. ok is false if idx is out of range.
func (r *Registry[T]) Get(idx Index) (T, bool) {
	if int(idx) < 0 || int(idx) >= len(r.byIndex) {
		var zero T
		return zero, false
	}
	return r.byIndex[idx], true
}

// ByName looks up a descriptor's index by its "namespace:key" name.
func (r *Registry[T]) ByName(name string) (Index, bool) {
	idx, ok := r.byName[name]
	return idx, ok
}

// Len returns the number of registered descriptors.
func (r *Registry[T]) Len() int { return len(r.byIndex) }

// All returns every registered descriptor in insertion (== index) order.
// The returned slice is owned by the caller; mutating the registry after
// construction is not supported, so aliasing is harmless in practice but
// callers should treat it as read-only.
func (r *Registry[T]) All() []T {
	out := make([]T, len(r.byIndex))
	copy(out, r.byIndex)
	return out
}
