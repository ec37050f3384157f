// Package callbacks keeps handle-keyed callback registries for hosts.
package callbacks

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Registry maps handles to callbacks. Handles are issued in increasing order
// and never reused, so sorting by handle gives registration order.
// Registry is not safe for concurrent use; hosts guard it with their own lock
// and invoke the returned callbacks after releasing it.
type Registry[K ~uint64] struct {
	fns  *intmap.Map[K, func()]
	next K
}

// New creates an empty registry.
func New[K ~uint64]() *Registry[K] {
	return &Registry[K]{fns: intmap.New[K, func()](4)}
}

// Add registers fn and returns its handle.
func (r *Registry[K]) Add(fn func()) K {
	r.next++
	r.fns.Put(r.next, fn)
	return r.next
}

// Remove drops the callback for id. Unknown handles are ignored.
func (r *Registry[K]) Remove(id K) {
	r.fns.Del(id)
}

// Len returns the number of registered callbacks.
func (r *Registry[K]) Len() int {
	return r.fns.Len()
}

// Snapshot returns the registered callbacks in registration order.
func (r *Registry[K]) Snapshot() []func() {
	ids := r.sortedIDs()
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fn, _ := r.fns.Get(id)
		fns = append(fns, fn)
	}
	return fns
}

// Drain removes every callback and returns them in registration order.
func (r *Registry[K]) Drain() []func() {
	fns := r.Snapshot()
	r.fns.Clear()
	return fns
}

func (r *Registry[K]) sortedIDs() []K {
	ids := make([]K, 0, r.fns.Len())
	for id := range r.fns.Keys() {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
