package shower

import "iter"

// Pool stores entities of one kind in spawn order.
// Removed slots are compacted away after each sweep so indices are dense.
type Pool[T any] struct {
	items []T
	keep  []bool
}

// NewPool creates a pool with room for capacity entities before growing.
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		items: make([]T, 0, capacity),
	}
}

// Push appends an entity after all existing ones.
func (p *Pool[T]) Push(item T) {
	p.items = append(p.items, item)
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// At returns the entity at index i in spawn order.
func (p *Pool[T]) At(i int) T {
	return p.items[i]
}

// Values iterates over entities in spawn order.
func (p *Pool[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range p.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Sweep visits every entity from newest to oldest. fn may mutate the entity
// in place and returns false to remove it. Removals are applied in a single
// stable pass afterwards, so every entity is visited exactly once and the
// survivors keep their relative order. Entities fn pushes onto the same pool
// are not visited and stay after the survivors; a push may move the
// storage, so fn finishes with item before pushing. Returns the number removed.
func (p *Pool[T]) Sweep(fn func(item *T) bool) int {
	n := len(p.items)
	if n == 0 {
		return 0
	}

	if cap(p.keep) < n {
		p.keep = make([]bool, n)
	}
	p.keep = p.keep[:n]

	removed := 0
	for i := n - 1; i >= 0; i-- {
		p.keep[i] = fn(&p.items[i])
		if !p.keep[i] {
			removed++
		}
	}

	if removed == 0 {
		return 0
	}

	writePos := 0
	for readPos := 0; readPos < n; readPos++ {
		if !p.keep[readPos] {
			continue
		}
		p.items[writePos] = p.items[readPos]
		writePos++
	}

	end := len(p.items)
	writePos += copy(p.items[writePos:], p.items[n:])

	var zero T
	for i := writePos; i < end; i++ {
		p.items[i] = zero
	}
	p.items = p.items[:writePos]

	return removed
}

// Clear drops every entity.
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}
