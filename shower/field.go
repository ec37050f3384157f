package shower

import "math/rand/v2"

// Counters accumulates spawn and removal totals for one entity kind.
type Counters struct {
	Spawned int64
	Removed int64
}

// Field owns the three entity pools. Only the systems running inside a tick
// touch it.
type Field struct {
	Bodies    *Pool[FallingBody]
	Particles *Pool[ImpactParticle]
	Rings     *Pool[ShockwaveRing]

	counters [3]Counters
}

// NewField creates an empty field.
func NewField() *Field {
	return &Field{
		Bodies:    NewPool[FallingBody](16),
		Particles: NewPool[ImpactParticle](128),
		Rings:     NewPool[ShockwaveRing](16),
	}
}

// SpawnBody adds a body.
func (f *Field) SpawnBody(b FallingBody) {
	f.Bodies.Push(b)
	f.counters[KindFallingBody].Spawned++
}

// SpawnParticle adds a debris particle.
func (f *Field) SpawnParticle(p ImpactParticle) {
	f.Particles.Push(p)
	f.counters[KindImpactParticle].Spawned++
}

// SpawnRing adds a shockwave ring.
func (f *Field) SpawnRing(r ShockwaveRing) {
	f.Rings.Push(r)
	f.counters[KindShockwaveRing].Spawned++
}

// Impact spawns the debris burst and the single ring for a body that
// reached the floor at (x, floor). It returns the number of particles spawned.
func (f *Field) Impact(rng *rand.Rand, x, floor float64) int {
	count := DebrisCount(rng)
	for range count {
		f.SpawnParticle(NewImpactParticle(rng, x, floor))
	}
	f.SpawnRing(NewShockwaveRing(rng, x, floor))
	return count
}

func (f *Field) recordRemoved(kind Kind, n int) {
	f.counters[kind].Removed += int64(n)
}

// Counters returns the totals for one kind.
func (f *Field) Counters(kind Kind) Counters {
	if int(kind) >= len(f.counters) {
		return Counters{}
	}
	return f.counters[kind]
}

// Len returns the number of live entities of one kind.
func (f *Field) Len(kind Kind) int {
	switch kind {
	case KindFallingBody:
		return f.Bodies.Len()
	case KindImpactParticle:
		return f.Particles.Len()
	case KindShockwaveRing:
		return f.Rings.Len()
	default:
		return 0
	}
}

// Reset discards every entity, counting each as removed.
func (f *Field) Reset() {
	f.recordRemoved(KindFallingBody, f.Bodies.Len())
	f.recordRemoved(KindImpactParticle, f.Particles.Len())
	f.recordRemoved(KindShockwaveRing, f.Rings.Len())
	f.Bodies.Clear()
	f.Particles.Clear()
	f.Rings.Clear()
}
