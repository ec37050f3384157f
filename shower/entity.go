package shower

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind identifies one of the three entity variants owned by a Field.
type Kind uint8

const (
	KindFallingBody Kind = iota
	KindImpactParticle
	KindShockwaveRing
)

func (k Kind) String() string {
	switch k {
	case KindFallingBody:
		return "FallingBody"
	case KindImpactParticle:
		return "ImpactParticle"
	case KindShockwaveRing:
		return "ShockwaveRing"
	default:
		return "Unknown"
	}
}

// Tick constants. None of these are configurable.
const (
	SpawnProbability = 0.04

	BodyMinVelocity   = 8.0
	BodyVelocityRange = 5.0
	BodyMinSize       = 1.0
	BodySizeRange     = 1.5
	BodyGravity       = 0.05
	BodySpawnTop      = -600.0
	BodySpawnRange    = 500.0
	BodyTrailFactor   = 4.0
	BodyTrailAlpha    = 0.3

	DebrisMinCount   = 4
	DebrisCountRange = 6
	DebrisGravity    = 0.25
	DebrisDrag       = 0.96
	DebrisLifeDecay  = 0.02
	DebrisMinForce   = 4.0
	DebrisForceRange = 8.0
	DebrisMinSize    = 1.0
	DebrisSizeRange  = 2.0

	RingInitialRadius  = 2.0
	RingInitialOpacity = 0.6
	RingGrowth         = 3.0
	RingFade           = 0.04
	RingFlatten        = 0.3
	RingLineWidth      = 1.0
)

// FallingBody streaks down from above the viewport until it reaches the floor.
type FallingBody struct {
	X, Y  float64
	VY    float64
	Size  float64
	Color colorful.Color
}

// ImpactParticle is a piece of debris thrown up where a body hit the floor.
type ImpactParticle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Size   float64
	Color  colorful.Color
}

// ShockwaveRing is the flattened ring left behind by an impact.
type ShockwaveRing struct {
	X, Y    float64
	Radius  float64
	Opacity float64
	Color   colorful.Color
}

// NewFallingBody places a body at a random column above a viewport of the given width.
func NewFallingBody(rng *rand.Rand, width float64) FallingBody {
	return FallingBody{
		X:     rng.Float64() * width,
		Y:     BodySpawnTop + rng.Float64()*BodySpawnRange,
		VY:    BodyMinVelocity + rng.Float64()*BodyVelocityRange,
		Size:  BodyMinSize + rng.Float64()*BodySizeRange,
		Color: PickColor(rng),
	}
}

// NewImpactParticle throws a debris particle from (x, y), upward or sideways.
func NewImpactParticle(rng *rand.Rand, x, y float64) ImpactParticle {
	force := DebrisMinForce + rng.Float64()*DebrisForceRange
	return ImpactParticle{
		X:     x,
		Y:     y,
		VX:    (rng.Float64() - 0.5) * force * 1.5,
		VY:    -rng.Float64() * force * 0.8,
		Life:  1.0,
		Size:  DebrisMinSize + rng.Float64()*DebrisSizeRange,
		Color: PickColor(rng),
	}
}

// NewShockwaveRing starts a ring centered on (x, y).
func NewShockwaveRing(rng *rand.Rand, x, y float64) ShockwaveRing {
	return ShockwaveRing{
		X:       x,
		Y:       y,
		Radius:  RingInitialRadius,
		Opacity: RingInitialOpacity,
		Color:   PickColor(rng),
	}
}

// DebrisCount returns how many particles a single impact produces, in [4, 9].
func DebrisCount(rng *rand.Rand) int {
	return DebrisMinCount + rng.IntN(DebrisCountRange)
}

// UpdateBody advances a body by one tick.
func UpdateBody(b FallingBody) FallingBody {
	b.VY += BodyGravity
	b.Y += b.VY
	return b
}

// Landed reports whether the body reached the floor of a viewport of the given height.
func (b FallingBody) Landed(floor float64) bool {
	return b.Y >= floor
}

// UpdateParticle advances a debris particle by one tick.
func UpdateParticle(p ImpactParticle) ImpactParticle {
	p.X += p.VX
	p.Y += p.VY
	p.VY += DebrisGravity
	p.VX *= DebrisDrag
	p.VY *= DebrisDrag
	p.Life -= DebrisLifeDecay
	return p
}

// Expired reports whether the particle has burned out.
func (p ImpactParticle) Expired() bool {
	return p.Life <= 0
}

// UpdateRing advances a shockwave ring by one tick.
func UpdateRing(r ShockwaveRing) ShockwaveRing {
	r.Radius += RingGrowth
	r.Opacity -= RingFade
	return r
}

// Faded reports whether the ring is no longer visible.
func (r ShockwaveRing) Faded() bool {
	return r.Opacity <= 0
}
