package shower

// SpawnSystem drops a new body with fixed per-tick probability.
type SpawnSystem struct{}

func (s *SpawnSystem) Execute(frame *UpdateFrame) {
	if frame.Rand.Float64() < SpawnProbability {
		frame.Field.SpawnBody(NewFallingBody(frame.Rand, frame.Viewport.Width))
	}
}

// BodySystem moves and draws falling bodies and turns the ones that reach
// the floor into an impact.
type BodySystem struct{}

func (s *BodySystem) Execute(frame *UpdateFrame) {
	field := frame.Field
	floor := frame.Viewport.Height

	removed := field.Bodies.Sweep(func(b *FallingBody) bool {
		*b = UpdateBody(*b)
		DrawBody(frame.Surface, *b)

		if b.Landed(floor) {
			field.Impact(frame.Rand, b.X, floor)
			return false
		}
		return true
	})
	field.recordRemoved(KindFallingBody, removed)
}

// DebrisSystem integrates and fades impact particles.
type DebrisSystem struct{}

func (s *DebrisSystem) Execute(frame *UpdateFrame) {
	removed := frame.Field.Particles.Sweep(func(p *ImpactParticle) bool {
		*p = UpdateParticle(*p)
		DrawParticle(frame.Surface, *p)
		return !p.Expired()
	})
	frame.Field.recordRemoved(KindImpactParticle, removed)
}

// ShockwaveSystem grows and fades shockwave rings.
type ShockwaveSystem struct{}

func (s *ShockwaveSystem) Execute(frame *UpdateFrame) {
	removed := frame.Field.Rings.Sweep(func(r *ShockwaveRing) bool {
		*r = UpdateRing(*r)
		DrawRing(frame.Surface, *r)
		return !r.Faded()
	})
	frame.Field.recordRemoved(KindShockwaveRing, removed)
}
