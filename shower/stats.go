package shower

// KindStats reports live and cumulative counts for one entity kind.
type KindStats struct {
	Kind    Kind
	Live    int
	Spawned int64
	Removed int64
}

// Stats is a point-in-time snapshot of a simulator.
type Stats struct {
	State         State
	Inert         bool
	Frames        int64
	Viewport      Viewport
	BackingWidth  int
	BackingHeight int
	Kinds         []KindStats
	Scheduler     *SchedulerStats
}

// TotalLive returns the number of live entities across all kinds.
func (s *Stats) TotalLive() int {
	total := 0
	for _, k := range s.Kinds {
		total += k.Live
	}
	return total
}

// Kind returns the stats for one kind.
func (s *Stats) Kind(kind Kind) KindStats {
	for _, k := range s.Kinds {
		if k.Kind == kind {
			return k
		}
	}
	return KindStats{Kind: kind}
}

// Stats collects a snapshot of the simulator.
func (s *Simulator) Stats() *Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &Stats{
		State:         s.state,
		Inert:         s.inert,
		Frames:        s.frames,
		Viewport:      s.viewport,
		BackingWidth:  s.backingWidth,
		BackingHeight: s.backingHeight,
		Kinds:         make([]KindStats, 0, 3),
		Scheduler:     s.scheduler.GetStats(),
	}

	for _, kind := range []Kind{KindFallingBody, KindImpactParticle, KindShockwaveRing} {
		counters := s.field.Counters(kind)
		stats.Kinds = append(stats.Kinds, KindStats{
			Kind:    kind,
			Live:    s.field.Len(kind),
			Spawned: counters.Spawned,
			Removed: counters.Removed,
		})
	}

	return stats
}
