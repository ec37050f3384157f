package debugui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/plus3/astroshower/shower"
)

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(frames, 1))}
}

// Record stores one frame time, overwriting the oldest once full.
func (h *FrameHistory) Record(ms float32) {
	h.samples[h.index] = ms
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Average returns the mean of the recorded samples, or 0 before any.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var total float32
	for _, s := range h.samples[:h.filled] {
		total += s
	}
	return total / float32(h.filled)
}

// Samples returns the ring oldest first, ready to plot.
func (h *FrameHistory) Samples() []float32 {
	out := make([]float32, 0, len(h.samples))
	out = append(out, h.samples[h.index:]...)
	return append(out, h.samples[:h.index]...)
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}

// KindRows formats per-kind counts as table rows: kind, live, spawned,
// removed.
func KindRows(stats *shower.Stats) [][4]string {
	rows := make([][4]string, 0, len(stats.Kinds)+1)
	var live int
	var spawned, removed int64
	for _, k := range stats.Kinds {
		rows = append(rows, [4]string{
			k.Kind.String(),
			fmt.Sprintf("%d", k.Live),
			fmt.Sprintf("%d", k.Spawned),
			fmt.Sprintf("%d", k.Removed),
		})
		live += k.Live
		spawned += k.Spawned
		removed += k.Removed
	}
	return append(rows, [4]string{"total", fmt.Sprintf("%d", live), fmt.Sprintf("%d", spawned), fmt.Sprintf("%d", removed)})
}

// SystemSort orders the scheduler table by one of its columns: name, avg,
// min or max duration.
type SystemSort struct {
	Column     int
	Descending bool
}

// Apply sorts systems in place. A negative or unknown column leaves them in
// pipeline order.
func (s SystemSort) Apply(systems []shower.SystemStats) {
	var key func(a, b shower.SystemStats) int
	switch s.Column {
	case 0:
		key = func(a, b shower.SystemStats) int { return strings.Compare(a.Name, b.Name) }
	case 1:
		key = func(a, b shower.SystemStats) int { return compareDuration(a.AvgDuration, b.AvgDuration) }
	case 2:
		key = func(a, b shower.SystemStats) int { return compareDuration(a.MinDuration, b.MinDuration) }
	case 3:
		key = func(a, b shower.SystemStats) int { return compareDuration(a.MaxDuration, b.MaxDuration) }
	default:
		return
	}
	slices.SortStableFunc(systems, func(a, b shower.SystemStats) int {
		if s.Descending {
			return key(b, a)
		}
		return key(a, b)
	})
}

func compareDuration(a, b time.Duration) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
