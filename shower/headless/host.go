// Package headless provides a shower.Host without a window. Frames are
// pumped either by hand with Advance or on a ticker with Run, and drawing
// goes to a Recorder.
package headless

import (
	"context"
	"sync"
	"time"

	"github.com/plus3/astroshower/shower"
	"github.com/plus3/astroshower/shower/internal/callbacks"
)

// Option configures a Host.
type Option func(*Host)

// WithoutSurface makes AcquireSurface fail, like an environment with no 2D
// drawing support.
func WithoutSurface() Option {
	return func(h *Host) {
		h.surface = nil
	}
}

// Host is an in-memory shower.Host.
type Host struct {
	mu sync.Mutex

	viewport shower.Viewport
	surface  *Recorder

	frames    *callbacks.Registry[shower.FrameID]
	listeners *callbacks.Registry[shower.ListenerID]

	delivered int64
}

// New creates a host with the given viewport.
func New(viewport shower.Viewport, opts ...Option) *Host {
	h := &Host{
		viewport:  viewport,
		surface:   NewRecorder(),
		frames:    callbacks.New[shower.FrameID](),
		listeners: callbacks.New[shower.ListenerID](),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Host) Viewport() shower.Viewport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewport
}

func (h *Host) AcquireSurface() (shower.Surface, bool) {
	if h.surface == nil {
		return nil, false
	}
	return h.surface, true
}

func (h *Host) AddResizeListener(fn func()) shower.ListenerID {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.listeners.Add(fn)
}

func (h *Host) RemoveResizeListener(id shower.ListenerID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners.Remove(id)
}

func (h *Host) RequestFrame(fn func()) shower.FrameID {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames.Add(fn)
}

func (h *Host) CancelFrame(id shower.FrameID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frames.Remove(id)
}

// Recorder returns the drawing surface, or nil when built WithoutSurface.
func (h *Host) Recorder() *Recorder {
	return h.surface
}

// SetViewport changes the viewport and notifies every resize listener.
func (h *Host) SetViewport(viewport shower.Viewport) {
	h.mu.Lock()
	h.viewport = viewport
	fns := h.listeners.Snapshot()
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Resize notifies every resize listener without changing the viewport.
func (h *Host) Resize() {
	h.mu.Lock()
	fns := h.listeners.Snapshot()
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Advance runs the frame callbacks pending at the time of the call, in the
// order they were requested. Callbacks requested while advancing wait for
// the next call. Returns how many callbacks ran.
func (h *Host) Advance() int {
	h.mu.Lock()
	fns := h.frames.Drain()
	h.delivered += int64(len(fns))
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// AdvanceN calls Advance n times and returns the total callbacks run.
func (h *Host) AdvanceN(n int) int {
	total := 0
	for range n {
		total += h.Advance()
	}
	return total
}

// Run advances one frame per interval until ctx is cancelled.
func (h *Host) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Advance()
		}
	}
}

// PendingFrames returns the number of frame callbacks waiting to run.
func (h *Host) PendingFrames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames.Len()
}

// Listeners returns the number of registered resize listeners.
func (h *Host) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.listeners.Len()
}

// Delivered returns how many frame callbacks have been run.
func (h *Host) Delivered() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.delivered
}
