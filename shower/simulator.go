// Package shower implements a frame-driven asteroid shower: falling bodies
// streak down a full-viewport surface, burst into debris on reaching the
// floor, and leave flattened shockwave rings behind.
//
// A Simulator is mounted on a Host, which supplies the viewport, resize
// notifications, the next-frame primitive, and the drawing surface. Each
// frame runs the tick pipeline (spawn, bodies, debris, shockwaves) and
// requests the next frame only once the current one has finished.
package shower

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"
)

// State is the simulator lifecycle state.
type State int32

const (
	StateUninitialized State = iota
	StateRunning
	StateTornDown
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateTornDown:
		return "torn-down"
	default:
		return "unknown"
	}
}

// Option configures a Simulator's logger or random source.
type Option func(*Simulator)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(log *zap.Logger) Option {
	return func(s *Simulator) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRand sets the random source, mainly so runs can be reproduced.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// Simulator runs the particle field on a Host.
type Simulator struct {
	mu sync.Mutex

	host      Host
	log       *zap.Logger
	rng       *rand.Rand
	field     *Field
	scheduler *Scheduler

	state   State
	surface Surface
	inert   bool

	viewport       Viewport
	backingWidth   int
	backingHeight  int
	resizeListener ListenerID
	pendingFrame   FrameID
	framePending   bool
	frames         int64

	teardownOnce sync.Once
}

// New creates a simulator for host. It does nothing until Mount is called.
func New(host Host, opts ...Option) *Simulator {
	s := &Simulator{
		host:      host,
		log:       zap.NewNop(),
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		field:     NewField(),
		scheduler: NewTickScheduler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount acquires the drawing surface, sizes it to the viewport, starts
// listening for resizes and requests the first frame. When the host cannot
// provide a surface the simulator stays inert. Calling Mount more than once,
// or after Teardown, has no effect.
func (s *Simulator) Mount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUninitialized {
		return
	}
	s.state = StateRunning

	surface, ok := s.host.AcquireSurface()
	if !ok || surface == nil {
		s.inert = true
		s.log.Debug("drawing surface unavailable, simulator inert")
		return
	}
	s.surface = surface

	s.resizeLocked()
	s.resizeListener = s.host.AddResizeListener(s.onResize)
	s.requestFrameLocked()

	s.log.Debug("simulator mounted",
		zap.Stringer("state", s.state),
		zap.Float64("width", s.viewport.Width),
		zap.Float64("height", s.viewport.Height),
		zap.Float64("dpr", s.viewport.Ratio()),
	)
}

// Teardown stops the simulation: the resize listener is removed, the pending
// frame is cancelled and all entities are discarded. It runs at most once and
// is safe to call from any goroutine.
func (s *Simulator) Teardown() {
	s.teardownOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		wasRunning := s.state == StateRunning && !s.inert
		s.state = StateTornDown

		if wasRunning {
			s.host.RemoveResizeListener(s.resizeListener)
			if s.framePending {
				s.host.CancelFrame(s.pendingFrame)
				s.framePending = false
			}
		}
		s.field.Reset()
		s.surface = nil

		s.log.Debug("simulator torn down", zap.Int64("frames", s.frames))
	})
}

// State returns the lifecycle state.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Inert reports whether the simulator mounted without a drawing surface.
func (s *Simulator) Inert() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inert
}

func (s *Simulator) onResize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning || s.surface == nil {
		return
	}
	s.resizeLocked()
	s.log.Debug("surface resized",
		zap.Float64("width", s.viewport.Width),
		zap.Float64("height", s.viewport.Height),
		zap.Int("backing_width", s.backingWidth),
		zap.Int("backing_height", s.backingHeight),
	)
}

// resizeLocked sizes the backing store to logical size times the pixel ratio
// and sets the transform to exactly that ratio. Repeated calls with the same
// viewport produce the same surface.
func (s *Simulator) resizeLocked() {
	vp := s.host.Viewport()
	ratio := vp.Ratio()
	vp.PixelRatio = ratio

	s.viewport = vp
	s.backingWidth = int(math.Floor(vp.Width * ratio))
	s.backingHeight = int(math.Floor(vp.Height * ratio))

	s.surface.Resize(s.backingWidth, s.backingHeight)
	s.surface.SetTransform(ratio)
	s.surface.SetDisplaySize(vp.Width, vp.Height)
}

func (s *Simulator) requestFrameLocked() {
	s.pendingFrame = s.host.RequestFrame(s.frame)
	s.framePending = true
}

// frame is one tick. It draws, then asks for the next frame.
func (s *Simulator) frame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning || s.surface == nil {
		return
	}
	s.framePending = false

	s.surface.Clear()
	s.scheduler.Once(newUpdateFrame(s.field, s.surface, s.viewport, s.rng))
	s.frames++

	s.requestFrameLocked()
}
