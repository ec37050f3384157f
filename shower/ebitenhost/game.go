// Package ebitenhost runs the shower in an Ebitengine window.
//
// Game implements both ebiten.Game and shower.Host. Frame callbacks requested
// by the simulator run once per tick in Update, drawing into an offscreen
// Surface that Draw presents. Layout reports the physical screen size and
// notifies resize listeners whenever the window or its scale factor changes.
package ebitenhost

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/astroshower/shower"
	"github.com/plus3/astroshower/shower/internal/callbacks"
	"go.uber.org/zap"
)

// Overlay draws on top of the shower each frame.
type Overlay interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Option configures a Game.
type Option func(*Game)

// WithOverlay adds an overlay. Overlays are drawn in the order added.
func WithOverlay(overlay Overlay) Option {
	return func(g *Game) {
		g.overlays = append(g.overlays, overlay)
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// WithScaleFactor replaces the monitor's device scale factor lookup.
func WithScaleFactor(fn func() float64) Option {
	return func(g *Game) {
		g.scaleFactor = fn
	}
}

// Game is an ebiten.Game that also serves as the simulator's shower.Host.
type Game struct {
	mu sync.Mutex

	viewport  shower.Viewport
	surface   *Surface
	frames    *callbacks.Registry[shower.FrameID]
	listeners *callbacks.Registry[shower.ListenerID]

	overlays    []Overlay
	scaleFactor func() float64
	log         *zap.Logger
}

// New creates a game for a window of the given logical size.
func New(width, height int, opts ...Option) *Game {
	g := &Game{
		surface:     NewSurface(),
		frames:      callbacks.New[shower.FrameID](),
		listeners:   callbacks.New[shower.ListenerID](),
		scaleFactor: monitorScaleFactor,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.viewport = shower.Viewport{
		Width:      float64(width),
		Height:     float64(height),
		PixelRatio: g.scaleFactor(),
	}
	return g
}

func monitorScaleFactor() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func (g *Game) Viewport() shower.Viewport {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewport
}

func (g *Game) AcquireSurface() (shower.Surface, bool) {
	return g.surface, true
}

func (g *Game) AddResizeListener(fn func()) shower.ListenerID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.listeners.Add(fn)
}

func (g *Game) RemoveResizeListener(id shower.ListenerID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners.Remove(id)
}

func (g *Game) RequestFrame(fn func()) shower.FrameID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.frames.Add(fn)
}

func (g *Game) CancelFrame(id shower.FrameID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.frames.Remove(id)
}

// Surface returns the offscreen surface the simulator draws on.
func (g *Game) Surface() *Surface {
	return g.surface
}

// Step runs the frame callbacks pending at the time of the call and returns
// how many ran.
func (g *Game) Step() int {
	g.mu.Lock()
	fns := g.frames.Drain()
	g.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.Step()

	for _, overlay := range g.overlays {
		if err := overlay.Update(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Present(screen)
	for _, overlay := range g.overlays {
		overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	next := shower.Viewport{
		Width:      float64(outsideWidth),
		Height:     float64(outsideHeight),
		PixelRatio: g.scaleFactor(),
	}

	g.mu.Lock()
	changed := next != g.viewport
	g.viewport = next
	var fns []func()
	if changed {
		fns = g.listeners.Snapshot()
	}
	g.mu.Unlock()

	if changed {
		g.log.Debug("window resized",
			zap.Int("width", outsideWidth),
			zap.Int("height", outsideHeight),
			zap.Float64("dpr", next.Ratio()))
		for _, fn := range fns {
			fn()
		}
	}

	for _, overlay := range g.overlays {
		overlay.Layout(outsideWidth, outsideHeight)
	}

	ratio := next.Ratio()
	return int(float64(outsideWidth) * ratio), int(float64(outsideHeight) * ratio)
}
