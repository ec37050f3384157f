// Package termhost runs the shower in a terminal through tcell. The logical
// viewport is the cell grid scaled by a fixed virtual cell size, so the same
// pixel-space physics play out on a coarse grid of shaded cells.
package termhost

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/astroshower/shower"
	"github.com/plus3/astroshower/shower/internal/callbacks"
	"go.uber.org/zap"
)

// Virtual pixel size of one terminal cell.
const (
	CellWidth  = 4
	CellHeight = 8
)

const defaultFPS = 30

// Host is a shower.Host backed by a tcell screen. Frame callbacks and resize
// listeners all run on the goroutine that calls Run.
type Host struct {
	mu sync.Mutex

	screen     tcell.Screen
	surface    *Surface
	cols, rows int

	frames    *callbacks.Registry[shower.FrameID]
	listeners *callbacks.Registry[shower.ListenerID]

	log *zap.Logger
}

// New wraps an initialised screen.
func New(screen tcell.Screen, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	cols, rows := screen.Size()
	return &Host{
		screen:    screen,
		surface:   NewSurface(),
		cols:      cols,
		rows:      rows,
		frames:    callbacks.New[shower.FrameID](),
		listeners: callbacks.New[shower.ListenerID](),
		log:       log,
	}
}

func (h *Host) Viewport() shower.Viewport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return shower.Viewport{
		Width:      float64(h.cols * CellWidth),
		Height:     float64(h.rows * CellHeight),
		PixelRatio: 1,
	}
}

func (h *Host) AcquireSurface() (shower.Surface, bool) {
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

// Surface returns the cell surface the simulator draws on.
func (h *Host) Surface() *Surface {
	return h.surface
}

// Run pumps frames at fps until ctx is cancelled or the user presses
// Escape, Ctrl-C or q. The caller still owns the screen and must Fini it,
// which also stops the event reader.
func (h *Host) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = defaultFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	h.log.Debug("terminal host running", zap.Int("fps", fps), zap.Int("cols", h.cols), zap.Int("rows", h.rows))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !h.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			h.step()
		}
	}
}

func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			return false
		}

	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return true
}

func (h *Host) resize() {
	cols, rows := h.screen.Size()

	h.mu.Lock()
	if cols == h.cols && rows == h.rows {
		h.mu.Unlock()
		return
	}
	h.cols, h.rows = cols, rows
	fns := h.listeners.Snapshot()
	h.mu.Unlock()

	h.log.Debug("terminal resized", zap.Int("cols", cols), zap.Int("rows", rows))
	for _, fn := range fns {
		fn()
	}
}

// step runs the pending frame callbacks and paints the result.
func (h *Host) step() {
	h.mu.Lock()
	fns := h.frames.Drain()
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	h.surface.Flush(h.screen)
}
