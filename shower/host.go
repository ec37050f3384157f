package shower

import "github.com/lucasb-eyer/go-colorful"

// Viewport describes the logical size of the host window and its device pixel ratio.
type Viewport struct {
	Width      float64
	Height     float64
	PixelRatio float64
}

// Ratio returns the device pixel ratio, treating unset or invalid values as 1.
func (v Viewport) Ratio() float64 {
	if v.PixelRatio <= 0 {
		return 1
	}
	return v.PixelRatio
}

// ListenerID identifies a registered resize listener.
type ListenerID uint64

// FrameID identifies a pending frame callback.
type FrameID uint64

// Host provides the window-level signals the simulator runs on: the viewport,
// a resize notification stream, a next-frame scheduling primitive, and the
// drawing surface itself.
type Host interface {
	Viewport() Viewport

	// AcquireSurface returns the drawing surface, or false when the host
	// cannot draw.
	AcquireSurface() (Surface, bool)

	AddResizeListener(fn func()) ListenerID
	RemoveResizeListener(id ListenerID)

	// RequestFrame schedules fn to run once before the next repaint.
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Surface is a 2D raster the simulator privately owns. Coordinates passed to
// the drawing methods are logical and are mapped to backing pixels by the
// current transform.
type Surface interface {
	// Resize sets the backing store to w x h physical pixels.
	Resize(w, h int)
	// SetTransform replaces the current scale transform. It never compounds.
	SetTransform(scale float64)
	// SetDisplaySize sets the on-screen size in logical units.
	SetDisplaySize(w, h float64)

	Clear()
	FillRect(x, y, w, h float64, c colorful.Color, alpha float64)
	StrokeEllipse(cx, cy, rx, ry, lineWidth float64, c colorful.Color, alpha float64)
}
