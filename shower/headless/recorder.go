package headless

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// OpKind names a drawing call made against a Recorder.
type OpKind uint8

const (
	OpFillRect OpKind = iota
	OpStrokeEllipse
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "FillRect"
	case OpStrokeEllipse:
		return "StrokeEllipse"
	default:
		return "Unknown"
	}
}

// Op is one recorded drawing call in logical coordinates. For ellipses X and
// Y are the center and W and H the radii.
type Op struct {
	Kind      OpKind
	X, Y      float64
	W, H      float64
	LineWidth float64
	Alpha     float64
	Color     colorful.Color
}

// Recorder is a Surface that keeps the sizing state and the drawing calls
// made since the last Clear.
type Recorder struct {
	mu sync.Mutex

	width, height int
	scale         float64
	displayWidth  float64
	displayHeight float64

	ops        []Op
	clears     int64
	draws      int64
	resizes    int64
	transforms int64
}

// NewRecorder creates an empty recorder with an identity transform.
func NewRecorder() *Recorder {
	return &Recorder{scale: 1}
}

func (r *Recorder) Resize(w, h int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = w, h
	r.resizes++
}

func (r *Recorder) SetTransform(scale float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scale = scale
	r.transforms++
}

func (r *Recorder) SetDisplaySize(w, h float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.displayWidth, r.displayHeight = w, h
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = r.ops[:0]
	r.clears++
}

func (r *Recorder) FillRect(x, y, w, h float64, c colorful.Color, alpha float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Alpha: alpha, Color: c})
	r.draws++
}

func (r *Recorder) StrokeEllipse(cx, cy, rx, ry, lineWidth float64, c colorful.Color, alpha float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, Op{Kind: OpStrokeEllipse, X: cx, Y: cy, W: rx, H: ry, LineWidth: lineWidth, Alpha: alpha, Color: c})
	r.draws++
}

// Size returns the backing store size in physical pixels.
func (r *Recorder) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// Scale returns the current transform scale.
func (r *Recorder) Scale() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scale
}

// DisplaySize returns the on-screen size in logical units.
func (r *Recorder) DisplaySize() (float64, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.displayWidth, r.displayHeight
}

// Ops returns a copy of the drawing calls made since the last Clear.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Op(nil), r.ops...)
}

// Clears returns how many times the surface was cleared.
func (r *Recorder) Clears() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears
}

// Draws returns the total number of drawing calls ever made.
func (r *Recorder) Draws() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draws
}

// Resizes returns how many times the backing store was resized.
func (r *Recorder) Resizes() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resizes
}
