package ebitenhost

import (
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/plus3/astroshower/shower"
)

// Surface is an offscreen ebiten image sized in physical pixels. Draw calls
// take logical coordinates and are scaled by the current transform.
type Surface struct {
	mu sync.Mutex

	image              *ebiten.Image
	scale              float64
	displayW, displayH float64
}

// NewSurface creates a surface with no backing image and an identity
// transform. The first Resize allocates the image.
func NewSurface() *Surface {
	return &Surface{scale: 1}
}

func (s *Surface) Resize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h = max(w, 1), max(h, 1)
	if s.image != nil {
		b := s.image.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		s.image.Deallocate()
	}
	s.image = ebiten.NewImage(w, h)
}

func (s *Surface) SetTransform(scale float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scale = scale
}

func (s *Surface) SetDisplaySize(w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayW, s.displayH = w, h
}

func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.image != nil {
		s.image.Clear()
	}
}

func (s *Surface) FillRect(x, y, w, h float64, c colorful.Color, alpha float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.image == nil {
		return
	}
	k := s.scale
	vector.DrawFilledRect(s.image, float32(x*k), float32(y*k), float32(w*k), float32(h*k), withAlpha(c, alpha), false)
}

func (s *Surface) StrokeEllipse(cx, cy, rx, ry, lineWidth float64, c colorful.Color, alpha float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.image == nil {
		return
	}

	k := s.scale
	clr := withAlpha(c, alpha)
	points := shower.EllipsePoints(cx*k, cy*k, rx*k, ry*k, shower.EllipseSegments)
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(s.image, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), float32(lineWidth*k), clr, true)
	}
}

// Present draws the backing image onto screen at its origin.
func (s *Surface) Present(screen *ebiten.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.image != nil {
		screen.DrawImage(s.image, nil)
	}
}

// Size returns the backing image size in physical pixels.
func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.image == nil {
		return 0, 0
	}
	b := s.image.Bounds()
	return b.Dx(), b.Dy()
}

// withAlpha converts a palette color to non-premultiplied RGBA with the
// given opacity, clamped to [0, 1].
func withAlpha(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	a := math.Round(math.Max(0, math.Min(alpha, 1)) * 255)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a)}
}
