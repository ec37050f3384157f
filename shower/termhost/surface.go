package termhost

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/plus3/astroshower/shower"
)

// Surface rasterises draw calls onto a grid of terminal cells. Each cell
// covers CellWidth x CellHeight backing pixels and holds one blended color,
// painted as the cell background.
type Surface struct {
	mu sync.Mutex

	width, height int
	cols, rows    int
	scale         float64
	cells         []colorful.Color
	background    colorful.Color
}

// NewSurface creates an empty surface with an identity transform.
func NewSurface() *Surface {
	return &Surface{scale: 1}
}

func (s *Surface) Resize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.width, s.height = max(w, 0), max(h, 0)
	s.cols = (s.width + CellWidth - 1) / CellWidth
	s.rows = (s.height + CellHeight - 1) / CellHeight
	s.cells = make([]colorful.Color, s.cols*s.rows)
	for i := range s.cells {
		s.cells[i] = s.background
	}
}

func (s *Surface) SetTransform(scale float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scale = scale
}

// SetDisplaySize is a no-op: the terminal grid is the display.
func (s *Surface) SetDisplaySize(w, h float64) {}

func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cells {
		s.cells[i] = s.background
	}
}

// FillRect blends c into every cell the rectangle overlaps, weighted by the
// fraction of the cell it covers.
func (s *Surface) FillRect(x, y, w, h float64, c colorful.Color, alpha float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	x0 := math.Max(x*s.scale, 0)
	y0 := math.Max(y*s.scale, 0)
	x1 := math.Min((x+w)*s.scale, float64(s.width))
	y1 := math.Min((y+h)*s.scale, float64(s.height))
	if x1 <= x0 || y1 <= y0 {
		return
	}

	const cellArea = CellWidth * CellHeight
	for row := int(y0 / CellHeight); row < s.rows && float64(row*CellHeight) < y1; row++ {
		top := math.Max(y0, float64(row*CellHeight))
		bottom := math.Min(y1, float64((row+1)*CellHeight))
		for col := int(x0 / CellWidth); col < s.cols && float64(col*CellWidth) < x1; col++ {
			left := math.Max(x0, float64(col*CellWidth))
			right := math.Min(x1, float64((col+1)*CellWidth))
			coverage := (right - left) * (bottom - top) / cellArea
			s.blend(col, row, c, alpha*coverage)
		}
	}
}

// StrokeEllipse blends c into each cell the outline passes through. Line
// width is ignored since strokes are thinner than a cell.
func (s *Surface) StrokeEllipse(cx, cy, rx, ry, lineWidth float64, c colorful.Color, alpha float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int]struct{}, shower.EllipseSegments)
	for _, p := range shower.EllipsePoints(cx, cy, rx, ry, shower.EllipseSegments) {
		px, py := p[0]*s.scale, p[1]*s.scale
		if px < 0 || py < 0 || px >= float64(s.width) || py >= float64(s.height) {
			continue
		}
		col, row := int(px/CellWidth), int(py/CellHeight)
		idx := row*s.cols + col
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		s.blend(col, row, c, alpha)
	}
}

func (s *Surface) blend(col, row int, c colorful.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	idx := row*s.cols + col
	s.cells[idx] = s.cells[idx].BlendRgb(c, math.Min(alpha, 1))
}

// Grid returns the surface size in cells.
func (s *Surface) Grid() (cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cols, s.rows
}

// Cell returns the blended color of one cell. Out of range cells report the
// background.
func (s *Surface) Cell(col, row int) colorful.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return s.background
	}
	return s.cells[row*s.cols+col]
}

// Flush paints every cell onto screen and shows it.
func (s *Surface) Flush(screen tcell.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for row := range s.rows {
		for col := range s.cols {
			style := tcell.StyleDefault.Background(toTcell(s.cells[row*s.cols+col]))
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
	screen.Show()
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
