package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Glyph size of the ebitenutil debug font.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Hero prints a centered title and subtitle over the shower.
type Hero struct {
	Title    string
	Subtitle string
}

func (h *Hero) Update() error { return nil }

func (h *Hero) Layout(outsideWidth, outsideHeight int) {}

func (h *Hero) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	for i, line := range h.lines() {
		x, y := centerText(line, b.Dx(), b.Dy(), i)
		ebitenutil.DebugPrintAt(screen, line, x, y)
	}
}

func (h *Hero) lines() []string {
	lines := make([]string, 0, 2)
	if h.Title != "" {
		lines = append(lines, h.Title)
	}
	if h.Subtitle != "" {
		lines = append(lines, h.Subtitle)
	}
	return lines
}

// centerText returns where to print line so it sits horizontally centered,
// row lines below the vertical middle of a w x h screen.
func centerText(line string, w, h, row int) (int, int) {
	x := (w - len(line)*glyphWidth) / 2
	y := h/2 - glyphHeight + row*glyphHeight
	return max(x, 0), max(y, 0)
}
