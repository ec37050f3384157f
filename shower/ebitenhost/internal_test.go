package ebitenhost

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestWithAlpha(t *testing.T) {
	c := colorful.Color{R: 1, G: 0.5, B: 0}

	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, withAlpha(c, 1))
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 77}, withAlpha(c, 0.3))
	assert.Equal(t, uint8(0), withAlpha(c, -0.2).A)
	assert.Equal(t, uint8(255), withAlpha(c, 4).A)
}

func TestCenterText(t *testing.T) {
	x, y := centerText("ASTRO", 600, 400, 0)
	assert.Equal(t, (600-5*glyphWidth)/2, x)
	assert.Equal(t, 200-glyphHeight, y)

	_, y2 := centerText("shower", 600, 400, 1)
	assert.Equal(t, y+glyphHeight, y2)

	x, y = centerText("a very long line indeed", 10, 10, 0)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestHeroLinesSkipEmpty(t *testing.T) {
	assert.Equal(t, []string{"title"}, (&Hero{Title: "title"}).lines())
	assert.Equal(t, []string{"sub"}, (&Hero{Subtitle: "sub"}).lines())
	assert.Empty(t, (&Hero{}).lines())
}
