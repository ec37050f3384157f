package shower

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

var palette = [...]colorful.Color{
	mustHex("#f59e09"),
	mustHex("#ed8d02"),
	mustHex("#e57d00"),
	mustHex("#dc6c00"),
	mustHex("#d35b00"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palette: " + err.Error())
	}
	return c
}

// Palette returns a copy of the amber palette entities are colored from.
func Palette() []colorful.Color {
	return append([]colorful.Color(nil), palette[:]...)
}

// PickColor samples one palette entry uniformly.
func PickColor(rng *rand.Rand) colorful.Color {
	return palette[rng.IntN(len(palette))]
}
