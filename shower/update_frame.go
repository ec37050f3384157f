package shower

import "math/rand/v2"

type UpdateFrame struct {
	Field    *Field
	Surface  Surface
	Viewport Viewport
	Rand     *rand.Rand
}

func newUpdateFrame(field *Field, surface Surface, viewport Viewport, rng *rand.Rand) *UpdateFrame {
	return &UpdateFrame{
		Field:    field,
		Surface:  surface,
		Viewport: viewport,
		Rand:     rng,
	}
}
