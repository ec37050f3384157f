// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/astroshower/shower/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay renders debugui items on top of an Ebiten game. It satisfies
// ebitenhost.Overlay.
type Overlay struct {
	backend ImguiBackend
	items   []debugui.Item
}

// NewOverlay creates the ImGui backend and its window. The ini file is
// disabled so window layout is not persisted between runs.
func NewOverlay(title string, width, height int, items ...debugui.Item) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend: ImguiBackend{EbitenBackend: backend},
		items:   items,
	}
}

// Add appends render items.
func (o *Overlay) Add(items ...debugui.Item) {
	o.items = append(o.items, items...)
}

func (o *Overlay) Update() error {
	o.backend.BeginFrame()
	for _, render := range o.items {
		render()
	}
	o.backend.EndFrame()
	return nil
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
