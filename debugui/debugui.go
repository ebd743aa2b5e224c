// Package debugui draws Dear ImGui inspector windows for a running session
// on top of the ebiten frontend.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetra/scene"
	"github.com/plus3/tetra/tetra"
)

// Window renders one ImGui window per frame.
type Window interface {
	Render()
}

// Overlay owns the ImGui backend and renders its windows each frame.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	windows []Window
}

// NewBackend creates the ImGui ebiten backend and its window. It must be
// called before ebiten.RunGame.
func NewBackend(title string, width, height int) *ebitenbackend.EbitenBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return backend
}

// New builds the default set of inspector windows for a session.
func New(backend *ebitenbackend.EbitenBackend, runner *tetra.Runner, sc *scene.Scene) *Overlay {
	return &Overlay{
		backend: backend,
		windows: []Window{
			&SessionWindow{Session: runner.Session()},
			&BoardWindow{Session: runner.Session()},
			&SceneWindow{Scene: sc},
			NewTickWindow(runner, 120),
		},
	}
}

// Add appends a window.
func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

func (o *Overlay) Update() {
	o.backend.BeginFrame()
	for _, w := range o.windows {
		w.Render()
	}
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(w, h int) {
	o.backend.Layout(w, h)
}

// WantCaptureKeyboard reports whether ImGui is consuming key presses.
func (o *Overlay) WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
