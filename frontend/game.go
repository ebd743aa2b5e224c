// Package frontend runs a tetra session in an ebiten window.
package frontend

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kamstrup/intmap"

	"github.com/plus3/tetra/asset"
	"github.com/plus3/tetra/internal/log"
	"github.com/plus3/tetra/scene"
	"github.com/plus3/tetra/tetra"
)

const fallbackKey = 1 << 40

// Overlay is drawn on top of the board, typically the debug UI.
type Overlay interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(w, h int)
	WantCaptureKeyboard() bool
}

type Options struct {
	CellSize int
	Overlay  Overlay
	Logger   *log.Logger
}

// Game implements ebiten.Game.
type Game struct {
	ctx      context.Context
	runner   *tetra.Runner
	scene    *scene.Scene
	library  *asset.Library
	overlay  Overlay
	logger   *log.Logger
	view     viewport
	textures *intmap.Map[uint64, *ebiten.Image]
	pending  []tetra.Input
}

var _ ebiten.Game = (*Game)(nil)

func New(ctx context.Context, runner *tetra.Runner, sc *scene.Scene, library *asset.Library, opts Options) *Game {
	if opts.CellSize <= 0 {
		opts.CellSize = 24
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	s := runner.Session()
	g := &Game{
		ctx:      ctx,
		runner:   runner,
		scene:    sc,
		library:  library,
		overlay:  opts.Overlay,
		logger:   opts.Logger.With("frontend"),
		view:     newViewport(opts.CellSize, s.Board().Frame(), s.Preview().Frame()),
		textures: intmap.New[uint64, *ebiten.Image](16),
	}
	runner.Before = g.flush
	return g
}

// Size returns the window size that shows the whole scene unscaled.
func (g *Game) Size() (int, int) { return g.view.Size() }

func (g *Game) flush(s *tetra.Session) {
	for _, in := range g.pending {
		s.OnInput(in)
	}
	g.pending = g.pending[:0]
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.overlay != nil {
		g.overlay.Update()
	}

	if g.overlay == nil || !g.overlay.WantCaptureKeyboard() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.runner.Session().Start(g.ctx)
		}
		for _, b := range bindings {
			if b.fires(inpututil.KeyPressDuration(b.key)) {
				g.pending = append(g.pending, b.input)
			}
		}
	}

	g.runner.Once(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x0b, 0x0b, 0x12, 0xff})

	cell := float64(g.view.cell)
	for c := range g.scene.Visible() {
		img := g.texture(c.Paint)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		x, y := g.view.Screen(c.Pos)
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(cell/float64(w), cell/float64(h))
		opts.GeoM.Translate(x, y)
		if c.Form == tetra.FormMarker {
			opts.ColorScale.ScaleAlpha(0.85)
		}
		screen.DrawImage(img, opts)
	}

	s := g.runner.Session()
	switch {
	case s.LoadErr() != nil:
		ebitenutil.DebugPrint(screen, fmt.Sprintf("load failed: %v\npress Enter to retry", s.LoadErr()))
	case s.State() == tetra.StateWaitingStart && !s.Loading():
		ebitenutil.DebugPrint(screen, "press Enter to start")
	case s.State() == tetra.StateEnd:
		ebitenutil.DebugPrint(screen, fmt.Sprintf("game over, %d lines", s.Counters().LinesCleared))
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.view.Size()
}

// texture returns the cached image for a paint. Textures that are not
// loaded fall back to their base color.
func (g *Game) texture(p tetra.Paint) *ebiten.Image {
	key := p.Key()
	if img, ok := g.textures.Get(key); ok {
		return img
	}

	var img *ebiten.Image
	switch p.Kind {
	case tetra.PaintTexture:
		src, ok := g.library.Image(p.Texture)
		if !ok {
			return g.fallback(p.Texture)
		}
		img = ebiten.NewImageFromImage(src)
	default:
		img = solid(asset.Solid(p.Color))
	}
	g.textures.Put(key, img)
	return img
}

// fallback is cached apart from loaded textures so the real image replaces
// it once loading finishes.
func (g *Game) fallback(id tetra.TextureID) *ebiten.Image {
	key := fallbackKey | uint64(id)
	if img, ok := g.textures.Get(key); ok {
		return img
	}
	g.logger.Debugf("texture %s not loaded, drawing solid", id)
	img := solid(asset.Color(id))
	g.textures.Put(key, img)
	return img
}

func solid(c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(c)
	return img
}
