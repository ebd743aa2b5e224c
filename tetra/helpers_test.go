package tetra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plus3/tetra/scene"
	"github.com/plus3/tetra/tetra"
)

var (
	red    = tetra.TexturePaint(tetra.TextureRed)
	blue   = tetra.TexturePaint(tetra.TextureBlue)
	yellow = tetra.TexturePaint(tetra.TextureYellow)
)

type cueCall struct {
	op string
	id tetra.CueID
}

type fakeAudio struct {
	calls   []cueCall
	playing [tetra.CueCount]bool
}

func (a *fakeAudio) Play(id tetra.CueID) {
	a.calls = append(a.calls, cueCall{"play", id})
	a.playing[id] = true
}

func (a *fakeAudio) Stop(id tetra.CueID) {
	a.calls = append(a.calls, cueCall{"stop", id})
	a.playing[id] = false
}

func (a *fakeAudio) IsPlaying(id tetra.CueID) bool { return a.playing[id] }

func (a *fakeAudio) played(id tetra.CueID) int {
	n := 0
	for _, c := range a.calls {
		if c.op == "play" && c.id == id {
			n++
		}
	}
	return n
}

// fakeLoader resolves every barrier with err.
type fakeLoader struct {
	err   error
	calls int
}

func (l *fakeLoader) LoadAll(context.Context, []tetra.TextureID) <-chan error {
	l.calls++
	ch := make(chan error, 1)
	ch <- l.err
	return ch
}

// stuckLoader never resolves.
type stuckLoader struct{}

func (stuckLoader) LoadAll(context.Context, []tetra.TextureID) <-chan error {
	return make(chan error)
}

type fixture struct {
	session *tetra.Session
	scene   *scene.Scene
	audio   *fakeAudio
}

func newFixture(t *testing.T, cfg tetra.Config, deals ...tetra.Deal) *fixture {
	t.Helper()
	f := &fixture{scene: scene.New(), audio: &fakeAudio{}}
	s, err := tetra.NewSession(cfg, tetra.Options{
		Renderer: f.scene,
		Audio:    f.audio,
		Dealer:   tetra.NewSequenceDealer(deals...),
	})
	require.NoError(t, err)
	f.session = s
	return f
}

// start resolves the asset barrier and enters StatePlaying.
func (f *fixture) start(t *testing.T) {
	t.Helper()
	f.session.Start(context.Background())
	f.session.Tick(0)
	require.Equal(t, tetra.StatePlaying, f.session.State())
}

// drop pushes the current piece down until it locks.
func (f *fixture) drop(t *testing.T) {
	t.Helper()
	for i := 0; f.session.State() == tetra.StatePlaying; i++ {
		require.Less(t, i, 1000, "piece never locked")
		f.session.OnInput(tetra.InputDown)
	}
}

// boardCells counts the non-empty cells of b by walking the grid.
func boardCells(b *tetra.Board) int {
	n := 0
	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			if b.At(tetra.V(x, y)) != nil {
				n++
			}
		}
	}
	return n
}

func rowSum(b *tetra.Board) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		n += b.Occupancy(y)
	}
	return n
}

func put(b *tetra.Board, r tetra.Renderer, paint tetra.Paint, cells ...tetra.Vec) {
	for _, c := range cells {
		b.AddBlock(tetra.NewBlock(r, c, paint, tetra.FormBlock, true), tetra.Relative)
	}
}

func fillRow(b *tetra.Board, r tetra.Renderer, y int) {
	for x := 0; x < b.Width(); x++ {
		put(b, r, red, tetra.V(x, y))
	}
}
