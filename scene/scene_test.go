package scene_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetra/scene"
	"github.com/plus3/tetra/tetra"
)

var red = tetra.TexturePaint(tetra.TextureRed)

func TestAddAndGet(t *testing.T) {
	s := scene.New()

	h := s.AddCell(tetra.V(2, 3), red, tetra.FormBlock, true)
	cell, ok := s.Get(h)
	require.True(t, ok)
	assert.Equal(t, h, cell.Handle)
	assert.Equal(t, tetra.V(2, 3), cell.Pos)
	assert.Equal(t, red, cell.Paint)
	assert.Equal(t, tetra.FormBlock, cell.Form)
	assert.True(t, cell.Visible)
	assert.Equal(t, 1, s.Len())
}

func TestHandlesAreDistinctAcrossLayers(t *testing.T) {
	s := scene.New()
	a := s.AddCell(tetra.V(0, 0), red, tetra.FormBackdrop, true)
	b := s.AddCell(tetra.V(0, 0), red, tetra.FormBlock, true)
	assert.NotEqual(t, a, b)
}

func TestMutations(t *testing.T) {
	s := scene.New()
	h := s.AddCell(tetra.V(0, 0), red, tetra.FormBlock, false)

	s.SetVisible(h, true)
	s.SetPosition(h, tetra.V(4, 5))
	s.SetPaint(h, tetra.SolidPaint(0xffffff))

	cell, ok := s.Get(h)
	require.True(t, ok)
	assert.True(t, cell.Visible)
	assert.Equal(t, tetra.V(4, 5), cell.Pos)
	assert.Equal(t, tetra.SolidPaint(0xffffff), cell.Paint)

	assert.Empty(t, s.At(tetra.V(0, 0)))
	require.Len(t, s.At(tetra.V(4, 5)), 1)
}

func TestRemoveAndStaleHandles(t *testing.T) {
	s := scene.New()
	h := s.AddCell(tetra.V(1, 1), red, tetra.FormBlock, true)
	s.Remove(h)

	_, ok := s.Get(h)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.At(tetra.V(1, 1)))

	// Operations on a removed handle are ignored, even once its slot is reused.
	reused := s.AddCell(tetra.V(7, 7), red, tetra.FormBlock, true)
	s.SetPosition(h, tetra.V(0, 0))
	s.SetVisible(h, false)
	s.Remove(h)

	cell, ok := s.Get(reused)
	require.True(t, ok)
	assert.Equal(t, tetra.V(7, 7), cell.Pos)
	assert.True(t, cell.Visible)
	assert.Equal(t, 1, s.Len())
}

func TestUnknownHandleIsNoop(t *testing.T) {
	s := scene.New()
	assert.NotPanics(t, func() {
		s.SetVisible(tetra.Handle(0xFFFF_0000_0000_0001), true)
		s.SetPosition(tetra.Handle(42), tetra.V(1, 1))
		s.SetPaint(tetra.Handle(42), red)
		s.Remove(tetra.Handle(42))
	})
	assert.Equal(t, 0, s.Len())
}

func TestVisibleIsLayerOrdered(t *testing.T) {
	s := scene.New()
	s.AddCell(tetra.V(0, 0), red, tetra.FormMarker, true)
	s.AddCell(tetra.V(0, 0), red, tetra.FormBlock, true)
	s.AddCell(tetra.V(0, 0), red, tetra.FormBackdrop, true)
	s.AddCell(tetra.V(1, 0), red, tetra.FormFrame, false)

	var forms []tetra.Form
	for cell := range s.Visible() {
		forms = append(forms, cell.Form)
	}
	assert.Equal(t, []tetra.Form{tetra.FormBackdrop, tetra.FormBlock, tetra.FormMarker}, forms)

	var all []tetra.Form
	for cell := range s.All() {
		all = append(all, cell.Form)
	}
	assert.True(t, slices.IsSorted(all))
	assert.Len(t, all, 4)
}

func TestAtStacksLayers(t *testing.T) {
	s := scene.New()
	s.AddCell(tetra.V(3, 3), red, tetra.FormMarker, true)
	s.AddCell(tetra.V(3, 3), red, tetra.FormBackdrop, true)

	cells := s.At(tetra.V(3, 3))
	require.Len(t, cells, 2)
	assert.Equal(t, tetra.FormBackdrop, cells[0].Form)
	assert.Equal(t, tetra.FormMarker, cells[1].Form)
}

func TestNegativePositions(t *testing.T) {
	s := scene.New()
	a := s.AddCell(tetra.V(-1, 0), red, tetra.FormFrame, true)
	b := s.AddCell(tetra.V(0, -1), red, tetra.FormFrame, true)

	at := s.At(tetra.V(-1, 0))
	require.Len(t, at, 1)
	assert.Equal(t, a, at[0].Handle)
	at = s.At(tetra.V(0, -1))
	require.Len(t, at, 1)
	assert.Equal(t, b, at[0].Handle)
}

func TestStats(t *testing.T) {
	s := scene.New()
	s.AddCell(tetra.V(0, 0), red, tetra.FormBackdrop, true)
	s.AddCell(tetra.V(1, 0), red, tetra.FormBackdrop, true)
	h := s.AddCell(tetra.V(1, 0), red, tetra.FormBlock, false)
	s.AddCell(tetra.V(2, 0), red, tetra.FormBlock, true)
	s.Remove(h)

	stats := s.Stats()
	assert.Equal(t, 3, stats.Cells)
	assert.Equal(t, 3, stats.Visible)
	assert.Equal(t, 3, stats.Indexed)
	assert.Equal(t, 2, stats.Layers[tetra.FormBackdrop].Cells)
	assert.Equal(t, 1, stats.Layers[tetra.FormBlock].Cells)
	assert.Equal(t, 2, stats.Layers[tetra.FormBlock].Slots)
}

func TestVersionAndReset(t *testing.T) {
	s := scene.New()
	v0 := s.Version()
	s.AddCell(tetra.V(0, 0), red, tetra.FormBlock, true)
	assert.Greater(t, s.Version(), v0)

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Stats().Visible)
	assert.Empty(t, s.At(tetra.V(0, 0)))
}

func TestResetInvalidatesHandles(t *testing.T) {
	s := scene.New()
	old := s.AddCell(tetra.V(1, 1), red, tetra.FormBlock, true)
	s.Reset()

	fresh := s.AddCell(tetra.V(2, 2), red, tetra.FormBlock, true)
	s.SetPosition(old, tetra.V(5, 5))
	s.Remove(old)

	_, ok := s.Get(old)
	assert.False(t, ok)
	cell, ok := s.Get(fresh)
	require.True(t, ok)
	assert.Equal(t, tetra.V(2, 2), cell.Pos)
	assert.Equal(t, 1, s.Len())
	assert.Len(t, s.At(tetra.V(2, 2)), 1)
}

func TestSessionDrivesScene(t *testing.T) {
	s := scene.New()
	cfg := tetra.DefaultConfig()
	session, err := tetra.NewSession(cfg, tetra.Options{Renderer: s})
	require.NoError(t, err)
	require.NotNil(t, session)

	w, h := cfg.BoardWidth, cfg.BoardHeight
	pw, ph := cfg.PreviewWidth, cfg.PreviewHeight
	frames := 2*(w+2) + 2*h + 2*(pw+2) + 2*ph
	assert.Equal(t, frames, s.Stats().Layers[tetra.FormFrame].Cells)
	assert.Equal(t, w*h+pw*ph, s.Stats().Layers[tetra.FormBackdrop].Cells)
}
