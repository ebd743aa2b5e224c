package tetra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetra/scene"
	"github.com/plus3/tetra/tetra"
)

var playfield = tetra.NewBox(0, 0, 9, 19)

func offsets(origin tetra.Vec, cells ...tetra.Vec) []tetra.Vec {
	out := make([]tetra.Vec, len(cells))
	for i, c := range cells {
		out[i] = c.Add(origin)
	}
	return out
}

func TestNewPiece(t *testing.T) {
	sc := scene.New()
	origin := tetra.V(3, 5)
	p := tetra.NewPiece(sc, origin, tetra.ShapeL, red, playfield, true)

	cells := tetra.Cells(tetra.ShapeL)
	assert.ElementsMatch(t, offsets(origin, cells[:]...), p.Cells())
	assert.Equal(t, origin, p.Origin())
	assert.Equal(t, tetra.ShapeL, p.Shape())
	assert.Equal(t, 4, sc.Stats().Layers[tetra.FormBlock].Visible)
}

func TestRotateClockwise(t *testing.T) {
	p := tetra.NewPiece(scene.New(), tetra.V(4, 4), tetra.ShapeT, red, playfield, true)
	p.Rotate(tetra.Clockwise)

	assert.ElementsMatch(t, offsets(tetra.V(4, 4),
		tetra.V(1, 2), tetra.V(1, 1), tetra.V(1, 0), tetra.V(0, 1),
	), p.Cells())
}

func TestRotateRoundTrip(t *testing.T) {
	for _, kind := range tetra.Shapes {
		t.Run(kind.String(), func(t *testing.T) {
			p := tetra.NewPiece(scene.New(), tetra.V(4, 4), kind, red, playfield, true)
			before := p.Cells()

			p.Rotate(tetra.Clockwise)
			p.Rotate(tetra.CounterClockwise)
			assert.Equal(t, before, p.Cells())

			for range 4 {
				p.Rotate(tetra.Clockwise)
			}
			assert.Equal(t, before, p.Cells())
		})
	}
}

func TestRotateO(t *testing.T) {
	p := tetra.NewPiece(scene.New(), tetra.V(4, 4), tetra.ShapeO, red, playfield, true)
	before := p.Cells()
	p.Rotate(tetra.Clockwise)
	assert.Equal(t, before, p.Cells())
}

func TestMoveKeepsOrigin(t *testing.T) {
	p := tetra.NewPiece(scene.New(), tetra.V(4, 4), tetra.ShapeS, red, playfield, true)
	p.Move(tetra.V(-1, -2))
	assert.Equal(t, tetra.V(3, 2), p.Origin())

	cells := tetra.Cells(tetra.ShapeS)
	assert.ElementsMatch(t, offsets(tetra.V(3, 2), cells[:]...), p.Cells())

	p.SetOrigin(tetra.V(0, 0))
	assert.ElementsMatch(t, offsets(tetra.V(0, 0), cells[:]...), p.Cells())
}

func TestClipHidesCellsAboveBoard(t *testing.T) {
	sc := scene.New()
	p := tetra.NewPiece(sc, tetra.V(3, 19), tetra.ShapeO, red, playfield, true)

	for _, b := range p.Blocks() {
		cell, ok := sc.Get(b.Handle())
		require.True(t, ok)
		assert.Equal(t, b.Position().Y <= 19, cell.Visible, b.Position().String())
	}

	p.Move(tetra.V(0, -1))
	assert.Equal(t, 4, sc.Stats().Visible)

	p.SetVisibility(false)
	assert.Equal(t, 0, sc.Stats().Visible)
}

func TestRemovePiece(t *testing.T) {
	sc := scene.New()
	p := tetra.NewPiece(sc, tetra.V(3, 3), tetra.ShapeJ, red, playfield, true)
	p.Remove()
	assert.Equal(t, 0, sc.Len())
	for _, b := range p.Blocks() {
		assert.False(t, b.Attached())
	}
}
