package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetra/tetra"
)

// binding maps a key to a game input. Keys with a repeat interval fire
// again while held, after delay ticks.
type binding struct {
	key      ebiten.Key
	input    tetra.Input
	delay    int
	interval int
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, tetra.InputLeft, 10, 3},
	{ebiten.KeyArrowRight, tetra.InputRight, 10, 3},
	{ebiten.KeyArrowDown, tetra.InputDown, 0, 3},
	{ebiten.KeyArrowUp, tetra.InputRotate, 0, 0},
	{ebiten.KeyX, tetra.InputRotate, 0, 0},
	{ebiten.KeyZ, tetra.InputRotateBack, 0, 0},
}

// fires reports whether a key held for d ticks triggers on this tick.
func (b binding) fires(d int) bool {
	if d <= 0 {
		return false
	}
	if d == 1 {
		return true
	}
	if b.interval <= 0 || d < b.delay {
		return false
	}
	return (d-b.delay)%b.interval == 0
}
