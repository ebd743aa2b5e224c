package frontend

import "github.com/plus3/tetra/tetra"

// viewport maps world cells, y up, to screen pixels, y down.
type viewport struct {
	bounds tetra.Box
	cell   int
}

func newViewport(cell int, boxes ...tetra.Box) viewport {
	b := boxes[0]
	for _, o := range boxes[1:] {
		b.Left = min(b.Left, o.Left)
		b.Bottom = min(b.Bottom, o.Bottom)
		b.Right = max(b.Right, o.Right)
		b.Top = max(b.Top, o.Top)
	}
	return viewport{bounds: b, cell: cell}
}

// Size is the logical screen size in pixels.
func (v viewport) Size() (int, int) {
	return (v.bounds.Right - v.bounds.Left + 1) * v.cell, (v.bounds.Top - v.bounds.Bottom + 1) * v.cell
}

// Screen returns the top left pixel of a world cell.
func (v viewport) Screen(p tetra.Vec) (float64, float64) {
	return float64((p.X - v.bounds.Left) * v.cell), float64((v.bounds.Top - p.Y) * v.cell)
}
