package tetra

// decor holds the presentation-only cells around and behind a board.
type decor struct {
	frame    []Handle
	backdrop []Handle
	framePt  Paint
	backPt   Paint
}

// Decorate creates the frame ring and the backdrop tiles. Calling it again
// replaces the previous decoration.
func (b *Board) Decorate(frame, backdrop Paint) {
	b.Undecorate()
	b.decor.framePt = frame
	b.decor.backPt = backdrop

	f := b.Frame()
	for x := f.Left; x <= f.Right; x++ {
		for y := f.Bottom; y <= f.Top; y++ {
			p := Vec{x, y}
			if f.Contains(p) {
				continue
			}
			b.decor.frame = append(b.decor.frame, b.renderer.AddCell(p, frame, FormFrame, true))
		}
	}
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			p := Vec{x, y}.Add(b.origin)
			b.decor.backdrop = append(b.decor.backdrop, b.renderer.AddCell(p, backdrop, FormBackdrop, true))
		}
	}
}

// Undecorate removes all decoration cells.
func (b *Board) Undecorate() {
	for _, h := range b.decor.frame {
		b.renderer.Remove(h)
	}
	for _, h := range b.decor.backdrop {
		b.renderer.Remove(h)
	}
	b.decor = decor{}
}

func (b *Board) FramePaint() Paint    { return b.decor.framePt }
func (b *Board) BackdropPaint() Paint { return b.decor.backPt }

// SetFramePaint recolors the frame ring.
func (b *Board) SetFramePaint(p Paint) {
	b.decor.framePt = p
	for _, h := range b.decor.frame {
		b.renderer.SetPaint(h, p)
	}
}

// SetBackdrop recolors the backdrop tiles.
func (b *Board) SetBackdrop(p Paint) {
	b.decor.backPt = p
	for _, h := range b.decor.backdrop {
		b.renderer.SetPaint(h, p)
	}
}
