package tetra

// Block is a single presentation-backed cell. Pieces own four of them while
// falling; a Board takes ownership when a piece locks.
type Block struct {
	renderer Renderer
	handle   Handle
	pos      Vec
	paint    Paint
	form     Form
	visible  bool
	attached bool
}

// NewBlock creates a block at pos in world coordinates and registers it with
// the renderer.
func NewBlock(r Renderer, pos Vec, paint Paint, form Form, visible bool) *Block {
	return &Block{
		renderer: r,
		handle:   r.AddCell(pos, paint, form, visible),
		pos:      pos,
		paint:    paint,
		form:     form,
		visible:  visible,
		attached: true,
	}
}

func (b *Block) Position() Vec  { return b.pos }
func (b *Block) Paint() Paint   { return b.paint }
func (b *Block) Form() Form     { return b.form }
func (b *Block) Visible() bool  { return b.visible }
func (b *Block) Handle() Handle { return b.handle }

// Attached reports whether the block still has a presentation cell.
func (b *Block) Attached() bool { return b.attached }

func (b *Block) SetVisibility(visible bool) {
	if !b.attached || b.visible == visible {
		b.visible = visible
		return
	}
	b.visible = visible
	b.renderer.SetVisible(b.handle, visible)
}

func (b *Block) SetPosition(pos Vec) {
	b.pos = pos
	if b.attached {
		b.renderer.SetPosition(b.handle, pos)
	}
}

func (b *Block) SetPaint(paint Paint) {
	b.paint = paint
	if b.attached {
		b.renderer.SetPaint(b.handle, paint)
	}
}

// Detach hides the block and removes its presentation cell. It is safe to
// call more than once.
func (b *Block) Detach() {
	if !b.attached {
		return
	}
	b.SetVisibility(false)
	b.renderer.Remove(b.handle)
	b.attached = false
}
