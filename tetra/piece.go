package tetra

// Rotation directions accepted by Piece.Rotate.
const (
	Clockwise        = 0
	CounterClockwise = 1
)

// Piece is a live tetromino. Its cells are kept in world coordinates and
// are only shown where the clip box covers them.
type Piece struct {
	renderer Renderer
	origin   Vec
	shape    ShapeKind
	pivot    Vec
	rotates  bool
	paint    Paint
	form     Form
	clip     Box
	visible  bool
	cells    [4]*Block
}

// NewPiece builds a piece of the given shape at origin, with the catalog
// pivot, clipped to clip.
func NewPiece(r Renderer, origin Vec, shape ShapeKind, paint Paint, clip Box, visible bool) *Piece {
	p := &Piece{
		renderer: r,
		origin:   origin,
		shape:    shape,
		paint:    paint,
		form:     FormBlock,
		clip:     clip,
		visible:  visible,
	}
	p.pivot, p.rotates = Pivot(shape)
	for i, off := range Cells(shape) {
		pos := off.Add(origin)
		p.cells[i] = NewBlock(r, pos, paint, p.form, visible && clip.Covers(pos))
	}
	return p
}

func (p *Piece) Origin() Vec      { return p.origin }
func (p *Piece) Shape() ShapeKind { return p.shape }
func (p *Piece) Paint() Paint     { return p.paint }
func (p *Piece) Clip() Box        { return p.clip }
func (p *Piece) Visible() bool    { return p.visible }

// Cells returns the world positions of the four cells.
func (p *Piece) Cells() [4]Vec {
	var out [4]Vec
	for i, b := range p.cells {
		out[i] = b.pos
	}
	return out
}

// Blocks exposes the backing blocks so a Board can take them over.
func (p *Piece) Blocks() [4]*Block {
	return p.cells
}

// Rotate turns the piece a quarter around its pivot. direction is
// Clockwise or CounterClockwise; pieces without a pivot ignore the call.
func (p *Piece) Rotate(direction int) {
	if !p.rotates {
		return
	}
	mx, my := -1, 1
	if direction == CounterClockwise {
		mx, my = 1, -1
	}
	for _, b := range p.cells {
		rel := b.pos.Sub(p.origin)
		next := Vec{
			X: my*(rel.Y-p.pivot.Y) + p.pivot.X,
			Y: mx*(rel.X-p.pivot.X) + p.pivot.Y,
		}
		b.SetPosition(next.Add(p.origin))
	}
	p.SetVisibility(p.visible)
}

// Move translates the origin and every cell by d.
func (p *Piece) Move(d Vec) {
	p.origin = p.origin.Add(d)
	for _, b := range p.cells {
		b.SetPosition(b.pos.Add(d))
	}
	p.SetVisibility(p.visible)
}

// SetOrigin moves the piece so its origin lands on o.
func (p *Piece) SetOrigin(o Vec) {
	p.Move(o.Sub(p.origin))
}

// SetClip replaces the clip box and reapplies visibility.
func (p *Piece) SetClip(clip Box) {
	p.clip = clip
	p.SetVisibility(p.visible)
}

// SetVisibility shows the cells covered by the clip box when visible is
// true and hides all of them otherwise.
func (p *Piece) SetVisibility(visible bool) {
	p.visible = visible
	for _, b := range p.cells {
		b.SetVisibility(visible && p.clip.Covers(b.pos))
	}
}

// Remove hides and detaches all cells. The piece must not be used after.
func (p *Piece) Remove() {
	p.SetVisibility(false)
	for _, b := range p.cells {
		b.Detach()
	}
}
