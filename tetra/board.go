package tetra

// Placement tells AddBlock and AddPiece which frame block positions are
// expressed in.
type Placement uint8

const (
	// Absolute positions are world coordinates; the board subtracts its
	// origin.
	Absolute Placement = iota
	// Relative positions are already local to the board; the block is moved
	// to world coordinates as a side effect.
	Relative
)

// Collision reports which sides of a cell (or of any cell of a piece) are
// blocked, and whether the cell itself overlaps something.
type Collision struct {
	Left, Bottom, Right, Top, Over bool
}

// Or merges two reports flag by flag.
func (c Collision) Or(o Collision) Collision {
	return Collision{
		Left:   c.Left || o.Left,
		Bottom: c.Bottom || o.Bottom,
		Right:  c.Right || o.Right,
		Top:    c.Top || o.Top,
		Over:   c.Over || o.Over,
	}
}

// Board is a fixed size occupancy grid with per-row counters.
//
// The grid is flat, indexed x*height+y. occupancy[y] always equals the
// number of non-nil cells in row y.
type Board struct {
	renderer  Renderer
	width     int
	height    int
	origin    Vec
	grid      []*Block
	occupancy []int

	spiral spiral
	decor  decor
}

// NewBoard creates an empty width x height board whose local (0,0) sits at
// origin in world coordinates.
func NewBoard(r Renderer, width, height int, origin Vec) *Board {
	b := &Board{
		renderer:  r,
		width:     width,
		height:    height,
		origin:    origin,
		grid:      make([]*Block, width*height),
		occupancy: make([]int, height),
	}
	b.ResetSpiral()
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Origin() Vec { return b.origin }

// Playable returns the grid rectangle in world coordinates.
func (b *Board) Playable() Box {
	return Box{Left: 0, Bottom: 0, Right: b.width - 1, Top: b.height - 1}.Translate(b.origin)
}

// Frame returns the ring surrounding the grid in world coordinates.
func (b *Board) Frame() Box {
	return Box{Left: -1, Bottom: -1, Right: b.width, Top: b.height}.Translate(b.origin)
}

// Local converts a world position to board coordinates.
func (b *Board) Local(world Vec) Vec {
	return world.Sub(b.origin)
}

func (b *Board) inBounds(p Vec) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

func (b *Board) index(p Vec) int {
	return p.X*b.height + p.Y
}

func (b *Board) occupied(p Vec) bool {
	return b.inBounds(p) && b.grid[b.index(p)] != nil
}

// At returns the block at a local position, or nil.
func (b *Board) At(p Vec) *Block {
	if !b.inBounds(p) {
		return nil
	}
	return b.grid[b.index(p)]
}

// Occupancy returns the number of filled cells in row y.
func (b *Board) Occupancy(y int) int {
	if y < 0 || y >= b.height {
		return 0
	}
	return b.occupancy[y]
}

// Filled returns the total number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.occupancy {
		n += c
	}
	return n
}

// AddBlock stores blk in the grid. Blocks landing outside the grid are
// detached and dropped.
func (b *Board) AddBlock(blk *Block, mode Placement) {
	local := blk.pos
	if mode == Absolute {
		local = b.Local(blk.pos)
	}
	if !b.inBounds(local) {
		blk.Detach()
		return
	}
	if mode == Relative {
		blk.SetPosition(local.Add(b.origin))
	}
	b.place(local, blk)
}

func (b *Board) place(local Vec, blk *Block) {
	i := b.index(local)
	switch prev := b.grid[i]; {
	case prev == nil:
		b.occupancy[local.Y]++
	case prev != blk:
		prev.Detach()
	}
	b.grid[i] = blk
}

// AddPiece clips the piece to the playable rectangle and hands its four
// blocks to the grid.
func (b *Board) AddPiece(p *Piece, mode Placement) {
	clip := Box{Left: 0, Bottom: 0, Right: b.width - 1, Top: b.height - 1}
	if mode == Absolute {
		clip = b.Playable()
	}
	p.SetClip(clip)
	for _, blk := range p.cells {
		b.AddBlock(blk, mode)
	}
}

// ClearBlock empties a local cell. Empty or out of range cells are ignored.
func (b *Board) ClearBlock(p Vec) {
	if !b.inBounds(p) {
		return
	}
	i := b.index(p)
	blk := b.grid[i]
	if blk == nil {
		return
	}
	blk.Detach()
	b.grid[i] = nil
	b.occupancy[p.Y]--
}

// CollisionBlock inspects a local position. Each directional flag is set
// when the neighbouring in-bounds cell is occupied; Over is set when the
// cell itself is. With border set, the grid edges act as walls: touching an
// edge raises that side and any position left of, right of or below the
// grid overlaps. The space above the top row stays open so pieces can spawn
// there.
func (b *Board) CollisionBlock(p Vec, border bool) Collision {
	c := Collision{
		Left:   b.occupied(Vec{p.X - 1, p.Y}),
		Bottom: b.occupied(Vec{p.X, p.Y - 1}),
		Right:  b.occupied(Vec{p.X + 1, p.Y}),
		Top:    b.occupied(Vec{p.X, p.Y + 1}),
		Over:   b.occupied(p),
	}
	if border {
		c.Left = c.Left || p.X <= 0
		c.Bottom = c.Bottom || p.Y <= 0
		c.Right = c.Right || p.X >= b.width-1
		c.Top = c.Top || p.Y >= b.height-1
		c.Over = c.Over || p.X < 0 || p.X >= b.width || p.Y < 0
	}
	return c
}

// CollisionPiece ORs CollisionBlock over the piece's cells.
func (b *Board) CollisionPiece(p *Piece, border bool) Collision {
	var c Collision
	for _, blk := range p.cells {
		c = c.Or(b.CollisionBlock(b.Local(blk.pos), border))
	}
	return c
}

// FullLines returns the indices of complete rows, bottom first.
func (b *Board) FullLines() []int {
	var lines []int
	for y, n := range b.occupancy {
		if n == b.width {
			lines = append(lines, y)
		}
	}
	return lines
}

// ClearLine empties row y.
func (b *Board) ClearLine(y int) {
	for x := 0; x < b.width; x++ {
		b.ClearBlock(Vec{x, y})
	}
}

// MoveLine moves every block of row y to row y+steps, overwriting the
// destination row. Rows outside the grid make it a no-op.
func (b *Board) MoveLine(y, steps int) {
	dy := y + steps
	if y < 0 || y >= b.height || dy < 0 || dy >= b.height || steps == 0 {
		return
	}
	for x := 0; x < b.width; x++ {
		dst := Vec{x, dy}
		b.ClearBlock(dst)
		src := b.grid[b.index(Vec{x, y})]
		if src == nil {
			continue
		}
		b.place(dst, NewBlock(b.renderer, dst.Add(b.origin), src.paint, src.form, src.visible))
		b.ClearBlock(Vec{x, y})
	}
}

// BlockOnTop reports whether anything occupies the top row.
func (b *Board) BlockOnTop() bool {
	return b.occupancy[b.height-1] > 0
}

// Clear empties the whole grid.
func (b *Board) Clear() {
	for y := 0; y < b.height; y++ {
		b.ClearLine(y)
	}
}
