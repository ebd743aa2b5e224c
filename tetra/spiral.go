package tetra

type heading uint8

const (
	headRight heading = iota
	headUp
	headLeft
	headDown
)

// spiral walks every cell of a board exactly once, starting at the bottom
// left corner, going right along the bottom edge and winding inward
// counter-clockwise. The frame shrinks on every side each time the walker
// turns down the left edge.
type spiral struct {
	pos   Vec
	head  heading
	frame Box
	steps int
	total int
}

func (s *spiral) reset(width, height int) {
	*s = spiral{
		head:  headRight,
		frame: Box{Left: 0, Bottom: 0, Right: width - 1, Top: height - 1},
		total: width * height,
	}
}

func (s *spiral) done() bool {
	return s.steps >= s.total
}

func (s *spiral) advance() {
	s.steps++
	f := &s.frame
	switch s.head {
	case headRight:
		if s.pos.X < f.Right {
			s.pos.X++
		} else {
			s.head = headUp
			s.pos.Y++
		}
	case headUp:
		if s.pos.Y < f.Top {
			s.pos.Y++
		} else {
			s.head = headLeft
			s.pos.X--
		}
	case headLeft:
		if s.pos.X > f.Left {
			s.pos.X--
		} else {
			s.head = headDown
			f.Left++
			f.Bottom++
			f.Right--
			f.Top--
			s.pos.Y--
		}
	case headDown:
		if s.pos.Y > f.Bottom {
			s.pos.Y--
		} else {
			s.head = headRight
			s.pos.X++
		}
	}
}

// SpiralMark clears the next spiral cell and fills it with a marker block.
// It returns false once the whole board has been visited.
func (b *Board) SpiralMark(paint Paint) bool {
	return b.nextSpiral(true, paint)
}

// SpiralClear clears the next spiral cell without marking it.
func (b *Board) SpiralClear() bool {
	return b.nextSpiral(false, Paint{})
}

func (b *Board) nextSpiral(mark bool, paint Paint) bool {
	if b.spiral.done() {
		return false
	}
	at := b.spiral.pos
	b.ClearBlock(at)
	if mark {
		b.AddBlock(NewBlock(b.renderer, at, paint, FormMarker, true), Relative)
	}
	b.spiral.advance()
	return true
}

// SpiralDone reports whether the traversal visited every cell.
func (b *Board) SpiralDone() bool {
	return b.spiral.done()
}

// SpiralSteps returns how many cells the traversal has visited.
func (b *Board) SpiralSteps() int {
	return b.spiral.steps
}

// SpiralPosition returns the local cell the next step will visit.
func (b *Board) SpiralPosition() Vec {
	return b.spiral.pos
}

// ResetSpiral restarts the traversal from the bottom left corner.
func (b *Board) ResetSpiral() {
	b.spiral.reset(b.width, b.height)
}
