package main

import (
	"github.com/plus3/tetra/scene"
	"github.com/plus3/tetra/tetra"
)

// Bot plays a session through OnInput. For every new piece it picks the
// rotation and column that complete the most lines and leave the fewest
// holes, then issues one input per tick.
type Bot struct {
	scratch   *scene.Scene
	piece     *tetra.Piece
	rotations int
	shift     int
}

func NewBot() *Bot {
	return &Bot{scratch: scene.New()}
}

// Act is meant for tetra.Runner.Before.
func (b *Bot) Act(s *tetra.Session) {
	if s.State() != tetra.StatePlaying {
		return
	}
	if cur := s.Current(); cur != b.piece {
		b.piece = cur
		b.plan(s.Board(), cur)
	}

	switch {
	case b.rotations > 0:
		if !s.OnInput(tetra.InputRotate) {
			b.rotations = 0
			return
		}
		b.rotations--
	case b.shift < 0:
		if !s.OnInput(tetra.InputLeft) {
			b.shift = 0
			return
		}
		b.shift++
	case b.shift > 0:
		if !s.OnInput(tetra.InputRight) {
			b.shift = 0
			return
		}
		b.shift--
	default:
		s.OnInput(tetra.InputDown)
	}
}

func (b *Bot) plan(board *tetra.Board, cur *tetra.Piece) {
	ghost := tetra.NewPiece(b.scratch, cur.Origin(), cur.Shape(), cur.Paint(), board.Playable(), false)
	defer ghost.Remove()

	found := false
	best := 0
	for r := 0; r < 4; r++ {
		if r > 0 {
			ghost.Rotate(tetra.Clockwise)
		}
		cells := ghost.Cells()
		for dx := -board.Width(); dx <= board.Width(); dx++ {
			score, ok := evaluate(board, cells, dx)
			if ok && (!found || score > best) {
				found, best = true, score
				b.rotations, b.shift = r, dx
			}
		}
	}
	if !found {
		b.rotations, b.shift = 0, 0
	}
}

// evaluate drops cells shifted by dx straight down and scores where they
// land. ok is false when the shifted cells leave the board sideways or
// start inside a block.
func evaluate(board *tetra.Board, cells [4]tetra.Vec, dx int) (score int, ok bool) {
	var local [4]tetra.Vec
	for i, c := range cells {
		p := board.Local(c).Add(tetra.V(dx, 0))
		if p.X < 0 || p.X >= board.Width() {
			return 0, false
		}
		local[i] = p
	}

	fits := func(drop int) bool {
		for _, p := range local {
			y := p.Y - drop
			if y < 0 {
				return false
			}
			if y < board.Height() && board.At(tetra.V(p.X, y)) != nil {
				return false
			}
		}
		return true
	}
	if !fits(0) {
		return 0, false
	}
	drop := 0
	for fits(drop + 1) {
		drop++
	}

	landed := map[tetra.Vec]bool{}
	rows := map[int]int{}
	top := 0
	for _, p := range local {
		q := tetra.V(p.X, p.Y-drop)
		landed[q] = true
		rows[q.Y]++
		top = max(top, q.Y)
	}

	lines := 0
	for y, n := range rows {
		if y < board.Height() && board.Occupancy(y)+n == board.Width() {
			lines++
		}
	}
	holes := 0
	for q := range landed {
		below := tetra.V(q.X, q.Y-1)
		if below.Y >= 0 && !landed[below] && board.At(below) == nil {
			holes++
		}
	}

	score = lines*100 - holes*40 - top*5
	if top >= board.Height() {
		score -= 10000
	}
	return score, true
}
