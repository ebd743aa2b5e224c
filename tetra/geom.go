package tetra

import "fmt"

// Vec is an integer cell position or displacement.
type Vec struct {
	X, Y int
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Box is an axis aligned rectangle with inclusive integer bounds.
type Box struct {
	Left, Bottom, Right, Top int
}

// NewBox returns a box spanning the two corners in any order.
func NewBox(left, bottom, right, top int) Box {
	if left > right {
		left, right = right, left
	}
	if bottom > top {
		bottom, top = top, bottom
	}
	return Box{Left: left, Bottom: bottom, Right: right, Top: top}
}

// Covers reports whether p lies inside the box or on its border.
func (b Box) Covers(p Vec) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Bottom && p.Y <= b.Top
}

// Contains reports whether p lies strictly inside the box.
func (b Box) Contains(p Vec) bool {
	return p.X > b.Left && p.X < b.Right && p.Y > b.Bottom && p.Y < b.Top
}

// Translate returns the box shifted by d.
func (b Box) Translate(d Vec) Box {
	return Box{Left: b.Left + d.X, Bottom: b.Bottom + d.Y, Right: b.Right + d.X, Top: b.Top + d.Y}
}
