package tetra

import (
	"fmt"
	"strings"
)

// ShapeKind identifies one of the seven tetrominoes.
type ShapeKind uint8

const (
	ShapeO ShapeKind = iota
	ShapeI
	ShapeS
	ShapeZ
	ShapeL
	ShapeJ
	ShapeT

	shapeCount
)

// Shapes lists every shape in catalog order.
var Shapes = [shapeCount]ShapeKind{ShapeO, ShapeI, ShapeS, ShapeZ, ShapeL, ShapeJ, ShapeT}

var shapeNames = [shapeCount]string{"O", "I", "S", "Z", "L", "J", "T"}

var shapeCells = [shapeCount][4]Vec{
	ShapeO: {{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	ShapeI: {{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	ShapeS: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	ShapeZ: {{0, 1}, {1, 1}, {1, 0}, {2, 0}},
	ShapeL: {{0, 2}, {0, 1}, {0, 0}, {1, 0}},
	ShapeJ: {{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	ShapeT: {{0, 1}, {1, 1}, {2, 1}, {1, 0}},
}

type pivot struct {
	at  Vec
	set bool
}

var shapePivots = [shapeCount]pivot{
	ShapeO: {},
	ShapeI: {Vec{0, 2}, true},
	ShapeS: {Vec{1, 1}, true},
	ShapeZ: {Vec{1, 1}, true},
	ShapeL: {Vec{0, 1}, true},
	ShapeJ: {Vec{1, 1}, true},
	ShapeT: {Vec{1, 1}, true},
}

// Cells returns the four cell offsets of the shape relative to its origin.
func Cells(kind ShapeKind) [4]Vec {
	return shapeCells[kind]
}

// Pivot returns the rotation pivot of the shape. The second result is false
// for shapes that never rotate.
func Pivot(kind ShapeKind) (Vec, bool) {
	p := shapePivots[kind]
	return p.at, p.set
}

func (k ShapeKind) String() string {
	if k >= shapeCount {
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
	return shapeNames[k]
}

// ParseShape resolves a single letter shape name, case insensitive.
func ParseShape(s string) (ShapeKind, error) {
	for i, name := range shapeNames {
		if strings.EqualFold(s, name) {
			return ShapeKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}
