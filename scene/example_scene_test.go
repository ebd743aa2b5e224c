package scene_test

import (
	"fmt"

	"github.com/plus3/tetra/scene"
	"github.com/plus3/tetra/tetra"
)

func ExampleScene() {
	s := scene.New()

	piece := tetra.NewPiece(s, tetra.V(4, 10), tetra.ShapeO, tetra.TexturePaint(tetra.TextureYellow), tetra.NewBox(0, 0, 9, 19), true)
	piece.Move(tetra.V(0, -1))

	for cell := range s.Visible() {
		fmt.Println(cell.Pos, cell.Form)
	}
	// Output:
	// (4,9) block
	// (5,9) block
	// (5,10) block
	// (4,10) block
}
