package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetra/tetra"
)

// BoardWindow prints the grid and plots how full each row is.
type BoardWindow struct {
	Session *tetra.Session
}

func (w *BoardWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 250), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 420), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	b := w.Session.Board()
	imgui.Text(fmt.Sprintf("%dx%d, %d filled", b.Width(), b.Height(), b.Filled()))
	imgui.Separator()

	for i, row := range BoardRows(b, w.Session.Current()) {
		y := b.Height() - 1 - i
		imgui.Text(fmt.Sprintf("%2d %s", y, row))

		imgui.SameLine()
		drawList := imgui.WindowDrawList()
		pos := imgui.CursorScreenPos()
		barWidth := float32(b.Occupancy(y)) / float32(b.Width()) * 60.0
		color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
		if b.Occupancy(y) == b.Width() {
			color = imgui.ColorU32Vec4(imgui.NewVec4(0.9, 0.7, 0.1, 0.8))
		}
		drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
		imgui.Text("")
	}

	imgui.End()
}

// BoardRows renders the grid top row first: '#' for locked blocks, '@'
// for cells of the falling piece and '.' for empty cells.
func BoardRows(b *tetra.Board, current *tetra.Piece) []string {
	falling := map[tetra.Vec]bool{}
	if current != nil {
		for _, p := range current.Cells() {
			falling[b.Local(p)] = true
		}
	}

	rows := make([]string, 0, b.Height())
	var sb strings.Builder
	for y := b.Height() - 1; y >= 0; y-- {
		sb.Reset()
		for x := 0; x < b.Width(); x++ {
			p := tetra.V(x, y)
			switch {
			case b.At(p) != nil:
				sb.WriteByte('#')
			case falling[p]:
				sb.WriteByte('@')
			default:
				sb.WriteByte('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}
