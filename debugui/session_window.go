package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetra/tetra"
)

// SessionWindow shows the state machine and its counters.
type SessionWindow struct {
	Session *tetra.Session
}

func (w *SessionWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 230), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := w.Session
	imgui.TextColored(stateColor(s.State()), s.State().String())
	if err := s.LoadErr(); err != nil {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), fmt.Sprintf("load: %v", err))
	} else if s.Loading() {
		imgui.Text("loading textures...")
	}
	imgui.Separator()

	c := s.Counters()
	imgui.Text(fmt.Sprintf("Ticks: %d", c.Ticks))
	imgui.Text(fmt.Sprintf("Pieces locked: %d", c.PiecesLocked))
	imgui.Text(fmt.Sprintf("Lines cleared: %d", c.LinesCleared))
	imgui.Text(fmt.Sprintf("Transitions: %d", c.Transitions))
	imgui.Separator()

	imgui.Text("Current: " + describePiece(s.Current()))
	imgui.Text("Next: " + describePiece(s.Next()))

	switch s.State() {
	case tetra.StateMarkingLines:
		imgui.Text(fmt.Sprintf("Lines %v, blink %d/%d", s.PendingLines(), s.Blinks(), s.Config().BlinkToggles))
	case tetra.StateEndSpiral:
		imgui.Text(fmt.Sprintf("Spiral pass %d, step %d", s.SpiralPass(), s.Board().SpiralSteps()))
	}

	imgui.End()
}

func describePiece(p *tetra.Piece) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%s %s at %s", p.Shape(), p.Paint().Texture, p.Origin())
}

func stateColor(s tetra.State) imgui.Vec4 {
	switch s {
	case tetra.StatePlaying:
		return imgui.NewVec4(0.3, 1.0, 0.3, 1.0)
	case tetra.StateMarkingLines, tetra.StateDeletingLines:
		return imgui.NewVec4(1.0, 0.8, 0.0, 1.0)
	case tetra.StateEndSpiral, tetra.StateEnd:
		return imgui.NewVec4(1.0, 0.3, 0.3, 1.0)
	default:
		return imgui.NewVec4(0.8, 0.8, 0.8, 1.0)
	}
}
