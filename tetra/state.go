package tetra

import "fmt"

// State is a phase of the session state machine.
type State uint8

const (
	StateWaitingStart State = iota
	StatePlaying
	StateMarkingLines
	StateDeletingLines
	StateTestGameOver
	StateEndSpiral
	StateEnd

	StateCount
)

var stateNames = [StateCount]string{
	"waiting_start",
	"playing",
	"marking_lines",
	"deleting_lines",
	"test_game_over",
	"end_spiral",
	"end",
}

func (s State) String() string {
	if s >= StateCount {
		return fmt.Sprintf("State(%d)", uint8(s))
	}
	return stateNames[s]
}

// Theme picks the paints used for decoration and markers.
type Theme struct {
	Frame       Paint
	FrameAlt    Paint
	Backdrop    Paint
	BackdropEnd Paint
	Marker      Paint
}

func DefaultTheme() Theme {
	return Theme{
		Frame:       TexturePaint(TextureGrey),
		FrameAlt:    TexturePaint(TextureRed),
		Backdrop:    SolidPaint(0x15151f),
		BackdropEnd: TexturePaint(TexturePurple),
		Marker:      TexturePaint(TexturePearl),
	}
}
