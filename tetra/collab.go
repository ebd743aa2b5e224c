package tetra

import "context"

// Handle identifies a presentation cell owned by a Renderer.
type Handle uint64

// Renderer receives presentation commands. The core never draws; it only
// creates, moves, recolors, shows, hides and removes cells.
type Renderer interface {
	AddCell(pos Vec, paint Paint, form Form, visible bool) Handle
	SetVisible(h Handle, visible bool)
	SetPosition(h Handle, pos Vec)
	SetPaint(h Handle, paint Paint)
	Remove(h Handle)
}

// CueID names an audio cue.
type CueID uint8

const (
	CueTheme CueID = iota
	CueGameOver
	CueLineClear

	CueCount
)

var cueNames = [CueCount]string{"theme", "game-over", "line-clear"}

func (c CueID) String() string {
	if c >= CueCount {
		return "cue?"
	}
	return cueNames[c]
}

// AudioCue plays and stops named sounds.
type AudioCue interface {
	Play(id CueID)
	Stop(id CueID)
	IsPlaying(id CueID) bool
}

// AssetLoader prepares textures. LoadAll returns a channel that delivers
// exactly one value once every requested load has finished: nil when all
// succeeded, the first failure otherwise.
type AssetLoader interface {
	LoadAll(ctx context.Context, ids []TextureID) <-chan error
}

// Input is a discrete player command.
type Input uint8

const (
	InputLeft Input = iota
	InputRight
	InputDown
	InputRotate
	InputRotateBack
)

var inputNames = [...]string{"left", "right", "down", "rotate", "rotate-back"}

func (in Input) String() string {
	if int(in) >= len(inputNames) {
		return "input?"
	}
	return inputNames[in]
}

type nopRenderer struct{ next Handle }

func (r *nopRenderer) AddCell(Vec, Paint, Form, bool) Handle {
	r.next++
	return r.next
}
func (*nopRenderer) SetVisible(Handle, bool) {}
func (*nopRenderer) SetPosition(Handle, Vec) {}
func (*nopRenderer) SetPaint(Handle, Paint)  {}
func (*nopRenderer) Remove(Handle)           {}

type nopAudio struct{}

func (nopAudio) Play(CueID)           {}
func (nopAudio) Stop(CueID)           {}
func (nopAudio) IsPlaying(CueID) bool { return false }

type readyLoader struct{}

func (readyLoader) LoadAll(context.Context, []TextureID) <-chan error {
	ch := make(chan error, 1)
	ch <- nil
	return ch
}
