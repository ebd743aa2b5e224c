package tetra

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/plus3/tetra/internal/log"
)

// Options wires a Session to its collaborators. Nil fields fall back to
// headless defaults: a renderer that only hands out handles, silent audio,
// assets that are ready immediately, a uniform dealer seeded from the
// runtime, and a discarding logger.
type Options struct {
	Renderer Renderer
	Audio    AudioCue
	Assets   AssetLoader
	Dealer   Dealer
	Logger   *log.Logger
}

// Counters are running totals kept for diagnostics.
type Counters struct {
	Ticks        int64
	PiecesLocked int
	LinesCleared int
	Transitions  int
}

// Session is the game state machine. It is driven by Tick and OnInput from
// a single goroutine and is not safe for concurrent use.
type Session struct {
	cfg      Config
	renderer Renderer
	audio    AudioCue
	assets   AssetLoader
	dealer   Dealer
	logger   *log.Logger

	board   *Board
	preview *Board

	current    *Piece
	next       *Piece
	nextColumn int

	state   State
	ready   <-chan error
	loadErr error

	lines        []int
	overlay      []Handle
	overlayShown bool
	blinks       int

	dropTimer  time.Duration
	phaseTimer time.Duration
	spiralPass int
	flickerAlt bool

	counters Counters
}

// NewSession validates cfg and builds the boards. The session starts in
// StateWaitingStart.
func NewSession(cfg Config, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Renderer == nil {
		opts.Renderer = &nopRenderer{}
	}
	if opts.Audio == nil {
		opts.Audio = nopAudio{}
	}
	if opts.Assets == nil {
		opts.Assets = readyLoader{}
	}
	if opts.Dealer == nil {
		opts.Dealer = NewUniformDealer(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}

	s := &Session{
		cfg:      cfg,
		renderer: opts.Renderer,
		audio:    opts.Audio,
		assets:   opts.Assets,
		dealer:   opts.Dealer,
		logger:   opts.Logger.With("session"),
		state:    StateWaitingStart,
	}
	s.board = NewBoard(s.renderer, cfg.BoardWidth, cfg.BoardHeight, Vec{})
	s.preview = NewBoard(s.renderer, cfg.PreviewWidth, cfg.PreviewHeight,
		Vec{X: cfg.BoardWidth + 2, Y: cfg.BoardHeight - cfg.PreviewHeight})
	s.board.Decorate(cfg.Theme.Frame, cfg.Theme.Backdrop)
	s.preview.Decorate(cfg.Theme.Frame, cfg.Theme.Backdrop)
	return s, nil
}

func (s *Session) Config() Config      { return s.cfg }
func (s *Session) State() State        { return s.state }
func (s *Session) Board() *Board       { return s.board }
func (s *Session) Preview() *Board     { return s.preview }
func (s *Session) Current() *Piece     { return s.current }
func (s *Session) Next() *Piece        { return s.next }
func (s *Session) Counters() Counters  { return s.counters }
func (s *Session) Blinks() int         { return s.blinks }
func (s *Session) SpiralPass() int     { return s.spiralPass }
func (s *Session) OverlayShown() bool  { return s.overlayShown && len(s.overlay) > 0 }
func (s *Session) PendingLines() []int { return slices.Clone(s.lines) }

// LoadErr returns the failure of the last asset barrier, if any.
func (s *Session) LoadErr() error { return s.loadErr }

// Loading reports whether an asset barrier is outstanding.
func (s *Session) Loading() bool { return s.ready != nil }

// Start requests the assets. The session leaves StateWaitingStart on the
// first Tick after every load has completed. After a failed barrier Start
// may be called again.
func (s *Session) Start(ctx context.Context) {
	if s.state != StateWaitingStart || s.ready != nil {
		return
	}
	s.loadErr = nil
	s.ready = s.assets.LoadAll(ctx, Textures[:])
	s.logger.Infof("loading %d textures", len(Textures))
}

// Tick advances the state machine by dt. At most one automatic drop and
// one state transition happen per call.
func (s *Session) Tick(dt time.Duration) {
	s.counters.Ticks++
	switch s.state {
	case StateWaitingStart:
		s.tickWaiting()
	case StatePlaying:
		s.tickPlaying(dt)
	case StateMarkingLines:
		s.tickMarking(dt)
	case StateDeletingLines:
		s.tickDeleting()
	case StateTestGameOver:
		s.tickGameOver()
	case StateEndSpiral:
		s.tickSpiral(dt)
	case StateEnd:
		s.tickEnd(dt)
	}
}

// OnInput applies a player command. Commands are ignored outside
// StatePlaying. The result reports whether the current piece changed.
func (s *Session) OnInput(in Input) bool {
	if s.state != StatePlaying {
		return false
	}
	switch in {
	case InputLeft:
		return s.shift(Vec{X: -1}, s.board.CollisionPiece(s.current, true).Left)
	case InputRight:
		return s.shift(Vec{X: 1}, s.board.CollisionPiece(s.current, true).Right)
	case InputDown:
		s.down()
		return true
	case InputRotate:
		return s.rotate(Clockwise)
	case InputRotateBack:
		return s.rotate(CounterClockwise)
	}
	return false
}

func (s *Session) shift(d Vec, blocked bool) bool {
	if blocked {
		return false
	}
	s.current.Move(d)
	return true
}

// rotate turns the current piece, trying the opposite direction once when
// the first attempt overlaps. A piece that overlaps both ways stays put.
func (s *Session) rotate(direction int) bool {
	if _, ok := Pivot(s.current.Shape()); !ok {
		return false
	}
	opposite := 1 - direction

	s.current.Rotate(direction)
	if !s.board.CollisionPiece(s.current, true).Over {
		return true
	}
	s.current.Rotate(opposite)

	s.current.Rotate(opposite)
	if !s.board.CollisionPiece(s.current, true).Over {
		return true
	}
	s.current.Rotate(direction)
	return false
}

func (s *Session) setState(next State) {
	s.logger.Debugf("state %s -> %s", s.state, next)
	s.state = next
	s.counters.Transitions++
}

func (s *Session) spawnOrigin(column int) Vec {
	return s.board.Origin().Add(Vec{X: column, Y: s.board.Height()})
}

func (s *Session) deal() Deal {
	return s.dealer.Deal(s.cfg.SpawnColumns())
}

// dealNext creates the preview piece.
func (s *Session) dealNext() *Piece {
	d := s.deal()
	s.nextColumn = d.Column
	origin := s.preview.Origin().Add(Vec{X: 1})
	return NewPiece(s.renderer, origin, d.Shape, TexturePaint(d.Texture), s.preview.Playable(), true)
}

func (s *Session) tickWaiting() {
	if s.ready == nil {
		return
	}
	select {
	case err := <-s.ready:
		s.ready = nil
		if err != nil {
			s.loadErr = err
			s.logger.Errorf("asset barrier failed: %v", err)
			return
		}
		s.begin()
	default:
	}
}

func (s *Session) begin() {
	d := s.deal()
	s.current = NewPiece(s.renderer, s.spawnOrigin(d.Column), d.Shape, TexturePaint(d.Texture), s.board.Playable(), true)
	s.next = s.dealNext()
	s.dropTimer = 0
	s.audio.Play(CueTheme)
	s.setState(StatePlaying)
}

func (s *Session) tickPlaying(dt time.Duration) {
	s.dropTimer += dt
	if s.dropTimer < s.cfg.FallSpeed {
		return
	}
	s.down()
}

// down moves the current piece one row, or locks it when it rests on the
// floor or on a block.
func (s *Session) down() {
	if s.board.CollisionPiece(s.current, true).Bottom {
		s.lock()
		return
	}
	s.current.Move(Vec{Y: -1})
	s.dropTimer = 0
}

func (s *Session) lock() {
	s.board.AddPiece(s.current, Absolute)
	s.counters.PiecesLocked++

	s.current = s.next
	s.current.SetClip(s.board.Playable())
	s.current.SetOrigin(s.spawnOrigin(s.nextColumn))
	s.current.SetVisibility(true)
	s.next = s.dealNext()
	s.dropTimer = 0

	s.lines = s.board.FullLines()
	if len(s.lines) > 0 {
		s.enterMarking()
		return
	}
	s.setState(StateTestGameOver)
}

func (s *Session) enterMarking() {
	origin := s.board.Origin()
	for _, y := range s.lines {
		for x := 0; x < s.board.Width(); x++ {
			h := s.renderer.AddCell(origin.Add(Vec{X: x, Y: y}), s.cfg.Theme.Marker, FormMarker, true)
			s.overlay = append(s.overlay, h)
		}
	}
	s.overlayShown = true
	s.blinks = 0
	s.phaseTimer = 0
	s.audio.Play(CueLineClear)
	s.setState(StateMarkingLines)
}

func (s *Session) tickMarking(dt time.Duration) {
	s.phaseTimer += dt
	if s.phaseTimer < s.cfg.BlinkInterval {
		return
	}
	s.phaseTimer = 0

	if s.blinks < s.cfg.BlinkToggles {
		s.overlayShown = !s.overlayShown
		for _, h := range s.overlay {
			s.renderer.SetVisible(h, s.overlayShown)
		}
		s.blinks++
		if s.blinks < s.cfg.BlinkToggles {
			return
		}
	}

	// The last toggle removes the overlay in the same tick.
	for _, h := range s.overlay {
		s.renderer.Remove(h)
	}
	s.overlay = s.overlay[:0]
	s.overlayShown = false
	s.setState(StateDeletingLines)
}

func (s *Session) tickDeleting() {
	Cascade(s.board, s.lines)
	s.counters.LinesCleared += len(s.lines)
	s.logger.Debugf("cleared lines %v", s.lines)
	s.lines = nil
	s.setState(StateTestGameOver)
}

func (s *Session) tickGameOver() {
	if !s.board.BlockOnTop() {
		s.dropTimer = 0
		s.setState(StatePlaying)
		return
	}

	s.next.Remove()
	s.next = nil
	s.current.Remove()
	s.current = nil
	s.audio.Stop(CueTheme)
	s.audio.Play(CueGameOver)
	s.logger.Infof("game over after %d pieces, %d lines", s.counters.PiecesLocked, s.counters.LinesCleared)

	s.board.ResetSpiral()
	s.spiralPass = 0
	s.phaseTimer = 0
	s.setState(StateEndSpiral)
}

// tickSpiral reveals the board with markers along the spiral, swaps the
// backdrop, then hides the markers along the same path.
func (s *Session) tickSpiral(dt time.Duration) {
	s.phaseTimer += dt
	if s.phaseTimer < s.cfg.SpiralInterval {
		return
	}
	s.phaseTimer = 0

	if s.spiralPass == 0 {
		s.board.SpiralMark(s.cfg.Theme.Marker)
		if s.board.SpiralDone() {
			s.board.SetBackdrop(s.cfg.Theme.BackdropEnd)
			s.board.ResetSpiral()
			s.spiralPass = 1
		}
		return
	}

	s.board.SpiralClear()
	if s.board.SpiralDone() {
		s.board.ResetSpiral()
		s.setState(StateEnd)
	}
}

func (s *Session) tickEnd(dt time.Duration) {
	s.phaseTimer += dt
	if s.phaseTimer < s.cfg.FlickerInterval {
		return
	}
	s.phaseTimer = 0

	s.flickerAlt = !s.flickerAlt
	paint := s.cfg.Theme.Frame
	if s.flickerAlt {
		paint = s.cfg.Theme.FrameAlt
	}
	s.board.SetFramePaint(paint)
	s.preview.SetFramePaint(paint)
}

// Cascade removes the given full rows from b and drops everything above
// each removed row by the number of removed rows beneath it, in one
// bottom-up pass. Rows outside the board and duplicates are ignored.
func Cascade(b *Board, lines []int) {
	h := b.Height()
	bounds := slices.Clone(lines)
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)
	bounds = slices.DeleteFunc(bounds, func(y int) bool { return y < 0 || y >= h })
	k := len(bounds)
	bounds = append(bounds, h)

	for i := 0; i < k; i++ {
		for y := bounds[i] + 1; y < bounds[i+1]; y++ {
			b.MoveLine(y, -(i + 1))
		}
	}
	for y := h - k; y < h; y++ {
		b.ClearLine(y)
	}
}
