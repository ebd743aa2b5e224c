package tetra

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

const (
	minBoardSide   = 4
	minPreviewSide = 4
)

// Config holds the session tunables.
type Config struct {
	BoardWidth  int
	BoardHeight int
	// FallSpeed is the time between automatic down moves.
	FallSpeed time.Duration

	PreviewWidth  int
	PreviewHeight int

	BlinkInterval   time.Duration
	BlinkToggles    int
	SpiralInterval  time.Duration
	FlickerInterval time.Duration

	Theme Theme
}

// DefaultConfig returns the classic 10x20 setup.
func DefaultConfig() Config {
	return Config{
		BoardWidth:      10,
		BoardHeight:     20,
		FallSpeed:       500 * time.Millisecond,
		PreviewWidth:    4,
		PreviewHeight:   4,
		BlinkInterval:   300 * time.Millisecond,
		BlinkToggles:    4,
		SpiralInterval:  15 * time.Millisecond,
		FlickerInterval: 400 * time.Millisecond,
		Theme:           DefaultTheme(),
	}
}

// SpawnColumns is the number of columns a new piece may spawn in.
func (c Config) SpawnColumns() int {
	return c.BoardWidth - 3
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.BoardWidth < minBoardSide {
		bad("board width %d below %d", c.BoardWidth, minBoardSide)
	}
	if c.BoardHeight < minBoardSide {
		bad("board height %d below %d", c.BoardHeight, minBoardSide)
	}
	if c.PreviewWidth < minPreviewSide || c.PreviewHeight < minPreviewSide {
		bad("preview %dx%d below %dx%d", c.PreviewWidth, c.PreviewHeight, minPreviewSide, minPreviewSide)
	}
	if c.FallSpeed <= 0 {
		bad("fall speed %s must be positive", c.FallSpeed)
	}
	if c.BlinkInterval <= 0 {
		bad("blink interval %s must be positive", c.BlinkInterval)
	}
	if c.BlinkToggles < 0 {
		bad("blink toggles %d must not be negative", c.BlinkToggles)
	}
	if c.SpiralInterval <= 0 {
		bad("spiral interval %s must be positive", c.SpiralInterval)
	}
	if c.FlickerInterval <= 0 {
		bad("flicker interval %s must be positive", c.FlickerInterval)
	}
	return errors.Join(errs...)
}
