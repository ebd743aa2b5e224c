package tetra_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetra/tetra"
)

func TestRunnerOnce(t *testing.T) {
	f := newFixture(t, tetra.DefaultConfig(), deal(tetra.ShapeO, 3))
	r := tetra.NewRunner(f.session)
	assert.Same(t, f.session, r.Session())

	var calls int
	r.Before = func(s *tetra.Session) {
		calls++
		s.OnInput(tetra.InputDown)
	}

	f.session.Start(context.Background())
	r.Once(10 * time.Millisecond)
	require.Equal(t, tetra.StatePlaying, f.session.State())
	r.Once(10 * time.Millisecond)
	assert.Equal(t, tetra.V(3, 19), f.session.Current().Origin(), "Before runs ahead of the tick")

	stats := r.Stats()
	assert.Equal(t, int64(2), stats.Ticks)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 20*time.Millisecond, stats.Simulated)
	assert.Equal(t, int64(1), stats.Entered[tetra.StateWaitingStart])
	assert.Equal(t, int64(1), stats.Entered[tetra.StatePlaying])
	assert.LessOrEqual(t, stats.MinDuration, stats.MaxDuration)
	assert.Equal(t, stats.TotalDuration/2, stats.AvgDuration)
}

func TestRunnerStatsEmpty(t *testing.T) {
	f := newFixture(t, tetra.DefaultConfig(), deal(tetra.ShapeO, 3))
	stats := tetra.NewRunner(f.session).Stats()
	assert.Zero(t, stats.Ticks)
	assert.Zero(t, stats.MinDuration)
	assert.Zero(t, stats.AvgDuration)
}

func TestRunnerRun(t *testing.T) {
	f := newFixture(t, tetra.DefaultConfig(), deal(tetra.ShapeO, 3))
	f.session.Start(context.Background())
	r := tetra.NewRunner(f.session)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	r.Run(ctx, 5*time.Millisecond)

	stats := r.Stats()
	assert.Positive(t, stats.Ticks)
	assert.Positive(t, stats.Simulated)
	assert.Equal(t, tetra.StatePlaying, f.session.State())
}
