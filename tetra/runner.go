package tetra

import (
	"context"
	"time"
)

// RunnerStats summarizes how a Runner has driven its session.
type RunnerStats struct {
	Ticks         int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
	Simulated     time.Duration

	// Entered counts how often each state was entered.
	Entered [StateCount]int64
}

// Runner drives a Session from a clock and records tick statistics.
type Runner struct {
	session *Session

	// Before, when set, runs ahead of every tick. Hosts use it to feed
	// queued input so it is applied in arrival order before time advances.
	Before func(*Session)

	ticks         int64
	minDuration   time.Duration
	maxDuration   time.Duration
	lastDuration  time.Duration
	totalDuration time.Duration
	simulated     time.Duration
	entered       [StateCount]int64
}

func NewRunner(s *Session) *Runner {
	r := &Runner{
		session:     s,
		minDuration: time.Duration(1<<63 - 1),
	}
	r.entered[s.State()]++
	return r
}

func (r *Runner) Session() *Session { return r.session }

// Once runs the Before hook and a single tick of dt.
func (r *Runner) Once(dt time.Duration) {
	if r.Before != nil {
		r.Before(r.session)
	}
	before := r.session.State()

	start := time.Now()
	r.session.Tick(dt)
	duration := time.Since(start)

	if after := r.session.State(); after != before {
		r.entered[after]++
	}
	r.ticks++
	r.simulated += dt
	r.lastDuration = duration
	r.totalDuration += duration
	if duration < r.minDuration {
		r.minDuration = duration
	}
	if duration > r.maxDuration {
		r.maxDuration = duration
	}
}

// Run ticks the session every interval until ctx is cancelled.
func (r *Runner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			r.Once(dt)
		}
	}
}

func (r *Runner) Stats() RunnerStats {
	stats := RunnerStats{
		Ticks:         r.ticks,
		MaxDuration:   r.maxDuration,
		LastDuration:  r.lastDuration,
		TotalDuration: r.totalDuration,
		Simulated:     r.simulated,
		Entered:       r.entered,
	}
	if r.ticks > 0 {
		stats.MinDuration = r.minDuration
		stats.AvgDuration = r.totalDuration / time.Duration(r.ticks)
	}
	return stats
}
