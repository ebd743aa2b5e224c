package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetra/tetra"
)

// TickWindow shows runner timing and how often each state was entered.
type TickWindow struct {
	runner  *tetra.Runner
	history *History
}

func NewTickWindow(runner *tetra.Runner, historyFrames int) *TickWindow {
	return &TickWindow{runner: runner, history: NewHistory(historyFrames)}
}

func (w *TickWindow) Render() {
	stats := w.runner.Stats()
	w.history.Push(float32(stats.LastDuration) / float32(time.Millisecond))

	imgui.SetNextWindowPosV(imgui.NewVec2(280, 220), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 330), imgui.CondOnce)

	if !imgui.BeginV("Ticks", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Simulated: %s", stats.Simulated.Round(time.Millisecond)))
	imgui.Text(fmt.Sprintf("Avg/Min/Max: %s / %s / %s", stats.AvgDuration, stats.MinDuration, stats.MaxDuration))

	imgui.Separator()
	imgui.Text("Tick Time (ms)")
	samples := w.history.Samples()
	imgui.PlotLinesFloatPtr("##ticktime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("States Entered") {
		for st := tetra.State(0); st < tetra.StateCount; st++ {
			imgui.BulletText(fmt.Sprintf("%s: %d", st, stats.Entered[st]))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// History is a fixed size ring of samples.
type History struct {
	samples []float32
	ordered []float32
	next    int
}

func NewHistory(n int) *History {
	n = max(n, 1)
	return &History{samples: make([]float32, n), ordered: make([]float32, n)}
}

func (h *History) Push(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
}

// Samples returns the samples oldest first. The slice is reused.
func (h *History) Samples() []float32 {
	n := copy(h.ordered, h.samples[h.next:])
	copy(h.ordered[n:], h.samples[:h.next])
	return h.ordered
}

func (h *History) Avg() float32 {
	var sum float32
	for _, v := range h.samples {
		sum += v
	}
	return sum / float32(len(h.samples))
}
