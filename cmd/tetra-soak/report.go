package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetra/tetra"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Width    int
	Height   int
	Dealer   string
	Step     time.Duration

	// Results
	Games         []Game
	TotalTicks    int64
	TotalPieces   int
	TotalLines    int
	TotalTime     time.Duration
	TickTime      Stats
	Entered       [tetra.StateCount]int64
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Total time.Duration
	Count int64
}

// Add folds one game and its runner stats into the report.
func (r *Report) Add(g Game, rs tetra.RunnerStats) {
	r.Games = append(r.Games, g)
	r.TotalTicks += g.Ticks
	r.TotalPieces += g.Pieces
	r.TotalLines += g.Lines
	for i, n := range rs.Entered {
		r.Entered[i] += n
	}

	if rs.Ticks == 0 {
		return
	}
	if r.TickTime.Count == 0 || rs.MinDuration < r.TickTime.Min {
		r.TickTime.Min = rs.MinDuration
	}
	if rs.MaxDuration > r.TickTime.Max {
		r.TickTime.Max = rs.MaxDuration
	}
	r.TickTime.Total += rs.TotalDuration
	r.TickTime.Count += rs.Ticks
	r.TickTime.Avg = r.TickTime.Total / time.Duration(r.TickTime.Count)
}

// States pairs every state with how often it was entered.
func (r *Report) States() []StateCount {
	out := make([]StateCount, 0, tetra.StateCount)
	for st := tetra.State(0); st < tetra.StateCount; st++ {
		out = append(out, StateCount{State: st, Count: r.Entered[st]})
	}
	return out
}

type StateCount struct {
	State tetra.State
	Count int64
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Board:** {{.Width}}x{{.Height}}
- **Dealer:** {{.Dealer}}
- **Step:** {{.Step}}

## Games
- **Games Played:** {{len .Games}}
- **Pieces Locked:** {{.TotalPieces}}
- **Lines Cleared:** {{.TotalLines}}
- **Lines per Game:** {{avg .TotalLines (len .Games)}}
{{range $i, $g := .Games}}
  - game {{$i}}: {{$g.Pieces}} pieces, {{$g.Lines}} lines, {{$g.Ticks}} ticks, {{$g.Cells}} cells left{{if $g.Capped}} (capped){{end}}
{{- end}}

## Tick Time
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Avg:** {{.TickTime.Avg}}
- **Min:** {{.TickTime.Min}}
- **Max:** {{.TickTime.Max}}

## States Entered
{{range .States}}- {{.State}}: {{.Count}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"avg": func(total, n int) string {
			if n == 0 {
				return "0"
			}
			return fmt.Sprintf("%.2f", float64(total)/float64(n))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
