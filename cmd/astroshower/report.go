package main

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/astroshower/shower"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Viewport shower.Viewport
	Seed     uint64

	// Results
	TotalFrames   int64
	TotalTime     time.Duration
	FrameTime     Stats
	Final         *shower.Stats
	SpawnRate     SpawnRate
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// SpawnRate compares observed falling-body spawns to the expected
// binomial mean over the frames run.
type SpawnRate struct {
	Frames   int64
	Observed int64
	Expected float64
	Sigma    float64
}

func NewSpawnRate(frames, observed int64) SpawnRate {
	p := shower.SpawnProbability
	n := float64(frames)
	return SpawnRate{
		Frames:   frames,
		Observed: observed,
		Expected: n * p,
		Sigma:    math.Sqrt(n * p * (1 - p)),
	}
}

// Deviation returns how many standard deviations the observation is from
// the mean.
func (s SpawnRate) Deviation() float64 {
	if s.Sigma == 0 {
		return 0
	}
	return (float64(s.Observed) - s.Expected) / s.Sigma
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Asteroid Shower Benchmark Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Viewport:** {{.Viewport.Width}}x{{.Viewport.Height}} @ {{.Viewport.Ratio}}x
- **Backing Store:** {{.Final.BackingWidth}}x{{.Final.BackingHeight}}
- **Seed:** {{if .Seed}}{{.Seed}}{{else}}clock{{end}}

## Frame Results
- **Total Frames:** {{.TotalFrames}}
- **Total Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Spawn Rate
- **Expected:** {{printf "%.1f" .SpawnRate.Expected}} (σ {{printf "%.2f" .SpawnRate.Sigma}})
- **Observed:** {{.SpawnRate.Observed}} ({{printf "%+.2f" .SpawnRate.Deviation}}σ)

## Entities
| Kind | Live | Spawned | Removed |
|---|---|---|---|
{{- range .Final.Kinds}}
| {{.Kind}} | {{.Live}} | {{.Spawned}} | {{.Removed}} |
{{- end}}

## Systems
| Name | Executions | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Final.Scheduler.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

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
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
