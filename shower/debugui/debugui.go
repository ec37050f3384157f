// Package debugui provides a Dear ImGui inspector for a running simulator:
// live and cumulative entity counts, a frame time graph and the per-system
// scheduler table.
package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/astroshower/shower"
)

// Item is a render function called once per ImGui frame.
type Item func()

// Panel renders the inspector windows for one simulator.
type Panel struct {
	sim     *shower.Simulator
	history *FrameHistory
	timer   *FrameTimer
	sort    SystemSort
}

// NewPanel creates a panel keeping historyFrames frame times.
func NewPanel(sim *shower.Simulator, historyFrames int) *Panel {
	return &Panel{
		sim:     sim,
		history: NewFrameHistory(historyFrames),
		timer:   NewFrameTimer(),
		sort:    SystemSort{Column: -1},
	}
}

// Items returns the panel's windows as render items.
func (p *Panel) Items() []Item {
	return []Item{p.renderStats, p.renderSystems}
}

func (p *Panel) renderStats() {
	p.history.Record(float32(p.timer.GetDeltaTime().Seconds() * 1000))
	stats := p.sim.Stats()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 280), imgui.CondOnce)

	if !imgui.BeginV("Shower Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", stats.State))
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Viewport: %.0fx%.0f @%.2fx", stats.Viewport.Width, stats.Viewport.Height, stats.Viewport.Ratio()))
	imgui.Text(fmt.Sprintf("Backing: %dx%d", stats.BackingWidth, stats.BackingHeight))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("KindTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Live")
		imgui.TableSetupColumn("Spawned")
		imgui.TableSetupColumn("Removed")
		imgui.TableHeadersRow()

		for _, row := range KindRows(stats) {
			imgui.TableNextRow()
			for _, cell := range row {
				imgui.TableNextColumn()
				imgui.Text(cell)
			}
		}
		imgui.EndTable()
	}

	avg := p.history.Average()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps(avg)))
	samples := p.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	imgui.End()
}

func (p *Panel) renderSystems() {
	stats := p.sim.Stats().Scheduler

	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 200), imgui.CondOnce)

	if !imgui.BeginV("System Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("System Count: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Total Executions: %d", stats.TotalExecutions))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			p.sort = SystemSort{
				Column:     int(spec.ColumnIndex()),
				Descending: spec.SortDirection() == imgui.SortDirectionDescending,
			}
		}

		systems := stats.Systems
		p.sort.Apply(systems)
		for _, sys := range systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", ms(sys.AvgDuration)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", ms(sys.MinDuration)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", ms(sys.MaxDuration)))
		}
		imgui.EndTable()
	}

	imgui.End()
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func fps(avgMs float32) float32 {
	if avgMs <= 0 {
		return 0
	}
	return 1000 / avgMs
}
