package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/plus3/astroshower/internal/config"
	"github.com/plus3/astroshower/shower"
	"github.com/plus3/astroshower/shower/headless"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBenchCmd(a *app) *cobra.Command {
	defaults := config.DefaultConfig().Bench
	var duration time.Duration
	var viewport string
	var dpr float64

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the shower headless and print a timing report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Bench
			flags := cmd.Flags()
			if flags.Changed("duration") {
				cfg.Duration = duration
			}
			if flags.Changed("viewport") {
				cfg.Viewport = viewport
			}
			if flags.Changed("dpr") {
				cfg.DPR = dpr
			}

			report, err := runBench(cmd.Context(), cfg, a.cfg.Seed, a.newRand(), a.log)
			if err != nil {
				return err
			}
			return report.Generate(cmd.OutOrStdout())
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", defaults.Duration, "how long to run")
	cmd.Flags().StringVar(&viewport, "viewport", defaults.Viewport, "logical viewport as WIDTHxHEIGHT")
	cmd.Flags().Float64Var(&dpr, "dpr", defaults.DPR, "device pixel ratio")
	return cmd
}

// runBench pumps frames back to back on a headless host until the duration
// elapses or ctx is cancelled.
func runBench(ctx context.Context, cfg config.BenchConfig, seed uint64, rng *rand.Rand, log *zap.Logger) (*Report, error) {
	width, height, err := config.ParseViewport(cfg.Viewport)
	if err != nil {
		return nil, err
	}
	if cfg.Duration <= 0 || cfg.DPR <= 0 {
		return nil, fmt.Errorf("%w: bench duration %s at dpr %g", config.ErrInvalid, cfg.Duration, cfg.DPR)
	}

	host := headless.New(shower.Viewport{Width: width, Height: height, PixelRatio: cfg.DPR})
	sim := shower.New(host, shower.WithRand(rng), shower.WithLogger(log))

	report := &Report{
		Duration: cfg.Duration,
		Viewport: host.Viewport(),
		Seed:     seed,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0, 1024),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running benchmark", zap.Duration("duration", cfg.Duration), zap.String("viewport", cfg.Viewport), zap.Float64("dpr", cfg.DPR))
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	sim.Mount()
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			frameStart := time.Now()
			if host.Advance() == 0 {
				break Loop
			}
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Final = sim.Stats()
	sim.Teardown()

	report.TotalFrames = report.Final.Frames
	report.FrameTime.Finalize()
	report.SpawnRate = NewSpawnRate(report.TotalFrames, report.Final.Kind(shower.KindFallingBody).Spawned)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("benchmark finished", zap.Int64("frames", report.TotalFrames), zap.Duration("elapsed", report.TotalTime))
	return report, nil
}
