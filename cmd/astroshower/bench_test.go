package main

import (
	"bytes"
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/astroshower/internal/config"
	"github.com/plus3/astroshower/shower"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRunBench(t *testing.T) {
	cfg := config.BenchConfig{Duration: 50 * time.Millisecond, Viewport: "320x200", DPR: 1.5}

	report, err := runBench(context.Background(), cfg, 7, rand.New(rand.NewPCG(7, 7)), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Greater(t, report.TotalFrames, int64(0))
	assert.Len(t, report.FrameTime.Samples, int(report.TotalFrames))
	assert.LessOrEqual(t, report.FrameTime.Min, report.FrameTime.Avg)
	assert.LessOrEqual(t, report.FrameTime.Avg, report.FrameTime.Max)

	assert.Equal(t, 480, report.Final.BackingWidth)
	assert.Equal(t, 300, report.Final.BackingHeight)
	assert.Equal(t, shower.StateRunning, report.Final.State)
	assert.Equal(t, report.TotalFrames, report.SpawnRate.Frames)

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))
	for _, heading := range []string{"# Asteroid Shower Benchmark Report", "## Spawn Rate", "| FallingBody |", "| SpawnSystem |"} {
		assert.Contains(t, out.String(), heading)
	}
}

func TestRunBenchRejectsBadConfig(t *testing.T) {
	log := zaptest.NewLogger(t)
	rng := rand.New(rand.NewPCG(1, 1))

	_, err := runBench(context.Background(), config.BenchConfig{Duration: time.Second, Viewport: "wide", DPR: 1}, 0, rng, log)
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = runBench(context.Background(), config.BenchConfig{Duration: 0, Viewport: "10x10", DPR: 1}, 0, rng, log)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSpawnRate(t *testing.T) {
	rate := NewSpawnRate(10000, 400)
	assert.InDelta(t, 400, rate.Expected, 1e-9)
	assert.InDelta(t, 19.60, rate.Sigma, 0.01)
	assert.Equal(t, 0.0, rate.Deviation())

	assert.Equal(t, 0.0, NewSpawnRate(0, 0).Deviation())
	assert.Greater(t, NewSpawnRate(100, 60).Deviation(), 0.0)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestBenchCommandFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astroshower.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: error\nbench:\n  viewport: 100x100\n  dpr: 1\n"), 0o644))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"bench", "--config", path, "--duration", "20ms", "--viewport", "200x100", "--seed", "3"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "**Viewport:** 200x100 @ 1x")
	assert.Contains(t, out.String(), "**Seed:** 3")
}

func TestUnknownConfigFails(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"bench", "--config", filepath.Join(t.TempDir(), "missing.yaml")})

	assert.ErrorIs(t, root.ExecuteContext(context.Background()), os.ErrNotExist)
}
