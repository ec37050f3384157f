package headless_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/plus3/astroshower/shower"
	"github.com/plus3/astroshower/shower/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var viewport = shower.Viewport{Width: 800, Height: 600, PixelRatio: 1}

func TestAdvanceRunsPendingInRequestOrder(t *testing.T) {
	host := headless.New(viewport)

	var order []int
	host.RequestFrame(func() { order = append(order, 1) })
	host.RequestFrame(func() { order = append(order, 2) })
	host.RequestFrame(func() { order = append(order, 3) })

	assert.Equal(t, 3, host.Advance())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 0, host.PendingFrames())
	assert.Equal(t, int64(3), host.Delivered())
}

func TestFramesRequestedDuringAdvanceWait(t *testing.T) {
	host := headless.New(viewport)

	calls := 0
	var tick func()
	tick = func() {
		calls++
		host.RequestFrame(tick)
	}
	host.RequestFrame(tick)

	assert.Equal(t, 1, host.Advance())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, host.PendingFrames())

	assert.Equal(t, 4, host.AdvanceN(4))
	assert.Equal(t, 5, calls)
}

func TestCancelFrame(t *testing.T) {
	host := headless.New(viewport)

	ran := false
	id := host.RequestFrame(func() { ran = true })
	host.CancelFrame(id)

	assert.Equal(t, 0, host.Advance())
	assert.False(t, ran)
}

func TestResizeListeners(t *testing.T) {
	host := headless.New(viewport)

	var seen []shower.Viewport
	id := host.AddResizeListener(func() { seen = append(seen, host.Viewport()) })
	assert.Equal(t, 1, host.Listeners())

	next := shower.Viewport{Width: 1024, Height: 768, PixelRatio: 2}
	host.SetViewport(next)
	require.Len(t, seen, 1)
	assert.Equal(t, next, seen[0])

	host.RemoveResizeListener(id)
	host.SetViewport(viewport)
	assert.Len(t, seen, 1)
	assert.Equal(t, viewport, host.Viewport())
}

func TestWithoutSurface(t *testing.T) {
	host := headless.New(viewport, headless.WithoutSurface())

	surface, ok := host.AcquireSurface()
	assert.False(t, ok)
	assert.Nil(t, surface)
	assert.Nil(t, host.Recorder())
}

func TestRunStopsOnCancel(t *testing.T) {
	host := headless.New(viewport)

	var calls atomic.Int64
	var tick func()
	tick = func() {
		calls.Add(1)
		host.RequestFrame(tick)
	}
	host.RequestFrame(tick)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		host.Run(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 5 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunDrivesSimulatorUntilTeardown(t *testing.T) {
	host := headless.New(viewport)
	sim := shower.New(host)
	sim.Mount()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		host.Run(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return sim.Stats().Frames >= 10 }, time.Second, time.Millisecond)

	sim.Teardown()
	frames := sim.Stats().Frames
	clears := host.Recorder().Clears()

	time.Sleep(10 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, frames, sim.Stats().Frames)
	assert.Equal(t, clears, host.Recorder().Clears())
	assert.Equal(t, 0, host.PendingFrames())
}

func TestRecorderKeepsOpsSinceClear(t *testing.T) {
	rec := headless.NewRecorder()
	amber := shower.Palette()[0]

	rec.FillRect(1, 2, 3, 4, amber, 0.5)
	rec.Clear()
	rec.FillRect(5, 6, 7, 8, amber, 1)
	rec.StrokeEllipse(10, 20, 30, 9, 1, amber, 0.2)

	ops := rec.Ops()
	require.Len(t, ops, 2)
	assert.Equal(t, headless.OpFillRect, ops[0].Kind)
	assert.Equal(t, 5.0, ops[0].X)
	assert.Equal(t, headless.OpStrokeEllipse, ops[1].Kind)
	assert.Equal(t, 9.0, ops[1].H)
	assert.Equal(t, int64(3), rec.Draws())
	assert.Equal(t, int64(1), rec.Clears())
	assert.Equal(t, "StrokeEllipse", ops[1].Kind.String())
}
