package shower

import (
	"testing"
	"time"
)

type sleepySystem struct {
	sleepDur     time.Duration
	executeCount int
}

func (s *sleepySystem) Execute(frame *UpdateFrame) {
	s.executeCount++
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

type orderProbe struct {
	name string
	log  *[]string
}

func (s *orderProbe) Execute(frame *UpdateFrame) {
	*s.log = append(*s.log, s.name)
}

func TestSchedulerStats(t *testing.T) {
	scheduler := NewScheduler()

	stats := scheduler.GetStats()
	if stats.SystemCount != 0 {
		t.Errorf("expected 0 systems, got %d", stats.SystemCount)
	}
	if stats.TotalExecutions != 0 {
		t.Errorf("expected 0 total executions, got %d", stats.TotalExecutions)
	}

	sys1 := &sleepySystem{sleepDur: 1 * time.Millisecond}
	sys2 := &sleepySystem{sleepDur: 2 * time.Millisecond}
	scheduler.Register(sys1)
	scheduler.Register(sys2)

	stats = scheduler.GetStats()
	if stats.SystemCount != 2 {
		t.Errorf("expected 2 systems, got %d", stats.SystemCount)
	}
	for _, sysStats := range stats.Systems {
		if sysStats.MinDuration != 0 {
			t.Errorf("expected zero min duration before any run, got %v", sysStats.MinDuration)
		}
	}

	frame := newUpdateFrame(NewField(), nil, Viewport{}, nil)
	scheduler.Once(frame)
	scheduler.Once(frame)
	scheduler.Once(frame)

	stats = scheduler.GetStats()

	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 total executions (2 systems * 3 runs), got %d", stats.TotalExecutions)
	}

	for _, sysStats := range stats.Systems {
		if sysStats.Name != "sleepySystem" {
			t.Errorf("expected system name 'sleepySystem', got '%s'", sysStats.Name)
		}

		if sysStats.ExecutionCount != 3 {
			t.Errorf("expected 3 executions, got %d", sysStats.ExecutionCount)
		}

		if sysStats.MinDuration == 0 || sysStats.MaxDuration == 0 || sysStats.AvgDuration == 0 {
			t.Errorf("expected non-zero durations, got %+v", sysStats)
		}

		if sysStats.MinDuration > sysStats.AvgDuration {
			t.Errorf("min duration (%v) should be <= avg duration (%v)", sysStats.MinDuration, sysStats.AvgDuration)
		}

		if sysStats.AvgDuration > sysStats.MaxDuration {
			t.Errorf("avg duration (%v) should be <= max duration (%v)", sysStats.AvgDuration, sysStats.MaxDuration)
		}
	}

	if sys1.executeCount != 3 || sys2.executeCount != 3 {
		t.Errorf("expected both systems to execute 3 times, got %d and %d", sys1.executeCount, sys2.executeCount)
	}
}

func TestSchedulerRunsInRegistrationOrder(t *testing.T) {
	var log []string
	scheduler := NewScheduler()
	scheduler.Register(&orderProbe{name: "a", log: &log})
	scheduler.Register(&orderProbe{name: "b", log: &log})
	scheduler.Register(&orderProbe{name: "c", log: &log})

	scheduler.Once(newUpdateFrame(NewField(), nil, Viewport{}, nil))

	if len(log) != 3 || log[0] != "a" || log[1] != "b" || log[2] != "c" {
		t.Errorf("expected [a b c], got %v", log)
	}
}

func TestTickSchedulerPipeline(t *testing.T) {
	stats := NewTickScheduler().GetStats()

	want := []string{"SpawnSystem", "BodySystem", "DebrisSystem", "ShockwaveSystem"}
	if stats.SystemCount != len(want) {
		t.Fatalf("expected %d systems, got %d", len(want), stats.SystemCount)
	}
	for i, name := range want {
		if stats.Systems[i].Name != name {
			t.Errorf("system %d: expected %s, got %s", i, name, stats.Systems[i].Name)
		}
	}
}
