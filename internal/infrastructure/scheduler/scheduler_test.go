package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/macetwatch/traffic-monitor/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub monitor
// ---------------------------------------------------------------------------

type stubMonitor struct {
	sweeps chan struct{}
}

func newStubMonitor() *stubMonitor {
	return &stubMonitor{sweeps: make(chan struct{}, 16)}
}

func (m *stubMonitor) Sweep(context.Context) (*ports.SweepSummary, error) {
	m.sweeps <- struct{}{}
	return &ports.SweepSummary{Locations: 5, Recorded: 5}, nil
}

func (m *stubMonitor) TrafficReport(context.Context) (*ports.TrafficReport, error) {
	return nil, nil
}

func (m *stubMonitor) LocationReport(context.Context, string) (*ports.LocationReport, error) {
	return nil, nil
}

func (m *stubMonitor) RouteQuery(context.Context, ports.RouteQueryInput) (*ports.RouteReport, error) {
	return nil, nil
}

func (m *stubMonitor) WeeklyStats(context.Context) (*ports.StatsReport, error) {
	return nil, nil
}

func (m *stubMonitor) Locations() []ports.MonitoredLocationInfo { return nil }

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestScheduler_Run_NoImmediateSweep(t *testing.T) {
	monitor := newStubMonitor()
	sched := New(50*time.Millisecond, monitor, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched.Start(ctx)

	select {
	case <-monitor.sweeps:
		t.Fatal("sweep fired before the first interval elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	select {
	case <-monitor.sweeps:
	case <-time.After(time.Second):
		t.Fatal("no sweep after a full interval")
	}
}

func TestScheduler_Run_RepeatsEveryInterval(t *testing.T) {
	monitor := newStubMonitor()
	sched := New(20*time.Millisecond, monitor, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched.Start(ctx)

	for i := 0; i < 3; i++ {
		select {
		case <-monitor.sweeps:
		case <-time.After(time.Second):
			t.Fatalf("sweep %d never fired", i+1)
		}
	}
}

func TestScheduler_Run_StopsOnCancel(t *testing.T) {
	monitor := newStubMonitor()
	sched := New(10*time.Millisecond, monitor, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestScheduler_New_DefaultInterval(t *testing.T) {
	sched := New(0, newStubMonitor(), zerolog.Nop())
	if sched.interval != defaultInterval {
		t.Fatalf("expected default interval %v, got %v", defaultInterval, sched.interval)
	}
}
