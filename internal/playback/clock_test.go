package playback

import (
	"math"
	"testing"
	"time"
)

// recordingApplier mimics the editor's sync controller: it records
// every applied position and stores it on the clock, quantized.
type recordingApplier struct {
	clock   *Clock
	applied []float64
}

func (a *recordingApplier) ApplyPosition(ms float64) {
	a.applied = append(a.applied, ms)
	if a.clock != nil {
		a.clock.SetCurrentTimeMs(ms)
	}
}

func newTestClock(fps int, maxTimeMs float64) (*Clock, *StepScheduler, *recordingApplier, *time.Time) {
	scheduler := NewStepScheduler()
	applier := &recordingApplier{}
	clock := NewClock(fps, maxTimeMs, scheduler, applier)
	applier.clock = clock

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock.SetNow(func() time.Time { return now })
	return clock, scheduler, applier, &now
}

func TestQuantization(t *testing.T) {
	clock, _, _, _ := newTestClock(60, 30000)

	tests := []struct {
		setMs    float64
		expected float64
	}{
		{0, 0},
		{1003, 1000},            // floor(60.18) = 60 frames = 1000ms
		{999, 59 * 1000.0 / 60}, // floor(59.94) = 59 frames
		{1000, 1000},
		{-50, 0}, // negative clamps to frame zero
	}

	for _, tt := range tests {
		clock.SetCurrentTimeMs(tt.setMs)
		if got := clock.CurrentTimeMs(); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("SetCurrentTimeMs(%.0f): expected %.4f, got %.4f", tt.setMs, tt.expected, got)
		}
	}
}

func TestTickAppliesElapsedPosition(t *testing.T) {
	clock, scheduler, applier, now := newTestClock(60, 30000)

	clock.Start()
	if !clock.Playing() {
		t.Fatal("Clock should be playing after Start")
	}

	*now = now.Add(500 * time.Millisecond)
	scheduler.Step()

	if len(applier.applied) != 1 || applier.applied[0] != 500 {
		t.Fatalf("Expected one applied position 500, got %v", applier.applied)
	}
	if got := clock.CurrentTimeMs(); got != 500 {
		t.Errorf("Expected position 500, got %.2f", got)
	}
	if !scheduler.Pending() {
		t.Error("Tick should have scheduled the next frame")
	}
}

func TestPositionRecomputedFromAnchors(t *testing.T) {
	clock, scheduler, applier, now := newTestClock(60, 30000)

	clock.SetCurrentTimeMs(1000)
	clock.Start()

	// Two frames with uneven host delays: position derives from total
	// elapsed time, not from per-frame increments.
	*now = now.Add(100 * time.Millisecond)
	scheduler.Step()
	*now = now.Add(350 * time.Millisecond)
	scheduler.Step()

	last := applier.applied[len(applier.applied)-1]
	if last != 1450 {
		t.Errorf("Expected position 1450 after 450ms from anchor 1000, got %.2f", last)
	}
}

func TestRunsOffEndStopsAndResets(t *testing.T) {
	clock, scheduler, applier, now := newTestClock(60, 1000)

	clock.Start()
	*now = now.Add(1500 * time.Millisecond)
	scheduler.Step()

	if clock.Playing() {
		t.Error("Clock should stop after running past maxTime")
	}
	if got := clock.CurrentTimeMs(); got != 0 {
		t.Errorf("Position should reset to 0, got %.2f", got)
	}
	if scheduler.Pending() {
		t.Error("No further tick should be scheduled after stopping")
	}
	if len(applier.applied) != 1 || applier.applied[0] != 0 {
		t.Errorf("Expected single applied position 0, got %v", applier.applied)
	}
}

func TestStopCancelsPendingTick(t *testing.T) {
	clock, scheduler, applier, now := newTestClock(60, 30000)

	clock.Start()
	clock.Stop()
	*now = now.Add(200 * time.Millisecond)
	scheduler.Step()

	if len(applier.applied) != 0 {
		t.Errorf("Cancelled tick must not apply a stale position, got %v", applier.applied)
	}
	if clock.Playing() {
		t.Error("Clock should stay stopped")
	}
}

func TestStopFreezesPosition(t *testing.T) {
	clock, scheduler, _, now := newTestClock(60, 30000)

	clock.Start()
	*now = now.Add(600 * time.Millisecond)
	scheduler.Step()
	clock.Stop()

	if got := clock.CurrentTimeMs(); got != 600 {
		t.Errorf("Stop should freeze the position at 600, got %.2f", got)
	}
}

func TestReentrantStartKeepsSingleTickLoop(t *testing.T) {
	clock, scheduler, _, now := newTestClock(60, 30000)

	clock.Start()
	clock.Start()
	clock.Start()

	*now = now.Add(100 * time.Millisecond)
	if ran := scheduler.Step(); ran != 1 {
		t.Errorf("Expected exactly one scheduled tick, ran %d", ran)
	}
}

func TestSeekToStopsPlayback(t *testing.T) {
	clock, scheduler, applier, now := newTestClock(60, 30000)

	clock.Start()
	clock.SeekTo(2000)

	if clock.Playing() {
		t.Error("SeekTo during playback should stop the clock")
	}
	if got := clock.CurrentTimeMs(); got != 2000 {
		t.Errorf("Expected position 2000 after seek, got %.2f", got)
	}

	// The tick scheduled by Start observes the stop and exits.
	*now = now.Add(300 * time.Millisecond)
	scheduler.Step()
	if got := clock.CurrentTimeMs(); got != 2000 {
		t.Errorf("Stale tick moved the position to %.2f", got)
	}
	if len(applier.applied) != 1 {
		t.Errorf("Expected only the seek to apply, got %v", applier.applied)
	}
}
