package editor

import (
	"testing"
	"time"

	"github.com/luckyshark1012/fabric-video-editor/internal/animation"
	"github.com/luckyshark1012/fabric-video-editor/internal/config"
	"github.com/luckyshark1012/fabric-video-editor/internal/element"
	"github.com/luckyshark1012/fabric-video-editor/internal/playback"
	"github.com/luckyshark1012/fabric-video-editor/internal/stage"
)

func newTestStore(maxTimeMs float64) (*Store, *stage.Canvas, *playback.StepScheduler) {
	cfg := config.Default()
	cfg.MaxTimeMs = maxTimeMs
	scheduler := playback.NewStepScheduler()
	return NewStore(cfg, scheduler), stage.NewCanvas(), scheduler
}

func addImage(store *Store, canvas *stage.Canvas, id string, start, end float64) element.Element {
	el := element.Element{
		ID:        id,
		Name:      "img " + id,
		Kind:      element.KindImage,
		TimeFrame: element.TimeFrame{Start: start, End: end},
		Drawable:  canvas.Add(id),
	}
	store.AddElement(el)
	return el
}

func addVideo(store *Store, canvas *stage.Canvas, id string, start, end float64) element.Element {
	el := element.Element{
		ID:        id,
		Name:      "vid " + id,
		Kind:      element.KindVideo,
		TimeFrame: element.TimeFrame{Start: start, End: end},
		Drawable:  canvas.Add(id),
		Media:     stage.NewOfflineMediaClock((end-start)/1000, 1280, 720),
	}
	store.AddElement(el)
	return el
}

func opacity(t *testing.T, canvas *stage.Canvas, id string) float64 {
	t.Helper()
	obj, ok := canvas.Lookup(id)
	if !ok {
		t.Fatalf("drawable %s not mounted", id)
	}
	return obj.GetProperty(stage.PropOpacity)
}

func ptr(v float64) *float64 { return &v }

func TestUpdateTimeFrameClamps(t *testing.T) {
	store, canvas, _ := newTestStore(30000)
	addImage(store, canvas, "a", 1000, 2000)

	store.UpdateTimeFrame("a", ptr(-500), ptr(99999))

	el, ok := store.Element("a")
	if !ok {
		t.Fatal("element disappeared")
	}
	if el.TimeFrame.Start != 0 {
		t.Errorf("Start should clamp to 0, got %.0f", el.TimeFrame.Start)
	}
	if el.TimeFrame.End != 30000 {
		t.Errorf("End should clamp to maxTime, got %.0f", el.TimeFrame.End)
	}
	if !(el.TimeFrame.Start <= el.TimeFrame.End) {
		t.Errorf("Window inverted: [%.0f..%.0f]", el.TimeFrame.Start, el.TimeFrame.End)
	}
}

func TestUpdateTimeFramePartial(t *testing.T) {
	store, canvas, _ := newTestStore(30000)
	addImage(store, canvas, "a", 1000, 2000)

	store.UpdateTimeFrame("a", nil, ptr(5000))

	el, _ := store.Element("a")
	if el.TimeFrame.Start != 1000 || el.TimeFrame.End != 5000 {
		t.Errorf("Expected [1000..5000], got [%.0f..%.0f]", el.TimeFrame.Start, el.TimeFrame.End)
	}

	// Unknown ids are ignored, not an error
	store.UpdateTimeFrame("missing", ptr(0), ptr(1))
}

func TestVisibilityBoundary(t *testing.T) {
	store, canvas, _ := newTestStore(30000)
	addImage(store, canvas, "a", 1000, 2000)

	tests := []struct {
		seek    float64
		visible bool
	}{
		{999, false},
		{1000, true}, // start boundary inclusive
		{1500, true},
		{2000, true}, // end boundary inclusive
		{2001, false},
	}

	for _, tt := range tests {
		store.Seek(tt.seek)
		got := opacity(t, canvas, "a")
		want := 0.0
		if tt.visible {
			want = 1.0
		}
		if got != want {
			t.Errorf("At %.0fms: expected opacity %.0f, got %.0f", tt.seek, want, got)
		}
	}
}

func TestSeekIdempotent(t *testing.T) {
	store, canvas, _ := newTestStore(30000)
	addImage(store, canvas, "a", 0, 4000)
	addImage(store, canvas, "b", 6000, 9000)

	store.Seek(5000)
	firstA, firstB := opacity(t, canvas, "a"), opacity(t, canvas, "b")
	store.Seek(5000)
	secondA, secondB := opacity(t, canvas, "a"), opacity(t, canvas, "b")

	if firstA != secondA || firstB != secondB {
		t.Errorf("Repeated seek changed state: a %.0f->%.0f, b %.0f->%.0f", firstA, secondA, firstB, secondB)
	}
}

func TestSeekPastWindowHidesAndPausesVideo(t *testing.T) {
	store, canvas, _ := newTestStore(30000)
	el := addVideo(store, canvas, "v", 0, 5000)

	store.Seek(6000)

	if got := opacity(t, canvas, "v"); got != 0 {
		t.Errorf("Video past its window should be hidden, opacity %.0f", got)
	}
	if el.Media.Playing() {
		t.Error("Media clock must not be commanded to play on a seek")
	}
	if got := el.Media.CurrentTime(); got != 6.0 {
		t.Errorf("Media clock should sit at 6.0s relative to window start, got %.2f", got)
	}
}

func TestVideoClockRelativeToWindowStart(t *testing.T) {
	store, canvas, _ := newTestStore(30000)
	el := addVideo(store, canvas, "v", 2000, 8000)

	store.Seek(3500)

	if got := el.Media.CurrentTime(); got != 1.5 {
		t.Errorf("Expected media clock at 1.5s, got %.2f", got)
	}
}

func TestPlayRunsOffEndAndResets(t *testing.T) {
	store, canvas, scheduler := newTestStore(1000)
	el := addVideo(store, canvas, "v", 0, 1000)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.Clock().SetNow(func() time.Time { return now })

	store.Play()
	if !el.Media.Playing() {
		t.Fatal("Play should start the video's media clock")
	}

	// Simulate frames until past maxTime
	for i := 0; i < 5 && scheduler.Pending(); i++ {
		now = now.Add(400 * time.Millisecond)
		scheduler.Step()
	}

	if store.Clock().Playing() {
		t.Error("Clock should be stopped after running past maxTime")
	}
	if got := store.Clock().CurrentTimeMs(); got != 0 {
		t.Errorf("Position should reset to 0, got %.2f", got)
	}
	if el.Media.Playing() {
		t.Error("Video should be paused once the clock stops")
	}
}

func TestAnimationChainEndToEnd(t *testing.T) {
	store, canvas, _ := newTestStore(30000)
	addImage(store, canvas, "a", 0, 30000)

	segs := []animation.Segment{
		{ID: "s1", TargetID: "a", EndTimeMs: 1000, TargetProperty: stage.PropLeft, TargetValue: 50},
		{ID: "s2", TargetID: "a", EndTimeMs: 2000, TargetProperty: stage.PropLeft, TargetValue: 100},
	}
	for _, seg := range segs {
		if err := store.AddAnimation(seg); err != nil {
			t.Fatalf("AddAnimation(%s): %v", seg.ID, err)
		}
	}

	obj, _ := canvas.Lookup("a")

	store.Seek(500)
	if got := obj.GetProperty(stage.PropLeft); got != 25 {
		t.Errorf("At 500ms: expected left=25, got %.2f", got)
	}
	store.Seek(1500)
	if got := obj.GetProperty(stage.PropLeft); got != 75 {
		t.Errorf("At 1500ms: expected left=75, got %.2f", got)
	}
}

func TestAddAnimationRejectsInvalidSegment(t *testing.T) {
	store, canvas, _ := newTestStore(30000)
	addImage(store, canvas, "a", 0, 30000)

	err := store.AddAnimation(animation.Segment{
		ID: "bad", TargetID: "a", EndTimeMs: 1000, TargetProperty: "color", TargetValue: 1,
	})
	if err == nil {
		t.Fatal("Expected error for unknown property")
	}
	if len(store.Segments()) != 0 {
		t.Errorf("Invalid segment must not be stored, have %d", len(store.Segments()))
	}
}

func TestRemoveAnimationRebuilds(t *testing.T) {
	store, canvas, _ := newTestStore(30000)
	addImage(store, canvas, "a", 0, 30000)

	store.AddAnimation(animation.Segment{ID: "s1", TargetID: "a", EndTimeMs: 1000, TargetProperty: stage.PropLeft, TargetValue: 50})
	store.AddAnimation(animation.Segment{ID: "s2", TargetID: "a", EndTimeMs: 2000, TargetProperty: stage.PropLeft, TargetValue: 100})
	store.RemoveAnimation("s1")

	entries := store.Timeline().Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry after removal, got %d", len(entries))
	}
	// s2 now has no predecessor: its chain restarts from (0, 0).
	if entries[0].StartMs != 0 || entries[0].From != 0 {
		t.Errorf("Expected restart from (0ms, 0), got (%.0fms, %.0f)", entries[0].StartMs, entries[0].From)
	}
}

func TestRemoveElementLeavesSegmentsDangling(t *testing.T) {
	store, canvas, _ := newTestStore(30000)
	addImage(store, canvas, "a", 0, 30000)

	store.AddAnimation(animation.Segment{ID: "s1", TargetID: "a", EndTimeMs: 1000, TargetProperty: stage.PropLeft, TargetValue: 50})
	store.RemoveElement("a")

	if len(store.Segments()) != 1 {
		t.Fatalf("Removing an element must not remove its segments, have %d", len(store.Segments()))
	}

	// The next rebuild skips the dangling segment.
	store.AddAnimation(animation.Segment{ID: "s2", TargetID: "a", EndTimeMs: 2000, TargetProperty: stage.PropLeft, TargetValue: 100})
	if entries := store.Timeline().Entries(); len(entries) != 0 {
		t.Errorf("Dangling segments should compose to nothing, got %d entries", len(entries))
	}
}

func TestElementsSnapshotUnaffectedByMutation(t *testing.T) {
	store, canvas, _ := newTestStore(30000)
	addImage(store, canvas, "a", 0, 1000)
	addImage(store, canvas, "b", 0, 1000)

	snapshot := store.Elements()
	store.RemoveElement("a")

	if len(snapshot) != 2 {
		t.Errorf("Held snapshot changed length: %d", len(snapshot))
	}
	if len(store.Elements()) != 1 {
		t.Errorf("Store should have 1 element, got %d", len(store.Elements()))
	}
}
