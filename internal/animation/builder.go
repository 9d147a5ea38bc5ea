package animation

import (
	"sort"

	"github.com/luckyshark1012/fabric-video-editor/internal/element"
	"github.com/luckyshark1012/fabric-video-editor/internal/timeline"
)

// Build composes the flat, unordered segment list into a single
// seekable timeline.
//
// Segments are processed in ascending end-time order (stable sort, ties
// keep insertion order). Each segment starts where the most recent
// earlier segment of the same target ended, in both time and value; the
// prior segment does not have to drive the same property, continuity is
// per target. A target with no earlier segment starts its chain from
// (0ms, value 0) regardless of the property's current value on the
// canvas.
//
// Segments whose target is missing from the element list, or whose
// element has no drawable handle yet, are skipped without error.
//
// The previous composition is never patched: every call rebuilds from
// empty. Quadratic in segment count, which is fine at user-action rate.
func Build(segments []Segment, elements []element.Element, durationMs float64) *timeline.Timeline {
	sorted := make([]Segment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EndTimeMs < sorted[j].EndTimeMs
	})

	tl := timeline.New(durationMs)
	for i, seg := range sorted {
		el, ok := element.Find(elements, seg.TargetID)
		if !ok || el.Drawable == nil {
			continue
		}

		startMs, startValue := 0.0, 0.0
		for j := i - 1; j >= 0; j-- {
			if sorted[j].TargetID == seg.TargetID {
				startMs = sorted[j].EndTimeMs
				startValue = sorted[j].TargetValue
				break
			}
		}

		start := startMs + seg.DelayMs
		if start > seg.EndTimeMs {
			start = seg.EndTimeMs
		}

		tl.Add(timeline.Entry{
			Target:     el.Drawable,
			TargetID:   el.ID,
			Property:   seg.TargetProperty,
			From:       startValue,
			To:         seg.TargetValue,
			StartMs:    start,
			DurationMs: seg.EndTimeMs - start,
			Easing:     seg.Easing,
		})
	}
	return tl
}
