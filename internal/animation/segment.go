package animation

import (
	"fmt"

	"github.com/luckyshark1012/fabric-video-editor/internal/stage"
	"github.com/luckyshark1012/fabric-video-editor/internal/timeline"
)

// Segment is one keyframe transition: it brings one numeric property of
// one target element to TargetValue by EndTimeMs.
//
// TargetID is a weak reference: removing the element does not remove
// its segments, a dangling id is simply skipped when the timeline is
// composed.
type Segment struct {
	ID             string
	TargetID       string
	EndTimeMs      float64
	Easing         timeline.Easing
	TargetProperty stage.Property
	TargetValue    float64
	DelayMs        float64
}

// Validate checks the enums at creation time, so that a bad property
// name fails loudly at the edit site instead of silently composing a
// dead interpolation.
func (s Segment) Validate() error {
	if s.TargetID == "" {
		return fmt.Errorf("animation segment without target")
	}
	if !s.TargetProperty.Animatable() {
		return fmt.Errorf("property %q is not animatable", s.TargetProperty)
	}
	if !s.Easing.Valid() {
		return fmt.Errorf("unknown easing %q", s.Easing)
	}
	if s.EndTimeMs < 0 {
		return fmt.Errorf("segment end time %.0fms is negative", s.EndTimeMs)
	}
	if s.DelayMs < 0 {
		return fmt.Errorf("segment delay %.0fms is negative", s.DelayMs)
	}
	return nil
}
