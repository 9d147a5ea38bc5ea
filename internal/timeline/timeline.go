package timeline

import "github.com/luckyshark1012/fabric-video-editor/internal/stage"

// Entry drives one numeric property of one drawable across a time span.
type Entry struct {
	Target     stage.Drawable
	TargetID   string
	Property   stage.Property
	From       float64
	To         float64
	StartMs    float64
	DurationMs float64
	Easing     Easing
}

// EndMs returns the position at which the entry reaches its target value.
func (e Entry) EndMs() float64 {
	return e.StartMs + e.DurationMs
}

// Timeline is a composed, seekable set of property interpolations.
//
// Seek is absolute and idempotent: the same position always produces the
// same property values, regardless of which positions were visited
// before and in which direction.
type Timeline struct {
	entries    []Entry
	durationMs float64
}

func New(durationMs float64) *Timeline {
	return &Timeline{durationMs: durationMs}
}

func (tl *Timeline) Add(e Entry) {
	tl.entries = append(tl.entries, e)
}

func (tl *Timeline) Entries() []Entry {
	return tl.entries
}

func (tl *Timeline) DurationMs() float64 {
	return tl.durationMs
}

// Seek sets every entry's property to its value at position t (ms).
// Positions outside an entry's span clamp to that entry's endpoints, so
// seeking is safe at any t in either direction.
func (tl *Timeline) Seek(t float64) {
	for _, e := range tl.entries {
		if e.Target == nil {
			continue
		}
		e.Target.SetProperty(e.Property, e.ValueAt(t))
	}
}

// ValueAt computes the entry's property value at position t without
// touching the target.
func (e Entry) ValueAt(t float64) float64 {
	if e.DurationMs <= 0 {
		if t < e.StartMs {
			return e.From
		}
		return e.To
	}
	progress := (t - e.StartMs) / e.DurationMs
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return lerp(e.From, e.To, e.Easing.apply(progress))
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
