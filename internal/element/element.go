package element

import (
	"github.com/google/uuid"

	"github.com/luckyshark1012/fabric-video-editor/internal/stage"
)

// Kind tags the element variant.
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
	KindText  Kind = "text"
)

// Placement is the 2D transform of an element on the canvas.
type Placement struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// TimeFrame is the window during which an element is visible, in
// milliseconds from the start of the timeline.
type TimeFrame struct {
	Start float64
	End   float64
}

// Contains reports whether t falls inside the window. Both boundaries
// are inclusive.
func (f TimeFrame) Contains(t float64) bool {
	return t >= f.Start && t <= f.End
}

// Element is one timed object on the editor timeline.
//
// Drawable and Media are handles into externally owned objects (the
// scene graph and the host media element); either may be nil while the
// element is not mounted, and every consumer tolerates that.
type Element struct {
	ID        string
	Name      string
	Kind      Kind
	Placement Placement
	TimeFrame TimeFrame

	// Variant payload: Src for video/image, Text for text elements.
	Src  string
	Text string

	Drawable stage.Drawable
	Media    stage.MediaClock
}

// NewID returns a fresh globally unique id for elements and animation
// segments.
func NewID() string {
	return uuid.New().String()
}
