package stage

// Property names one numeric drawable attribute the editor can animate.
type Property string

const (
	PropLeft     Property = "left"
	PropTop      Property = "top"
	PropWidth    Property = "width"
	PropHeight   Property = "height"
	PropRotation Property = "rotation"
	PropScaleX   Property = "scaleX"
	PropScaleY   Property = "scaleY"
	PropOpacity  Property = "opacity"
)

// Animatable reports whether p is a known drawable property.
func (p Property) Animatable() bool {
	switch p {
	case PropLeft, PropTop, PropWidth, PropHeight, PropRotation, PropScaleX, PropScaleY, PropOpacity:
		return true
	}
	return false
}

// Drawable is one object on the host scene graph. Property sets take
// effect synchronously; the engine holds nothing but the handle.
type Drawable interface {
	GetProperty(p Property) float64
	SetProperty(p Property, v float64)
}

// MediaClock is the internal playback clock of one video element.
// Times are in seconds, matching the host media element convention.
type MediaClock interface {
	CurrentTime() float64
	SetCurrentTime(sec float64)
	Play()
	Pause()
	Playing() bool
	Duration() float64
	VideoWidth() int
	VideoHeight() int
}
