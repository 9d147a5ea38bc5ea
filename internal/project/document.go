package project

// Document is the YAML representation of a full editor project: the
// timed elements and the animation segments applied to them. It is a
// dev/test convenience, not a versioned persistence contract.
type Document struct {
	Version    string      `yaml:"version"`
	MaxTimeMs  float64     `yaml:"maxTimeMs,omitempty"`
	FPS        int         `yaml:"fps,omitempty"`
	Elements   []Element   `yaml:"elements"`
	Animations []Animation `yaml:"animations,omitempty"`
}

// Element is one timed object in the document.
type Element struct {
	ID        string     `yaml:"id,omitempty"`
	Name      string     `yaml:"name,omitempty"`
	Kind      string     `yaml:"kind"`
	Src       string     `yaml:"src,omitempty"`
	Text      string     `yaml:"text,omitempty"`
	Placement *Placement `yaml:"placement,omitempty"`
	TimeFrame *TimeFrame `yaml:"timeFrame,omitempty"`
}

// Placement mirrors element.Placement.
type Placement struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Rotation float64 `yaml:"rotation,omitempty"`
	ScaleX   float64 `yaml:"scaleX,omitempty"`
	ScaleY   float64 `yaml:"scaleY,omitempty"`
}

// TimeFrame is the element's visibility window in milliseconds.
type TimeFrame struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Animation is one keyframe transition in the document.
type Animation struct {
	ID        string  `yaml:"id,omitempty"`
	TargetID  string  `yaml:"targetId"`
	EndTimeMs float64 `yaml:"endTimeMs"`
	Property  string  `yaml:"property"`
	Value     float64 `yaml:"value"`
	Easing    string  `yaml:"easing,omitempty"`
	DelayMs   float64 `yaml:"delayMs,omitempty"`
}
