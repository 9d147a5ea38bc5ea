package playback

import (
	"math"
	"time"
)

// Scheduler invokes fn once before the next rendering frame. It is the
// host's requestAnimationFrame equivalent.
type Scheduler interface {
	Schedule(fn func())
}

// Applier receives every position the clock produces and is responsible
// for making the rest of the editor consistent with it.
type Applier interface {
	ApplyPosition(ms float64)
}

// State of the clock. Stopped is both the initial state and the state
// after playback runs off the end; there is no terminal state.
type State int

const (
	Stopped State = iota
	Playing
)

// Clock converts wall-clock time into a logical timeline position.
//
// The position is stored as a frame counter, not as milliseconds: every
// stored position lands exactly on the 1000/fps grid. While playing the
// position is always recomputed from the anchors taken at Start, never
// accumulated tick to tick, so arbitrary host work between frames does
// not drift the playhead.
type Clock struct {
	fps       int
	maxTimeMs float64
	frame     int64
	state     State

	wallAnchor time.Time
	posAnchor  float64

	now       func() time.Time
	scheduler Scheduler
	applier   Applier
}

func NewClock(fps int, maxTimeMs float64, scheduler Scheduler, applier Applier) *Clock {
	if fps <= 0 {
		fps = 60
	}
	return &Clock{
		fps:       fps,
		maxTimeMs: maxTimeMs,
		now:       time.Now,
		scheduler: scheduler,
		applier:   applier,
	}
}

// SetNow overrides the wall-clock source. Tests only.
func (c *Clock) SetNow(now func() time.Time) {
	c.now = now
}

func (c *Clock) State() State { return c.state }

func (c *Clock) Playing() bool { return c.state == Playing }

func (c *Clock) FPS() int { return c.fps }

func (c *Clock) MaxTimeMs() float64 { return c.maxTimeMs }

func (c *Clock) SetMaxTimeMs(ms float64) { c.maxTimeMs = ms }

// CurrentTimeMs returns the quantized playhead position.
func (c *Clock) CurrentTimeMs() float64 {
	return float64(c.frame) * 1000 / float64(c.fps)
}

// SetCurrentTimeMs stores ms quantized onto the frame grid:
// floor(ms/1000*fps) whole frames. Negative positions clamp to zero.
func (c *Clock) SetCurrentTimeMs(ms float64) {
	frame := int64(math.Floor(ms * float64(c.fps) / 1000))
	if frame < 0 {
		frame = 0
	}
	c.frame = frame
}

// Start begins playback from the current position, recording the wall
// clock and the position as anchors. Calling Start while already
// playing refreshes the anchors but does not spawn a second tick loop.
func (c *Clock) Start() {
	c.wallAnchor = c.now()
	c.posAnchor = c.CurrentTimeMs()
	if c.state == Playing {
		return
	}
	c.state = Playing
	c.scheduler.Schedule(c.Tick)
}

// Tick advances the playhead by the wall-clock time elapsed since the
// anchors were taken, applies the new position, and schedules itself
// for the next frame. Running off the end of the timeline resets the
// position to zero and stops.
//
// A Stop or SeekTo issued between frames makes the pending tick exit
// before applying a stale position.
func (c *Clock) Tick() {
	if c.state != Playing {
		return
	}
	pos := c.posAnchor + float64(c.now().Sub(c.wallAnchor))/float64(time.Millisecond)
	if pos > c.maxTimeMs {
		c.state = Stopped
		c.applier.ApplyPosition(0)
		return
	}
	c.applier.ApplyPosition(pos)
	c.scheduler.Schedule(c.Tick)
}

// Stop freezes the playhead at its last applied position.
func (c *Clock) Stop() {
	c.state = Stopped
}

// SeekTo stops playback if it is running, then applies ms as the new
// position. Valid in either state.
func (c *Clock) SeekTo(ms float64) {
	c.state = Stopped
	c.applier.ApplyPosition(ms)
}
