package editor

import (
	"github.com/luckyshark1012/fabric-video-editor/internal/animation"
	"github.com/luckyshark1012/fabric-video-editor/internal/config"
	"github.com/luckyshark1012/fabric-video-editor/internal/element"
	"github.com/luckyshark1012/fabric-video-editor/internal/playback"
	"github.com/luckyshark1012/fabric-video-editor/internal/stage"
	"github.com/luckyshark1012/fabric-video-editor/internal/timeline"
)

// Store is the single owned context of the editor: the element list,
// the animation segments, the composed timeline and the playback clock
// all live here and are mutated only through it. There is no ambient
// state; every component receives the store explicitly.
//
// All mutation happens on one logical execution context (the host frame
// loop), so the store takes no locks.
type Store struct {
	cfg      *config.Config
	elements []element.Element
	segments []animation.Segment
	timeline *timeline.Timeline
	clock    *playback.Clock
}

func NewStore(cfg *config.Config, scheduler playback.Scheduler) *Store {
	s := &Store{
		cfg:      cfg,
		timeline: timeline.New(cfg.MaxTimeMs),
	}
	s.clock = playback.NewClock(cfg.FPS, cfg.MaxTimeMs, scheduler, s)
	return s
}

func (s *Store) Config() *config.Config { return s.cfg }

func (s *Store) Clock() *playback.Clock { return s.clock }

// Elements returns the current element snapshot. Mutations replace the
// list wholesale, so a held snapshot stays internally consistent.
func (s *Store) Elements() []element.Element { return s.elements }

func (s *Store) Segments() []animation.Segment { return s.segments }

func (s *Store) Timeline() *timeline.Timeline { return s.timeline }

// Element resolves one element by id.
func (s *Store) Element(id string) (element.Element, bool) {
	return element.Find(s.elements, id)
}

// AddElement appends el to the element list. Ids are the caller's
// responsibility (element.NewID).
func (s *Store) AddElement(el element.Element) {
	s.elements = element.Append(s.elements, el)
}

// RemoveElement drops the element carrying id. Animation segments that
// still reference it stay in the segment list and are skipped on the
// next timeline rebuild; that tolerance is deliberate.
func (s *Store) RemoveElement(id string) {
	s.elements = element.Remove(s.elements, id)
}

// UpdateElement replaces the stored element with the same id.
func (s *Store) UpdateElement(el element.Element) {
	s.elements = element.Replace(s.elements, el)
}

// UpdateTimeFrame merges a partial window update into the element's
// time frame. Start clamps to >= 0, end clamps to <= maxTime, and the
// window never inverts. Media clocks are resynchronized before the
// element list is replaced, matching the host ordering.
func (s *Store) UpdateTimeFrame(id string, start, end *float64) {
	el, ok := element.Find(s.elements, id)
	if !ok {
		return
	}
	tf := el.TimeFrame
	if start != nil {
		v := *start
		if v < 0 {
			v = 0
		}
		tf.Start = v
	}
	if end != nil {
		v := *end
		if v > s.cfg.MaxTimeMs {
			v = s.cfg.MaxTimeMs
		}
		tf.End = v
	}
	if tf.Start > tf.End {
		tf.Start = tf.End
	}
	el.TimeFrame = tf

	s.syncMedia(s.clock.CurrentTimeMs())
	s.elements = element.Replace(s.elements, el)
}

// AddAnimation validates seg, appends it and rebuilds the composed
// timeline from scratch.
func (s *Store) AddAnimation(seg animation.Segment) error {
	if err := seg.Validate(); err != nil {
		return err
	}
	s.segments = append(s.segments, seg)
	s.rebuild()
	return nil
}

// RemoveAnimation drops the segment carrying id and rebuilds.
func (s *Store) RemoveAnimation(id string) {
	out := make([]animation.Segment, 0, len(s.segments))
	for _, seg := range s.segments {
		if seg.ID != id {
			out = append(out, seg)
		}
	}
	s.segments = out
	s.rebuild()
}

// rebuild discards the previous composed timeline entirely and derives
// a fresh one from the segment list. Always full, never incremental.
func (s *Store) rebuild() {
	s.timeline = animation.Build(s.segments, s.elements, s.cfg.MaxTimeMs)
}

// Play starts the global clock and brings every video clock with it.
func (s *Store) Play() {
	s.clock.Start()
	s.syncMedia(s.clock.CurrentTimeMs())
}

// Pause freezes the global clock and pauses every video.
func (s *Store) Pause() {
	s.clock.Stop()
	s.syncMedia(s.clock.CurrentTimeMs())
}

// Seek jumps the playhead to ms. Seeking during playback stops it
// first; the pending frame tick then exits without applying a stale
// position.
func (s *Store) Seek(ms float64) {
	s.clock.SeekTo(ms)
}

// ApplyPosition is the single write path of the playhead: it stores the
// quantized position, seeks the composed timeline, recomputes every
// element's visibility and drives the video media clocks. Called by the
// playback clock on every tick and by Seek.
//
// The whole update completes before control returns to the frame loop,
// so no partially applied position is ever observable.
func (s *Store) ApplyPosition(t float64) {
	s.clock.SetCurrentTimeMs(t)
	s.timeline.Seek(t)

	// Visibility is evaluated independently per element on every call,
	// no diffing against the previous position.
	for _, el := range s.elements {
		if el.Drawable == nil {
			continue
		}
		if el.TimeFrame.Contains(t) {
			el.Drawable.SetProperty(stage.PropOpacity, 1)
		} else {
			el.Drawable.SetProperty(stage.PropOpacity, 0)
		}
	}

	s.syncMedia(t)
}

// syncMedia sets each video's own clock relative to its window start
// and mirrors the global play/pause state onto it. Videos without a
// mounted media handle are skipped for this pass only.
func (s *Store) syncMedia(t float64) {
	for _, el := range s.elements {
		if el.Kind != element.KindVideo || el.Media == nil {
			continue
		}
		el.Media.SetCurrentTime((t - el.TimeFrame.Start) / 1000)
		if s.clock.Playing() {
			el.Media.Play()
		} else {
			el.Media.Pause()
		}
	}
}
