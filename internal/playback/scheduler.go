package playback

// StepScheduler queues callbacks and runs them when the host steps a
// frame. It is the headless stand-in for requestAnimationFrame:
// single-threaded and cooperative, callbacks scheduled during a step
// run on the next step, never re-entrantly.
type StepScheduler struct {
	pending []func()
}

func NewStepScheduler() *StepScheduler {
	return &StepScheduler{}
}

func (s *StepScheduler) Schedule(fn func()) {
	s.pending = append(s.pending, fn)
}

// Step runs the callbacks scheduled so far and returns how many ran.
func (s *StepScheduler) Step() int {
	batch := s.pending
	s.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Pending reports whether a callback is waiting for the next frame.
func (s *StepScheduler) Pending() bool {
	return len(s.pending) > 0
}
