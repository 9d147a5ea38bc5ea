package stage

// OfflineMediaClock mimics the clock of a host video element for
// headless runs: it only tracks the state the engine commands, it does
// not advance on its own.
type OfflineMediaClock struct {
	currentTime float64
	playing     bool
	duration    float64
	width       int
	height      int
}

func NewOfflineMediaClock(durationSec float64, width, height int) *OfflineMediaClock {
	return &OfflineMediaClock{duration: durationSec, width: width, height: height}
}

func (m *OfflineMediaClock) CurrentTime() float64 { return m.currentTime }

func (m *OfflineMediaClock) SetCurrentTime(sec float64) { m.currentTime = sec }

func (m *OfflineMediaClock) Play() { m.playing = true }

func (m *OfflineMediaClock) Pause() { m.playing = false }

func (m *OfflineMediaClock) Playing() bool { return m.playing }

func (m *OfflineMediaClock) Duration() float64 { return m.duration }

func (m *OfflineMediaClock) VideoWidth() int { return m.width }

func (m *OfflineMediaClock) VideoHeight() int { return m.height }
