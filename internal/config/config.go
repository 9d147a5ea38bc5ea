package config

// Defaults for the timeline bounds, playback grid and canvas.
const (
	DefaultMaxTimeMs = 30000
	DefaultFPS       = 60
	DefaultWidth     = 800
	DefaultHeight    = 500
)

type Config struct {
	MaxTimeMs float64 // total timeline duration in milliseconds
	FPS       int     // frame grid used to quantize the playhead
	Width     int     // canvas width in pixels
	Height    int     // canvas height in pixels
	Workers   int     // parallel asset ingest workers
}

func Default() *Config {
	return &Config{
		MaxTimeMs: DefaultMaxTimeMs,
		FPS:       DefaultFPS,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Workers:   4,
	}
}
