package timeline

// Easing selects the interpolation curve of one entry.
type Easing string

const (
	EaseLinear     Easing = "linear"
	EaseInOutCubic Easing = "easeInOutCubic"
)

// Valid reports whether e is a supported easing. The empty string is
// accepted and treated as linear.
func (e Easing) Valid() bool {
	switch e {
	case "", EaseLinear, EaseInOutCubic:
		return true
	}
	return false
}

// apply maps linear progress t in [0,1] onto the curve.
func (e Easing) apply(t float64) float64 {
	if e == EaseInOutCubic {
		return easeInOutCubic(t)
	}
	return t
}

// easeInOutCubic applies smooth easing function
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - pow(-2*t+2, 3)/2
}

// pow calculates x^n
func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
