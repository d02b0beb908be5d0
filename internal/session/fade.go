package session

import "time"

// Fade animates a value from From to To over Duration with an out-cubic
// easing curve.
type Fade struct {
	From, To float64
	Duration time.Duration

	elapsed time.Duration
}

// Step advances the animation by dt and returns the current value.
func (f *Fade) Step(dt time.Duration) float64 {
	f.elapsed += dt
	return f.Value()
}

// Value returns the current value without advancing.
func (f *Fade) Value() float64 {
	if f.Duration <= 0 || f.elapsed >= f.Duration {
		return f.To
	}
	t := float64(f.elapsed) / float64(f.Duration)
	return f.From + (f.To-f.From)*outCubic(t)
}

// Done reports whether the animation has reached To.
func (f *Fade) Done() bool {
	return f.Duration <= 0 || f.elapsed >= f.Duration
}

func outCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
