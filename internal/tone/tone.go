// Package tone synthesizes the short click played when the overlay captures
// a point.
package tone

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate is the rate Tick output is meant to be played at.
const SampleRate = 48000

// Tick returns a percussive click as 16-bit little-endian stereo PCM.
// The click is a sine at freqHz with a 2ms raised-cosine attack and an
// exponential decay reaching about -60dB at the end. The pitch drops by a
// fifth over the duration.
func Tick(sampleRate int, d time.Duration, freqHz float64) []byte {
	n := int(math.Round(float64(sampleRate) * d.Seconds()))
	if n <= 1 {
		return nil
	}

	const (
		amp    = 0.25
		lambda = 6.9 // exp(-6.9) ≈ 0.001
		drop   = 2.0 / 3.0
	)
	attackN := min(int(0.002*float64(sampleRate)), n/4)

	out := make([]byte, 0, 4*n)
	phase := 0.0
	for i := range n {
		t := float64(i) / float64(n-1)

		env := amp * math.Exp(-lambda*t)
		if i < attackN {
			env *= 0.5 - 0.5*math.Cos(math.Pi*float64(i)/float64(attackN))
		}

		f := freqHz * math.Pow(drop, t)
		phase += 2 * math.Pi * f / float64(sampleRate)

		s := int16(clampUnit(math.Sin(phase)*env) * math.MaxInt16)
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}
	return out
}

func clampUnit(x float64) float64 {
	return max(-1, min(1, x))
}
