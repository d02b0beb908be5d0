package tone

import (
	"encoding/binary"
	"testing"
	"time"
)

func samples(pcm []byte) []int16 {
	out := make([]int16, len(pcm)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(pcm[2*i:]))
	}
	return out
}

func TestTick_Length(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want int
	}{
		{"40ms", 40 * time.Millisecond, 4 * 1920},
		{"1s", time.Second, 4 * SampleRate},
		{"zero", 0, 0},
		{"negative", -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Tick(SampleRate, tt.d, 1200)); got != tt.want {
				t.Errorf("len(Tick(%v)) = %d, want %d", tt.d, got, tt.want)
			}
		})
	}
}

func TestTick_Shape(t *testing.T) {
	s := samples(Tick(SampleRate, 50*time.Millisecond, 1000))

	if s[0] != 0 || s[1] != 0 {
		t.Errorf("first frame = %d/%d, want silence at the start of the attack", s[0], s[1])
	}

	var peak int16
	for i := 0; i < len(s); i += 2 {
		if s[i] != s[i+1] {
			t.Fatalf("frame %d channels differ: %d vs %d", i/2, s[i], s[i+1])
		}
		peak = max(peak, s[i], -s[i])
	}
	if limit := int16(0.25*32767) + 1; peak > limit || peak < limit/2 {
		t.Errorf("peak = %d, want between %d and %d", peak, limit/2, limit)
	}

	tail := s[len(s)-2]
	if tail > 100 || tail < -100 {
		t.Errorf("last sample = %d, want decayed to near silence", tail)
	}
}
