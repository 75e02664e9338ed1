// Package audio produces the crackle played when new cells catch fire.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"burn/internal/core"
)

// SampleRate is the output rate of every generator in this package.
const SampleRate = beep.SampleRate(44100)

const burstLength = 120 * time.Millisecond

// Crackle streams decaying noise with a low rumble underneath.
type Crackle struct {
	sr    beep.SampleRate
	pos   int
	gain  float64
	noise *core.RNG
}

// NewCrackle returns an endless crackle at the given gain.
func NewCrackle(sr beep.SampleRate, gain float64, seed int64) *Crackle {
	return &Crackle{sr: sr, gain: gain, noise: core.NewRNG(seed)}
}

// Stream implements beep.Streamer.
func (c *Crackle) Stream(samples [][2]float64) (int, bool) {
	src := c.noise.Source()
	for i := range samples {
		t := float64(c.pos) / float64(c.sr)
		envelope := math.Exp(-t * 30)
		noise := src.Float64()*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*90*t)
		v := c.gain * envelope * (0.7*noise + rumble)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (c *Crackle) Err() error { return nil }

// Burst returns one finite crackle whose loudness grows with the number of
// cells that ignited, capped so large spreads do not clip.
func Burst(sr beep.SampleRate, ignited int, seed int64) beep.Streamer {
	if ignited < 1 {
		ignited = 1
	}
	gain := math.Min(0.15+0.05*float64(ignited), 0.6)
	return beep.Take(sr.N(burstLength), NewCrackle(sr, gain, seed))
}
