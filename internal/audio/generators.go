package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ChopGenerator is a short thud: a decaying low sine under filtered noise.
type ChopGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	prev float64
}

func NewChopGenerator(sr beep.SampleRate) *ChopGenerator {
	return &ChopGenerator{sr: sr, seed: 1}
}

func (g *ChopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 30)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		// one-pole low-pass keeps the crack woody instead of hissy
		g.prev += 0.2 * (noise - g.prev)

		thud := math.Sin(2 * math.Pi * 90 * t)
		sample := 0.35 * envelope * (0.6*thud + 0.4*g.prev)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChopGenerator) Err() error {
	return nil
}

// CoinGenerator is a bright square blip that jumps a fifth halfway through.
type CoinGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewCoinGenerator(sr beep.SampleRate, freq float64) *CoinGenerator {
	return &CoinGenerator{sr: sr, freq: freq}
}

func (g *CoinGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := g.freq
		if t > 0.04 {
			freq *= 1.5
		}
		sample := 0.12
		if math.Sin(2*math.Pi*freq*t) < 0 {
			sample = -0.12
		}
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*12)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CoinGenerator) Err() error {
	return nil
}
