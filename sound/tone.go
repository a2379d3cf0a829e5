package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// tone is a fixed-length oscillator
type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// Tone creates a mono oscillator of the given frequency and duration
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade applies a linear release over the last part of a stream
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

// Fade shapes s with a linear release of length release ending at total
func Fade(s beep.Streamer, total, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, total: rate.N(total), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.release > 0 && f.position >= start {
			vol = float64(f.total-f.position) / float64(f.release)
			if vol < 0 {
				vol = 0
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// gain scales s linearly; zero or less is silent
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// click is a short sine blip
func click(rate beep.SampleRate) beep.Streamer {
	d := 25 * time.Millisecond
	return gain(Fade(Tone(1200, d, WaveSine, rate), d, 15*time.Millisecond, rate), 0.3)
}

// bell is two stacked square partials
func bell(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	return gain(beep.Mix(
		Fade(Tone(880, d, WaveSquare, rate), d, 80*time.Millisecond, rate),
		gain(Fade(Tone(1320, d, WaveSine, rate), d, 80*time.Millisecond, rate), 0.5),
	), 0.2)
}
