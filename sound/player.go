// Package sound plays short feedback tones through the system speaker
package sound

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player mixes feedback tones into the speaker
// A Player that failed to initialize silently drops every sound
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

var speakerOnce struct {
	sync.Once
	err error
}

// initSpeaker initializes the process-wide speaker once
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
	})
	return speakerOnce.err
}

// NewPlayer returns a Player; when disabled, or when the speaker cannot
// be opened, the Player is a no-op
func NewPlayer(enabled bool) *Player {
	p := &Player{mixer: &beep.Mixer{}}
	if !enabled {
		return p
	}
	if err := initSpeaker(); err != nil {
		log.Printf("sound: speaker init failed, continuing without audio: %v", err)
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p
}

// Enabled reports whether sounds reach the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Click plays a short key-press blip
func (p *Player) Click() {
	p.play(click(sampleRate))
}

// Bell plays an attention tone
func (p *Player) Bell() {
	p.play(bell(sampleRate))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all queued sounds; the Player is a no-op afterwards
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}
