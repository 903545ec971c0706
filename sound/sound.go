// Package sound plays short synthesized blips for game events
package sound

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays event sounds. The zero value, or a Player whose device
// failed to open, is silent.
type Player struct {
	ready bool
}

// New opens the audio device when enabled. Failure is not fatal; the game
// runs without sound.
func New(enabled bool) *Player {
	p := &Player{}
	if !enabled {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return p
	}
	p.ready = true
	return p
}

// Pickup plays a short rising two-note chime
func (p *Player) Pickup() {
	p.play(
		tone(880, 40*time.Millisecond),
		tone(1320, 60*time.Millisecond),
	)
}

// Crash plays a falling low rumble
func (p *Player) Crash() {
	p.play(
		tone(220, 90*time.Millisecond),
		tone(165, 90*time.Millisecond),
		tone(110, 200*time.Millisecond),
	)
}

// Start plays a single click when a run begins
func (p *Player) Start() {
	p.play(tone(660, 30*time.Millisecond))
}

func (p *Player) play(parts ...beep.Streamer) {
	if p == nil || !p.ready {
		return
	}
	var seq []beep.Streamer
	for _, s := range parts {
		if s != nil {
			seq = append(seq, s)
		}
	}
	if len(seq) == 0 {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(seq...),
		Base:     2,
		Volume:   -2,
	})
}

// tone returns a sine note of the given length, or nil if the generator
// rejects the frequency
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(sampleRate.N(d), sine)
}
