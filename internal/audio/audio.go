// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"chosenoffset.com/multiball/internal/config"
	"chosenoffset.com/multiball/internal/game"
)

// Minimum gap between two cues of the same kind. Five balls can hit walls
// in the same frame; they share one cue.
const cueCooldown = 40 * time.Millisecond

// note is a single sine tone
type note struct {
	freq float64
	dur  time.Duration
}

// cues maps each event to the notes played in sequence
var cues = map[game.EventKind][]note{
	game.EventWallBounce: {{freq: 660, dur: 20 * time.Millisecond}},
	game.EventPaddleHit:  {{freq: 880, dur: 50 * time.Millisecond}},
	game.EventServe: {
		{freq: 330, dur: 80 * time.Millisecond},
		{freq: 220, dur: 120 * time.Millisecond},
	},
}

// Player turns game events into sounds. It implements game.Listener.
type Player struct {
	rate       beep.SampleRate
	volume     float64
	wallBounce bool

	last map[game.EventKind]time.Time
	now  func() time.Time
	play func(beep.Streamer)
}

// NewPlayer initializes the speaker and returns a player for it.
func NewPlayer(cfg config.AudioConfig) (*Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return newPlayer(cfg, func(s beep.Streamer) { speaker.Play(s) }), nil
}

func newPlayer(cfg config.AudioConfig, play func(beep.Streamer)) *Player {
	return &Player{
		rate:       beep.SampleRate(cfg.SampleRate),
		volume:     cfg.Volume,
		wallBounce: cfg.WallBounce,
		last:       make(map[game.EventKind]time.Time),
		now:        time.Now,
		play:       play,
	}
}

// OnEvent plays the cue for an event unless the same cue played recently.
func (p *Player) OnEvent(e game.Event) {
	notes, ok := cues[e.Kind]
	if !ok {
		return
	}
	if e.Kind == game.EventWallBounce && !p.wallBounce {
		return
	}

	now := p.now()
	if last, ok := p.last[e.Kind]; ok && now.Sub(last) < cueCooldown {
		return
	}
	p.last[e.Kind] = now

	s, err := p.streamer(notes)
	if err != nil {
		log.Printf("Audio cue failed: %v", err)
		return
	}
	p.play(s)
}

// streamer builds the sequence of notes at the player's volume.
func (p *Player) streamer(notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(p.rate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(p.rate.N(n.dur), sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   p.volume,
	}, nil
}
