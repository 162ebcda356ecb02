package audio

import (
	"log"
	"math"
	"time"

	"blob-game/game"
	"blob-game/game/types"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	baseFreq     = 440.0
	startFreq    = 660.0
	gameOverFreq = 110.0
	maxSemitones = 24 // Consumption pitch stops rising two octaves up

	blipDuration     = 50 * time.Millisecond
	startDuration    = 120 * time.Millisecond
	gameOverDuration = 400 * time.Millisecond

	cueVolume = 0.4
)

// Cue is a sound-worthy change between two snapshots
type Cue int

const (
	CueNone Cue = iota
	CueStart
	CueConsume
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueConsume:
		return "consume"
	case CueGameOver:
		return "game-over"
	default:
		return "none"
	}
}

// Detect compares consecutive snapshots of the same session. A game over wins
// over a consumption in the same tick.
func Detect(prev, next game.Snapshot) Cue {
	if prev.SessionID != next.SessionID {
		return CueNone
	}
	switch {
	case prev.Lifecycle == types.Playing && next.Lifecycle == types.GameOver:
		return CueGameOver
	case prev.Lifecycle == types.Waiting && next.Lifecycle == types.Playing:
		return CueStart
	case next.Score > prev.Score:
		return CueConsume
	default:
		return CueNone
	}
}

// ConsumeFrequency rises a semitone per point up to maxSemitones
func ConsumeFrequency(score int) float64 {
	steps := math.Min(float64(score), maxSemitones)
	return baseFreq * math.Pow(2, steps/12)
}

// Cues plays short generated tones through the speaker. A Cues whose speaker
// failed to start stays silent.
type Cues struct {
	enabled bool
}

// NewCues opens the speaker unless muted. Audio failure is not fatal.
func NewCues(mute bool) *Cues {
	c := &Cues{}
	if mute {
		return c
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return c
	}
	c.enabled = true
	return c
}

// Observe plays the cue for the change between prev and next, if any
func (c *Cues) Observe(prev, next game.Snapshot) Cue {
	cue := Detect(prev, next)
	c.Play(cue, next.Score)
	return cue
}

func (c *Cues) Play(cue Cue, score int) {
	if !c.enabled {
		return
	}

	switch cue {
	case CueStart:
		c.tone(startFreq, startDuration)
	case CueConsume:
		c.tone(ConsumeFrequency(score), blipDuration)
	case CueGameOver:
		c.tone(gameOverFreq, gameOverDuration)
	}
}

func (c *Cues) tone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("Audio tone %.0fHz: %v", freq, err)
		return
	}
	shaped := beep.Take(sampleRate.N(d), sine)
	speaker.Play(&effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(cueVolume)})
}

func (c *Cues) Close() {
	if c.enabled {
		speaker.Close()
		c.enabled = false
	}
}
