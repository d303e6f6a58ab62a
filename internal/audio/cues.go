// Package audio plays short synthesized cues for game events. Everything is
// generated, no sample assets.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-typing-defense/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and mixes cues into it. It subscribes to the
// game's event dispatcher; all cues are fire-and-forget.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Call once before the game loop; a Manager
// that was never initialized swallows all cues, which keeps tests and
// headless runs silent.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Register subscribes the manager to every cue-bearing event type.
func (m *Manager) Register(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.InputAccepted,
		event.InputRejected,
		event.HostileDestroyed,
		event.DefenderDamaged,
		event.WaveStarted,
		event.GameOver,
	} {
		d.Subscribe(t, m)
	}
}

func (m *Manager) OnEvent(e event.Event) {
	switch e.Type {
	case event.InputAccepted:
		m.play(880, 35*time.Millisecond, waveSine)
	case event.InputRejected:
		m.play(120, 120*time.Millisecond, waveSquare)
	case event.HostileDestroyed:
		m.play(1320, 90*time.Millisecond, waveSine)
	case event.DefenderDamaged:
		m.play(90, 250*time.Millisecond, waveSquare)
	case event.WaveStarted:
		m.play(523, 180*time.Millisecond, waveSine)
	case event.GameOver:
		m.play(110, 600*time.Millisecond, waveSine)
	}
}

func (m *Manager) play(freq float64, duration time.Duration, wave waveType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	// The speaker goroutine streams from the mixer concurrently.
	speaker.Lock()
	m.mixer.Add(beep.Take(sampleRate.N(duration), newOscillator(freq, wave, sampleRate)))
	speaker.Unlock()
}

type waveType int

const (
	waveSine waveType = iota
	waveSquare
)

// oscillator generates a raw tone. Volume is fixed low so stacked cues do
// not clip.
type oscillator struct {
	freq  float64
	phase float64
	wave  waveType
	rate  beep.SampleRate
}

func newOscillator(freq float64, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}
		val *= 0.25

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }
