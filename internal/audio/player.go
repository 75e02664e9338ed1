//go:build audio

package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player mixes crackle bursts onto the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	seed        int64
}

// NewPlayer returns an idle player. Call Init before Ignite.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Ignite queues one crackle sized by the number of new fires.
func (p *Player) Ignite(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || n <= 0 {
		return
	}
	p.seed++
	burst := Burst(SampleRate, n, p.seed)
	speaker.Lock()
	p.mixer.Add(burst)
	speaker.Unlock()
}

// Close silences pending bursts.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
