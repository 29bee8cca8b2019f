package service

import (
	"math/rand/v2"
	"sync"
	"time"
)

// ProgressSource exposes a percentage in [0,100] for the front-end to render.
// The synthetic implementation below can be swapped for real server-sent
// progress without touching the committer.
type ProgressSource interface {
	Value() int
}

const (
	progressCeiling = 92
	progressStepMin = 3
	progressStepMax = 6

	defaultTick = 500 * time.Millisecond
	defaultHold = 800 * time.Millisecond
)

// SyntheticProgress fakes forward motion while a commit request is pending.
// It rises by a random step per tick, holds below 100 until the request
// settles, jumps to 100 on Finish, and drops back to 0 after a short display
// hold. It never reports the request's outcome, only that work is ongoing.
type SyntheticProgress struct {
	mu        sync.Mutex
	value     int
	running   bool
	stopCh    chan struct{}
	holdTimer *time.Timer

	tick time.Duration
	hold time.Duration
}

// ProgressOption customizes a SyntheticProgress.
type ProgressOption func(*SyntheticProgress)

// WithTick overrides the rise interval, mainly for tests.
func WithTick(d time.Duration) ProgressOption {
	return func(p *SyntheticProgress) { p.tick = d }
}

// WithHold overrides how long 100% stays visible before resetting.
func WithHold(d time.Duration) ProgressOption {
	return func(p *SyntheticProgress) { p.hold = d }
}

// NewSyntheticProgress returns an idle estimator at 0%.
func NewSyntheticProgress(opts ...ProgressOption) *SyntheticProgress {
	p := &SyntheticProgress{
		tick: defaultTick,
		hold: defaultHold,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Value returns the current percentage, always in [0,100].
func (p *SyntheticProgress) Value() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Start enters the rising phase. A pending display hold from a previous run
// is cancelled so it cannot zero the new run's value.
func (p *SyntheticProgress) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	if p.holdTimer != nil {
		p.holdTimer.Stop()
		p.holdTimer = nil
	}
	p.value = 0
	p.running = true
	p.stopCh = make(chan struct{})
	go p.rise(p.stopCh)
}

// Finish is called when the commit request settles, success or failure. The
// bar jumps to 100 and resets to 0 after the display hold.
func (p *SyntheticProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	close(p.stopCh)
	p.running = false
	p.value = 100
	p.holdTimer = time.AfterFunc(p.hold, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if !p.running {
			p.value = 0
		}
	})
}

// Stop tears the estimator down without the 100% display: session reset, new
// file selection, component teardown. Safe to call at any time.
func (p *SyntheticProgress) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		close(p.stopCh)
		p.running = false
	}
	if p.holdTimer != nil {
		p.holdTimer.Stop()
		p.holdTimer = nil
	}
	p.value = 0
}

func (p *SyntheticProgress) rise(stopCh chan struct{}) {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			p.advance()
		}
	}
}

func (p *SyntheticProgress) advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.value += progressStepMin + rand.IntN(progressStepMax-progressStepMin+1)
	if p.value > progressCeiling {
		p.value = progressCeiling
	}
}
