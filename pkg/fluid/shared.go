package fluid

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const pausePoll = 10 * time.Millisecond

// Shared serialises every access to a Fluid behind a single mutex so that a
// background tick loop and foreground injection can run side by side. A
// relaxation sweep reads cells it has just written, so a step must never
// interleave with an injection.
type Shared struct {
	mu     sync.Mutex
	f      *Fluid
	steps  atomic.Uint64
	paused atomic.Bool
}

func NewShared(f *Fluid) *Shared {
	return &Shared{f: f}
}

// Step runs one simulation step under the lock.
func (s *Shared) Step() {
	s.mu.Lock()
	s.f.Step()
	s.mu.Unlock()
	s.steps.Add(1)
}

func (s *Shared) AddDensity(x, y, z int, amount float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.AddDensity(x, y, z, amount)
}

func (s *Shared) AddVelocity(x, y, z int, vx, vy, vz float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.AddVelocity(x, y, z, vx, vy, vz)
}

func (s *Shared) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.Reset()
}

// View calls fn with the lock held. fn must not retain the Fluid or any view
// obtained from it after returning.
func (s *Shared) View(fn func(f *Fluid)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.f)
}

// CopyDensity copies the density field into dst under the lock.
func (s *Shared) CopyDensity(dst []float32) []float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Density().CopyTo(dst)
}

// Steps returns how many steps have completed through this Shared.
func (s *Shared) Steps() uint64 { return s.steps.Load() }

// SetPaused stops or resumes stepping in Run. Injection still works while
// paused.
func (s *Shared) SetPaused(paused bool) { s.paused.Store(paused) }
func (s *Shared) Paused() bool          { return s.paused.Load() }

// Run steps the simulation once per interval until ctx is done and then
// returns ctx.Err(). A step in progress always completes; cancellation is
// only observed between steps. A non-positive interval steps back to back.
func (s *Shared) Run(ctx context.Context, interval time.Duration) error {
	log := Logger()
	log.Info("fluid: tick loop started", "interval", interval)
	defer func() {
		log.Info("fluid: tick loop stopped", "steps", s.Steps())
	}()

	if interval <= 0 {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			if s.Paused() {
				select {
				case <-ctx.Done():
				case <-time.After(pausePoll):
				}
				continue
			}
			s.Step()
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !s.Paused() {
				s.Step()
			}
		}
	}
}
