// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slideshow shows random paintings from the collection, on demand
// or on a fixed interval.
package slideshow

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pdiddy/gallery/internal/collection"
	"github.com/pdiddy/gallery/internal/display"
)

// DefaultInterval is the auto-rotation period.
const DefaultInterval = 10 * time.Second

// EmptyNotice is shown when there is nothing to render.
const EmptyNotice = "no paintings in the collection, collect some first"

// Rotator renders random paintings. Its auto-rotation lifecycle is
// independent of acquisition: it reads the store on every tick.
type Rotator struct {
	store    *collection.Store
	display  display.Display
	interval time.Duration

	randMu sync.Mutex
	rng    *rand.Rand

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a stopped rotator. A non-positive interval uses DefaultInterval.
func New(store *collection.Store, d display.Display, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{store: store, display: d, interval: interval}
}

// WithRand makes painting selection deterministic for tests.
func (r *Rotator) WithRand(rng *rand.Rand) *Rotator {
	r.randMu.Lock()
	r.rng = rng
	r.randMu.Unlock()
	return r
}

// Interval returns the auto-rotation period.
func (r *Rotator) Interval() time.Duration { return r.interval }

// Next renders one random painting. It reports false and shows an error
// notice when the collection is empty.
func (r *Rotator) Next() bool {
	r.randMu.Lock()
	p, ok := r.store.Random(r.rng)
	r.randMu.Unlock()

	if !ok {
		r.display.Notify(EmptyNotice, display.Error)
		return false
	}
	r.display.Render(p)
	return true
}

// Active reports whether auto-rotation is running.
func (r *Rotator) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runningLocked()
}

func (r *Rotator) runningLocked() bool {
	if r.done == nil {
		return false
	}
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}

// Start begins auto-rotation until Stop is called or ctx ends. It returns
// false if rotation was already running or ctx has already ended.
func (r *Rotator) Start(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.runningLocked() || ctx.Err() != nil {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Next()
			}
		}
	}()
	return true
}

// Stop ends auto-rotation and waits for the timer goroutine to exit. It
// returns false if rotation was not running.
func (r *Rotator) Stop() bool {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return false
	}
	select {
	case <-done:
		// The parent context already ended the timer.
		cancel()
		return false
	default:
	}
	cancel()
	<-done
	return true
}

// Toggle starts rotation when stopped and stops it when running, notifying
// the display either way. It returns the new state. Rotation does not start
// under a context that has already ended.
func (r *Rotator) Toggle(ctx context.Context) bool {
	if r.Stop() {
		r.display.Notify("auto-rotation stopped", display.Info)
		return false
	}
	if !r.Start(ctx) {
		return r.Active()
	}
	r.display.Notify(fmt.Sprintf("auto-rotation started: a new painting every %s", r.interval), display.Info)
	return true
}
