package api

import (
	"sync"
	"time"
)

// breaker trips after consecutive transport failures so a dead backend is
// reported immediately instead of burning the retry budget for every widget
// on the screen. Closed → Open → Half-Open.
type breakerState int

const (
	breakerClosed   breakerState = iota // normal — requests flow
	breakerOpen                         // tripped — fast-fail
	breakerHalfOpen                     // probing — one request allowed
)

type breaker struct {
	mu        sync.Mutex
	state     breakerState
	failures  int
	successes int
	trippedAt time.Time

	maxFailures int
	minProbes   int
	cooldown    time.Duration
}

func newBreaker() *breaker {
	return &breaker{
		maxFailures: 5,
		minProbes:   2,
		cooldown:    30 * time.Second,
	}
}

// allow reports whether a request may go out, transitioning open → half-open
// once the cooldown has elapsed.
func (b *breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == breakerOpen && time.Since(b.trippedAt) >= b.cooldown {
		b.state = breakerHalfOpen
		b.successes = 0
	}
	return b.state != breakerOpen
}

func (b *breaker) success() {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.state {
	case breakerClosed:
		b.failures = 0
	case breakerHalfOpen:
		b.successes++
		if b.successes >= b.minProbes {
			b.state = breakerClosed
			b.failures = 0
			b.successes = 0
		}
	}
}

func (b *breaker) failure() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	b.trippedAt = time.Now()
	switch b.state {
	case breakerClosed:
		if b.failures >= b.maxFailures {
			b.state = breakerOpen
			b.successes = 0
		}
	case breakerHalfOpen:
		// probe failed — back to open
		b.state = breakerOpen
		b.failures = 0
	}
}
