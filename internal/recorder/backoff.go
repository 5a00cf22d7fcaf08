package recorder

import (
	"math/rand"
	"time"
)

// Default retry configuration for failed store writes.
const (
	DefaultBackoffInitial = 200 * time.Millisecond
	DefaultBackoffMax     = 5 * time.Second
	DefaultMaxAttempts    = 4
)

// backoff implements exponential backoff with jitter.
type backoff struct {
	max     time.Duration
	current time.Duration
	sleep   func(time.Duration)
}

func newBackoff(initial, max time.Duration, sleep func(time.Duration)) *backoff {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &backoff{
		max:     max,
		current: initial,
		sleep:   sleep,
	}
}

// Sleep waits for the current backoff duration (±20% jitter) and doubles it.
func (b *backoff) Sleep() {
	jitter := float64(b.current) * 0.2 * (rand.Float64()*2 - 1)
	b.sleep(time.Duration(float64(b.current) + jitter))

	b.current *= 2
	if b.current > b.max {
		b.current = b.max
	}
}
