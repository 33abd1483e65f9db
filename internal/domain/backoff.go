package domain

import (
	"math/rand/v2"
	"time"
)

// Backoff is the retry policy for a single delete call, held as a
// plain value so tests can exercise the schedule directly.
type Backoff struct {
	// Base is the delay before the second attempt; each further
	// attempt doubles it.
	Base time.Duration

	// Max caps the doubled delay.
	Max time.Duration

	// MaxAttempts is the total number of attempts per call, including
	// the first one.
	MaxAttempts int

	// Jitter is the fraction of the delay added at random on top, to
	// avoid resynchronizing with other rate-limited candidates.
	Jitter float64
}

// DefaultBackoff mirrors the production retry envelope: 750ms base,
// doubling, capped at 10s, five attempts, 10% jitter.
func DefaultBackoff() Backoff {
	return Backoff{
		Base:        750 * time.Millisecond,
		Max:         10 * time.Second,
		MaxAttempts: 5,
		Jitter:      0.1,
	}
}

// Delay returns the backoff delay after the given failed attempt
// (1-based): Base for attempt 1, doubling afterwards, capped at Max,
// plus up to Jitter of random offset.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := b.Base
	for i := 1; i < attempt; i++ {
		d *= 2
		if b.Max > 0 && d >= b.Max {
			d = b.Max
			break
		}
	}
	if b.Max > 0 && d > b.Max {
		d = b.Max
	}
	if b.Jitter > 0 && d > 0 {
		d += time.Duration(rand.Float64() * b.Jitter * float64(d))
	}
	return d
}
