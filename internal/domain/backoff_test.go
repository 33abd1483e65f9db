package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cfsweep/cfsweep-cli/internal/domain"
)

func TestBackoffDelay(t *testing.T) {
	t.Run("doubles per attempt", func(t *testing.T) {
		b := domain.Backoff{Base: 750 * time.Millisecond, Max: time.Minute, MaxAttempts: 5}

		assert.Equal(t, 750*time.Millisecond, b.Delay(1))
		assert.Equal(t, 1500*time.Millisecond, b.Delay(2))
		assert.Equal(t, 3*time.Second, b.Delay(3))
		assert.Equal(t, 6*time.Second, b.Delay(4))
	})

	t.Run("caps at max", func(t *testing.T) {
		b := domain.Backoff{Base: time.Second, Max: 3 * time.Second, MaxAttempts: 10}

		assert.Equal(t, 3*time.Second, b.Delay(3))
		assert.Equal(t, 3*time.Second, b.Delay(8))
	})

	t.Run("jitter stays within bounds", func(t *testing.T) {
		b := domain.Backoff{Base: time.Second, Max: time.Minute, MaxAttempts: 5, Jitter: 0.5}

		for range 100 {
			d := b.Delay(2)
			assert.GreaterOrEqual(t, d, 2*time.Second)
			assert.LessOrEqual(t, d, 3*time.Second)
		}
	})

	t.Run("attempt below one treated as first", func(t *testing.T) {
		b := domain.Backoff{Base: time.Second, Max: time.Minute}

		assert.Equal(t, time.Second, b.Delay(0))
	})

	t.Run("defaults match production envelope", func(t *testing.T) {
		b := domain.DefaultBackoff()

		assert.Equal(t, 750*time.Millisecond, b.Base)
		assert.Equal(t, 10*time.Second, b.Max)
		assert.Equal(t, 5, b.MaxAttempts)
	})
}
