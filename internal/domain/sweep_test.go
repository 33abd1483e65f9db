package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfsweep/cfsweep-cli/internal/domain"
)

func TestCandidateSet(t *testing.T) {
	dep := func(id string) domain.Deployment {
		return domain.Deployment{ID: id, Environment: domain.EnvironmentPreview}
	}

	t.Run("preserves insertion order", func(t *testing.T) {
		s := domain.NewCandidateSet()
		s.Add(dep("c"))
		s.Add(dep("a"))
		s.Add(dep("b"))

		assert.Equal(t, []string{"c", "a", "b"}, s.IDs())
	})

	t.Run("ignores duplicates", func(t *testing.T) {
		s := domain.NewCandidateSet()
		s.Add(dep("a"))
		s.Get("a").Attempts = 1
		s.Add(dep("a"))

		assert.Equal(t, 1, s.Len())
		assert.Equal(t, 1, s.Get("a").Attempts, "re-adding must not reset attempts")
	})

	t.Run("batch takes head of order", func(t *testing.T) {
		s := domain.NewCandidateSet()
		for _, id := range []string{"a", "b", "c", "d"} {
			s.Add(dep(id))
		}

		batch := s.Batch(2)
		require.Len(t, batch, 2)
		assert.Equal(t, "a", batch[0].ID)
		assert.Equal(t, "b", batch[1].ID)

		// Asking for more than remains returns everything.
		assert.Len(t, s.Batch(10), 4)
	})

	t.Run("remove keeps order of the rest", func(t *testing.T) {
		s := domain.NewCandidateSet()
		for _, id := range []string{"a", "b", "c"} {
			s.Add(dep(id))
		}
		s.Remove("b")
		s.Remove("missing")

		assert.Equal(t, []string{"a", "c"}, s.IDs())
		assert.Nil(t, s.Get("b"))
	})
}

func TestRunSummaryExitSignal(t *testing.T) {
	assert.Equal(t, domain.ExitSuccess, (&domain.RunSummary{Deleted: 5}).ExitSignal())
	assert.Equal(t, domain.ExitPartialFailure, (&domain.RunSummary{Deleted: 5, Failed: 1}).ExitSignal())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, domain.ExitCode(nil))
	assert.Equal(t, 1, domain.ExitCode(domain.ErrNoProductionDeployment))
	assert.Equal(t, 1, domain.ExitCode(&domain.ConfigError{Problems: []string{"x"}}))
	assert.Equal(t, 1, domain.ExitCode(&domain.FetchError{Err: assert.AnError}))
	assert.Equal(t, 1, domain.ExitCode(&domain.PermanentItemError{ID: "d1", Err: assert.AnError}))
	assert.Equal(t, 2, domain.ExitCode(&domain.PartialFailureError{Failed: 3}))
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   domain.StatusClass
	}{
		{200, domain.StatusOK},
		{404, domain.StatusNotFound},
		{429, domain.StatusRateLimited},
		{500, domain.StatusServerError},
		{502, domain.StatusServerError},
		{403, domain.StatusClientError},
		{400, domain.StatusClientError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ClassifyStatus(tt.status), "status %d", tt.status)
	}

	// A 2xx APIError only exists on envelope failure; retryable.
	assert.Equal(t, domain.StatusServerError, (&domain.APIError{Status: 200}).Class())
	assert.Equal(t, domain.StatusNotFound, (&domain.APIError{Status: 404}).Class())

	assert.True(t, domain.StatusRateLimited.Transient())
	assert.True(t, domain.StatusServerError.Transient())
	assert.False(t, domain.StatusClientError.Transient())
	assert.False(t, domain.StatusNotFound.Transient())
}
