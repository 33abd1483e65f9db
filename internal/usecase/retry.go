package usecase

import (
	"context"
	"errors"

	"github.com/cfsweep/cfsweep-cli/internal/domain"
)

// deleteOutcome is the terminal result of one delete call including
// its full retry envelope.
type deleteOutcome int

const (
	// deleteSucceeded covers 2xx responses and 404: a deployment that
	// is already gone counts as deleted.
	deleteSucceeded deleteOutcome = iota

	// deleteExhausted means every attempt hit a transient failure. The
	// id stays a candidate for a later sweep.
	deleteExhausted
)

// deleteWithRetry issues a single delete and retries transient
// failures (429, 5xx, timeouts, transport errors) with exponential
// backoff per the configured policy. A non-retryable 4xx is returned
// as *domain.PermanentItemError so the scheduler aborts the run. One
// log event is emitted per attempt.
func (uc *SweepDeployments) deleteWithRetry(ctx context.Context, id string) (deleteOutcome, error) {
	backoff := uc.cfg.Sweep.Backoff

	for attempt := 1; ; attempt++ {
		err := uc.api.DeleteDeployment(ctx, id)
		if err == nil {
			uc.log.Debug("delete attempt succeeded", "id", id, "attempt", attempt)
			return deleteSucceeded, nil
		}

		var apiErr *domain.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.Class() {
			case domain.StatusNotFound:
				// Already gone; deletes are idempotent.
				uc.log.Debug("deployment already absent", "id", id, "attempt", attempt)
				return deleteSucceeded, nil
			case domain.StatusClientError:
				return 0, &domain.PermanentItemError{ID: id, Err: apiErr}
			}
		} else if ctx.Err() != nil {
			// The run context was cancelled; a per-call timeout would
			// have surfaced as a transport error with a live context.
			return 0, ctx.Err()
		}

		if attempt >= backoff.MaxAttempts {
			uc.log.Warn("delete retries exhausted",
				"id", id,
				"attempt", attempt,
				"err", err)
			return deleteExhausted, nil
		}

		delay := backoff.Delay(attempt)
		uc.log.Warn("transient delete failure, backing off",
			"id", id,
			"attempt", attempt,
			"delay", delay,
			"err", err)
		if err := sleepCtx(ctx, delay); err != nil {
			return 0, err
		}
	}
}
