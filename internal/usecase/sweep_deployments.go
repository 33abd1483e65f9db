package usecase

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/cfsweep/cfsweep-cli/internal/config"
	"github.com/cfsweep/cfsweep-cli/internal/domain"
)

// SweepDeployments drains every deployment of a Pages project except
// the newest production one, in bounded batches, until nothing
// deletable remains. Execution is strictly sequential: one delete in
// flight at a time, paced by a sustained-rate limiter, so the remote
// rate budget is respected deterministically.
type SweepDeployments struct {
	cfg     *config.RuntimeConfig
	api     DeploymentAPI
	log     *slog.Logger
	sink    ProgressSink
	limiter *rate.Limiter
}

// NewSweepDeployments creates a new SweepDeployments use case
func NewSweepDeployments(cfg *config.RuntimeConfig, api DeploymentAPI, log *slog.Logger, sink ProgressSink) *SweepDeployments {
	if sink == nil {
		sink = NopProgress{}
	}
	limit := rate.Inf
	if cfg.Sweep.DeleteInterval > 0 {
		limit = rate.Every(cfg.Sweep.DeleteInterval)
	}
	return &SweepDeployments{
		cfg:     cfg,
		api:     api,
		log:     log,
		sink:    sink,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Plan fetches a fresh listing and classifies it without deleting
// anything: the keep target plus the ordered candidate list.
func (uc *SweepDeployments) Plan(ctx context.Context) (*SweepPlan, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "scan",
		Message: "Fetching deployments from Cloudflare",
		Spinner: true,
	})

	listing, err := uc.api.ListDeployments(ctx)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}

	keepID, err := SelectKeep(listing)
	if err != nil {
		return nil, err
	}

	plan := &SweepPlan{}
	for _, d := range listing {
		if d.ID == keepID {
			plan.Keep = d
			continue
		}
		plan.Candidates = append(plan.Candidates, d)
	}

	uc.log.Info("keep target selected",
		"id", plan.Keep.ID,
		"environment", plan.Keep.Environment,
		"candidates", len(plan.Candidates))

	return plan, nil
}

// Run executes the cleanup loop until the candidate set is drained or
// the run aborts on a non-retryable error. The candidate set is owned
// by this method alone; ids leave it only through a confirmed delete
// or permanent retirement past the retry ceiling, so the loop is
// bounded even when individual items keep failing.
func (uc *SweepDeployments) Run(ctx context.Context) (*domain.RunSummary, error) {
	listing, err := uc.api.ListDeployments(ctx)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}

	keepID, err := SelectKeep(listing)
	if err != nil {
		return nil, err
	}
	uc.log.Info("keeping newest production deployment", "id", keepID)

	candidates := domain.NewCandidateSet()
	for _, d := range listing {
		if d.ID != keepID {
			candidates.Add(d)
		}
	}

	summary := &domain.RunSummary{KeptID: keepID}
	retired := make(map[string]bool)

	for sweep := 1; candidates.Len() > 0; sweep++ {
		batch := candidates.Batch(uc.cfg.Sweep.BatchSize)

		uc.log.Info("sweep started",
			"sweep", sweep,
			"attempting", len(batch),
			"remaining", candidates.Len())
		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "sweep",
			Current: summary.Deleted,
			Total:   summary.Deleted + candidates.Len(),
			Message: "Deleting deployments",
			Spinner: true,
		})

		result := domain.SweepResult{Sweep: sweep, Attempted: len(batch)}

		for _, c := range batch {
			if err := uc.limiter.Wait(ctx); err != nil {
				return summary, err
			}

			outcome, err := uc.deleteWithRetry(ctx, c.ID)
			if err != nil {
				// Non-retryable item error or cancellation: the whole
				// run stops; partial progress is safe because every
				// delete is idempotent.
				uc.log.Error("run aborted", "id", c.ID, "err", err)
				return summary, err
			}

			switch outcome {
			case deleteSucceeded:
				candidates.Remove(c.ID)
				summary.Deleted++
				result.Succeeded++
				uc.log.Info("deployment deleted", "id", c.ID, "outcome", "OK")
			case deleteExhausted:
				c.Attempts++
				result.Failed++
				uc.log.Warn("deployment delete failed", "id", c.ID, "outcome", "FAILED", "envelopes", c.Attempts)
				if c.Attempts > uc.cfg.Sweep.RetryCeiling {
					candidates.Remove(c.ID)
					retired[c.ID] = true
					summary.Failed++
					summary.FailedIDs = append(summary.FailedIDs, c.ID)
					uc.log.Warn("deployment retired permanently", "id", c.ID)
				}
			}
		}

		summary.Sweeps++
		result.Remaining = candidates.Len()
		uc.log.Info("sweep finished",
			"sweep", result.Sweep,
			"attempted", result.Attempted,
			"succeeded", result.Succeeded,
			"failed", result.Failed,
			"remaining", result.Remaining)

		if candidates.Len() == 0 {
			break
		}

		// Fixed breather between sweeps, independent of per-call
		// backoff, to stay within the sustained-rate budget.
		if err := sleepCtx(ctx, uc.cfg.Sweep.SweepPause); err != nil {
			return summary, err
		}

		// Re-fetch each sweep so concurrent external changes are
		// picked up rather than churning on a stale snapshot.
		listing, err = uc.api.ListDeployments(ctx)
		if err != nil {
			return summary, &domain.FetchError{Err: err}
		}
		reconcile(candidates, listing, keepID, retired)
	}

	uc.log.Info("cleanup complete",
		"deleted", summary.Deleted,
		"failed", summary.Failed,
		"kept", summary.KeptID)

	return summary, nil
}

// reconcile folds a fresh listing into the candidate set: ids that are
// gone remotely are dropped, new ids are appended after the existing
// insertion order, and the keep target and retired ids stay excluded.
// Attempt counters on surviving candidates are preserved.
func reconcile(candidates *domain.CandidateSet, listing []domain.Deployment, keepID string, retired map[string]bool) {
	listed := make(map[string]bool, len(listing))
	for _, d := range listing {
		listed[d.ID] = true
	}

	for _, id := range candidates.IDs() {
		if !listed[id] {
			candidates.Remove(id)
		}
	}

	for _, d := range listing {
		if d.ID == keepID || retired[d.ID] {
			continue
		}
		candidates.Add(d)
	}
}

// sleepCtx sleeps for d unless the context is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
