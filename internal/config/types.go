package config

import (
	"strings"
	"time"

	"github.com/cfsweep/cfsweep-cli/internal/domain"
)

// DefaultAPIBaseURL is the Cloudflare v4 API root.
const DefaultAPIBaseURL = "https://api.cloudflare.com/client/v4"

// placeholderPrefix marks values copied from public-repo examples that
// were never filled in. They are treated as unset.
const placeholderPrefix = "YOUR-"

// RuntimeConfig is the complete resolved configuration injected into
// use cases and adapters.
type RuntimeConfig struct {
	// Cloudflare scope
	APIToken  string
	AccountID string
	Project   string

	// APIBaseURL is overridable for tests.
	APIBaseURL string

	// HTTPTimeout is the per-call timeout of the underlying client,
	// independent of the backoff schedule.
	HTTPTimeout time.Duration

	// Sweep tunes the batch scheduler.
	Sweep domain.SweepConfig

	Debug          bool
	NonInteractive bool
}

// Validate checks that every required Cloudflare identifier is present
// and not a placeholder. All problems are collected so the operator
// can fix them in one pass.
func (c *RuntimeConfig) Validate() error {
	var problems []string
	if unset(c.APIToken) {
		problems = append(problems, "CF_API_TOKEN is not set (or using placeholder)")
	}
	if unset(c.AccountID) {
		problems = append(problems, "CF_ACCOUNT_ID is not set (or using placeholder)")
	}
	if unset(c.Project) {
		problems = append(problems, "CF_PAGES_PROJECT is not set (or using placeholder)")
	}
	if c.Sweep.BatchSize <= 0 {
		problems = append(problems, "batch size must be positive")
	}
	if len(problems) > 0 {
		return &domain.ConfigError{Problems: problems}
	}
	return nil
}

func unset(v string) bool {
	return v == "" || strings.HasPrefix(v, placeholderPrefix)
}
