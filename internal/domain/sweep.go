package domain

import "time"

// SweepConfig tunes the batch scheduler. Held as a value on the
// runtime configuration so a sweep can be tested in isolation with a
// collapsed schedule.
type SweepConfig struct {
	// BatchSize is the maximum number of deletes per sweep.
	BatchSize int

	// RetryCeiling is how many exhausted retry envelopes an id may
	// accumulate before it is retired into the permanent failed set.
	RetryCeiling int

	// Backoff is the per-call retry policy.
	Backoff Backoff

	// DeleteInterval is the sustained pacing between individual delete
	// calls, independent of per-call backoff.
	DeleteInterval time.Duration

	// SweepPause is the fixed breather between sweeps.
	SweepPause time.Duration
}

// DefaultSweepConfig returns the production defaults: batches of 24,
// one extra retry envelope per id, 150ms between deletes and 500ms
// between sweeps.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		BatchSize:      24,
		RetryCeiling:   1,
		Backoff:        DefaultBackoff(),
		DeleteInterval: 150 * time.Millisecond,
		SweepPause:     500 * time.Millisecond,
	}
}

// Candidate is a deployment currently eligible for deletion.
type Candidate struct {
	ID          string
	Environment Environment

	// Attempts counts exhausted retry envelopes across sweeps.
	Attempts int
}

// CandidateSet is the ordered working set of deployments eligible for
// deletion. Order is the stable insertion order of the source listing
// so progress across sweeps stays deterministic and auditable. The set
// is owned and mutated by the batch scheduler only.
type CandidateSet struct {
	order []string
	items map[string]*Candidate
}

// NewCandidateSet returns an empty candidate set.
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{items: make(map[string]*Candidate)}
}

// Add appends a deployment in insertion order. Duplicates are ignored.
func (s *CandidateSet) Add(d Deployment) {
	if _, ok := s.items[d.ID]; ok {
		return
	}
	s.items[d.ID] = &Candidate{ID: d.ID, Environment: d.Environment}
	s.order = append(s.order, d.ID)
}

// Remove drops an id from the set. Removing an absent id is a no-op.
func (s *CandidateSet) Remove(id string) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Get returns the candidate for id, or nil.
func (s *CandidateSet) Get(id string) *Candidate {
	return s.items[id]
}

// Len returns the number of remaining candidates.
func (s *CandidateSet) Len() int {
	return len(s.order)
}

// Batch returns up to n candidates in insertion order.
func (s *CandidateSet) Batch(n int) []*Candidate {
	if n > len(s.order) {
		n = len(s.order)
	}
	batch := make([]*Candidate, 0, n)
	for _, id := range s.order[:n] {
		batch = append(batch, s.items[id])
	}
	return batch
}

// IDs returns all remaining ids in insertion order.
func (s *CandidateSet) IDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// SweepResult is the per-sweep outcome consumed by progress reporting.
// Only the aggregate counters on RunSummary persist across sweeps.
type SweepResult struct {
	Sweep     int
	Attempted int
	Succeeded int
	Failed    int
	Remaining int
}

// RunSummary accumulates terminal outcomes across the whole run. It is
// created at run start, finalized at run end and never mutated after
// emission.
type RunSummary struct {
	KeptID    string   `yaml:"kept_id"`
	Deleted   int      `yaml:"deleted"`
	Failed    int      `yaml:"failed"`
	Sweeps    int      `yaml:"sweeps"`
	FailedIDs []string `yaml:"failed_ids,omitempty"`
}

// ExitSignal is the terminal classification of a completed run.
type ExitSignal int

const (
	ExitSuccess ExitSignal = iota
	ExitConfigOrFetchFailure
	ExitPartialFailure
)

// ExitSignal maps the summary to its terminal classification. Runs that
// abort before producing a summary report ExitConfigOrFetchFailure via
// the error path instead.
func (s *RunSummary) ExitSignal() ExitSignal {
	if s.Failed > 0 {
		return ExitPartialFailure
	}
	return ExitSuccess
}
