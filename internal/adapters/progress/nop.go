package progress

import (
	"context"

	"github.com/cfsweep/cfsweep-cli/internal/usecase"
)

// NopSink discards all progress events. Used in non-interactive runs
// where the slog stream is the only observable output.
type NopSink struct{}

// NewNopSink creates a no-op progress sink
func NewNopSink() *NopSink {
	return &NopSink{}
}

func (*NopSink) OnProgress(context.Context, usecase.ProgressEvent) {}
func (*NopSink) Info(string)                                       {}
func (*NopSink) Error(string)                                      {}
